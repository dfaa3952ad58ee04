// Package selector implements the four-stage candidate-article selection
// algorithm (§4.F): given an English surface phrase and a Strong's id, it
// picks the single best Translation Words article and computes a
// disambiguation set.
package selector

// Stage is the tagged variant the design notes recommend in place of a
// bare numeric stage (§9): {Exact, ExactCI, PrefixBoundary, StrippedCI}.
type Stage int

const (
	// StageNone means no stage matched.
	StageNone Stage = 0
	// StageExact is case-sensitive \bTERM\b (§4.F stage 1).
	StageExact Stage = 1
	// StageExactCI is case-insensitive \bTERM\b (§4.F stage 2).
	StageExactCI Stage = 2
	// StagePrefixBoundary is a case-sensitive boundary-anchored prefix
	// match (§4.F stage 3).
	StagePrefixBoundary Stage = 3
	// StageStrippedCI is a case-insensitive stripped-form match (§4.F
	// stage 4).
	StageStrippedCI Stage = 4
)

func (s Stage) String() string {
	switch s {
	case StageExact:
		return "Exact"
	case StageExactCI:
		return "ExactCI"
	case StagePrefixBoundary:
		return "PrefixBoundary"
	case StageStrippedCI:
		return "StrippedCI"
	default:
		return "None"
	}
}
