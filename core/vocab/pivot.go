package vocab

import (
	"sort"
)

// StrongsVocabulary is the richer "tw_strongs_list" form of the vocabulary
// (§4.B, §6): each article also carries its Strong's sequences. The driver
// is responsible for decoding the archive's companion JSON into this shape;
// the core only consumes the decoded struct.
type StrongsVocabulary struct {
	Articles map[ArticlePath]*StrongsEntry
}

// StrongsEntry is one article's richer form: its terms (as in Entry) plus
// its strongs sequences. A length-1 sequence contributes to Singles; a
// length->=2 sequence contributes to SeqFirst (§3, §4.B).
type StrongsEntry struct {
	Path    ArticlePath
	Terms   []string
	Strongs [][]StrongsID
}

// Pivot holds the two inverted indexes built from a StrongsVocabulary.
type Pivot struct {
	// Singles maps a Strong's id (both full and base form) to the set of
	// articles whose strongs include that id as a length-1 sequence.
	Singles map[StrongsID]map[ArticlePath]bool

	// SeqFirst maps the base of a sequence's first id to the candidate
	// multi-id sequences that could start there, longest first.
	SeqFirst map[StrongsID][]SeqCandidate
}

// SeqCandidate is one multi-lemma phrase candidate anchored at a token.
type SeqCandidate struct {
	Article ArticlePath
	Base    []StrongsID // the sequence's ids, stripped to base form
	Length  int
}

// BuildPivot inverts a StrongsVocabulary into singles/seqFirst indexes
// (§4.B). An article with an empty Strongs list contributes to neither map
// but is retained elsewhere for disambiguation (§4.F Step 6).
func BuildPivot(sv *StrongsVocabulary) *Pivot {
	p := &Pivot{
		Singles:  make(map[StrongsID]map[ArticlePath]bool),
		SeqFirst: make(map[StrongsID][]SeqCandidate),
	}

	paths := make([]ArticlePath, 0, len(sv.Articles))
	for path := range sv.Articles {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	for _, path := range paths {
		entry := sv.Articles[path]
		for _, seq := range entry.Strongs {
			if len(seq) == 0 {
				continue
			}
			if len(seq) == 1 {
				p.registerSingle(seq[0], path)
				continue
			}
			base := make([]StrongsID, len(seq))
			for i, id := range seq {
				base[i] = id.Base()
			}
			firstBase := base[0]
			p.SeqFirst[firstBase] = append(p.SeqFirst[firstBase], SeqCandidate{
				Article: path,
				Base:    base,
				Length:  len(base),
			})
		}
	}

	for firstBase := range p.SeqFirst {
		cands := p.SeqFirst[firstBase]
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].Length > cands[j].Length })
		p.SeqFirst[firstBase] = cands
	}

	return p
}

func (p *Pivot) registerSingle(id StrongsID, path ArticlePath) {
	for _, key := range []StrongsID{id, id.Base()} {
		set, ok := p.Singles[key]
		if !ok {
			set = make(map[ArticlePath]bool)
			p.Singles[key] = set
		}
		set[path] = true
	}
}

// Lookup resolves the candidate article set for a Strong's id (§4.F Step 1):
// try the full id, then (if it carries a homograph letter) its base.
func (p *Pivot) Lookup(id StrongsID) []ArticlePath {
	if set, ok := p.Singles[id]; ok && len(set) > 0 {
		return sortedPaths(set)
	}
	if base := id.Base(); base != id {
		if set, ok := p.Singles[base]; ok && len(set) > 0 {
			return sortedPaths(set)
		}
	}
	return nil
}

func sortedPaths(set map[ArticlePath]bool) []ArticlePath {
	out := make([]ArticlePath, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MatchSequence tries to match the longest seqFirst sequence whose base ids
// equal the prefix of ids (§4.G' step 1). It returns the chosen candidate
// and how many ids it consumed, or ok=false.
func (p *Pivot) MatchSequence(ids []StrongsID) (cand SeqCandidate, ok bool) {
	if len(ids) == 0 {
		return SeqCandidate{}, false
	}
	firstBase := ids[0].Base()
	for _, c := range p.SeqFirst[firstBase] {
		if c.Length > len(ids) {
			continue
		}
		matched := true
		for i, base := range c.Base {
			if ids[i].Base() != base {
				matched = false
				break
			}
		}
		if matched {
			return c, true
		}
	}
	return SeqCandidate{}, false
}
