package selector

import (
	"regexp"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set"

	"github.com/unfoldingWord/twl-pipeline/core/morph"
	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

// Article is the selector's view of one vocabulary article: its terms and
// whether its strongs list is present (empty/entirely-empty articles still
// participate in disambiguation, §4.F Step 6).
type Article struct {
	Path       vocab.ArticlePath
	Terms      []string
	HasStrongs bool
}

// Selector implements §4.F against a Strong's pivot and an article term
// table.
type Selector struct {
	Pivot      *vocab.Pivot
	Articles   map[vocab.ArticlePath]*Article
	Conjugator morph.Conjugator // nil unless --use-compromise
}

// Result is the outcome of selecting an article for one (glq, sid) pair.
type Result struct {
	Article        vocab.ArticlePath
	Stage          Stage
	MatchedTerm    string
	IsVariant      bool
	Disambiguation []vocab.ArticlePath // sorted; empty unless >1 matched
}

var stagePriority = map[vocab.Category]int{
	vocab.CategoryKT:    0,
	vocab.CategoryNames: 1,
	vocab.CategoryOther: 2,
}

// Select runs §4.F Steps 1-6 and returns the chosen article, or ok=false
// if Step 1 finds no candidates or no candidate matches at any stage (the
// latter case reports the tried candidates in Result.Disambiguation).
func (s *Selector) Select(glq string, sid vocab.StrongsID) (Result, bool) {
	candidates := s.lookupCandidates(sid)
	if len(candidates) == 0 {
		return Result{}, false
	}

	prioritized := s.prioritize(candidates, glq)
	matched := s.stagedMatches(prioritized, glq)
	if len(matched) == 0 {
		return Result{Disambiguation: triedCandidates(prioritized)}, false
	}

	chosen := pickBest(matched, prioritized)

	result := Result{
		Article:     chosen.article,
		Stage:       chosen.stage,
		MatchedTerm: chosen.term,
		IsVariant:   chosen.stage >= StagePrefixBoundary,
	}
	if result.IsVariant && s.suppressVariant(chosen.article, glq) {
		result.IsVariant = false
	}

	result.Disambiguation = s.disambiguationSet(candidates, prioritized, matched, glq)
	return result, true
}

func (s *Selector) lookupCandidates(sid vocab.StrongsID) []vocab.ArticlePath {
	return s.Pivot.Lookup(sid)
}

// prioritize implements §4.F Step 2.
func (s *Selector) prioritize(candidates []vocab.ArticlePath, glq string) []vocab.ArticlePath {
	lowerGLQ := strings.ToLower(glq)

	var tier1, tier2 []vocab.ArticlePath
	for _, c := range candidates {
		if strings.Contains(lowerGLQ, strings.ToLower(c.Slug())) {
			tier1 = append(tier1, c)
		} else {
			tier2 = append(tier2, c)
		}
	}

	sort.SliceStable(tier1, func(i, j int) bool {
		return len(tier1[i].Slug()) > len(tier1[j].Slug())
	})
	sort.SliceStable(tier2, func(i, j int) bool {
		ci, cj := tier2[i].Category(), tier2[j].Category()
		if ci != cj {
			return stagePriority[ci] < stagePriority[cj]
		}
		return tier2[i].Slug() < tier2[j].Slug()
	})

	return append(tier1, tier2...)
}

type articleMatch struct {
	article vocab.ArticlePath
	index   int
	stage   Stage
	term    string
}

// stagedMatches implements §4.F Step 3 over the prioritized list.
func (s *Selector) stagedMatches(prioritized []vocab.ArticlePath, glq string) []articleMatch {
	var out []articleMatch
	for i, path := range prioritized {
		article := s.Articles[path]
		if article == nil {
			continue
		}
		stage, term, ok := s.matchArticle(article, glq)
		if ok {
			out = append(out, articleMatch{article: path, index: i, stage: stage, term: term})
		}
	}
	return out
}

// matchArticle computes the earliest stage at which any of article's terms
// (or alternates) matches glq (§4.F Step 3).
func (s *Selector) matchArticle(article *Article, glq string) (Stage, string, bool) {
	opts := morph.Options{
		IsName:     article.Path.Category() == vocab.CategoryNames,
		Conjugator: s.Conjugator,
	}

	best := StageNone
	bestTerm := ""

	for _, term := range article.Terms {
		alternates := morph.SelectorAlternates(term, opts)

		if st := firstMatchingStage12(alternates, glq); st != StageNone && (best == StageNone || st < best) {
			best, bestTerm = st, term
			if best == StageExact {
				return best, bestTerm, true
			}
		}
	}
	if best != StageNone {
		return best, bestTerm, true
	}

	for _, term := range article.Terms {
		if matchesStage3(term, glq) {
			return StagePrefixBoundary, term, true
		}
	}

	for _, term := range article.Terms {
		opts := morph.Options{IsName: article.Path.Category() == vocab.CategoryNames, Conjugator: s.Conjugator}
		if matchesStage4(term, glq, opts) {
			return StageStrippedCI, term, true
		}
	}

	return StageNone, "", false
}

func firstMatchingStage12(alternates []string, glq string) Stage {
	best := StageNone
	for _, alt := range alternates {
		if wordBoundaryMatch(alt, glq, true) {
			return StageExact
		}
	}
	for _, alt := range alternates {
		if wordBoundaryMatch(alt, glq, false) {
			if best == StageNone {
				best = StageExactCI
			}
		}
	}
	return best
}

func wordBoundaryMatch(term, glq string, caseSensitive bool) bool {
	pattern := `\b` + regexp.QuoteMeta(term) + `\b`
	if !caseSensitive {
		pattern = `(?i)` + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(glq)
}

func matchesStage3(term, glq string) bool {
	pattern := `(?:^|\b|[—–-])` + regexp.QuoteMeta(term)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(glq)
}

var stage4Suffixes = `(ed|ing|er|est|es|ies|s|d|n|t)\b`

func matchesStage4(term, glq string, opts morph.Options) bool {
	for _, stripped := range morph.StrippedForms(term, true) {
		if stage4Matches(stripped, glq) {
			return true
		}
	}
	if base, ok := morph.IrregularBase(strings.ToLower(term)); ok {
		for _, form := range morph.IrregularForms(base) {
			for _, stripped := range morph.StrippedForms(form, false) {
				if stage4Matches(stripped, glq) {
					return true
				}
			}
		}
	}
	if opts.Conjugator != nil {
		for _, form := range opts.Conjugator.VerbForms(term) {
			for _, stripped := range morph.StrippedForms(form, false) {
				if stage4Matches(stripped, glq) {
					return true
				}
			}
		}
	}
	return false
}

func stage4Matches(stripped, glq string) bool {
	if stripped == "" {
		return false
	}
	pattern := `(?i)\b` + regexp.QuoteMeta(stripped) + stage4Suffixes
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(glq)
}

// pickBest implements §4.F Step 4: minimum stage, then smallest
// prioritized-list index.
func pickBest(matched []articleMatch, prioritized []vocab.ArticlePath) articleMatch {
	best := matched[0]
	for _, m := range matched[1:] {
		if m.stage < best.stage || (m.stage == best.stage && m.index < best.index) {
			best = m
		}
	}
	return best
}

// suppressVariant implements §4.F Step 5's exception: no variant flag if
// the chosen article's terms (or plural/conjugation/irregular alternates)
// word-bound-match the phrase case-insensitively.
func (s *Selector) suppressVariant(articlePath vocab.ArticlePath, glq string) bool {
	article := s.Articles[articlePath]
	if article == nil {
		return false
	}
	opts := morph.Options{
		IsName:     article.Path.Category() == vocab.CategoryNames,
		Conjugator: s.Conjugator,
	}
	for _, term := range article.Terms {
		for _, alt := range morph.SelectorAlternates(term, opts) {
			if wordBoundaryMatch(alt, glq, false) {
				return true
			}
		}
		// -ing/-ed forms specifically, even though SelectorAlternates
		// omits the regular closed-rule forms.
		if wordBoundaryMatch(morph.PastTense(term), glq, false) {
			return true
		}
		if wordBoundaryMatch(morph.PresentParticiple(term), glq, false) {
			return true
		}
	}
	return false
}

// disambiguationSet implements §4.F Step 6.
func (s *Selector) disambiguationSet(originalCandidates, prioritized []vocab.ArticlePath, matched []articleMatch, glq string) []vocab.ArticlePath {
	set := mapset.NewSet()
	for _, m := range matched {
		set.Add(m.article)
	}
	for path, a := range s.Articles {
		if !a.HasStrongs {
			set.Add(path)
		}
	}

	enlarged := make([]vocab.ArticlePath, 0, set.Cardinality())
	for _, v := range set.ToSlice() {
		enlarged = append(enlarged, v.(vocab.ArticlePath))
	}
	sort.Slice(enlarged, func(i, j int) bool { return enlarged[i] < enlarged[j] })

	reprioritized := s.prioritize(enlarged, glq)
	rematched := s.stagedMatches(reprioritized, glq)

	if len(rematched) <= 1 {
		return nil
	}

	out := make([]vocab.ArticlePath, 0, len(rematched))
	for _, m := range rematched {
		out = append(out, m.article)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return dedupPaths(out)
}

// triedCandidates reports the candidate list a failed Select considered, so
// the no-match TSV's Disambiguation column can show what was tried (§6).
// Empty unless more than one candidate was tried.
func triedCandidates(prioritized []vocab.ArticlePath) []vocab.ArticlePath {
	if len(prioritized) <= 1 {
		return nil
	}
	out := append([]vocab.ArticlePath{}, prioritized...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return dedupPaths(out)
}

func dedupPaths(paths []vocab.ArticlePath) []vocab.ArticlePath {
	out := make([]vocab.ArticlePath, 0, len(paths))
	seen := make(map[vocab.ArticlePath]bool, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
