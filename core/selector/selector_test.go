package selector

import (
	"testing"

	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

func buildSelector(articles map[vocab.ArticlePath]*Article, sv *vocab.StrongsVocabulary) *Selector {
	pivotSV := &vocab.StrongsVocabulary{Articles: make(map[vocab.ArticlePath]*vocab.StrongsEntry)}
	for path, a := range articles {
		pivotSV.Articles[path] = &vocab.StrongsEntry{Path: path, Terms: a.Terms}
	}
	if sv != nil {
		for path, e := range sv.Articles {
			pivotSV.Articles[path] = e
		}
	}
	return &Selector{
		Pivot:    vocab.BuildPivot(pivotSV),
		Articles: articles,
	}
}

func mustStrongs(t *testing.T, s string) vocab.StrongsID {
	id, ok := vocab.ParseStrongsID(s)
	if !ok {
		t.Fatalf("bad strongs id %q", s)
	}
	return id
}

// TestSelectBasicKTMatch grounds spec scenario 1: "In the beginning God
// created", vocabulary contains kt/god with term God.
func TestSelectBasicKTMatch(t *testing.T) {
	god := vocab.ArticlePath("kt/god")
	articles := map[vocab.ArticlePath]*Article{
		god: {Path: god, Terms: []string{"God"}, HasStrongs: true},
	}
	sv := &vocab.StrongsVocabulary{Articles: map[vocab.ArticlePath]*vocab.StrongsEntry{
		god: {Path: god, Terms: []string{"God"}, Strongs: [][]vocab.StrongsID{{mustStrongs(t, "H0430")}}},
	}}
	s := buildSelector(articles, sv)

	result, ok := s.Select("In the beginning God created", mustStrongs(t, "H0430"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if result.Article != god {
		t.Errorf("expected kt/god, got %s", result.Article)
	}
	if result.Stage != StageExactCI && result.Stage != StageExact {
		t.Errorf("expected stage 1 or 2, got %v", result.Stage)
	}
	if result.IsVariant {
		t.Errorf("expected no variant flag for an exact match")
	}
	if len(result.Disambiguation) > 0 {
		t.Errorf("expected no disambiguation for a lone candidate, got %v", result.Disambiguation)
	}
}

// TestSelectVariantSuppressedForInflection grounds spec scenario 3's
// testable version: "we are loving"; term love; -ing suppresses the
// variant flag.
func TestSelectVariantSuppressedForInflection(t *testing.T) {
	love := vocab.ArticlePath("kt/love")
	articles := map[vocab.ArticlePath]*Article{
		love: {Path: love, Terms: []string{"love"}, HasStrongs: true},
	}
	sv := &vocab.StrongsVocabulary{Articles: map[vocab.ArticlePath]*vocab.StrongsEntry{
		love: {Path: love, Terms: []string{"love"}, Strongs: [][]vocab.StrongsID{{mustStrongs(t, "G0025")}}},
	}}
	s := buildSelector(articles, sv)

	result, ok := s.Select("we are loving", mustStrongs(t, "G0025"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if result.Article != love {
		t.Errorf("expected kt/love, got %s", result.Article)
	}
	if result.IsVariant {
		t.Errorf("expected variant flag suppressed for -ing inflection")
	}
}

// TestApplyGodRuleCapitalizedChoosesGod grounds spec scenario 4.
func TestApplyGodRuleCapitalizedChoosesGod(t *testing.T) {
	candidates := []vocab.ArticlePath{"kt/god", "kt/falsegod"}
	chosen, disambig, ok := ApplyGodRule("God", candidates)
	if !ok {
		t.Fatalf("expected the god rule to fire")
	}
	if chosen != "kt/god" {
		t.Errorf("expected kt/god for capitalized surface, got %s", chosen)
	}
	if len(disambig) != 2 || disambig[0] != "kt/falsegod" || disambig[1] != "kt/god" {
		t.Errorf("unexpected disambiguation set %v", disambig)
	}
}

func TestApplyGodRuleLowercaseChoosesFalsegod(t *testing.T) {
	candidates := []vocab.ArticlePath{"kt/god", "kt/falsegod"}
	chosen, disambig, ok := ApplyGodRule("god", candidates)
	if !ok {
		t.Fatalf("expected the god rule to fire")
	}
	if chosen != "kt/falsegod" {
		t.Errorf("expected kt/falsegod for lowercase surface, got %s", chosen)
	}
	if len(disambig) != 2 {
		t.Errorf("expected both articles retained in disambiguation, got %v", disambig)
	}
}

func TestApplyGodRuleDoesNotFireWithoutBothCandidates(t *testing.T) {
	if _, _, ok := ApplyGodRule("God", []vocab.ArticlePath{"kt/god"}); ok {
		t.Errorf("expected the rule not to fire with only one candidate present")
	}
}

// TestSelectPrioritizesSlugSubstring grounds §4.F Step 2's tier 1 rule: a
// candidate whose slug appears in the phrase outranks others regardless of
// stage.
func TestSelectPrioritizesSlugSubstring(t *testing.T) {
	grace := vocab.ArticlePath("kt/grace")
	mercy := vocab.ArticlePath("kt/mercy")
	articles := map[vocab.ArticlePath]*Article{
		grace: {Path: grace, Terms: []string{"grace"}, HasStrongs: true},
		mercy: {Path: mercy, Terms: []string{"grace"}, HasStrongs: true},
	}
	sid := mustStrongs(t, "G5485")
	sv := &vocab.StrongsVocabulary{Articles: map[vocab.ArticlePath]*vocab.StrongsEntry{
		grace: {Path: grace, Terms: []string{"grace"}, Strongs: [][]vocab.StrongsID{{sid}}},
		mercy: {Path: mercy, Terms: []string{"grace"}, Strongs: [][]vocab.StrongsID{{sid}}},
	}}
	s := buildSelector(articles, sv)

	result, ok := s.Select("amazing grace", sid)
	if !ok {
		t.Fatalf("expected a match")
	}
	if result.Article != grace {
		t.Errorf("expected kt/grace (slug substring of phrase) to win, got %s", result.Article)
	}
}

// TestSelectDisambiguationIncludesEmptyStrongsArticles grounds §4.F Step 6:
// an article with an entirely empty strongs list joins the disambiguation
// set whenever it also matches the phrase.
func TestSelectDisambiguationIncludesEmptyStrongsArticles(t *testing.T) {
	god := vocab.ArticlePath("kt/god")
	orphan := vocab.ArticlePath("other/godlike")
	articles := map[vocab.ArticlePath]*Article{
		god:    {Path: god, Terms: []string{"God"}, HasStrongs: true},
		orphan: {Path: orphan, Terms: []string{"God"}, HasStrongs: false},
	}
	sid := mustStrongs(t, "H0430")
	sv := &vocab.StrongsVocabulary{Articles: map[vocab.ArticlePath]*vocab.StrongsEntry{
		god: {Path: god, Terms: []string{"God"}, Strongs: [][]vocab.StrongsID{{sid}}},
	}}
	s := buildSelector(articles, sv)

	result, ok := s.Select("In the beginning God created", sid)
	if !ok {
		t.Fatalf("expected a match")
	}
	if len(result.Disambiguation) < 2 {
		t.Errorf("expected the empty-strongs article to join disambiguation, got %v", result.Disambiguation)
	}
}
