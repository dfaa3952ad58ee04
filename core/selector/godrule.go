package selector

import (
	"sort"
	"strings"
	"unicode"

	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

const (
	articleGod      = vocab.ArticlePath("kt/god")
	articleFalsegod = vocab.ArticlePath("kt/falsegod")
)

// ApplyGodRule implements the orphan "god" rule (§4.F, English-first mode
// only): when the trie-matched surface equals "god" case-insensitively and
// both kt/god and kt/falsegod are candidates, the capitalized surface picks
// kt/god, the lowercase surface picks kt/falsegod, and both remain in the
// disambiguation set.
func ApplyGodRule(surface string, candidates []vocab.ArticlePath) (vocab.ArticlePath, []vocab.ArticlePath, bool) {
	if !strings.EqualFold(surface, "god") {
		return "", nil, false
	}
	if !containsPath(candidates, articleGod) || !containsPath(candidates, articleFalsegod) {
		return "", nil, false
	}

	disambiguation := []vocab.ArticlePath{articleFalsegod, articleGod}
	sort.Slice(disambiguation, func(i, j int) bool { return disambiguation[i] < disambiguation[j] })

	r := firstRune(surface)
	if unicode.IsUpper(r) {
		return articleGod, disambiguation, true
	}
	return articleFalsegod, disambiguation, true
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func containsPath(paths []vocab.ArticlePath, target vocab.ArticlePath) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}
	return false
}
