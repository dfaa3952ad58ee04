package trie

import (
	"strings"

	"github.com/unfoldingWord/twl-pipeline/core/morph"
	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

// Build expands every article's headwords into their morphological
// variants (§4.D) and inserts each variant into a fresh trie (§4.E Step 1).
// conjugator is nil unless --use-compromise is set. Articles whose variant
// text coincides (case-insensitively, as trie keys are lowercased) are
// merged into one trie entry carrying every article that evidenced it, so a
// single scan match can still surface a multi-way disambiguation.
func Build(v *vocab.Vocabulary, conjugator morph.Conjugator) *Trie {
	t := New()

	type variantKey struct {
		text     string
		term     string
		priority int
	}
	articlesFor := make(map[variantKey][]string)
	var order []variantKey

	for _, path := range v.Paths {
		entry := v.Entries[path]
		opts := morph.Options{
			IsName:     path.Category() == vocab.CategoryNames,
			Conjugator: conjugator,
		}
		for _, term := range entry.Terms {
			for _, variant := range morph.Variants(term, opts) {
				key := variantKey{text: strings.ToLower(variant.Text), term: term, priority: variant.Priority}
				paths, seen := articlesFor[key]
				if !seen {
					order = append(order, key)
				}
				if len(paths) == 0 || paths[len(paths)-1] != string(path) {
					articlesFor[key] = append(paths, string(path))
				}
			}
		}
	}

	for _, key := range order {
		t.Insert(key.text, Entry{
			Term:     key.term,
			Articles: articlesFor[key],
			Priority: key.priority,
		})
	}

	return t
}
