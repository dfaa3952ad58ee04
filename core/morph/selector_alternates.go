package morph

import "strings"

// SelectorAlternates returns the narrower alternate set used by the
// article selector's stage 1-2 tests (§4.F Step 3): the term itself, its
// plural/singular alternates (unless opts.IsName), its irregular verb
// forms if it is a known irregular, the optional conjugator's forms, and
// the capitalized form of each. Unlike Variants, it deliberately omits the
// regular closed-rule -ed/-ing forms: those are only evidence for the
// trie's English-first scan, not for Strong's-prior matching.
func SelectorAlternates(word string, opts Options) []string {
	var forms []string
	forms = append(forms, word)

	if !opts.IsName {
		forms = append(forms, Pluralize(word)...)
		forms = append(forms, Depluralize(word)...)
	}

	if base, ok := IrregularBase(strings.ToLower(word)); ok {
		forms = append(forms, IrregularForms(base)...)
	}

	if opts.Conjugator != nil {
		forms = append(forms, opts.Conjugator.VerbForms(word)...)
	}

	forms = dedupCaseInsensitive(forms)

	capitalized := make([]string, 0, len(forms))
	for _, f := range forms {
		if cap, ok := Capitalized(f); ok {
			capitalized = append(capitalized, cap)
		}
	}
	return append(forms, capitalized...)
}

// StrippedForms returns stage-4 candidate bases for word (§4.F Step 3,
// Stage 4): drop a final y, e, ing, ed, es, or a single trailing s. When
// fullSuffixSet is false (conjugation/irregular variants), only the y/e
// drops apply.
func StrippedForms(word string, fullSuffixSet bool) []string {
	var out []string
	lower := strings.ToLower(word)

	if strings.HasSuffix(lower, "y") && len(word) > 1 {
		out = append(out, word[:len(word)-1])
	}
	if strings.HasSuffix(lower, "e") && len(word) > 1 {
		out = append(out, word[:len(word)-1])
	}
	if !fullSuffixSet {
		return dedupCaseInsensitive(out)
	}

	switch {
	case strings.HasSuffix(lower, "ing") && len(word) > 3:
		out = append(out, word[:len(word)-3])
	case strings.HasSuffix(lower, "ies") && len(word) > 3:
		out = append(out, word[:len(word)-3]+"y")
	case strings.HasSuffix(lower, "es") && len(word) > 2:
		out = append(out, word[:len(word)-2])
	case strings.HasSuffix(lower, "ed") && len(word) > 2:
		out = append(out, word[:len(word)-2])
	}
	if strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(word) > 1 {
		out = append(out, word[:len(word)-1])
	}

	return dedupCaseInsensitive(out)
}
