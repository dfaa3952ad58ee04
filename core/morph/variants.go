package morph

import "strings"

// Variant is one generated alternate of a headword, tagged with the
// priority the trie and selector use (§3: priority 0 = original headword,
// 1 = morphological variant).
type Variant struct {
	Text     string
	Priority int
}

// Options controls category-sensitive generation (§4.D).
type Options struct {
	// IsName disables pluralization/depluralization but keeps capitalized
	// alternates, for names/* articles.
	IsName bool
	// Conjugator optionally supplies richer verb-form evidence gated by
	// --use-compromise (see prose.go). Nil disables the enrichment.
	Conjugator Conjugator
}

// Conjugator is the optional richer conjugation source enabled by
// --use-compromise (§4.D, §6).
type Conjugator interface {
	// VerbForms returns additional surface forms for word if it judges
	// word to be used/usable as a verb, or nil otherwise.
	VerbForms(word string) []string
}

// Variants generates the full set of morphological alternates for a
// headword (§4.D). Only the last whitespace-separated token is varied; the
// head is preserved verbatim and re-joined with a single space.
func Variants(headword string, opts Options) []Variant {
	fields := strings.Fields(headword)
	if len(fields) == 0 {
		return nil
	}
	head := strings.Join(fields[:len(fields)-1], " ")
	last := fields[len(fields)-1]

	var forms []string
	forms = append(forms, last)

	if !opts.IsName {
		forms = append(forms, Pluralize(last)...)
		forms = append(forms, Depluralize(last)...)
	}

	if base, ok := IrregularBase(strings.ToLower(last)); ok {
		forms = append(forms, IrregularForms(base)...)
	} else if !SuppressVerbForms(last) {
		forms = append(forms, PastTense(last), PresentParticiple(last))
	}

	if opts.Conjugator != nil && !SuppressVerbForms(last) {
		forms = append(forms, opts.Conjugator.VerbForms(last)...)
	}

	forms = dedupCaseInsensitive(forms)

	// Capitalize every variant starting with a lowercase ASCII letter.
	capitalized := make([]string, 0, len(forms))
	for _, f := range forms {
		if cap, ok := Capitalized(f); ok {
			capitalized = append(capitalized, cap)
		}
	}
	forms = append(forms, capitalized...)

	out := make([]Variant, 0, len(forms))
	for _, f := range forms {
		priority := 1
		if strings.EqualFold(f, last) {
			priority = 0
		}
		text := f
		if head != "" {
			text = head + " " + f
		}
		out = append(out, Variant{Text: text, Priority: priority})
	}
	return out
}
