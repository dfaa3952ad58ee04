// Package morph implements the closed set of English inflectional rules
// used to expand a Translation Words headword into morphological variants
// (§4.D). Every function here is pure and deterministic; they operate on a
// single whitespace-separated word (the caller splits a multi-word
// headword and re-joins after transforming only the last token).
package morph

import "strings"

var irregularPlurals = map[string]string{
	"man": "men", "woman": "women", "person": "people",
	"child": "children", "foot": "feet", "tooth": "teeth",
	"goose": "geese", "mouse": "mice", "ox": "oxen",
}

var noDoubleF = map[string]bool{"roof": true, "belief": true, "chief": true, "proof": true}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// Pluralize returns the candidate plural forms of word (§4.D). It always
// includes the naive word+s fallback alongside whichever rule-based form
// applies, and de-duplicates the result.
func Pluralize(word string) []string {
	lower := strings.ToLower(word)
	var out []string

	if irregular, ok := irregularPlurals[lower]; ok {
		out = append(out, matchCase(word, irregular))
	} else {
		n := len(lower)
		switch {
		case n >= 2 && lower[n-1] == 'y' && !isVowel(lower[n-2]):
			out = append(out, word[:len(word)-1]+"ies")
		case strings.HasSuffix(lower, "s") || strings.HasSuffix(lower, "x") ||
			strings.HasSuffix(lower, "z") || strings.HasSuffix(lower, "ch") ||
			strings.HasSuffix(lower, "sh"):
			out = append(out, word+"es")
		case strings.HasSuffix(lower, "fe"):
			out = append(out, word[:len(word)-2]+"ves")
		case strings.HasSuffix(lower, "f") && !noDoubleF[lower]:
			out = append(out, word[:len(word)-1]+"ves")
		case strings.HasSuffix(lower, "o"):
			out = append(out, word+"es")
		default:
			out = append(out, word+"s")
		}
	}

	out = append(out, word+"s")
	return dedupCaseInsensitive(out)
}

// Depluralize returns candidate singular forms of word (§4.D).
func Depluralize(word string) []string {
	lower := strings.ToLower(word)
	var out []string

	switch {
	case strings.HasSuffix(lower, "ies") && len(lower) > 3:
		out = append(out, word[:len(word)-3]+"y")
	case (strings.HasSuffix(lower, "ses") || strings.HasSuffix(lower, "xes") ||
		strings.HasSuffix(lower, "zes") || strings.HasSuffix(lower, "ches") ||
		strings.HasSuffix(lower, "shes")):
		out = append(out, word[:len(word)-2])
	case strings.HasSuffix(lower, "ss"):
		// do not strip a bare trailing "s" from a double-s ending.
	case strings.HasSuffix(lower, "s") && len(lower) > 1:
		out = append(out, word[:len(word)-1])
	}

	return dedupCaseInsensitive(out)
}

// endsCVC reports whether word ends in consonant-vowel-consonant, where
// the final consonant is not w, x, or y, and the word does not end in one
// of the doubling-exempt suffixes er/en/or/on/al (§4.D).
func endsCVC(lower string) bool {
	n := len(lower)
	if n < 3 {
		return false
	}
	last, mid, first := lower[n-1], lower[n-2], lower[n-3]
	if last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	if isVowel(last) || !isVowel(mid) || isVowel(first) {
		return false
	}
	switch lower[n-2:] {
	case "er", "en", "or", "on", "al":
		return false
	}
	return true
}

// PastTense returns the candidate past-tense form of word (§4.D).
func PastTense(word string) string {
	lower := strings.ToLower(word)
	n := len(lower)
	switch {
	case n >= 1 && lower[n-1] == 'e':
		return word + "d"
	case n >= 2 && lower[n-1] == 'y' && !isVowel(lower[n-2]):
		return word[:len(word)-1] + "ied"
	case endsCVC(lower):
		return word + string(word[len(word)-1]) + "ed"
	default:
		return word + "ed"
	}
}

// PresentParticiple returns the candidate -ing form of word (§4.D).
func PresentParticiple(word string) string {
	lower := strings.ToLower(word)
	n := len(lower)
	switch {
	case strings.HasSuffix(lower, "ie"):
		return word[:len(word)-2] + "ying"
	case strings.HasSuffix(lower, "ee"):
		return word + "ing"
	case n >= 1 && lower[n-1] == 'e':
		return word[:len(word)-1] + "ing"
	case endsCVC(lower):
		return word + string(word[len(word)-1]) + "ing"
	default:
		return word + "ing"
	}
}

func matchCase(original, replacement string) string {
	if original == strings.ToUpper(original) {
		return strings.ToUpper(replacement)
	}
	if len(original) > 0 && original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(replacement[:1]) + replacement[1:]
	}
	return replacement
}

func dedupCaseInsensitive(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		key := strings.ToLower(w)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}

// verbFormSuppressAllowlist lists nouns that look verb-shaped but should
// not get -ed/-ing alternates generated for them (§4.D), to avoid spurious
// forms like "well -> welled".
var verbFormSuppressAllowlist = map[string]bool{
	"horn": true, "mare": true, "steed": true, "horse": true, "doe": true,
	"deer": true, "father": true, "Father": true, "cross": true, "well": true,
}

// SuppressVerbForms reports whether word is on the noun allow-list that
// disables -ed/-ing generation (§4.D).
func SuppressVerbForms(word string) bool {
	return verbFormSuppressAllowlist[word] || verbFormSuppressAllowlist[strings.ToLower(word)]
}

// Capitalized returns word with its first rune uppercased, if that first
// rune is a lowercase ASCII letter; otherwise it returns ("", false).
func Capitalized(word string) (string, bool) {
	if word == "" {
		return "", false
	}
	c := word[0]
	if c < 'a' || c > 'z' {
		return "", false
	}
	return strings.ToUpper(word[:1]) + word[1:], true
}
