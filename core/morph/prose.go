package morph

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// ProseConjugator is the optional richer conjugation source gated by
// --use-compromise (§4.D, §6): it runs the word through prose's
// tokenizer/tagger and, when the tag looks verb-like, contributes the
// stem's -ed/-ing alternates alongside the closed-rule forms PastTense and
// PresentParticiple already produce. It is deliberately conservative: on
// any tagging failure, or a non-verb tag, it contributes nothing, since it
// only ever supplements the finite rule set and never substitutes for it
// (§1 Non-goals: "no natural-language understanding beyond finite
// morphological rules").
type ProseConjugator struct{}

// verbTags are the Penn-Treebank verb tags prose.Document assigns.
var verbTags = map[string]bool{
	"VB": true, "VBD": true, "VBG": true, "VBN": true, "VBP": true, "VBZ": true,
}

// VerbForms implements Conjugator.
func (ProseConjugator) VerbForms(word string) []string {
	doc, err := prose.NewDocument(word, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil
	}
	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return nil
	}
	if !verbTags[tokens[0].Tag] {
		return nil
	}
	lower := strings.ToLower(word)
	return []string{PastTense(lower), PresentParticiple(lower)}
}
