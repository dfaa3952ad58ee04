// Package pipeline implements the two row-emitting drivers (§4.G
// English-first, §4.G' Strong's-first) and the row post-processor (§4.H)
// that sit on top of core/vocab, core/usfm, core/morph, core/trie, and
// core/selector.
package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

// Row is one output line of the Translation Words Links TSV (§3).
type Row struct {
	Reference      string // "C:V"
	ID             string
	Tags           string // "keyterm" | "name" | ""
	OrigWords      string
	Occurrence     int
	TWLink         string // rc://*/tw/dict/bible/<article>
	GLQuote        string
	GLOccurrence   int
	VariantOf      string
	Disambiguation string // "(art1, art2, ...)" or ""

	// chapter/verse/position are carried for sort stability (§5 ordering
	// guarantee); strongsID carries the anchor id the Strong's-first driver
	// used to pick TWLink, so a later selector refinement pass can re-run
	// §4.F without re-deriving it from the rendered link. None are emitted
	// columns.
	chapter   int
	verse     int
	position  int
	strongsID vocab.StrongsID
}

// Header is the output TSV's column order (§3; reorder applied after
// add-GL-quote per §4.H).
var Header = []string{
	"Reference", "ID", "Tags", "OrigWords", "Occurrence", "TWLink",
	"GLQuote", "GLOccurrence", "Variant of", "Disambiguation",
}

// NoMatchHeader is the no-match TSV's column order (§6: "identical columns
// plus a Disambiguation column carrying the tried candidate list").
var NoMatchHeader = []string{
	"Reference", "ID", "Tags", "OrigWords", "Occurrence", "TWLink",
	"GLQuote", "GLOccurrence", "Variant of", "Disambiguation",
}

// Tag returns the Tags column value for an article path (§8 invariant 4).
func Tag(article vocab.ArticlePath) string {
	switch article.Category() {
	case vocab.CategoryKT:
		return "keyterm"
	case vocab.CategoryNames:
		return "name"
	default:
		return ""
	}
}

// Link formats an article path as its TWLink (§3).
func Link(article vocab.ArticlePath) string {
	return fmt.Sprintf("rc://*/tw/dict/bible/%s", article)
}

// FormatDisambiguation sorts article paths lexicographically and formats
// them as "(art1, art2, ...)" (§4.H); returns "" for fewer than 2 entries.
func FormatDisambiguation(articles []vocab.ArticlePath) string {
	if len(articles) < 2 {
		return ""
	}
	sorted := make([]string, len(articles))
	for i, a := range articles {
		sorted[i] = string(a)
	}
	sort.Strings(sorted)
	return "(" + strings.Join(sorted, ", ") + ")"
}

// Fields returns the row rendered in Header order.
func (r Row) Fields() []string {
	return []string{
		r.Reference,
		r.ID,
		r.Tags,
		r.OrigWords,
		itoa(r.Occurrence),
		r.TWLink,
		r.GLQuote,
		itoa(r.GLOccurrence),
		r.VariantOf,
		r.Disambiguation,
	}
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}

// sortRows enforces the (chapter asc, verse asc, position asc) ordering
// guarantee (§5).
func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].chapter != rows[j].chapter {
			return rows[i].chapter < rows[j].chapter
		}
		if rows[i].verse != rows[j].verse {
			return rows[i].verse < rows[j].verse
		}
		return rows[i].position < rows[j].position
	})
}
