package pipeline

import (
	"context"

	"github.com/unfoldingWord/twl-pipeline/core/selector"
	"github.com/unfoldingWord/twl-pipeline/core/usfm"
	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

// StrongsFirstDriver implements §4.G': walking USFM tokens in document
// order, pivoting off each token's Strong's attribution rather than the
// English gloss.
type StrongsFirstDriver struct {
	Pivot     *vocab.Pivot
	Selector  *selector.Selector
	Companion CompanionClient
	ids       *IDGenerator
}

// NewStrongsFirstDriver wires the pivot and selector into a driver instance.
func NewStrongsFirstDriver(pivot *vocab.Pivot, sel *selector.Selector, companion CompanionClient) *StrongsFirstDriver {
	return &StrongsFirstDriver{Pivot: pivot, Selector: sel, Companion: companion, ids: NewIDGenerator()}
}

// Process runs §4.G' over a book's tokens, then refines each row's article
// via the selector once an English gloss (GLQuote) has been attached by the
// add-GL-quote companion service. Rows the selector cannot confirm are
// routed to the no-match set (§7).
func (d *StrongsFirstDriver) Process(ctx context.Context, tokens []usfm.Token) (rows []Row, noMatch []Row, err error) {
	order, byVerse := usfm.TokensByVerse(tokens)

	var initial []Row
	for _, cv := range order {
		verseTokens := byVerse[cv]
		occurrences := make(map[string]int)
		i := 0
		position := 0
		for i < len(verseTokens) {
			ids := firstStrongsSequence(verseTokens[i:])
			if cand, ok := d.Pivot.MatchSequence(ids); ok {
				surface := joinSurfaces(verseTokens[i : i+cand.Length])
				occurrences[surface]++
				initial = append(initial, d.newRow(cv, surface, occurrences[surface], position, cand.Article, verseTokens[i].Strongs))
				position++
				i += cand.Length
				continue
			}

			for _, id := range verseTokens[i].Strongs {
				candidates := d.Pivot.Lookup(id)
				for _, article := range candidates {
					occurrences[verseTokens[i].Surface]++
					initial = append(initial, d.newRow(cv, verseTokens[i].Surface, occurrences[verseTokens[i].Surface], position, article, verseTokens[i].Strongs))
					position++
				}
			}
			i++
		}
	}

	sortRows(initial)

	withQuote, err := applyAddGLQuote(ctx, d.Companion, initial)
	if err != nil {
		withQuote = fallbackGLQuote(initial)
	}

	for i := range withQuote {
		withQuote[i].OrigWords = withQuote[i].GLQuote
		withQuote[i].Occurrence = withQuote[i].GLOccurrence
	}

	converted, err := applyGLToOLConverter(ctx, d.Companion, withQuote)
	if err != nil {
		converted = withQuote
	}

	for _, row := range converted {
		refined, ok := d.refine(row)
		if ok {
			rows = append(rows, refined)
		} else {
			noMatch = append(noMatch, refined)
		}
	}

	return rows, noMatch, nil
}

func (d *StrongsFirstDriver) newRow(cv usfm.ChapterVerse, surface string, occurrence, position int, article vocab.ArticlePath, strongs []vocab.StrongsID) Row {
	id, err := d.ids.Next()
	if err != nil {
		id = ""
	}
	row := Row{
		Reference:  formatReference(cv),
		ID:         id,
		Tags:       Tag(article),
		OrigWords:  surface,
		Occurrence: occurrence,
		TWLink:     Link(article),
		chapter:    cv.Chapter,
		verse:      cv.Verse,
		position:   position,
	}
	if len(strongs) > 0 {
		row.strongsID = strongs[0]
	}
	return row
}

// refine applies §4.F to a row using the GLQuote captured before the
// GL-OL round trip as the English phrase, since OrigWords has since been
// overwritten with the converted original-language quotation, and the
// strongsID recorded by newRow at Step 2 rather than re-deriving one from
// the rendered TWLink.
func (d *StrongsFirstDriver) refine(row Row) (Row, bool) {
	if d.Selector == nil || row.GLQuote == "" || row.strongsID == "" {
		return row, true
	}

	result, ok := d.Selector.Select(row.GLQuote, row.strongsID)
	if !ok {
		row.Disambiguation = FormatDisambiguation(result.Disambiguation)
		return row, false
	}

	row.TWLink = Link(result.Article)
	row.Tags = Tag(result.Article)
	if result.IsVariant {
		row.VariantOf = result.MatchedTerm
	}
	row.Disambiguation = FormatDisambiguation(result.Disambiguation)
	return row, true
}

func firstStrongsSequence(tokens []usfm.Token) []vocab.StrongsID {
	ids := make([]vocab.StrongsID, 0, len(tokens))
	for _, t := range tokens {
		if len(t.Strongs) == 0 {
			break
		}
		ids = append(ids, t.Strongs[0])
	}
	return ids
}

func joinSurfaces(tokens []usfm.Token) string {
	out := ""
	for i, t := range tokens {
		if i > 0 {
			out += " "
		}
		out += t.Surface
	}
	return out
}
