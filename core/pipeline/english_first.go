package pipeline

import (
	"context"
	"sort"
	"unicode"

	"github.com/unfoldingWord/twl-pipeline/core/selector"
	"github.com/unfoldingWord/twl-pipeline/core/trie"
	"github.com/unfoldingWord/twl-pipeline/core/usfm"
	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

// EnglishFirstDriver implements §4.G: scanning the English gloss text via
// the prefix trie, then refining each hit's article choice with the
// selector when the underlying token carries a Strong's id.
type EnglishFirstDriver struct {
	Trie      *trie.Trie
	Selector  *selector.Selector
	Companion CompanionClient
	ids       *IDGenerator
}

// NewEnglishFirstDriver wires the trie and selector built from a loaded
// vocabulary/pivot into a driver instance.
func NewEnglishFirstDriver(t *trie.Trie, sel *selector.Selector, companion CompanionClient) *EnglishFirstDriver {
	return &EnglishFirstDriver{Trie: t, Selector: sel, Companion: companion, ids: NewIDGenerator()}
}

// wordSpan is one token's rune-offset range within a reconstructed verse
// text (tokens joined by single spaces).
type wordSpan struct {
	token usfm.Token
	start int
	end   int
}

// Process runs §4.G over a book's tokens and returns the main and
// no-match row sets.
func (d *EnglishFirstDriver) Process(ctx context.Context, tokens []usfm.Token) (rows []Row, noMatch []Row, err error) {
	order, byVerse := usfm.TokensByVerse(tokens)

	for _, cv := range order {
		verseTokens := byVerse[cv]
		text, spans := buildVerseText(verseTokens)
		matches := d.Trie.Scan(text)
		verseRows, verseNoMatch, genErr := d.scanVerse(cv, text, spans, matches)
		if genErr != nil {
			return nil, nil, genErr
		}
		rows = append(rows, verseRows...)
		noMatch = append(noMatch, verseNoMatch...)
	}

	sortRows(rows)
	sortRows(noMatch)

	rows, err = applyAddGLQuote(ctx, d.Companion, rows)
	if err != nil {
		rows = fallbackGLQuote(rows)
	}

	converted, convErr := applyGLToOLConverter(ctx, d.Companion, rows)
	if convErr != nil {
		converted = rows
	}
	rows = converted

	return rows, noMatch, nil
}

func buildVerseText(tokens []usfm.Token) (string, []wordSpan) {
	var runes []rune
	spans := make([]wordSpan, 0, len(tokens))
	for i, tok := range tokens {
		if i > 0 {
			runes = append(runes, ' ')
		}
		start := len(runes)
		runes = append(runes, []rune(tok.Surface)...)
		spans = append(spans, wordSpan{token: tok, start: start, end: len(runes)})
	}
	return string(runes), spans
}

// tokenAt returns the span containing the given rune offset, if any.
func tokenAt(spans []wordSpan, offset int) (wordSpan, bool) {
	for _, s := range spans {
		if offset >= s.start && offset < s.end {
			return s, true
		}
	}
	return wordSpan{}, false
}

func isSkippable(r rune) bool {
	return unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'' && r != '’' && r != '‘')
}

func (d *EnglishFirstDriver) scanVerse(cv usfm.ChapterVerse, text string, spans []wordSpan, matches []trie.Match) ([]Row, []Row, error) {
	byStart := make(map[int][]trie.Match)
	for _, m := range matches {
		byStart[m.Start] = append(byStart[m.Start], m)
	}

	runes := []rune(text)
	occurrences := make(map[string]int)
	var rows, noMatch []Row
	position := 0

	pos := 0
	for pos < len(runes) {
		if isSkippable(runes[pos]) {
			pos++
			continue
		}
		candidates := byStart[pos]
		if len(candidates) == 0 {
			pos++
			continue
		}
		best := mergeTopCandidates(candidates)

		occurrences[best.MatchedText]++
		row, matched := d.resolveRow(cv, best, spans, occurrences[best.MatchedText], position)
		position++
		if matched {
			rows = append(rows, row)
		} else {
			noMatch = append(noMatch, row)
		}

		advance := best.OriginalLength
		if advance < 1 {
			advance = 1
		}
		pos += advance
	}

	return rows, noMatch, nil
}

// mergeTopCandidates unions the Articles of every match tied for the best
// rank at a position (same extended span, same priority) into one Match.
// Distinct headwords that happen to share a lowercased trie key (e.g. "God"
// and "god" from two different articles) produce separate trie entries
// rather than one merged entry, so the driver, not the trie, is responsible
// for reuniting them before the god/falsegod rule or the selector sees them.
func mergeTopCandidates(candidates []trie.Match) trie.Match {
	top := candidates[0]
	merged := append([]string{}, top.Articles...)
	for _, c := range candidates[1:] {
		if c.ExtendedLength != top.ExtendedLength || c.Priority != top.Priority {
			break
		}
		merged = append(merged, c.Articles...)
	}
	top.Articles = merged
	return top
}

func (d *EnglishFirstDriver) resolveRow(cv usfm.ChapterVerse, m trie.Match, spans []wordSpan, occurrence, position int) (Row, bool) {
	id, err := d.ids.Next()
	if err != nil {
		id = ""
	}

	row := Row{
		Reference:  formatReference(cv),
		ID:         id,
		OrigWords:  m.MatchedText,
		Occurrence: occurrence,
		chapter:    cv.Chapter,
		verse:      cv.Verse,
		position:   position,
	}
	if m.Priority != 0 {
		row.VariantOf = m.Term
	}

	articles := dedupArticlePaths(m.Articles)

	if chosen, disambig, ok := selector.ApplyGodRule(m.MatchedText, articles); ok {
		row.TWLink = Link(chosen)
		row.Tags = Tag(chosen)
		row.Disambiguation = FormatDisambiguation(disambig)
		return row, true
	}

	if span, ok := tokenAt(spans, m.Start); ok && len(span.token.Strongs) > 0 && d.Selector != nil {
		if result, ok := d.Selector.Select(m.MatchedText, span.token.Strongs[0]); ok {
			row.TWLink = Link(result.Article)
			row.Tags = Tag(result.Article)
			if result.IsVariant {
				row.VariantOf = result.MatchedTerm
			}
			row.Disambiguation = FormatDisambiguation(result.Disambiguation)
			return row, true
		}
	}

	if len(articles) == 0 {
		return row, false
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i] < articles[j] })
	row.TWLink = Link(articles[0])
	row.Tags = Tag(articles[0])
	row.Disambiguation = FormatDisambiguation(articles)
	return row, true
}

func dedupArticlePaths(paths []string) []vocab.ArticlePath {
	seen := make(map[string]bool, len(paths))
	out := make([]vocab.ArticlePath, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, vocab.ArticlePath(p))
	}
	return out
}

func formatReference(cv usfm.ChapterVerse) string {
	return itoa(cv.Chapter) + ":" + itoa(cv.Verse)
}
