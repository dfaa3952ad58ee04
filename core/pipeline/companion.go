package pipeline

import (
	"context"
)

// CompanionClient is the pair of external services the drivers call
// (§6): "add-GL-quote" appends GLQuote/GLOccurrence to a TSV whose
// OrigWords/Occurrence carry English; "GL→OL converter" replaces
// OrigWords/Occurrence with the original-language quotation and count.
// Both calls happen only at the I/O boundary the driver controls (§5);
// scanning and selection are pure CPU and never await these.
type CompanionClient interface {
	AddGLQuote(ctx context.Context, tsv string) (string, error)
	ConvertGLToOL(ctx context.Context, tsv string) (string, error)
}

// applyAddGLQuote calls AddGLQuote and recovers from failure by copying
// OrigWords/Occurrence into GLQuote/GLOccurrence (§7).
func applyAddGLQuote(ctx context.Context, client CompanionClient, rows []Row) ([]Row, error) {
	if client == nil || len(rows) == 0 {
		return fallbackGLQuote(rows), nil
	}

	header := Header[:6] // Reference, ID, Tags, OrigWords, Occurrence, TWLink
	tsvRows := make([][]string, len(rows))
	for i, r := range rows {
		tsvRows[i] = r.Fields()[:6]
	}
	out, err := client.AddGLQuote(ctx, EncodeTSV(header, tsvRows))
	if err != nil {
		return fallbackGLQuote(rows), err
	}

	outHeader, outRows := DecodeTSV(out)
	quoteCol := column(outHeader, "GLQuote")
	occCol := column(outHeader, "GLOccurrence")
	if quoteCol < 0 || occCol < 0 || len(outRows) != len(rows) {
		return fallbackGLQuote(rows), nil
	}

	result := make([]Row, len(rows))
	for i, r := range rows {
		r.GLQuote = outRows[i][quoteCol]
		r.GLOccurrence = atoiOr(outRows[i][occCol], r.Occurrence)
		result[i] = r
	}
	return result, nil
}

func fallbackGLQuote(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.GLQuote = r.OrigWords
		r.GLOccurrence = r.Occurrence
		out[i] = r
	}
	return out
}

// applyGLToOLConverter calls ConvertGLToOL and recovers from failure by
// leaving OrigWords/Occurrence as English (§7).
func applyGLToOLConverter(ctx context.Context, client CompanionClient, rows []Row) ([]Row, error) {
	if client == nil || len(rows) == 0 {
		return rows, nil
	}

	header := Header[:6]
	tsvRows := make([][]string, len(rows))
	for i, r := range rows {
		tsvRows[i] = r.Fields()[:6]
	}
	out, err := client.ConvertGLToOL(ctx, EncodeTSV(header, tsvRows))
	if err != nil {
		return rows, err
	}

	outHeader, outRows := DecodeTSV(out)
	wordsCol := column(outHeader, "OrigWords")
	occCol := column(outHeader, "Occurrence")
	if wordsCol < 0 || occCol < 0 || len(outRows) != len(rows) {
		return rows, nil
	}

	result := make([]Row, len(rows))
	for i, r := range rows {
		r.OrigWords = outRows[i][wordsCol]
		r.Occurrence = atoiOr(outRows[i][occCol], r.Occurrence)
		result[i] = r
	}
	return result, nil
}
