// Package validation provides input validation for the CLI surface: book
// codes and output path safety (§7: "Unknown book code — fatal, surfaced
// to caller").
package validation

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/unfoldingWord/twl-pipeline/core/twerrors"
)

// bookCodes is the canonical USFM three-letter book code table, in
// canonical order, for the 66-book Protestant corpus this pipeline targets.
var bookCodes = []string{
	"GEN", "EXO", "LEV", "NUM", "DEU", "JOS", "JDG", "RUT", "1SA", "2SA",
	"1KI", "2KI", "1CH", "2CH", "EZR", "NEH", "EST", "JOB", "PSA", "PRO",
	"ECC", "SNG", "ISA", "JER", "LAM", "EZK", "DAN", "HOS", "JOL", "AMO",
	"OBA", "JON", "MIC", "NAM", "HAB", "ZEP", "HAG", "ZEC", "MAL",
	"MAT", "MRK", "LUK", "JHN", "ACT", "ROM", "1CO", "2CO", "GAL", "EPH",
	"PHP", "COL", "1TH", "2TH", "1TI", "2TI", "TIT", "PHM", "HEB", "JAS",
	"1PE", "2PE", "1JN", "2JN", "3JN", "JUD", "REV",
}

var bookCodeIndex map[string]int

func init() {
	bookCodeIndex = make(map[string]int, len(bookCodes))
	for i, code := range bookCodes {
		bookCodeIndex[code] = i
	}
}

// ValidateBookCode normalizes and validates a book code against the
// canonical table. Returns a *twerrors.ValidationError on failure; for an
// unrecognized code it wraps twerrors.ErrUnknownBook (§7: fatal, surfaced
// to caller).
func ValidateBookCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return "", twerrors.NewValidation("book", code, "book code is required")
	}
	if _, ok := bookCodeIndex[normalized]; !ok {
		return "", &twerrors.ValidationError{Field: "book", Value: code, Message: "unknown book code", Err: twerrors.ErrUnknownBook}
	}
	return normalized, nil
}

// AllBookCodes returns the canonical book codes in canonical order, for
// --all batch processing.
func AllBookCodes() []string {
	out := make([]string, len(bookCodes))
	copy(out, bookCodes)
	return out
}

// BookOrder returns the canonical ordering index of a normalized book
// code, or -1 if unknown.
func BookOrder(code string) int {
	if i, ok := bookCodeIndex[code]; ok {
		return i
	}
	return -1
}

// ValidateOutputPath rejects output paths whose cleaned form still contains
// ".." (a relative path climbing above its start) or that contain a null
// byte or control character. Absolute paths are accepted as given.
func ValidateOutputPath(path string) error {
	if path == "" {
		return twerrors.NewValidation("output path", path, "path cannot be empty")
	}
	clean := filepath.Clean(path)
	if strings.Contains(clean, "..") {
		return twerrors.NewValidation("output path", path, "path traversal not allowed")
	}
	if strings.ContainsRune(path, 0) {
		return twerrors.NewValidation("output path", path, "null byte not allowed")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return twerrors.NewValidation("output path", path, "control character not allowed")
		}
	}
	return nil
}

// OutputFilename builds the deterministic TSV filename for a book
// ("tWL_<BOOK>.tsv"); NoMatchFilename builds its no-match companion.
func OutputFilename(book string) string {
	return fmt.Sprintf("tWL_%s.tsv", book)
}

// NoMatchFilename builds the no-match TSV filename for a book (§6: "A
// separate no-match TSV accompanies the main output").
func NoMatchFilename(book string) string {
	return fmt.Sprintf("tWL_%s_no-match.tsv", book)
}
