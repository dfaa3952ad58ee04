package pipeline

import (
	"strconv"
	"strings"
)

// EncodeTSV renders header+rows as a tab-separated document with a
// trailing newline terminator (§6: "Tab-separated, \n line terminator,
// first line is the header, no quoting, no embedded tabs").
func EncodeTSV(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, "\t"))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// DecodeTSV parses a tab-separated document back into header+rows.
func DecodeTSV(doc string) (header []string, rows [][]string) {
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	if len(lines) == 0 {
		return nil, nil
	}
	header = strings.Split(lines[0], "\t")
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	return header, rows
}

// column returns the index of name within header, or -1.
func column(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
