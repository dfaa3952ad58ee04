// Package vocab loads the Translation Words vocabulary archive and builds
// the indexes the matching pipeline consumes: the article-keyed term table
// (this file) and the Strong's-keyed pivot (pivot.go).
package vocab

import (
	"bufio"
	"bytes"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/unfoldingWord/twl-pipeline/core/twerrors"
)

// Category is one of the three top-level vocabulary categories.
type Category string

const (
	CategoryKT    Category = "kt"
	CategoryNames Category = "names"
	CategoryOther Category = "other"
)

// ArticlePath is a slash-separated "category/slug" primary key (§3).
type ArticlePath string

// Category returns the category segment of the path.
func (a ArticlePath) Category() Category {
	if i := strings.IndexByte(string(a), '/'); i >= 0 {
		return Category(a[:i])
	}
	return ""
}

// Slug returns the final path segment.
func (a ArticlePath) Slug() string {
	return path.Base(string(a))
}

// Entry is a vocabulary entry for one article: its terms. The Strong's
// sequences of the richer tw_strongs_list form live in StrongsEntry
// (pivot.go).
type Entry struct {
	Path  ArticlePath
	Terms []string // longest first, stable tie-break on original order (§3)
}

// Vocabulary is the article -> entry map produced by Load.
type Vocabulary struct {
	Entries map[ArticlePath]*Entry
	// Paths is Entries' keys sorted lexicographically, for deterministic
	// downstream iteration (§4.A).
	Paths []ArticlePath
}

var headwordLineRegex = regexp.MustCompile(`^#?\s*(.*)$`)
var parentheticalRegex = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// articlePathRegex extracts "bible/<category>/<slug>.md" into category/slug.
var articlePathRegex = regexp.MustCompile(`bible/(kt|names|other)/([a-z0-9][a-z0-9-]*)\.md$`)

// ArchiveFile is one file entry from the vocabulary archive, already
// decompressed by the caller (driver concern, §6).
type ArchiveFile struct {
	Name string // full path within the archive, e.g. "bible/kt/god.md"
	Data []byte
}

// Load parses a vocabulary archive's files into article -> entry. Only the
// first line of each bible/<category>/<slug>.md file matters (§4.A).
// Entries with empty headword lists are retained: they still participate in
// disambiguation (§4.F Step 6).
func Load(files []ArchiveFile) (*Vocabulary, error) {
	v := &Vocabulary{Entries: make(map[ArticlePath]*Entry)}
	for _, f := range files {
		m := articlePathRegex.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		articlePath := ArticlePath(m[1] + "/" + m[2])
		terms, err := parseHeadwordLine(f.Data)
		if err != nil {
			return nil, twerrors.NewParse("vocabulary", string(articlePath), err.Error())
		}
		v.Entries[articlePath] = &Entry{Path: articlePath, Terms: terms}
	}

	v.Paths = make([]ArticlePath, 0, len(v.Entries))
	for p := range v.Entries {
		v.Paths = append(v.Paths, p)
	}
	sort.Slice(v.Paths, func(i, j int) bool { return v.Paths[i] < v.Paths[j] })

	return v, nil
}

// parseHeadwordLine reads the first line of an article file and produces
// its de-duplicated, longest-first term list (§3).
func parseHeadwordLine(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		return nil, nil
	}
	line := scanner.Text()

	m := headwordLineRegex.FindStringSubmatch(line)
	body := line
	if m != nil {
		body = m[1]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	rawTerms := strings.Split(body, ",")
	seen := make(map[string]bool, len(rawTerms))
	terms := make([]string, 0, len(rawTerms))
	for _, raw := range rawTerms {
		term := strings.TrimSpace(raw)
		term = parentheticalRegex.ReplaceAllString(term, "")
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		key := strings.ToLower(term)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, term)
	}

	// Sort longest-first, stable tie-break on original order.
	type indexed struct {
		term string
		idx  int
	}
	ix := make([]indexed, len(terms))
	for i, t := range terms {
		ix[i] = indexed{t, i}
	}
	sort.SliceStable(ix, func(i, j int) bool {
		return len(ix[i].term) > len(ix[j].term)
	})
	out := make([]string, len(ix))
	for i, e := range ix {
		out[i] = e.term
	}
	return out, nil
}

// Get returns the entry for a path, or nil if absent.
func (v *Vocabulary) Get(p ArticlePath) *Entry {
	return v.Entries[p]
}

// String implements fmt.Stringer for debugging.
func (e *Entry) String() string {
	return fmt.Sprintf("%s{%s}", e.Path, strings.Join(e.Terms, ", "))
}
