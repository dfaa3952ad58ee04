package usfm

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/unfoldingWord/twl-pipeline/core/vocab"
)

// attrFile is the Participle grammar for a \w token's attribute string,
// e.g. `strong="H1234,G5678" x-strong="H9"|lemma="..."`. Attributes are
// separated by whitespace or "|"; values are comma-separated lists of
// bare words.
type attrFile struct {
	Attrs []attrPair `( @@ )*`
}

type attrPair struct {
	Key    string `@Ident "="`
	Values string `@String`
}

var attrLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Sep", Pattern: `[|,\s]+`},
})

var attrParser = participle.MustBuild[attrFile](
	participle.Lexer(attrLexer),
	participle.Elide("Sep"),
)

// parseWordAttrs parses a \w token's attribute string and returns the
// Strong's ids carried by any strong=/x-strong=-prefixed attribute (§4.C).
// IDs that don't match the Strong's regex are dropped silently; malformed
// attribute strings yield no ids rather than an error, since a USFM
// producer occasionally emits attributes this grammar doesn't anticipate
// and losing an attribution is recoverable (§7: "no Strong's data for a
// token -- skipped silently").
func parseWordAttrs(raw string) []vocab.StrongsID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parsed, err := attrParser.ParseString("", raw)
	if err != nil {
		return parseWordAttrsFallback(raw)
	}

	var ids []vocab.StrongsID
	for _, attr := range parsed.Attrs {
		key := strings.ToLower(attr.Key)
		if key != "strong" && !strings.HasSuffix(key, "-strong") {
			continue
		}
		value := strings.Trim(attr.Values, `"`)
		for _, part := range splitStrongsList(value) {
			if id, ok := vocab.ParseStrongsID(part); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// parseWordAttrsFallback handles attribute strings the grammar rejects
// (missing quotes, stray punctuation) by scanning for a strong=/x-strong=
// key directly.
func parseWordAttrsFallback(raw string) []vocab.StrongsID {
	var ids []vocab.StrongsID
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '|' || r == ' ' || r == '\t'
	})
	for _, f := range fields {
		eq := strings.IndexByte(f, '=')
		if eq < 0 {
			continue
		}
		key := strings.ToLower(f[:eq])
		if key != "strong" && !strings.HasSuffix(key, "-strong") {
			continue
		}
		value := strings.Trim(f[eq+1:], `"`)
		for _, part := range splitStrongsList(value) {
			if id, ok := vocab.ParseStrongsID(part); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// splitStrongsList splits a comma/whitespace/"|"-separated id list.
func splitStrongsList(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	})
}
