package vocab

import "testing"

func TestDecodeStrongsListDropsMalformedIDs(t *testing.T) {
	data := []byte(`{"kt/god":{"terms":["God"],"strongs":[["H0430","bogus"],[]]}}`)
	sv, err := DecodeStrongsList(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entry, ok := sv.Articles["kt/god"]
	if !ok {
		t.Fatalf("expected kt/god to be decoded")
	}
	if len(entry.Strongs) != 1 || len(entry.Strongs[0]) != 1 || entry.Strongs[0][0] != "H0430" {
		t.Errorf("expected the malformed id dropped and the empty sequence skipped, got %+v", entry.Strongs)
	}
}

func TestMergePrefersMarkdownTermsOverStrongsListTerms(t *testing.T) {
	v := &Vocabulary{
		Entries: map[ArticlePath]*Entry{
			"kt/god": {Path: "kt/god", Terms: []string{"God", "god"}},
		},
		Paths: []ArticlePath{"kt/god"},
	}
	sv := &StrongsVocabulary{
		Articles: map[ArticlePath]*StrongsEntry{
			"kt/god": {Path: "kt/god", Terms: []string{"stale term"}, Strongs: [][]StrongsID{{"H0430"}}},
		},
	}

	merged := Merge(v, sv)
	entry := merged.Articles["kt/god"]
	if len(entry.Terms) != 2 || entry.Terms[0] != "God" {
		t.Errorf("expected markdown terms to win, got %+v", entry.Terms)
	}
	if len(entry.Strongs) != 1 {
		t.Errorf("expected strongs sequences to carry over, got %+v", entry.Strongs)
	}
}

func TestMergeRetainsMarkdownOnlyArticles(t *testing.T) {
	v := &Vocabulary{
		Entries: map[ArticlePath]*Entry{
			"other/unlisted": {Path: "other/unlisted", Terms: []string{"unlisted"}},
		},
		Paths: []ArticlePath{"other/unlisted"},
	}
	sv := &StrongsVocabulary{Articles: map[ArticlePath]*StrongsEntry{}}

	merged := Merge(v, sv)
	if _, ok := merged.Articles["other/unlisted"]; !ok {
		t.Errorf("expected the markdown-only article to be retained")
	}
}
