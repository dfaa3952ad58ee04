package usfm

import "testing"

const sampleUSFM = `\id GEN
\c 1
\v 1 \w In|x-strong="H9999"\w* \w the|x-strong="H9999"\w* \w beginning|strong="H7225"\w* \w God|strong="H0430"\w* \w created|strong="H1254a"\w*
\v 2 \w And|strong="H9999"\w* \w the|strong="H9999"\w* \w earth|strong="H0776"\w*
`

func TestTokenizeAssignsChapterVerse(t *testing.T) {
	tokens := Tokenize([]byte(sampleUSFM))
	if len(tokens) != 8 {
		t.Fatalf("expected 8 tokens, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].Chapter != 1 || tokens[0].Verse != 1 || tokens[0].Surface != "In" {
		t.Errorf("unexpected first token: %+v", tokens[0])
	}
	god := tokens[3]
	if god.Surface != "God" || len(god.Strongs) != 1 || god.Strongs[0] != "H0430" {
		t.Errorf("unexpected God token: %+v", god)
	}
}

func TestTokenizeDropsTokensOutsideVerseContext(t *testing.T) {
	data := []byte("\\id GEN\n\\h Genesis\n\\w orphan|strong=\"H1\"\\w*\n\\c 1\n\\v 1 \\w kept|strong=\"H2\"\\w*\n")
	tokens := Tokenize(data)
	if len(tokens) != 1 || tokens[0].Surface != "kept" {
		t.Errorf("expected only the post-\\v token, got %+v", tokens)
	}
}

func TestTokensByVersePreservesOrder(t *testing.T) {
	tokens := Tokenize([]byte(sampleUSFM))
	order, byVerse := TokensByVerse(tokens)
	if len(order) != 2 {
		t.Fatalf("expected 2 verses, got %d", len(order))
	}
	if order[0] != (ChapterVerse{1, 1}) || order[1] != (ChapterVerse{1, 2}) {
		t.Errorf("unexpected verse order: %v", order)
	}
	if len(byVerse[ChapterVerse{1, 1}]) != 5 {
		t.Errorf("expected 5 tokens in verse 1:1, got %d", len(byVerse[ChapterVerse{1, 1}]))
	}
}

func TestCleanTextAndExtractVerses(t *testing.T) {
	clean := CleanText([]byte(sampleUSFM))
	verses := ExtractVerses(clean)
	if len(verses) != 2 {
		t.Fatalf("expected 2 verses, got %d: %+v", len(verses), verses)
	}
	if verses[0].Chapter != 1 || verses[0].Verse != 1 {
		t.Errorf("unexpected verse identity: %+v", verses[0])
	}
	if verses[0].Text != "In the beginning God created" {
		t.Errorf("unexpected verse text: %q", verses[0].Text)
	}
	if verses[1].Text != "And the earth" {
		t.Errorf("unexpected verse text: %q", verses[1].Text)
	}
}

func TestCleanTextStripsAlignmentMarkup(t *testing.T) {
	data := []byte("\\id GEN\n\\c 1\n\\v 1 \\zaln-s |x-strong=\"H1\"\\*\\w In|strong=\"H1\"\\w*\\zaln-e\\*\n")
	clean := CleanText(data)
	verses := ExtractVerses(clean)
	if len(verses) != 1 || verses[0].Text != "In" {
		t.Errorf("expected stripped alignment markup, got verses=%+v clean=%q", verses, clean)
	}
}

func TestCleanTextDropsContentBeforeFirstChapter(t *testing.T) {
	data := []byte("\\id GEN\n\\h Genesis\n\\mt Genesis\n\\c 1\n\\v 1 \\w In|strong=\"H1\"\\w*\n")
	clean := CleanText(data)
	if clean[:3] != "\\c " {
		t.Errorf("expected clean text to start at first chapter marker, got %q", clean[:20])
	}
}
