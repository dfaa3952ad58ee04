package client

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/unfoldingWord/twl-pipeline/core/twerrors"
	"github.com/unfoldingWord/twl-pipeline/internal/config"
)

func TestFetchUSFMDecodesBase64Content(t *testing.T) {
	want := "\\c 1\n\\v 1\n\\w God|strong=\"H0430\"\\w*\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"` + base64.StdEncoding.EncodeToString([]byte(want)) + `"}`))
	}))
	defer srv.Close()

	c := New(config.Config{TranslationURL: srv.URL})
	got, err := c.FetchUSFM(context.Background(), "gen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != want {
		t.Errorf("expected decoded USFM %q, got %q", want, got)
	}
}

func TestFetchUSFMCachesAcrossCalls(t *testing.T) {
	want := "\\c 1\n\\v 1\n\\w God|strong=\"H0430\"\\w*\n"
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"content":"` + base64.StdEncoding.EncodeToString([]byte(want)) + `"}`))
	}))
	defer srv.Close()

	c := New(config.Config{TranslationURL: srv.URL})
	for i := 0; i < 2; i++ {
		got, err := c.FetchUSFM(context.Background(), "gen")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != want {
			t.Errorf("expected decoded USFM %q, got %q", want, got)
		}
	}
	if requests != 1 {
		t.Errorf("expected the second FetchUSFM to hit the cache instead of the server, got %d requests", requests)
	}
}

func TestFetchUSFMSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(config.Config{TranslationURL: srv.URL})
	if _, err := c.FetchUSFM(context.Background(), "gen"); err == nil {
		t.Fatalf("expected an error on a 404 response")
	}
}

func TestAddGLQuoteSendsTSVAndReturnsResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != "Reference\tOrigWords\n1:1\tGod\n" {
			t.Errorf("unexpected request body %q", body)
		}
		w.Write([]byte("Reference\tOrigWords\tGLQuote\n1:1\tGod\tGod\n"))
	}))
	defer srv.Close()

	c := New(config.Config{AddGLQuoteURL: srv.URL})
	out, err := c.AddGLQuote(context.Background(), "Reference\tOrigWords\n1:1\tGod\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Reference\tOrigWords\tGLQuote\n1:1\tGod\tGod\n" {
		t.Errorf("unexpected response %q", out)
	}
}

// TestAddGLQuoteWrapsFailureAsCompanionError grounds §7: companion failures
// are surfaced as a distinguishable error type so the driver can recover.
func TestAddGLQuoteWrapsFailureAsCompanionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(config.Config{AddGLQuoteURL: srv.URL})
	_, err := c.AddGLQuote(context.Background(), "Reference\n1:1\n")
	if err == nil {
		t.Fatalf("expected an error on a 500 response")
	}
	var cerr *twerrors.CompanionError
	if !errors.As(err, &cerr) {
		t.Errorf("expected a *twerrors.CompanionError, got %T", err)
	}
}

func buildTestTarGz(t *testing.T, files map[string]string) []byte {
	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)
	for name, content := range files {
		if err := tw.WriteHeader(&tar.Header{Name: name, Size: int64(len(content)), Mode: 0644}); err != nil {
			t.Fatalf("write header: %v", err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatalf("write content: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := gzw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func TestDecompressTarGzip(t *testing.T) {
	raw := buildTestTarGz(t, map[string]string{"bible/kt/god.md": "God"})

	files, err := decompressTar(raw, "test.tar.gz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0].Name != "bible/kt/god.md" || string(files[0].Data) != "God" {
		t.Errorf("unexpected files %+v", files)
	}
}

func TestFetchArchiveSeparatesStrongsListCompanion(t *testing.T) {
	raw := buildTestTarGz(t, map[string]string{
		"bible/kt/god.md":      "God, god",
		"tw_strongs_list.json": `{"kt/god":{"terms":["God"],"strongs":[["H0430"]]}}`,
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(raw)
	}))
	defer srv.Close()

	c := New(config.Config{ArchiveURL: srv.URL})
	v, sv, err := c.FetchArchive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.Entries["kt/god"]; !ok {
		t.Fatalf("expected kt/god in the markdown-derived vocabulary")
	}
	entry, ok := sv.Articles["kt/god"]
	if !ok {
		t.Fatalf("expected kt/god in the strongs companion")
	}
	if len(entry.Strongs) != 1 || len(entry.Strongs[0]) != 1 || entry.Strongs[0][0] != "H0430" {
		t.Errorf("unexpected strongs %+v", entry.Strongs)
	}
}
