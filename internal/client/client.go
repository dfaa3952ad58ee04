// Package client implements the driver-side collaborators the core treats
// as external (§6): fetching the vocabulary archive and a book's USFM over
// HTTP, and calling the two companion services. None of this package is
// imported by core/*; the core only ever sees already-materialized bytes
// and TSV strings.
package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/unfoldingWord/twl-pipeline/core/cache"
	"github.com/unfoldingWord/twl-pipeline/core/twerrors"
	"github.com/unfoldingWord/twl-pipeline/core/vocab"
	"github.com/unfoldingWord/twl-pipeline/internal/config"
)

// namedCache is the subset of core/cache's stores the client needs: a
// stable-name handle onto content-addressed bytes (§9), satisfied by both
// *cache.ArchiveCache (in-memory) and *cache.SQLiteStore (disk-backed).
type namedCache interface {
	GetNamed(name string) ([]byte, bool)
}

// Injectable functions for testing, following the teacher's capsule.go
// convention.
var (
	httpClientDo = func(c *http.Client, req *http.Request) (*http.Response, error) {
		return c.Do(req)
	}
)

// HTTPError is a non-2xx response from one of the external endpoints.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.URL, e.Status)
}

// Client is the HTTP collaborator wired into the driver (§5, §6).
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	userAgent  string

	cache    namedCache
	putNamed func(name string, data []byte)
}

// New builds a Client from the loaded configuration. When cfg.CacheDBPath
// is set, fetched archive/USFM bytes are cached on disk across invocations
// via a core/cache.SQLiteStore; otherwise an in-memory
// core/cache.ArchiveCache caches them for the lifetime of this process only
// (§5, §9: "the external archive cache is an injected storage interface").
func New(cfg config.Config) *Client {
	c := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: "twl-pipeline/1.0",
	}

	if cfg.CacheDBPath != "" {
		if store, err := cache.OpenSQLiteStore(cfg.CacheDBPath); err == nil {
			c.cache = store
			c.putNamed = func(name string, data []byte) { store.PutNamed(name, data) }
		}
	}
	if c.cache == nil {
		mem := cache.NewArchiveCache(cfg.CacheMaxEntries)
		c.cache = mem
		c.putNamed = func(name string, data []byte) { mem.PutNamed(name, data) }
	}

	return c
}

// cachedGet fetches bytes for name via the cache first, falling back to
// fetch on a miss and populating the cache with the result.
func (c *Client) cachedGet(ctx context.Context, name, url string) ([]byte, error) {
	if data, ok := c.cache.GetNamed(name); ok {
		return data, nil
	}
	data, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	c.putNamed(name, data)
	return data, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, twerrors.NewIO("build request", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := httpClientDo(c.httpClient, req)
	if err != nil {
		return nil, twerrors.NewIO("fetch", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, twerrors.NewIO("read response", url, err)
	}
	return data, nil
}

// FetchArchive downloads and decompresses the vocabulary archive, returning
// the decoded term table and, when the archive carries a tw_strongs_list
// companion file, the richer Strong's-sequence form (§4.A, §6).
func (c *Client) FetchArchive(ctx context.Context) (*vocab.Vocabulary, *vocab.StrongsVocabulary, error) {
	raw, err := c.cachedGet(ctx, "archive", c.cfg.ArchiveURL)
	if err != nil {
		return nil, nil, err
	}

	files, err := decompressTar(raw, c.cfg.ArchiveURL)
	if err != nil {
		return nil, nil, twerrors.NewParse("archive", c.cfg.ArchiveURL, err.Error())
	}

	var archiveFiles []vocab.ArchiveFile
	var strongsListData []byte
	for _, f := range files {
		if strings.HasSuffix(f.Name, "tw_strongs_list.json") {
			strongsListData = f.Data
			continue
		}
		archiveFiles = append(archiveFiles, f)
	}

	v, err := vocab.Load(archiveFiles)
	if err != nil {
		return nil, nil, err
	}

	var sv *vocab.StrongsVocabulary
	if strongsListData != nil {
		sv, err = vocab.DecodeStrongsList(strongsListData)
		if err != nil {
			return nil, nil, twerrors.NewParse("tw_strongs_list", c.cfg.ArchiveURL, err.Error())
		}
	}

	return v, sv, nil
}

// FetchUSFM retrieves one book's USFM source from the content-addressed
// reference-translation endpoint (§6): `{ content: <base64> }`.
func (c *Client) FetchUSFM(ctx context.Context, book string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", strings.TrimSuffix(c.cfg.TranslationURL, "/"), strings.ToLower(book))
	raw, err := c.cachedGet(ctx, "usfm:"+strings.ToUpper(book), url)
	if err != nil {
		return nil, err
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, twerrors.NewParse("usfm-envelope", url, err.Error())
	}

	decoded, err := base64.StdEncoding.DecodeString(body.Content)
	if err != nil {
		return nil, twerrors.NewParse("usfm-content", url, err.Error())
	}
	return decoded, nil
}

// AddGLQuote implements pipeline.CompanionClient against the "add-GL-quote"
// service (§6).
func (c *Client) AddGLQuote(ctx context.Context, tsv string) (string, error) {
	return c.postTSV(ctx, "add-gl-quote", c.cfg.AddGLQuoteURL, tsv)
}

// ConvertGLToOL implements pipeline.CompanionClient against the "GL->OL
// converter" service (§6).
func (c *Client) ConvertGLToOL(ctx context.Context, tsv string) (string, error) {
	return c.postTSV(ctx, "gl-ol-converter", c.cfg.GLToOLURL, tsv)
}

func (c *Client) postTSV(ctx context.Context, service, url, tsv string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(tsv))
	if err != nil {
		return "", twerrors.NewCompanion(service, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Content-Type", "text/tab-separated-values")

	resp, err := httpClientDo(c.httpClient, req)
	if err != nil {
		return "", twerrors.NewCompanion(service, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", twerrors.NewCompanion(service, &HTTPError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", twerrors.NewCompanion(service, err)
	}
	return string(data), nil
}
