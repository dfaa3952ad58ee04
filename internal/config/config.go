// Package config loads the endpoint settings the driver needs to reach the
// vocabulary archive, the reference translation store, and the two
// companion services, following the teacher's env-file-then-flag pattern.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the external endpoints and cache location the driver wires
// into internal/client and core/cache (§6).
type Config struct {
	ArchiveURL      string // vocabulary archive (bible/** + tw_strongs_list)
	TranslationURL  string // reference-translation content-addressed endpoint
	AddGLQuoteURL   string // "add-GL-quote" companion service
	GLToOLURL       string // "GL->OL converter" companion service
	CacheDBPath     string // SQLite-backed archive cache, empty disables persistence
	CacheMaxEntries int    // in-memory LRU cap when CacheDBPath is empty
}

const (
	defaultArchiveURL      = "https://git.door43.org/unfoldingWord/en_tw/archive/master.tar.gz"
	defaultTranslationURL  = "https://content.bibleineverylanguage.org/v1/usfm"
	defaultAddGLQuoteURL   = "https://tools.translation.tools/v1/add-gl-quote"
	defaultGLToOLURL       = "https://tools.translation.tools/v1/gl-to-ol"
	defaultCacheMaxEntries = 256
)

// Load reads a .env file if present (missing is not an error, matching the
// teacher's `_ = godotenv.Load()`), then layers process environment
// variables over the defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ArchiveURL:      envOrDefault("TWL_ARCHIVE_URL", defaultArchiveURL),
		TranslationURL:  envOrDefault("TWL_TRANSLATION_URL", defaultTranslationURL),
		AddGLQuoteURL:   envOrDefault("TWL_ADD_GL_QUOTE_URL", defaultAddGLQuoteURL),
		GLToOLURL:       envOrDefault("TWL_GL_TO_OL_URL", defaultGLToOLURL),
		CacheDBPath:     os.Getenv("TWL_CACHE_DB_PATH"),
		CacheMaxEntries: envOrDefaultInt("TWL_CACHE_MAX_ENTRIES", defaultCacheMaxEntries),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	return n
}
