package cache

import (
	"database/sql"
	"fmt"

	"github.com/unfoldingWord/twl-pipeline/core/sqlite"
	"github.com/unfoldingWord/twl-pipeline/core/twerrors"
)

// SQLiteStore is a disk-backed, cross-invocation ArchiveCache implementation
// (§9: the external archive cache is an injected storage interface; this is
// the persistent option, the in-memory ArchiveCache the ephemeral one).
// Selecting the cgo or pure-Go driver is a build-tag concern (driver_cgo.go
// / driver_purego.go); callers never see the difference.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if necessary) a blob store at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, twerrors.NewIO("open cache database", path, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS blobs (
		content_key TEXT PRIMARY KEY,
		data        BLOB NOT NULL
	);
	CREATE TABLE IF NOT EXISTS blob_names (
		name        TEXT PRIMARY KEY,
		content_key TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, twerrors.NewIO("create cache schema", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

// GetNamed retrieves bytes previously stored under a caller-chosen name,
// resolving it to a content key first (§9).
func (s *SQLiteStore) GetNamed(name string) ([]byte, bool) {
	var key string
	if err := s.db.QueryRow(`SELECT content_key FROM blob_names WHERE name = ?`, name).Scan(&key); err != nil {
		return nil, false
	}
	return s.Get(ContentKey(key))
}

// PutNamed stores bytes under their content hash and records name as an
// alias for that hash, last-write-wins (§9).
func (s *SQLiteStore) PutNamed(name string, data []byte) (ContentKey, error) {
	key, err := s.Put(data)
	if err != nil {
		return "", err
	}
	_, err = s.db.Exec(
		`INSERT INTO blob_names (name, content_key) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET content_key = excluded.content_key`,
		name, string(key),
	)
	if err != nil {
		return "", twerrors.NewIO("write cache blob name", name, err)
	}
	return key, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Get retrieves bytes by content key.
func (s *SQLiteStore) Get(key ContentKey) ([]byte, bool) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM blobs WHERE content_key = ?`, string(key)).Scan(&data)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores bytes under their content hash, last-write-wins (§9).
func (s *SQLiteStore) Put(data []byte) (ContentKey, error) {
	key := HashContent(data)
	_, err := s.db.Exec(
		`INSERT INTO blobs (content_key, data) VALUES (?, ?)
		 ON CONFLICT(content_key) DO UPDATE SET data = excluded.data`,
		string(key), data,
	)
	if err != nil {
		return "", twerrors.NewIO("write cache blob", string(key), err)
	}
	return key, nil
}

// Clear removes all stored blobs (§9 get/put/clear semantics).
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM blobs`); err != nil {
		return twerrors.NewIO("clear cache", "", err)
	}
	return nil
}

// Len reports the number of stored blobs.
func (s *SQLiteStore) Len() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM blobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cache blobs: %w", err)
	}
	return n, nil
}
