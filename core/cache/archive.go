package cache

import (
	"encoding/hex"
	"sync"

	"github.com/zeebo/blake3"
)

// ContentKey is a blake3 content hash used as a cache key for fetched
// vocabulary archives and USFM bytes (§6, grounded on the same
// content-addressing scheme the archive store uses elsewhere in this
// codebase). Keying by content hash, not URL, means a re-fetch of
// unchanged content is a guaranteed cache hit.
type ContentKey string

// HashContent computes the ContentKey for a byte slice.
func HashContent(data []byte) ContentKey {
	sum := blake3.Sum256(data)
	return ContentKey(hex.EncodeToString(sum[:]))
}

// ArchiveCache caches decoded vocabulary archive bytes and fetched USFM
// book bytes, keyed by content hash (§6 External Interfaces; §9: "the
// external archive cache is process-local; last write wins,
// version-key guarded").
type ArchiveCache struct {
	blobs Cache[ContentKey, []byte]

	mu    sync.RWMutex
	names map[string]ContentKey
}

// NewArchiveCache creates an in-memory archive cache with the given entry
// budget (0 = unlimited).
func NewArchiveCache(maxEntries int) *ArchiveCache {
	return &ArchiveCache{
		blobs: NewLRUCache[ContentKey, []byte](Config{MaxSize: maxEntries}),
		names: make(map[string]ContentKey),
	}
}

// GetNamed retrieves bytes previously stored under a caller-chosen name
// (e.g. "archive" or "usfm:GEN"), resolving the name to its content key
// first (§9: the driver wants a stable handle, not a content hash, at the
// call site).
func (c *ArchiveCache) GetNamed(name string) ([]byte, bool) {
	c.mu.RLock()
	key, ok := c.names[name]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return c.Get(key)
}

// PutNamed stores bytes under their content hash and records name as an
// alias for that hash, last-write-wins (§9).
func (c *ArchiveCache) PutNamed(name string, data []byte) ContentKey {
	key := c.Put(data)
	c.mu.Lock()
	c.names[name] = key
	c.mu.Unlock()
	return key
}

// Get retrieves cached bytes for a content key.
func (c *ArchiveCache) Get(key ContentKey) ([]byte, bool) {
	return c.blobs.Get(key)
}

// Put stores bytes under their content hash and returns the key, so the
// caller can pass "last write wins, version-key guarded" writes through a
// stable handle.
func (c *ArchiveCache) Put(data []byte) ContentKey {
	key := HashContent(data)
	c.blobs.Put(key, data)
	return key
}

// Clear empties the cache (§9 get/put/clear semantics).
func (c *ArchiveCache) Clear() {
	c.blobs.Clear()
}

// Stats returns cache statistics.
func (c *ArchiveCache) Stats() Stats {
	return c.blobs.Stats()
}
