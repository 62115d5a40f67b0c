package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when a cached entry exists but
// has exceeded its time-to-live. The data is still on disk but stale;
// fetch fresh data and refresh the entry with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache stores arbitrary JSON-marshalable values as files. Each entry is
// a JSON file whose name is the SHA-256 hash of the cache key, so any
// string is a safe key. Entry freshness is judged by file modification
// time against the TTL; a TTL of 0 means entries never expire.
//
// Cache operations are not goroutine-safe; callers sharing an instance
// across goroutines must synchronize. Separate instances (even across
// processes) can share a directory.
type Cache struct {
	dir string
	ttl time.Duration
}

// NewCache creates a Cache that stores entries in dir with the given
// TTL. An empty dir selects the default directory ~/.cache/lucidkit/.
// The directory is created with mode 0755 if needed; directory creation
// failure is the only error path.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "lucidkit")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live for cache entries. Zero means no expiry.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves a cached value by key and unmarshals it into v.
//
//   - (true, nil): hit; v holds the fresh value.
//   - (false, nil): miss; no entry exists.
//   - (false, ErrExpired): entry exists but exceeded its TTL.
//   - (false, other error): I/O or unmarshal failure.
//
// Get never modifies the cache; reads do not refresh TTLs.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set stores a value under key, overwriting any existing entry and
// resetting its TTL. The value must be JSON-marshalable.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(key), data, 0o644)
}

// Delete removes the entry for key. Removing a missing entry is a no-op.
func (c *Cache) Delete(key string) error {
	err := os.Remove(c.keyPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
