// Package cache persists fetched remote documents between runs so a rules URL
// is not downloaded on every generate.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/klauern/rulegen/internal/util"
)

// Entry is one cached document.
type Entry struct {
	Content  string    `json:"content"`
	CachedAt time.Time `json:"cached_at"`
}

// Cache is a JSON file of documents keyed by location.
type Cache struct {
	Version string           `json:"version"`
	Entries map[string]Entry `json:"entries"`
	path    string
}

const (
	cacheVersion = "1.0"
	// DefaultTTL is how long a document stays fresh.
	DefaultTTL = 1 * time.Hour
)

// New creates or loads the cache file name.json in cacheDir. An empty
// cacheDir means util.CacheDir().
func New(name string, cacheDir string) (*Cache, error) {
	if cacheDir == "" {
		cacheDir = util.CacheDir()
	}
	if err := os.MkdirAll(cacheDir, 0o750); err != nil {
		return nil, err
	}

	cachePath := filepath.Join(cacheDir, name+".json")
	cache := &Cache{
		Version: cacheVersion,
		Entries: make(map[string]Entry),
	}

	// #nosec G304 - cachePath is built from the cache directory
	if data, err := os.ReadFile(cachePath); err == nil {
		if err := json.Unmarshal(data, cache); err != nil {
			// Corrupted cache, start fresh
			cache.Entries = make(map[string]Entry)
		}
		if cache.Version != cacheVersion {
			cache.Entries = make(map[string]Entry)
			cache.Version = cacheVersion
		}
		if cache.Entries == nil {
			cache.Entries = make(map[string]Entry)
		}
	}

	cache.path = cachePath
	return cache, nil
}

// Path returns the cache file location.
func (c *Cache) Path() string {
	return c.path
}

// Get returns the document stored under key when it is younger than ttl.
// Expired entries are dropped. A ttl of zero or less never expires.
func (c *Cache) Get(key string, ttl time.Duration) (string, bool) {
	entry, exists := c.Entries[key]
	if !exists {
		return "", false
	}
	if ttl > 0 && time.Since(entry.CachedAt) > ttl {
		delete(c.Entries, key)
		return "", false
	}
	return entry.Content, true
}

// Set stores content under key.
func (c *Cache) Set(key, content string) {
	c.Entries[key] = Entry{
		Content:  content,
		CachedAt: time.Now(),
	}
}

// Save writes the cache to disk.
func (c *Cache) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o600)
}

// Clear removes every entry and the cache file.
func (c *Cache) Clear() error {
	c.Entries = make(map[string]Entry)
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Size returns the number of entries.
func (c *Cache) Size() int {
	return len(c.Entries)
}

// IsStale reports whether any entry is older than ttl.
func (c *Cache) IsStale(ttl time.Duration) bool {
	for _, entry := range c.Entries {
		if time.Since(entry.CachedAt) > ttl {
			return true
		}
	}
	return false
}

// Prune removes entries older than ttl and returns how many went.
func (c *Cache) Prune(ttl time.Duration) int {
	pruned := 0
	for key, entry := range c.Entries {
		if time.Since(entry.CachedAt) > ttl {
			delete(c.Entries, key)
			pruned++
		}
	}
	return pruned
}
