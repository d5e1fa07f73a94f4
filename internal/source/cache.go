package source

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/klauern/rulegen/internal/logging"
)

// DefaultCacheSize is the number of remote documents kept by NewCached.
const DefaultCacheSize = 64

// Cached wraps a Reader and remembers remote documents so a URL shared by
// several generation jobs is fetched once. Local files are always re-read.
type Cached struct {
	next  Reader
	cache *lru.Cache[string, string]
}

// NewCached wraps next with a cache of size entries.
func NewCached(next Reader, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("creating source cache: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

// Read implements Reader.
func (c *Cached) Read(ctx context.Context, location string) (string, error) {
	if !IsURL(location) {
		return c.next.Read(ctx, location)
	}
	if text, ok := c.cache.Get(location); ok {
		logging.Debug("source cache hit", logging.Path(location))
		return text, nil
	}
	text, err := c.next.Read(ctx, location)
	if err != nil {
		return "", err
	}
	c.cache.Add(location, text)
	return text, nil
}

// Len returns the number of cached documents.
func (c *Cached) Len() int {
	return c.cache.Len()
}
