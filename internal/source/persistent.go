package source

import (
	"context"
	"time"

	"github.com/klauern/rulegen/internal/cache"
	"github.com/klauern/rulegen/internal/logging"
)

// Persistent wraps a Reader with an on-disk cache of remote documents that
// survives between runs. Local files are always re-read.
type Persistent struct {
	next  Reader
	store *cache.Cache
	ttl   time.Duration
}

// NewPersistent serves URLs from store while they are younger than ttl.
func NewPersistent(next Reader, store *cache.Cache, ttl time.Duration) *Persistent {
	return &Persistent{next: next, store: store, ttl: ttl}
}

// Read implements Reader. A failed save is logged and the document is still
// returned.
func (p *Persistent) Read(ctx context.Context, location string) (string, error) {
	if !IsURL(location) {
		return p.next.Read(ctx, location)
	}
	if text, ok := p.store.Get(location, p.ttl); ok {
		logging.Debug("disk cache hit", logging.Path(location))
		return text, nil
	}

	text, err := p.next.Read(ctx, location)
	if err != nil {
		return "", err
	}
	p.store.Set(location, text)
	if err := p.store.Save(); err != nil {
		logging.Warn("failed to save document cache", logging.Path(p.store.Path()), logging.Err(err))
	}
	return text, nil
}
