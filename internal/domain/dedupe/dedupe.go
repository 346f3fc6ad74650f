// Package dedupe tracks idempotency keys for create requests.
package dedupe

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultMaxSize = 1024

// Deduper maps an idempotency key to the id of the record it created.
type Deduper interface {
	// Lookup returns the id recorded for key, if any.
	Lookup(ctx context.Context, key string) (string, bool)

	// Record associates key with id unless key is already recorded.
	// Returns the previously recorded id and true if it was, or id and false
	// if the association is new. Check and insert happen atomically.
	Record(ctx context.Context, key, id string) (string, bool)

	// Unrecord forgets key so a later request with it is treated as new.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// inMemoryDeduper implements Deduper on a bounded LRU. The least recently
// used key is evicted once maxSize is reached.
type inMemoryDeduper struct {
	cache   *lru.Cache[string, string]
	maxSize int
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) (Deduper, error) {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}
	for _, opt := range opts {
		opt(d)
	}

	cache, err := lru.New[string, string](d.maxSize)
	if err != nil {
		return nil, fmt.Errorf("dedupe: %w", err)
	}
	d.cache = cache
	return d, nil
}

func (d *inMemoryDeduper) Lookup(_ context.Context, key string) (string, bool) {
	return d.cache.Get(key)
}

func (d *inMemoryDeduper) Record(_ context.Context, key, id string) (string, bool) {
	prev, ok, _ := d.cache.PeekOrAdd(key, id)
	if ok {
		return prev, true
	}
	return id, false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, key string) {
	d.cache.Remove(key)
}

func (d *inMemoryDeduper) Size() int64 {
	return int64(d.cache.Len())
}
