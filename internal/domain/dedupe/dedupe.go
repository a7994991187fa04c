// Package dedupe tracks in-flight rating jobs so a player is only queued for
// re-rating once at a time.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records in-flight job keys.
type Deduper interface {
	// SeenAndRecord atomically checks whether key is in flight and records
	// it if not. Returns true when key was already recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord drops a key once its job finished or failed to enqueue,
	// allowing the player to be re-rated again.
	Unrecord(ctx context.Context, key string)

	// Size returns the number of in-flight keys.
	Size() int64
}

type inMemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewInMemoryDeduper creates an unbounded in-memory deduper. The in-flight
// set can never exceed the number of tracked players, so no eviction is
// needed.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		seen: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, key)
}

func (d *inMemoryDeduper) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
