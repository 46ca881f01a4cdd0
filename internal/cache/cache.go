// Package cache provides a small in-memory TTL cache.
//
// Entries are evicted lazily: a read past the expiry timestamp treats the
// entry as absent and removes it. There is no background sweeper; memory is
// bounded by the working set of keys, which for this service is small
// (one entry per searched player or ranking query).
package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value  V
	expiry time.Time
}

// call tracks one in-flight fill so that concurrent misses for the same
// key share a single fetch instead of issuing duplicates.
type call[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

// Cache is a TTL cache safe for concurrent use. The clock is injectable so
// expiry behavior can be tested without sleeping.
type Cache[V any] struct {
	mu       sync.Mutex
	entries  map[string]entry[V]
	inflight map[string]*call[V]
	now      func() time.Time
}

// New returns an empty cache. A nil now defaults to time.Now.
func New[V any](now func() time.Time) *Cache[V] {
	if now == nil {
		now = time.Now
	}
	return &Cache[V]{
		entries:  make(map[string]entry[V]),
		inflight: make(map[string]*call[V]),
		now:      now,
	}
}

// Get returns the cached value for key. An expired entry is evicted and
// reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *Cache[V]) getLocked(key string) (V, bool) {
	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if !c.now().Before(e.expiry) {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for ttl, overwriting any previous entry.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiry: c.now().Add(ttl)}
}

// Evict removes key if present.
func (c *Cache[V]) Evict(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len reports the number of stored entries, including any not yet
// lazily evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetOrFill returns the cached value for key, or invokes fill to compute
// it, stores the result for ttl, and returns it. Concurrent callers that
// miss on the same key wait on a single shared fill rather than each
// fetching. Fill errors are not cached.
func (c *Cache[V]) GetOrFill(ctx context.Context, key string, ttl time.Duration, fill func(ctx context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if v, ok := c.getLocked(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		cl.wg.Wait()
		return cl.val, cl.err
	}
	cl := &call[V]{}
	cl.wg.Add(1)
	c.inflight[key] = cl
	c.mu.Unlock()

	cl.val, cl.err = fill(ctx)

	c.mu.Lock()
	delete(c.inflight, key)
	if cl.err == nil {
		c.entries[key] = entry[V]{value: cl.val, expiry: c.now().Add(ttl)}
	}
	c.mu.Unlock()
	cl.wg.Done()

	return cl.val, cl.err
}
