// Package cache provides the time-bounded, request-deduplicating cache used
// by the tenant resolver and the permission resolver. Instances are owned by
// the service container that creates them; there are no package-level
// singletons, and keys are expected to carry the tenant scope so entries for
// different tenants can never collide.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
	ttl      time.Duration
}

func (e entry[V]) fresh(now time.Time) bool {
	return now.Sub(e.storedAt) < e.ttl
}

// Cache is a keyed TTL cache with in-flight deduplication: concurrent misses
// for the same key share a single computation. Expiry is checked lazily on
// access; there is no background eviction. Stale entries persist until
// overwritten, which is acceptable because key cardinality is bounded by the
// number of active principals and tenants.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	group   singleflight.Group
	clock   func() time.Time
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		clock:   time.Now,
	}
}

// Get returns the cached value for key if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || !e.fresh(c.clock()) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetOrCompute returns the cached value for key, or invokes compute and
// stores its result with the given TTL. If several callers miss on the same
// key concurrently, exactly one compute runs and all callers receive its
// result. A failed compute caches nothing.
//
// The computation is not cancelled when ctx is: population is idempotent and
// harmless to finish, and the result serves the next caller. The ctx passed
// to compute is detached from the caller's cancellation but keeps its values.
func (c *Cache[V]) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Re-check under the flight: a racing caller may have populated
		// the entry between our miss and the flight starting.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		value, err := compute(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = entry[V]{value: value, storedAt: c.clock(), ttl: ttl}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Set stores a value directly, bypassing any in-flight computation.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, storedAt: c.clock(), ttl: ttl}
	c.mu.Unlock()
}

// Invalidate removes a single key.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidatePrefix removes every key with the given prefix. Used to drop all
// cached permission sets for one principal or one resource.
func (c *Cache[V]) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

// Clear removes all entries. Called when the owning session's identity
// changes so a new session never observes a previous principal's entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len reports the number of stored entries, fresh or stale.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
