package cache

import (
	"context"
	"fmt"
	"time"

	"movie-rater/pkg/metrics"
)

// Tagged is a cached value together with the version it was computed for.
type Tagged[V any] struct {
	Value   V
	Version int64
}

// Versioned is a TTL cache whose entries are also invalidated when the
// caller's current version of the key differs from the stored one. A version
// is any counter the caller can read cheaply that changes whenever the
// cached value would change.
type Versioned[K comparable, V any] struct {
	inner *Cache[K, Tagged[V]]
}

// NewVersioned creates a versioned cache with the given default TTL.
func NewVersioned[K comparable, V any](name string, ttl time.Duration, opts ...Option) *Versioned[K, V] {
	return &Versioned[K, V]{
		inner: New[K, Tagged[V]](name, ttl, opts...),
	}
}

// Get returns the value for key if it is unexpired and was stored under version.
func (c *Versioned[K, V]) Get(key K, version int64) (V, bool) {
	tagged, ok := c.inner.lookup(key)
	switch {
	case !ok:
		c.inner.record(false)
	case tagged.Version != version:
		metrics.CacheRequests.WithLabelValues(c.inner.name, "stale").Inc()
		ok = false
	default:
		c.inner.record(true)
	}

	if !ok {
		var zero V
		return zero, false
	}
	return tagged.Value, true
}

// Set stores value for key, tagged with version.
func (c *Versioned[K, V]) Set(key K, version int64, value V) {
	c.inner.Set(key, Tagged[V]{Value: value, Version: version})
}

// Delete removes key.
func (c *Versioned[K, V]) Delete(key K) {
	c.inner.Delete(key)
}

// Len returns the number of stored entries.
func (c *Versioned[K, V]) Len() int {
	return c.inner.Len()
}

// GetOrLoad returns the value stored for (key, version) or runs load once
// for all concurrent callers asking for the same key and version.
func (c *Versioned[K, V]) GetOrLoad(ctx context.Context, key K, version int64, load Loader[V]) (V, error) {
	fkey := fmt.Sprintf("%v@%d", key, version)
	valid := func(t Tagged[V]) bool { return t.Version == version }

	tagged, err := c.inner.getOrLoad(ctx, key, fkey, valid, func(ctx context.Context) (Tagged[V], error) {
		v, err := load(ctx)
		if err != nil {
			return Tagged[V]{}, err
		}
		return Tagged[V]{Value: v, Version: version}, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return tagged.Value, nil
}

// Start runs the background sweep of expired entries.
func (c *Versioned[K, V]) Start() {
	c.inner.Start()
}

// Stop ends the background sweep.
func (c *Versioned[K, V]) Stop() {
	c.inner.Stop()
}
