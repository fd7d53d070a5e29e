// Package cache provides in-memory, time-boxed caches with single-flight loading.
//
// Expiration is checked when an entry is read. Caches that are started also
// sweep expired entries in the background, and an optional capacity bounds
// how many entries a cache keeps. Nothing is persisted across restarts.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"movie-rater/pkg/metrics"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"
)

// Loader computes the value for a key after a cache miss.
type Loader[V any] func(ctx context.Context) (V, error)

type options struct {
	capacity uint64
}

// Option configures a cache.
type Option func(*options)

// WithCapacity bounds the number of entries; the oldest entry is evicted
// when a new key would exceed it. Zero means unbounded.
func WithCapacity(n uint64) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// Cache is a TTL cache keyed by K holding values of type V.
type Cache[K comparable, V any] struct {
	name  string
	items *ttlcache.Cache[K, V]
	group singleflight.Group

	// Delete bumps a key's generation. A load that started under an older
	// generation hands its value to its waiters but does not store it.
	genMu sync.Mutex
	gens  map[K]uint64

	runMu   sync.Mutex
	running bool
}

// New creates a cache whose entries live for ttl after they are stored.
func New[K comparable, V any](name string, ttl time.Duration, opts ...Option) *Cache[K, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ttlOpts := []ttlcache.Option[K, V]{
		ttlcache.WithTTL[K, V](ttl),
		// Reads must not extend an entry's lifetime.
		ttlcache.WithDisableTouchOnHit[K, V](),
	}
	if o.capacity > 0 {
		ttlOpts = append(ttlOpts, ttlcache.WithCapacity[K, V](o.capacity))
	}

	c := &Cache[K, V]{
		name:  name,
		items: ttlcache.New[K, V](ttlOpts...),
		gens:  make(map[K]uint64),
	}

	c.items.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, _ *ttlcache.Item[K, V]) {
		metrics.CacheEvictions.WithLabelValues(name, evictionReason(reason)).Inc()
	})

	return c
}

// Get returns the value stored for key. It reports false when the key is
// missing or its entry has expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.lookup(key)
	c.record(ok)
	return v, ok
}

// Set stores value under key with the cache's default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.items.Set(key, value, ttlcache.DefaultTTL)
}

// Delete removes key from the cache. Loads for key that are already
// running will not store their result, and later GetOrLoad calls start a
// new load instead of joining them.
func (c *Cache[K, V]) Delete(key K) {
	c.genMu.Lock()
	defer c.genMu.Unlock()

	c.gens[key]++
	c.items.Delete(key)
}

// Len returns the number of stored entries, expired ones included until
// they are swept or read.
func (c *Cache[K, V]) Len() int {
	return c.items.Len()
}

// GetOrLoad returns the cached value for key, or runs load and stores its
// result. Concurrent misses for the same key share one load call. Errors
// are returned to every waiting caller and are not cached.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, key K, load Loader[V]) (V, error) {
	return c.getOrLoad(ctx, key, flightKey(key), nil, load)
}

// Start runs the background sweep of expired entries until Stop is called.
func (c *Cache[K, V]) Start() {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	if c.running {
		return
	}
	c.running = true
	go c.items.Start()
}

// Stop ends the background sweep. It is a no-op on a cache that was not started.
func (c *Cache[K, V]) Stop() {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	if !c.running {
		return
	}
	c.running = false
	c.items.Stop()
}

// getOrLoad is shared with Versioned. valid, when set, rejects stored values
// that are fresh by the clock but no longer usable.
func (c *Cache[K, V]) getOrLoad(ctx context.Context, key K, fkey string, valid func(V) bool, load Loader[V]) (V, error) {
	if v, ok := c.lookup(key); ok {
		if valid == nil || valid(v) {
			c.record(true)
			return v, nil
		}
		metrics.CacheRequests.WithLabelValues(c.name, "stale").Inc()
	} else {
		c.record(false)
	}

	// The loader outlives the first caller's cancellation so waiters that
	// joined the flight are not failed by someone else's disconnect.
	loadCtx := context.WithoutCancel(ctx)

	gen := c.generation(key)
	fkey = fmt.Sprintf("%s#%d", fkey, gen)

	res, err, shared := c.group.Do(fkey, func() (any, error) {
		// Another flight may have stored the value since our lookup.
		if v, ok := c.lookup(key); ok && (valid == nil || valid(v)) {
			return v, nil
		}

		v, err := load(loadCtx)
		if err != nil {
			metrics.CacheLoads.WithLabelValues(c.name, "error").Inc()
			return nil, err
		}

		if c.storeIfCurrent(key, gen, v) {
			metrics.CacheLoads.WithLabelValues(c.name, "ok").Inc()
		} else {
			metrics.CacheLoads.WithLabelValues(c.name, "discarded").Inc()
		}
		return v, nil
	})
	if shared {
		metrics.CacheLoads.WithLabelValues(c.name, "shared").Inc()
	}

	if err != nil {
		var zero V
		return zero, err
	}

	v, _ := res.(V)
	return v, nil
}

func (c *Cache[K, V]) generation(key K) uint64 {
	c.genMu.Lock()
	defer c.genMu.Unlock()
	return c.gens[key]
}

// storeIfCurrent stores v unless key was deleted after generation gen was read.
func (c *Cache[K, V]) storeIfCurrent(key K, gen uint64, v V) bool {
	c.genMu.Lock()
	defer c.genMu.Unlock()

	if c.gens[key] != gen {
		return false
	}
	c.items.Set(key, v, ttlcache.DefaultTTL)
	return true
}

func (c *Cache[K, V]) lookup(key K) (V, bool) {
	item := c.items.Get(key)
	if item == nil {
		var zero V
		return zero, false
	}
	return item.Value(), true
}

func (c *Cache[K, V]) record(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	metrics.CacheRequests.WithLabelValues(c.name, result).Inc()
}

func flightKey[K comparable](key K) string {
	return fmt.Sprint(key)
}

func evictionReason(reason ttlcache.EvictionReason) string {
	switch reason {
	case ttlcache.EvictionReasonExpired:
		return "expired"
	case ttlcache.EvictionReasonCapacityReached:
		return "capacity"
	case ttlcache.EvictionReasonDeleted:
		return "deleted"
	default:
		return "other"
	}
}
