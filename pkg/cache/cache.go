package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{Name: "earnhub_cache_hits_total"})
	cacheMiss = promauto.NewCounter(prometheus.CounterOpts{Name: "earnhub_cache_miss_total"})
)

// DefaultTTL bounds the freshness of cached dashboard views.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is a key/value store with per-entry time-based expiry. Entries are
// expired lazily: a stale entry is removed on the next read of its key, there
// is no background sweep. Safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	group singleflight.Group

	now func() time.Time
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the fresh value stored under key. A stale entry counts as a
// miss and is deleted as a side effect.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		cacheMiss.Inc()
		return nil, false
	}

	if c.now().Sub(e.storedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock: the entry may have been replaced
		// by a fresh Set since the read above.
		if cur, still := c.items[key]; still && cur.storedAt.Equal(e.storedAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		cacheMiss.Inc()
		return nil, false
	}

	cacheHits.Inc()
	return e.value, true
}

// Set stores value under key, unconditionally overwriting any prior entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{value: value, storedAt: c.now()}
}

// Clear removes the given keys, or every entry when called with none.
func (c *Cache) Clear(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(keys) == 0 {
		c.items = make(map[string]entry)
		return
	}

	for _, key := range keys {
		delete(c.items, key)
	}
}

// ClearPrefix removes every entry whose key starts with prefix. Used to
// invalidate all cached variants of a view after a write.
func (c *Cache) ClearPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Len reports the number of physically present entries, stale ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Do returns the cached value for key, or loads it. Concurrent callers for
// the same missing key are collapsed into a single load; every caller gets
// the same result. Load errors are not cached.
func (c *Cache) Do(key string, load func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}

		v, err := load()
		if err != nil {
			return nil, err
		}

		c.Set(key, v)
		return v, nil
	})

	return v, err
}
