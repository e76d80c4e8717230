// ABOUTME: In-memory cache with TTL-based expiration
// ABOUTME: Holds memoized calculations and editor sessions behind a sync.Map

package cache

import (
	"log/slog"
	"sync"
	"time"
)

// cleanupInterval is how often expired entries are swept
const cleanupInterval = time.Minute

type entry struct {
	data      any
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Cache is a concurrent key/value store whose entries expire after a TTL
type Cache struct {
	store sync.Map
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// New creates a cache with a default TTL and starts the background sweeper
func New(ttl time.Duration) *Cache {
	c := &Cache{
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go c.startCleanup(cleanupInterval)
	return c
}

// TTL returns the default time-to-live for entries
func (c *Cache) TTL() time.Duration { return c.ttl }

func (c *Cache) Get(key string) (any, bool) {
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return nil, false
	}

	e := val.(entry)
	if e.expired(time.Now()) {
		c.store.Delete(key)
		slog.Debug("Cache expired", "key", key)
		return nil, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.data, true
}

func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.store.Store(key, entry{data: value, expiresAt: time.Now().Add(ttl)})
	slog.Debug("Cache set", "key", key, "ttl", ttl)
}

// Touch extends a live entry by ttl from now; false when the key is missing or expired
func (c *Cache) Touch(key string, ttl time.Duration) bool {
	val, ok := c.Get(key)
	if !ok {
		return false
	}
	c.SetWithTTL(key, val, ttl)
	return true
}

func (c *Cache) Clear(key string) {
	c.store.Delete(key)
}

// Len counts live entries
func (c *Cache) Len() int {
	now := time.Now()
	n := 0
	c.store.Range(func(_, val any) bool {
		if !val.(entry).expired(now) {
			n++
		}
		return true
	})
	return n
}

// Close stops the background sweeper. The cache stays usable.
func (c *Cache) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep(time.Now())
		}
	}
}

func (c *Cache) sweep(now time.Time) int {
	removed := 0
	c.store.Range(func(key, val any) bool {
		if val.(entry).expired(now) {
			c.store.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		slog.Debug("Cache sweep", "removed", removed)
	}
	return removed
}
