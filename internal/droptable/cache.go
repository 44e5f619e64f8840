package droptable

import (
	"sync"
	"time"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
	"github.com/osmundr/GielinorBot_Go/internal/logger"
)

// cacheEntry wraps a parsed table with its insertion time
type cacheEntry struct {
	data      *domain.DropTable
	timestamp time.Time
}

// Cache is a time- and size-bounded map of monster key to parsed drop table.
//
// Get honours the TTL but never deletes; stale entries are only removed by
// Put eviction or Sweep. Put at capacity evicts the entry with the oldest
// insertion timestamp. The clock is injectable so tests can age entries
// without sleeping.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// NewCache creates a cache with the given capacity and entry TTL.
// A nil clock defaults to time.Now.
func NewCache(capacity int, ttl time.Duration, clock func() time.Time) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{
		entries:  make(map[string]cacheEntry, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      clock,
	}
}

// Get returns the cached table for key if present and younger than the TTL.
// An expired entry reads as absent but stays in the map for Sweep to collect.
func (c *Cache) Get(key string) (*domain.DropTable, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.timestamp) >= c.ttl {
		return nil, false
	}
	return entry.data, true
}

// Put inserts a table under key with the current timestamp. If the cache is
// at capacity before insertion the entry with the oldest timestamp is
// evicted first. Re-inserting an existing key goes through the same path.
func (c *Cache) Put(key string, table *domain.DropTable) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.entries[key] = cacheEntry{data: table, timestamp: c.now()}
}

// Len returns the current number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep removes every entry whose age has reached the TTL, regardless of
// capacity pressure, and returns the number removed.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, entry := range c.entries {
		if now.Sub(entry.timestamp) >= c.ttl {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		logger.Info(LogMsgCacheSwept, "removed", removed, "remaining", len(c.entries))
	}
	return removed
}

// evictOldestLocked drops the entry with the smallest timestamp.
// Caller must hold c.mu.
func (c *Cache) evictOldestLocked() {
	oldestKey := ""
	var oldest time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.timestamp.Before(oldest) {
			oldestKey = key
			oldest = entry.timestamp
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
		logger.Info(LogMsgCacheEvicted, "monster", oldestKey)
	}
}
