package droptable

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

// fakeClock lets tests age cache entries without sleeping
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func tableNamed(name string) *domain.DropTable {
	return &domain.DropTable{Name: name, MainTableRolls: 1}
}

func TestCacheGetPut(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(10, time.Hour, clock.Now)

	_, ok := cache.Get("cerberus")
	assert.False(t, ok)

	cache.Put("cerberus", tableNamed("Cerberus"))

	got, ok := cache.Get("cerberus")
	require.True(t, ok)
	assert.Equal(t, "Cerberus", got.Name)
}

func TestCacheExpiry(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(10, time.Hour, clock.Now)

	cache.Put("zulrah", tableNamed("Zulrah"))

	clock.Advance(59 * time.Minute)
	_, ok := cache.Get("zulrah")
	assert.True(t, ok, "entry younger than TTL should be served")

	clock.Advance(time.Minute)
	_, ok = cache.Get("zulrah")
	assert.False(t, ok, "entry at TTL should read as absent")

	// Expired reads do not delete; only Sweep collects
	assert.Equal(t, 1, cache.Len())
}

func TestCacheEvictsOldestAtCapacity(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(3, time.Hour, clock.Now)

	cache.Put("a", tableNamed("A"))
	clock.Advance(time.Minute)
	cache.Put("b", tableNamed("B"))
	clock.Advance(time.Minute)
	cache.Put("c", tableNamed("C"))
	clock.Advance(time.Minute)

	// Fourth insert must evict "a", the oldest
	cache.Put("d", tableNamed("D"))

	assert.Equal(t, 3, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)
	for _, key := range []string{"b", "c", "d"} {
		_, ok := cache.Get(key)
		assert.True(t, ok, "expected %s to survive eviction", key)
	}
}

func TestCacheCapacityBound(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(DefaultCacheCapacity, time.Hour, clock.Now)

	for i := 0; i < DefaultCacheCapacity*2; i++ {
		cache.Put(fmt.Sprintf("monster-%d", i), tableNamed("M"))
		clock.Advance(time.Second)
	}

	assert.Equal(t, DefaultCacheCapacity, cache.Len())
}

func TestCacheSweep(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(10, time.Hour, clock.Now)

	cache.Put("old1", tableNamed("Old1"))
	cache.Put("old2", tableNamed("Old2"))
	clock.Advance(time.Hour)
	cache.Put("fresh", tableNamed("Fresh"))

	removed := cache.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, cache.Len())
	_, ok := cache.Get("fresh")
	assert.True(t, ok)
}

func TestCacheSweepNothingExpired(t *testing.T) {
	clock := newFakeClock()
	cache := NewCache(10, time.Hour, clock.Now)

	cache.Put("cerberus", tableNamed("Cerberus"))
	clock.Advance(30 * time.Minute)

	assert.Equal(t, 0, cache.Sweep())
	assert.Equal(t, 1, cache.Len())
}
