package cache

import (
	"sync"
	"time"

	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/pkg/clock"
	"github.com/Yanolja-Travel-Innovation-2025/backend/internal/usecase/qrcode"
)

type entry struct {
	result     qrcode.Result
	computedAt time.Time
}

// MemoryResultCache keeps validation results in process memory.
// Expiry is checked lazily on read; there is no background sweep.
type MemoryResultCache struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	clock      clock.Clock
}

func NewMemoryResultCache(clk clock.Clock, ttl time.Duration, maxEntries int) *MemoryResultCache {
	return &MemoryResultCache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clk,
	}
}

func (c *MemoryResultCache) Get(key string) (qrcode.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return qrcode.Result{}, false
	}
	if !c.fresh(e) {
		delete(c.entries, key)
		return qrcode.Result{}, false
	}
	return e.result, true
}

// Set drops the result when the cache is full of live entries.
func (c *MemoryResultCache) Set(key string, r qrcode.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		c.evictExpired()
		if len(c.entries) >= c.maxEntries {
			return
		}
	}
	c.entries[key] = entry{result: r, computedAt: c.clock.Now()}
}

func (c *MemoryResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

func (c *MemoryResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryResultCache) fresh(e entry) bool {
	return c.clock.Now().Sub(e.computedAt) < c.ttl
}

func (c *MemoryResultCache) evictExpired() {
	for k, e := range c.entries {
		if !c.fresh(e) {
			delete(c.entries, k)
		}
	}
}
