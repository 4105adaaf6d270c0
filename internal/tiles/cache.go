package tiles

import (
	"sync"
	"time"
)

// MapCache holds composed world maps per layer for a short period. Tile
// imagery upstream changes every few minutes at most.
type MapCache struct {
	mu      sync.RWMutex
	entries map[Layer]cached
	ttl     time.Duration
	now     func() time.Time
}

type cached struct {
	data      []byte
	expiresAt time.Time
}

func NewMapCache(ttl time.Duration) *MapCache {
	return &MapCache{
		entries: make(map[Layer]cached),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached map for layer if still valid.
func (c *MapCache) Get(layer Layer) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[layer]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.data, true
}

func (c *MapCache) Set(layer Layer, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[layer] = cached{data: data, expiresAt: c.now().Add(c.ttl)}
}
