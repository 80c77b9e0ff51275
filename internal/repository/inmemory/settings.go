package inmemory

import (
	"sync"
	"time"
)

// InMemorySettingsCache holds the full settings map with a TTL. Writes go
// through the settings service, which invalidates on every save.
type InMemorySettingsCache struct {
	mu        sync.RWMutex
	values    map[string]string
	expiresAt time.Time
	ttl       time.Duration
}

func NewInMemorySettingsCache(ttl time.Duration) *InMemorySettingsCache {
	return &InMemorySettingsCache{ttl: ttl}
}

func (c *InMemorySettingsCache) Get() (map[string]string, bool) {
	now := time.Now()

	c.mu.RLock()
	values, expiresAt := c.values, c.expiresAt
	c.mu.RUnlock()

	if values == nil || !expiresAt.After(now) {
		return nil, false
	}
	return cloneValues(values), true
}

func (c *InMemorySettingsCache) Set(values map[string]string) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.values = cloneValues(values)
	c.expiresAt = time.Now().Add(c.ttl)
	c.mu.Unlock()
}

func (c *InMemorySettingsCache) Invalidate() {
	c.mu.Lock()
	c.values = nil
	c.mu.Unlock()
}

func cloneValues(values map[string]string) map[string]string {
	cloned := make(map[string]string, len(values))
	for k, v := range values {
		cloned[k] = v
	}
	return cloned
}
