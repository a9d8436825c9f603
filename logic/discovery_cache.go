package logic

import (
	"sync"
	"time"

	"lamia/dto"
	"lamia/shared"
)

// In-memory TTL cache of discovery records, keyed by normalized resource id.
// Discovery itself never caches; this sits between the directory and the
// resolver.
type discoveryCache struct {
	entries map[string]*discoveryCacheEntry
	mu      sync.RWMutex
	ttl     time.Duration
}

type discoveryCacheEntry struct {
	record    *dto.DiscoveryRecord
	timestamp time.Time
}

func newDiscoveryCache(cfg *shared.Config) *discoveryCache {
	ttl := time.Duration(cfg.DiscoveryCacheMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	c := &discoveryCache{
		entries: make(map[string]*discoveryCacheEntry),
		ttl:     ttl,
	}
	go c.cleanupLoop()
	return c
}

func (c *discoveryCache) get(resourceId string) *dto.DiscoveryRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[resourceId]
	if !ok || time.Since(entry.timestamp) >= c.ttl {
		return nil
	}
	return entry.record
}

func (c *discoveryCache) put(resourceId string, record *dto.DiscoveryRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[resourceId] = &discoveryCacheEntry{record, time.Now()}
}

func (c *discoveryCache) cleanupLoop() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()
	for range ticker.C {
		c.mu.Lock()
		for key, entry := range c.entries {
			if time.Since(entry.timestamp) >= c.ttl {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}
