package cache

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// CleanupInterval is how often expired cache entries are removed.
const CleanupInterval = 30 * time.Second

// Cache holds catalog lookups for a short while so repeated page loads do not
// hit the ERP every time.
type Cache struct {
	store *cache.Cache
	ttl   time.Duration
}

// New creates a new Cache instance using in-memory storage.
// If ttl is 0, caching is disabled.
func New(ttl time.Duration) *Cache {
	return &Cache{
		store: cache.New(ttl, CleanupInterval),
		ttl:   ttl,
	}
}

// Set stores a value under key for the configured TTL.
// If caching is disabled this is a no-op.
func (c *Cache) Set(key string, value interface{}) {
	if c.ttl <= 0 {
		return
	}

	c.store.Set(key, value, c.ttl)
}

// Get retrieves a value from the cache.
// If caching is disabled it always returns nil, false.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	return c.store.Get(key)
}

// IsEnabled returns whether caching is enabled (TTL > 0).
func (c *Cache) IsEnabled() bool {
	return c.ttl > 0
}

// GetTTL returns the configured TTL.
func (c *Cache) GetTTL() time.Duration {
	return c.ttl
}

// Delete removes a value from the cache.
func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

// DeletePrefix removes every key starting with prefix.
func (c *Cache) DeletePrefix(prefix string) {
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.store.Flush()
}
