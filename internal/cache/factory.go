package cache

import (
	"github.com/device-management-toolkit/storefront/config"
)

// NewFromConfig creates a cache instance based on the application configuration.
// If cfg.Cache.TTL is 0, caching is disabled.
func NewFromConfig(cfg *config.Config) *Cache {
	return New(cfg.Cache.TTL)
}
