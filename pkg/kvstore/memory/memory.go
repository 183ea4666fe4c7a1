// Package memory is an in-process Store backed by go-cache.
package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/device-management-toolkit/storefront/pkg/kvstore"
)

// CleanupInterval is how often expired entries are removed.
const CleanupInterval = 30 * time.Second

// Store keeps values in memory. With a positive ttl every write expires
// after ttl, which gives session scoped storage; ttl 0 keeps values forever.
type Store struct {
	store *cache.Cache
}

var _ kvstore.Store = (*Store)(nil)

// New -.
func New(ttl time.Duration) *Store {
	expiration := cache.NoExpiration
	if ttl > 0 {
		expiration = ttl
	}

	return &Store{store: cache.New(expiration, CleanupInterval)}
}

// GetKeyValue -.
func (s *Store) GetKeyValue(key string) (string, error) {
	v, ok := s.store.Get(key)
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}

	str, ok := v.(string)
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}

	return str, nil
}

// SetKeyValue -.
func (s *Store) SetKeyValue(key, value string) error {
	s.store.Set(key, value, cache.DefaultExpiration)

	return nil
}

// DeleteKeyValue -.
func (s *Store) DeleteKeyValue(key string) error {
	s.store.Delete(key)

	return nil
}
