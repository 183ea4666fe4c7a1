// Package redisstore keeps key-value records in Redis, optionally with a TTL.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/device-management-toolkit/storefront/pkg/kvstore"
)

// Store -.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ kvstore.Store = (*Store)(nil)

// New creates a Redis-backed store. Keys are namespaced with prefix; ttl 0
// keeps records until deleted.
func New(client *redis.Client, prefix string, ttl time.Duration) *Store {
	return &Store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

// GetKeyValue -.
func (s *Store) GetKeyValue(key string) (string, error) {
	val, err := s.client.Get(context.Background(), s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", kvstore.ErrKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("redisstore - get %s: %w", key, err)
	}

	return val, nil
}

// SetKeyValue -.
func (s *Store) SetKeyValue(key, value string) error {
	if err := s.client.Set(context.Background(), s.key(key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redisstore - set %s: %w", key, err)
	}

	return nil
}

// DeleteKeyValue -.
func (s *Store) DeleteKeyValue(key string) error {
	if err := s.client.Del(context.Background(), s.key(key)).Err(); err != nil {
		return fmt.Errorf("redisstore - delete %s: %w", key, err)
	}

	return nil
}
