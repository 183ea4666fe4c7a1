// Package sqlstore persists key-value records in the kv_records table of a
// SQLite or PostgreSQL database.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/device-management-toolkit/storefront/pkg/db"
	"github.com/device-management-toolkit/storefront/pkg/kvstore"
)

const table = "kv_records"

// Store scopes all records to one namespace. With a positive ttl every write
// expires after ttl.
type Store struct {
	db        *db.SQL
	namespace string
	ttl       time.Duration
	now       func() time.Time
}

var _ kvstore.Store = (*Store)(nil)

// New -.
func New(database *db.SQL, namespace string, ttl time.Duration) *Store {
	return &Store{
		db:        database,
		namespace: namespace,
		ttl:       ttl,
		now:       time.Now,
	}
}

// GetKeyValue -.
func (s *Store) GetKeyValue(key string) (string, error) {
	ctx := context.Background()

	query, args, err := s.db.Builder.
		Select("value", "expires_at").
		From(table).
		Where("namespace = ? AND record_key = ?", s.namespace, key).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("sqlstore - GetKeyValue - build: %w", err)
	}

	var (
		value     string
		expiresAt int64
	)

	err = s.db.Pool.QueryRowContext(ctx, query, args...).Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", kvstore.ErrKeyNotFound
	}

	if err != nil {
		return "", fmt.Errorf("sqlstore - GetKeyValue - query: %w", err)
	}

	if expiresAt != 0 && s.now().Unix() >= expiresAt {
		_ = s.DeleteKeyValue(key)

		return "", kvstore.ErrKeyNotFound
	}

	return value, nil
}

// SetKeyValue overwrites the whole record.
func (s *Store) SetKeyValue(key, value string) error {
	ctx := context.Background()

	var expiresAt int64
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl).Unix()
	}

	query, args, err := s.db.Builder.
		Insert(table).
		Columns("namespace", "record_key", "value", "expires_at").
		Values(s.namespace, key, value, expiresAt).
		Suffix("ON CONFLICT (namespace, record_key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlstore - SetKeyValue - build: %w", err)
	}

	if _, err := s.db.Pool.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlstore - SetKeyValue - exec: %w", err)
	}

	return nil
}

// DeleteKeyValue -.
func (s *Store) DeleteKeyValue(key string) error {
	ctx := context.Background()

	query, args, err := s.db.Builder.
		Delete(table).
		Where("namespace = ? AND record_key = ?", s.namespace, key).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlstore - DeleteKeyValue - build: %w", err)
	}

	if _, err := s.db.Pool.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("sqlstore - DeleteKeyValue - exec: %w", err)
	}

	return nil
}
