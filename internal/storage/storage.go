// Package storage opens the durable stores that back sessions and carts.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"
	"github.com/redis/go-redis/v9"

	"github.com/device-management-toolkit/storefront/config"
	"github.com/device-management-toolkit/storefront/pkg/db"
	"github.com/device-management-toolkit/storefront/pkg/kvstore"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/encrypted"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/memory"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/redisstore"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/sqlstore"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/vault"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

const (
	sessionNamespace = "session"
	cartNamespace    = "cart"
)

// Stores holds the session scoped store and the long lived cart store.
type Stores struct {
	Session kvstore.Store
	Cart    kvstore.Store

	closers []func() error
}

// Close releases every backend connection opened by Open.
func (s *Stores) Close() error {
	var errs []error

	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Open builds both stores for the configured backend. Session records expire
// after cfg.SessionTTL on backends that support expiry.
func Open(cfg *config.Storage, log logger.Interface) (*Stores, error) {
	stores := &Stores{}

	switch cfg.Backend {
	case config.BackendMemory, "":
		stores.Session = memory.New(cfg.SessionTTL)
		stores.Cart = memory.New(0)
	case config.BackendSQLite, config.BackendPostgres:
		database, err := db.New(cfg.Backend, cfg.DSN, sql.Open, db.MaxPoolSize(cfg.PoolMax))
		if err != nil {
			return nil, fmt.Errorf("storage - Open - %s: %w", cfg.Backend, err)
		}

		stores.closers = append(stores.closers, func() error {
			database.Close()

			return nil
		})
		stores.Session = sqlstore.New(database, sessionNamespace, cfg.SessionTTL)
		stores.Cart = sqlstore.New(database, cartNamespace, 0)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		stores.closers = append(stores.closers, client.Close)
		stores.Session = redisstore.New(client, "storefront:"+sessionNamespace+":", cfg.SessionTTL)
		stores.Cart = redisstore.New(client, "storefront:"+cartNamespace+":", 0)
	case config.BackendVault:
		base := cfg.Vault.Path
		if base == "" {
			base = vault.DefaultSecretPath
		}

		sessionStore, err := vault.NewClient(&cfg.Vault, vault.WithPath(base+"/"+sessionNamespace))
		if err != nil {
			return nil, fmt.Errorf("storage - Open - vault: %w", err)
		}

		cartStore, err := vault.NewClient(&cfg.Vault, vault.WithPath(base+"/"+cartNamespace))
		if err != nil {
			return nil, fmt.Errorf("storage - Open - vault: %w", err)
		}

		if cfg.SessionTTL > 0 {
			log.Warn("vault backend does not expire records; session_ttl %s is ignored", cfg.SessionTTL)
		}

		stores.Session = sessionStore
		stores.Cart = cartStore
	case config.BackendKeyring:
		stores.Session = security.NewKeyRingStorage(cfg.KeyringService + "-" + sessionNamespace)
		stores.Cart = security.NewKeyRingStorage(cfg.KeyringService + "-" + cartNamespace)
	default:
		return nil, fmt.Errorf("storage - Open: %w: %q", config.ErrUnknownBackend, cfg.Backend)
	}

	if cfg.EncryptionKey != "" {
		stores.Session = encrypted.NewWithKey(stores.Session, cfg.EncryptionKey)
		stores.Cart = encrypted.NewWithKey(stores.Cart, cfg.EncryptionKey)
	}

	log.Info("storage backend %s ready", backendName(cfg.Backend))

	return stores, nil
}

func backendName(backend string) string {
	if backend == "" {
		return config.BackendMemory
	}

	return backend
}
