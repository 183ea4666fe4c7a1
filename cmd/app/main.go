package main

import (
	"errors"
	"log"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"

	"github.com/device-management-toolkit/storefront/config"
	"github.com/device-management-toolkit/storefront/internal/app"
)

const encryptionKeyName = "storage-encryption-key"

// Function pointers for better testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
	keyStoreFunc         = func(service string) security.Storager {
		return security.NewKeyRingStorage(service)
	}
	generateKeyFunc = func() string {
		toolkitCrypto := security.Crypto{}

		return toolkitCrypto.GenerateKey()
	}
)

func main() {
	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	if err := handleEncryptionKey(cfg); err != nil {
		log.Fatalf("Encryption key error: %s", err)
	}

	runAppFunc(cfg)
}

// handleEncryptionKey resolves the at-rest key for stored sessions and carts.
// A key from config or env wins. Otherwise, when encryption is requested, the
// key is read from the OS keyring, or generated and saved there on first run.
func handleEncryptionKey(cfg *config.Config) error {
	if cfg.Storage.EncryptionKey != "" {
		log.Println("Encryption key loaded from environment")

		return nil
	}

	if !cfg.Storage.Encrypt {
		return nil
	}

	keyStore := keyStoreFunc(cfg.Storage.KeyringService)

	key, err := keyStore.GetKeyValue(encryptionKeyName)
	if err == nil {
		cfg.Storage.EncryptionKey = key

		log.Println("Encryption key loaded from local keyring")

		return nil
	}

	if !errors.Is(err, security.ErrKeyNotFound) {
		return err
	}

	key = generateKeyFunc()

	if err := keyStore.SetKeyValue(encryptionKeyName, key); err != nil {
		return err
	}

	cfg.Storage.EncryptionKey = key

	log.Println("Encryption key generated and saved to local keyring")

	return nil
}
