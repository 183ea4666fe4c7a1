package main

import (
	"errors"
	"testing"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/storefront/config"
)

var errKeyring = errors.New("keyring locked")

type fakeKeyStore struct {
	values map[string]string
	getErr error
}

func (f *fakeKeyStore) GetKeyValue(key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}

	v, ok := f.values[key]
	if !ok {
		return "", security.ErrKeyNotFound
	}

	return v, nil
}

func (f *fakeKeyStore) SetKeyValue(key, value string) error {
	f.values[key] = value

	return nil
}

func (f *fakeKeyStore) DeleteKeyValue(key string) error {
	delete(f.values, key)

	return nil
}

func useKeyStore(t *testing.T, store *fakeKeyStore) {
	t.Helper()

	origStore, origGen := keyStoreFunc, generateKeyFunc

	keyStoreFunc = func(string) security.Storager { return store }
	generateKeyFunc = func() string { return "generated-key" }

	t.Cleanup(func() {
		keyStoreFunc, generateKeyFunc = origStore, origGen
	})
}

//nolint:paralleltest // swaps package level hooks
func TestHandleEncryptionKey(t *testing.T) {
	tests := []struct {
		name    string
		storage config.Storage
		store   *fakeKeyStore
		wantKey string
		wantErr error
		saved   bool
	}{
		{
			name:    "configured key wins",
			storage: config.Storage{Encrypt: true, EncryptionKey: "from-env"},
			store:   &fakeKeyStore{values: map[string]string{encryptionKeyName: "from-keyring"}},
			wantKey: "from-env",
		},
		{
			name:    "encryption off",
			storage: config.Storage{},
			store:   &fakeKeyStore{values: map[string]string{}},
			wantKey: "",
		},
		{
			name:    "loaded from keyring",
			storage: config.Storage{Encrypt: true},
			store:   &fakeKeyStore{values: map[string]string{encryptionKeyName: "from-keyring"}},
			wantKey: "from-keyring",
		},
		{
			name:    "generated on first run",
			storage: config.Storage{Encrypt: true},
			store:   &fakeKeyStore{values: map[string]string{}},
			wantKey: "generated-key",
			saved:   true,
		},
		{
			name:    "keyring failure",
			storage: config.Storage{Encrypt: true},
			store:   &fakeKeyStore{values: map[string]string{}, getErr: errKeyring},
			wantErr: errKeyring,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			useKeyStore(t, tc.store)

			cfg := &config.Config{Storage: tc.storage}

			err := handleEncryptionKey(cfg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, cfg.Storage.EncryptionKey)

			if tc.saved {
				assert.Equal(t, tc.wantKey, tc.store.values[encryptionKeyName])
			}
		})
	}
}

//nolint:paralleltest // swaps package level hooks
func TestMain_RunsApp(t *testing.T) {
	origConfig, origRun := initializeConfigFunc, runAppFunc
	t.Cleanup(func() {
		initializeConfigFunc, runAppFunc = origConfig, origRun
	})

	var ran *config.Config

	cfg := &config.Config{}
	initializeConfigFunc = func() (*config.Config, error) { return cfg, nil }
	runAppFunc = func(c *config.Config) { ran = c }

	main()

	assert.Same(t, cfg, ran)
}
