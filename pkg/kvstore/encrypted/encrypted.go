// Package encrypted seals every record written to an underlying Store.
package encrypted

import (
	"fmt"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"

	"github.com/device-management-toolkit/storefront/pkg/kvstore"
)

// Cryptor is the subset of security.Cryptor the store needs.
type Cryptor interface {
	Encrypt(plainText string) (string, error)
	Decrypt(cipherText string) (string, error)
}

// Store encrypts values on the way in and decrypts them on the way out.
type Store struct {
	inner  kvstore.Store
	cipher Cryptor
}

var _ kvstore.Store = (*Store)(nil)

// New wraps inner with cipher.
func New(inner kvstore.Store, cipher Cryptor) *Store {
	return &Store{inner: inner, cipher: cipher}
}

// NewWithKey wraps inner with the toolkit's AES implementation keyed by key.
func NewWithKey(inner kvstore.Store, key string) *Store {
	return New(inner, &security.Crypto{EncryptionKey: key})
}

// GetKeyValue returns the decrypted value. A record that does not decrypt,
// such as plaintext written before encryption was enabled or a value sealed
// with another key, is reported as a *kvstore.DecodeError.
func (s *Store) GetKeyValue(key string) (string, error) {
	sealed, err := s.inner.GetKeyValue(key)
	if err != nil {
		return "", err
	}

	plain, err := s.cipher.Decrypt(sealed)
	if err != nil {
		return "", &kvstore.DecodeError{Key: key, Err: fmt.Errorf("encrypted - decrypt: %w", err)}
	}

	return plain, nil
}

// SetKeyValue -.
func (s *Store) SetKeyValue(key, value string) error {
	sealed, err := s.cipher.Encrypt(value)
	if err != nil {
		return fmt.Errorf("encrypted - encrypt %s: %w", key, err)
	}

	return s.inner.SetKeyValue(key, sealed)
}

// DeleteKeyValue -.
func (s *Store) DeleteKeyValue(key string) error {
	return s.inner.DeleteKeyValue(key)
}
