// Package kvstore defines the durable key-value contract the storefront
// persists sessions and carts through, plus JSON helpers over it.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"
)

// Store is implemented by every backend. It is the same contract the
// toolkit's secret stores satisfy, so the OS keyring and Vault plug in directly.
type Store = security.Storager

// ErrKeyNotFound is returned by Get when the key is absent or expired.
var ErrKeyNotFound = security.ErrKeyNotFound

// GetJSON loads key and decodes it into v. It reports found=false without an
// error when the key is absent.
func GetJSON(s Store, key string, v interface{}) (found bool, err error) {
	raw, err := s.GetKeyValue(key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, &DecodeError{Key: key, Err: err}
	}

	return true, nil
}

// PutJSON encodes v and overwrites key with it.
func PutJSON(s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kvstore - encode %s: %w", key, err)
	}

	return s.SetKeyValue(key, string(raw))
}

// Delete removes key. A missing key is not an error.
func Delete(s Store, key string) error {
	if err := s.DeleteKeyValue(key); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return err
	}

	return nil
}

// DecodeError reports a stored record that could not be decoded.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kvstore - decode %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
