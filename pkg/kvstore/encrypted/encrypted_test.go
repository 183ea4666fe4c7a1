package encrypted_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/storefront/pkg/kvstore"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/encrypted"
	"github.com/device-management-toolkit/storefront/pkg/kvstore/memory"
)

var errCipher = errors.New("cipher failed")

// reverseCipher is a reversible stand-in for AES.
type reverseCipher struct {
	fail bool
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}

	return string(r)
}

func (c reverseCipher) Encrypt(plainText string) (string, error) {
	if c.fail {
		return "", errCipher
	}

	return "enc:" + reverse(plainText), nil
}

func (c reverseCipher) Decrypt(cipherText string) (string, error) {
	if c.fail || !strings.HasPrefix(cipherText, "enc:") {
		return "", errCipher
	}

	return reverse(strings.TrimPrefix(cipherText, "enc:")), nil
}

func TestStore_SealsValues(t *testing.T) {
	t.Parallel()

	inner := memory.New(0)
	s := encrypted.New(inner, reverseCipher{})

	require.NoError(t, s.SetKeyValue("odoo_session", `{"userId":7}`))

	raw, err := inner.GetKeyValue("odoo_session")
	require.NoError(t, err)
	assert.Equal(t, `enc:}7:"dIresu"{`, raw)

	plain, err := s.GetKeyValue("odoo_session")
	require.NoError(t, err)
	assert.Equal(t, `{"userId":7}`, plain)

	require.NoError(t, s.DeleteKeyValue("odoo_session"))

	_, err = s.GetKeyValue("odoo_session")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestStore_CipherErrors(t *testing.T) {
	t.Parallel()

	inner := memory.New(0)
	require.NoError(t, inner.SetKeyValue("odoo_cart", "plaintext"))

	s := encrypted.New(inner, reverseCipher{})

	_, err := s.GetKeyValue("odoo_cart")
	require.ErrorIs(t, err, errCipher)

	var decodeErr *kvstore.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "odoo_cart", decodeErr.Key)

	failing := encrypted.New(inner, reverseCipher{fail: true})
	assert.ErrorIs(t, failing.SetKeyValue("odoo_cart", "[]"), errCipher)
}

func TestStore_WrongKeyIsDecodeError(t *testing.T) {
	t.Parallel()

	inner := memory.New(0)
	require.NoError(t, encrypted.New(inner, reverseCipher{}).SetKeyValue("odoo_session", `{"userId":7}`))

	rotated := encrypted.New(inner, reverseCipher{fail: true})

	var decodeErr *kvstore.DecodeError

	_, err := rotated.GetKeyValue("odoo_session")
	require.ErrorAs(t, err, &decodeErr)

	_, err = kvstore.GetJSON(rotated, "odoo_session", &struct{}{})
	assert.ErrorAs(t, err, &decodeErr)
}
