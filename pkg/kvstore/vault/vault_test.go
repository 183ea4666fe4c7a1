package vault

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/storefront/config"
	"github.com/device-management-toolkit/storefront/pkg/kvstore"
)

// fakeKV emulates the subset of the KV v2 HTTP API the client uses.
type fakeKV struct {
	mu      sync.Mutex
	secrets map[string]map[string]interface{}
}

func (f *fakeKV) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/v1/")

	switch r.Method {
	case http.MethodGet:
		data, ok := f.secrets[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{"data": data}})
	case http.MethodPut, http.MethodPost:
		var body struct {
			Data map[string]interface{} `json:"data"`
		}

		_ = json.NewDecoder(r.Body).Decode(&body)
		f.secrets[path] = body.Data

		_, _ = w.Write([]byte(`{"data":{"version":1}}`))
	case http.MethodDelete:
		delete(f.secrets, path)
		_, _ = w.Write([]byte(`{}`))
	}
}

func newTestClient(t *testing.T) (*Client, *fakeKV) {
	t.Helper()

	kv := &fakeKV{secrets: map[string]map[string]interface{}{}}
	srv := httptest.NewServer(kv)
	t.Cleanup(srv.Close)

	c, err := NewClient(&config.Vault{Address: srv.URL, Token: "root", Path: "secret/data/shop"})
	require.NoError(t, err)

	return c, kv
}

func TestNewClient_WithInjectedClient(t *testing.T) {
	t.Parallel()

	mockVaultClient := &api.Client{}

	client, err := NewClient(nil, WithClient(mockVaultClient))

	assert.NoError(t, err)
	assert.Equal(t, mockVaultClient, client.client)
	assert.Equal(t, DefaultSecretPath, client.path)
}

func TestNewClient_PathPrecedence(t *testing.T) {
	t.Parallel()

	client, err := NewClient(&config.Vault{Address: "http://localhost:8200", Path: "secret/data/cfg"})
	require.NoError(t, err)
	assert.Equal(t, "secret/data/cfg", client.path)

	client, err = NewClient(nil, WithClient(&api.Client{}), WithPath("secret/data/opt"))
	require.NoError(t, err)
	assert.Equal(t, "secret/data/opt", client.path)

	client, err = NewClient(nil, WithClient(&api.Client{}), WithPath(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultSecretPath, client.path)
}

func TestClient_RoundTrip(t *testing.T) {
	t.Parallel()

	c, kv := newTestClient(t)

	_, err := c.GetKeyValue("odoo_cart")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	require.NoError(t, c.SetKeyValue("odoo_cart", `[{"quantity":3}]`))

	kv.mu.Lock()
	assert.Equal(t, map[string]interface{}{"value": `[{"quantity":3}]`}, kv.secrets["secret/data/shop/odoo_cart"])
	kv.mu.Unlock()

	v, err := c.GetKeyValue("odoo_cart")
	require.NoError(t, err)
	assert.Equal(t, `[{"quantity":3}]`, v)

	require.NoError(t, c.DeleteKeyValue("odoo_cart"))

	_, err = c.GetKeyValue("odoo_cart")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}
