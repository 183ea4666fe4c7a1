// Package vault stores key-value records as HashiCorp Vault KV v2 secrets.
package vault

import (
	"context"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/device-management-toolkit/storefront/config"
	"github.com/device-management-toolkit/storefront/pkg/kvstore"
)

// DefaultSecretPath is used when no path is configured.
const DefaultSecretPath = "secret/data/storefront"

const valueField = "value"

// Client keeps each record in its own secret at {path}/{key}, under the
// "value" field, so a write always replaces the whole record.
type Client struct {
	client *api.Client
	path   string
}

var _ kvstore.Store = (*Client)(nil)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithPath sets a custom base path.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient sets a pre-configured Vault API client (useful for testing).
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a Vault backed store from configuration. Options are
// applied first so WithClient skips building an API client.
func NewClient(cfg *config.Vault, opts ...Option) (*Client, error) {
	c := &Client{
		path: DefaultSecretPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		if cfg != nil {
			vaultConfig.Address = cfg.Address
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, err
		}

		if cfg != nil {
			client.SetToken(cfg.Token)
		}

		c.client = client
	}

	if cfg != nil && cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}

func (c *Client) secretPath(key string) string {
	return c.path + "/" + key
}

// GetKeyValue -.
func (c *Client) GetKeyValue(key string) (string, error) {
	secretPath := c.secretPath(key)

	secret, err := c.client.Logical().ReadWithContext(context.Background(), secretPath)
	if err != nil {
		return "", fmt.Errorf("vault - read %s: %w", secretPath, err)
	}

	if secret == nil {
		return "", kvstore.ErrKeyNotFound
	}

	// KV v2 nests the payload under "data"; a deleted version has none.
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}

	value, ok := data[valueField].(string)
	if !ok {
		return "", kvstore.ErrKeyNotFound
	}

	return value, nil
}

// SetKeyValue -.
func (c *Client) SetKeyValue(key, value string) error {
	secretPath := c.secretPath(key)

	secretData := map[string]interface{}{
		"data": map[string]interface{}{
			valueField: value,
		},
	}

	if _, err := c.client.Logical().WriteWithContext(context.Background(), secretPath, secretData); err != nil {
		return fmt.Errorf("vault - write %s: %w", secretPath, err)
	}

	return nil
}

// DeleteKeyValue -.
func (c *Client) DeleteKeyValue(key string) error {
	secretPath := c.secretPath(key)

	if _, err := c.client.Logical().DeleteWithContext(context.Background(), secretPath); err != nil {
		return fmt.Errorf("vault - delete %s: %w", secretPath, err)
	}

	return nil
}
