package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv() {
	os.Unsetenv("APP_NAME")
	os.Unsetenv("HTTP_PORT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("ERP_URL")
	os.Unsetenv("ERP_DATABASE")
	os.Unsetenv("STORAGE_BACKEND")
	os.Unsetenv("STORAGE_DSN")
	os.Unsetenv("STORAGE_SESSION_TTL")
	os.Unsetenv("HTTP_READ_TIMEOUT")
	os.Unsetenv("HTTP_SHUTDOWN_TIMEOUT")
}

func TestNewConfig_Defaults(t *testing.T) { //nolint:paralleltest // cannot have simultaneous tests modifying environment variables
	clearEnv()

	cfg, err := NewConfig()

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "storefront", cfg.Name)
	assert.Equal(t, "device-management-toolkit/storefront", cfg.Repo)
	assert.Equal(t, "DEVELOPMENT", cfg.Version)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "8282", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.TLS.Enabled)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)

	assert.Equal(t, "info", cfg.Level)

	assert.Equal(t, "http://localhost:8069", cfg.ERP.URL)
	assert.Equal(t, 30*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 80, cfg.Catalog.DefaultLimit)
	assert.False(t, cfg.Storage.Encrypt)
}

func TestNewConfig_EnvVars(t *testing.T) { //nolint:paralleltest // cannot have simultaneous tests modifying environment variables
	os.Setenv("APP_NAME", "testApp")
	os.Setenv("HTTP_PORT", "9090")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("ERP_URL", "https://erp.example.com")
	os.Setenv("ERP_DATABASE", "shop")
	os.Setenv("STORAGE_BACKEND", "sqlite")
	os.Setenv("STORAGE_DSN", "file:storefront.db")
	os.Setenv("STORAGE_SESSION_TTL", "15m")
	os.Setenv("HTTP_READ_TIMEOUT", "5s")
	os.Setenv("HTTP_SHUTDOWN_TIMEOUT", "10s")

	defer clearEnv()

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "testApp", cfg.Name)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "https://erp.example.com", cfg.ERP.URL)
	assert.Equal(t, "shop", cfg.Database)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "file:storefront.db", cfg.DSN)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestReadOrInitConfig_WritesDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	err := readOrInitConfig(path, defaultConfig())
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)

	loaded := &Config{}
	require.NoError(t, readOrInitConfig(path, loaded))
	assert.Equal(t, "storefront", loaded.Name)
	assert.Equal(t, BackendMemory, loaded.Backend)
}

func TestReadOrInitConfig_ReadsFile(t *testing.T) {
	t.Parallel()

	configYAML := `
app:
  name: fileApp
http:
  port: "8080"
logger:
  log_level: warn
storage:
  backend: redis
  redis:
    addr: redis:6379
`
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cfg := defaultConfig()
	require.NoError(t, readOrInitConfig(path, cfg))

	assert.Equal(t, "fileApp", cfg.Name)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, BackendRedis, cfg.Backend)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
}

func TestResolveConfigPath(t *testing.T) {
	t.Parallel()

	p, err := resolveConfigPath("/etc/storefront.yml")
	require.NoError(t, err)
	assert.Equal(t, "/etc/storefront.yml", p)

	p, err = resolveConfigPath("")
	require.NoError(t, err)
	assert.Equal(t, "config.yml", filepath.Base(p))
}

func TestValidateCacheConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cache         Cache
		expectedError error
	}{
		{name: "disabled", cache: Cache{TTL: 0}},
		{name: "valid", cache: Cache{TTL: 30 * time.Second}},
		{name: "maximum", cache: Cache{TTL: MaxCacheTTL}},
		{name: "negative", cache: Cache{TTL: -time.Second}, expectedError: ErrNegativeCacheTTL},
		{name: "too large", cache: Cache{TTL: MaxCacheTTL + time.Second}, expectedError: ErrCacheTTLTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{Cache: tt.cache}

			err := cfg.ValidateCacheConfig()
			if tt.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedError)
			}
		})
	}
}

func TestValidateStorageConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedError error
	}{
		{name: "defaults", mutate: func(_ *Config) {}},
		{name: "sqlite with dsn", mutate: func(c *Config) { c.Backend = BackendSQLite; c.DSN = "file::memory:" }},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Backend = BackendPostgres }, expectedError: ErrStorageDSNRequired},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "etcd" }, expectedError: ErrUnknownBackend},
		{name: "negative session ttl", mutate: func(c *Config) { c.SessionTTL = -time.Minute }, expectedError: ErrNegativeSessionTTL},
		{name: "zero erp timeout", mutate: func(c *Config) { c.ERP.Timeout = 0 }, expectedError: ErrNonPositiveERPTimeout},
		{name: "negative catalog limit", mutate: func(c *Config) { c.Catalog.DefaultLimit = -1 }, expectedError: ErrNegativeCatalogLimit},
		{name: "https erp url", mutate: func(c *Config) { c.ERP.URL = "https://erp.example.com:8443/odoo" }},
		{name: "empty erp url", mutate: func(c *Config) { c.ERP.URL = "" }, expectedError: ErrInvalidERPURL},
		{name: "erp url without scheme", mutate: func(c *Config) { c.ERP.URL = "not a url" }, expectedError: ErrInvalidERPURL},
		{name: "negative write timeout", mutate: func(c *Config) { c.HTTP.WriteTimeout = -time.Second }, expectedError: ErrNegativeHTTPTimeout},
		{name: "zero timeouts keep server defaults", mutate: func(c *Config) { c.HTTP.ReadTimeout = 0; c.HTTP.ShutdownTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.ValidateStorageConfig()
			if tt.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedError)
			}
		})
	}
}
