package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

const (
	// MaxCacheTTL bounds how long catalog responses may be served from memory.
	MaxCacheTTL = 10 * time.Minute

	// Storage backends.
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendVault    = "vault"
	BackendKeyring  = "keyring"
)

var (
	ErrNegativeCacheTTL      = errors.New("cache ttl cannot be negative")
	ErrCacheTTLTooLarge      = fmt.Errorf("cache ttl exceeds maximum allowed value of %s", MaxCacheTTL)
	ErrUnknownBackend        = errors.New("unknown storage backend")
	ErrStorageDSNRequired    = errors.New("storage dsn is required for sql backends")
	ErrNegativeSessionTTL    = errors.New("storage session_ttl cannot be negative")
	ErrNonPositiveERPTimeout = errors.New("erp timeout must be positive")
	ErrNegativeCatalogLimit  = errors.New("catalog default_limit cannot be negative")
	ErrInvalidERPURL         = errors.New("erp url must be an absolute url")
	ErrNegativeHTTPTimeout   = errors.New("http timeouts cannot be negative")
)

type (
	// Config -.
	Config struct {
		App     `yaml:"app"`
		HTTP    `yaml:"http"`
		Log     `yaml:"logger"`
		ERP     `yaml:"erp"`
		Storage `yaml:"storage"`
		Cache   `yaml:"cache"`
		Catalog `yaml:"catalog"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`

		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level"   env:"LOG_LEVEL"`
	}

	// ERP holds the remote server defaults offered to the login form and the
	// transport settings for every JSON-RPC request.
	ERP struct {
		URL      string        `yaml:"url" env:"ERP_URL" validate:"required,url"`
		Database string        `yaml:"database" env:"ERP_DATABASE"`
		Timeout  time.Duration `yaml:"timeout" env:"ERP_TIMEOUT"`
		Language string        `yaml:"language" env:"ERP_LANGUAGE"`
	}

	// Storage -.
	Storage struct {
		Backend        string        `yaml:"backend" env:"STORAGE_BACKEND"`
		DSN            string        `yaml:"dsn" env:"STORAGE_DSN"`
		PoolMax        int           `yaml:"pool_max" env:"STORAGE_POOL_MAX"`
		SessionTTL     time.Duration `yaml:"session_ttl" env:"STORAGE_SESSION_TTL"`
		Encrypt        bool          `yaml:"encrypt" env:"STORAGE_ENCRYPT"`
		EncryptionKey  string        `yaml:"encryption_key" env:"STORAGE_ENCRYPTION_KEY"`
		KeyringService string        `yaml:"keyring_service" env:"STORAGE_KEYRING_SERVICE"`
		Redis          Redis         `yaml:"redis"`
		Vault          Vault         `yaml:"vault"`
	}

	// Redis -.
	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	}

	// Vault -.
	Vault struct {
		Address string `yaml:"address" env:"VAULT_ADDR"`
		Token   string `yaml:"token" env:"VAULT_TOKEN"`
		Path    string `yaml:"path" env:"VAULT_PATH"`
	}

	// Cache -.
	Cache struct {
		TTL time.Duration `yaml:"ttl" env:"CACHE_TTL"`
	}

	// Catalog sets the page size used when a request gives no limit.
	Catalog struct {
		DefaultLimit int `yaml:"default_limit" env:"CATALOG_DEFAULT_LIMIT"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "storefront",
			Repo:    "device-management-toolkit/storefront",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8282",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 3 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
		ERP: ERP{
			URL:      "http://localhost:8069",
			Database: "",
			Timeout:  30 * time.Second,
			Language: "en_US",
		},
		Storage: Storage{
			Backend:        BackendMemory,
			DSN:            "",
			PoolMax:        2,
			SessionTTL:     8 * time.Hour,
			Encrypt:        false,
			EncryptionKey:  "",
			KeyringService: "storefront",
			Redis: Redis{
				Addr: "localhost:6379",
			},
			Vault: Vault{
				Address: "http://localhost:8200",
				Token:   "",
				Path:    "secret/data/storefront",
			},
		},
		Cache: Cache{
			TTL: 0,
		},
		Catalog: Catalog{
			DefaultLimit: 80,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		return encoder.Encode(cfg)
	}

	return err
}

// ValidateCacheConfig -.
func (cfg *Config) ValidateCacheConfig() error {
	if cfg.Cache.TTL < 0 {
		return ErrNegativeCacheTTL
	}

	if cfg.Cache.TTL > MaxCacheTTL {
		return ErrCacheTTLTooLarge
	}

	return nil
}

// ValidateStorageConfig -.
func (cfg *Config) ValidateStorageConfig() error {
	switch cfg.Storage.Backend {
	case BackendMemory, BackendRedis, BackendVault, BackendKeyring:
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DSN == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Storage.Backend)
	}

	if cfg.Storage.SessionTTL < 0 {
		return ErrNegativeSessionTTL
	}

	if cfg.ERP.Timeout <= 0 {
		return ErrNonPositiveERPTimeout
	}

	if err := validator.New().Struct(cfg.ERP); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidERPURL, cfg.ERP.URL, err)
	}

	if cfg.HTTP.ReadTimeout < 0 || cfg.HTTP.WriteTimeout < 0 || cfg.HTTP.ShutdownTimeout < 0 {
		return ErrNegativeHTTPTimeout
	}

	if cfg.Catalog.DefaultLimit < 0 {
		return ErrNegativeCatalogLimit
	}

	return nil
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	cfg := defaultConfig()

	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.ValidateCacheConfig(); err != nil {
		return nil, err
	}

	if err := cfg.ValidateStorageConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}
