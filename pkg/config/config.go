package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// ConfigPathEnvVar overrides the path of the YAML config file.
	ConfigPathEnvVar  = "CONFIG_PATH"
	DefaultConfigPath = "config.yaml"
	// EnvPrefix marks environment variables that override config keys.
	// A double underscore separates nested keys: REDMANE_DATABASE__URL -> database.url.
	EnvPrefix = "REDMANE_"
)

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"`
	Migrate         bool          `koanf:"migrate"`
}

type KeycloakConfig struct {
	URL            string        `koanf:"url"`
	Realm          string        `koanf:"realm"`
	ClientID       string        `koanf:"client_id"`
	VerifyAudience bool          `koanf:"verify_audience"`
	JWKSCacheTTL   time.Duration `koanf:"jwks_cache_ttl"`
	// JWKSMinRefresh bounds how often an unknown kid may force a refetch of the key set.
	JWKSMinRefresh time.Duration `koanf:"jwks_min_refresh"`
	HTTPTimeout    time.Duration `koanf:"http_timeout"`
}

type CORSConfig struct {
	AllowOrigins []string `koanf:"allow_origins"`
}

type Config struct {
	Address         string         `koanf:"address"`
	LogLevel        string         `koanf:"log_level"`
	Version         string         `koanf:"version"`
	ShutdownTimeout time.Duration  `koanf:"shutdown_timeout"`
	BodyLimit       int            `koanf:"body_limit"`
	Database        DatabaseConfig `koanf:"database"`
	Keycloak        KeycloakConfig `koanf:"keycloak"`
	CORS            CORSConfig     `koanf:"cors"`
}

func Default() *Config {
	return &Config{
		Address:         "localhost:8888",
		LogLevel:        "info",
		Version:         "dev",
		ShutdownTimeout: time.Minute,
		BodyLimit:       4 * 1024 * 1024,
		Database: DatabaseConfig{
			URL:             "sqlite://data/data_redmane.db",
			MaxIdleConns:    5,
			MaxOpenConns:    20,
			ConnMaxLifetime: time.Hour,
			SlowThreshold:   200 * time.Millisecond,
			Migrate:         true,
		},
		Keycloak: KeycloakConfig{
			URL:            "http://localhost:8080",
			Realm:          "redmane",
			ClientID:       "redmane-backend",
			JWKSCacheTTL:   time.Hour,
			JWKSMinRefresh: 10 * time.Second,
			HTTPTimeout:    10 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
}

var (
	ErrMissingAddress  = errors.New("address must be set")
	ErrMissingStoreURL = errors.New("database.url must be set")
)

func (c *Config) Validate() error {
	var errs []error

	if c.Address == "" {
		errs = append(errs, ErrMissingAddress)
	}

	if c.Database.URL == "" {
		errs = append(errs, ErrMissingStoreURL)
	}

	return errors.Join(errs...)
}

// Load builds the configuration from the defaults, the optional YAML file and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	path := os.Getenv(ConfigPathEnvVar)
	if path == "" {
		path = DefaultConfigPath
	}

	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path.
// A missing file is skipped unless it was requested through CONFIG_PATH.
func LoadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
			}
		} else if path != DefaultConfigPath {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitCommaSeparated(k, "cors.allow_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// envKey maps REDMANE_DATABASE__MAX_OPEN_CONNS to database.max_open_conns.
func envKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "__", ".")
}

// splitCommaSeparated turns a comma separated string, as set from the environment, into a list.
func splitCommaSeparated(k *koanf.Koanf, path string) error {
	value, ok := k.Get(path).(string)
	if !ok {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}

	if err := k.Set(path, items); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}

	return nil
}
