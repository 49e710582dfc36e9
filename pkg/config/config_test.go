package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmane/redmane/pkg/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), config.DefaultConfigPath))
	require.Error(t, err)
	assert.Nil(t, cfg)

	cfg, err = config.LoadFrom("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	path := writeFile(t, `
address: 0.0.0.0:9000
log_level: debug
database:
  url: postgres://user:pass@db/redmane
  max_open_conns: 3
keycloak:
  realm: clinical
  jwks_cache_ttl: 5m
`)

	t.Setenv("REDMANE_LOG_LEVEL", "warn")
	t.Setenv("REDMANE_DATABASE__MAX_OPEN_CONNS", "7")
	t.Setenv("REDMANE_KEYCLOAK__VERIFY_AUDIENCE", "true")
	t.Setenv("REDMANE_CORS__ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Address)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "postgres://user:pass@db/redmane", cfg.Database.URL)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "clinical", cfg.Keycloak.Realm)
	assert.Equal(t, 5*time.Minute, cfg.Keycloak.JWKSCacheTTL)
	assert.True(t, cfg.Keycloak.VerifyAudience)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	scenarios := []struct {
		name   string
		mutate func(*config.Config)
		err    error
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.Config) {},
		},
		{
			name:   "missing address",
			mutate: func(c *config.Config) { c.Address = "" },
			err:    config.ErrMissingAddress,
		},
		{
			name:   "missing store url",
			mutate: func(c *config.Config) { c.Database.URL = "" },
			err:    config.ErrMissingStoreURL,
		},
	}

	for _, scenario := range scenarios {
		scenario := scenario

		t.Run(scenario.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			scenario.mutate(cfg)

			err := cfg.Validate()
			if scenario.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, scenario.err)
			}
		})
	}
}
