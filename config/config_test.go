package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lukehollenback/mbx/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "mbx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

//
// isolate runs the test from an empty directory so that no stray .env file is picked up, and
// clears the overriding environment variables.
//
func isolate(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, key := range []string{EnvEndpoint, EnvAPIKey, EnvAPISecret, EnvLogLevel} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultEndpoint, cfg.Exchange.Endpoint)
	assert.Equal(t, DefaultTimeout, cfg.Exchange.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.False(t, cfg.Exchange.HasCredentials())
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	path := writeConfig(t, `
exchange:
  endpoint: https://api.binance.us
  key: file-key
  secret: file-secret
  timeout: 3s
  strict_errors: true
logging:
  level: debug
  color: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.binance.us", cfg.Exchange.Endpoint)
	assert.Equal(t, "file-key", cfg.Exchange.Key)
	assert.Equal(t, "file-secret", cfg.Exchange.Secret)
	assert.Equal(t, 3*time.Second, cfg.Exchange.Timeout)
	assert.True(t, cfg.Exchange.StrictErrors)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Color)
	assert.True(t, cfg.Exchange.HasCredentials())
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	isolate(t)

	path := writeConfig(t, "exchange:\n  key: file-key\n  secret: file-secret\n")
	t.Setenv(EnvAPIKey, "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Exchange.Key)
	assert.Equal(t, "file-secret", cfg.Exchange.Secret)
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)

	// NOTE ~> godotenv never overrides a variable that is already set, even to an empty string.
	require.NoError(t, os.Unsetenv(EnvAPISecret))
	require.NoError(t, os.WriteFile(".env", []byte("BINANCE_API_SECRET=dotenv-secret\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.Exchange.Secret)
}

func TestLoadMissingFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"endpoint without scheme", func(c *Config) { c.Exchange.Endpoint = "api.binance.com" }},
		{"empty endpoint", func(c *Config) { c.Exchange.Endpoint = "" }},
		{"negative timeout", func(c *Config) { c.Exchange.Timeout = -time.Second }},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	assert.NoError(t, Default().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
