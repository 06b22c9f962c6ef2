package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// clearEnv blanks the WORDFEUD_* overrides; empty values are ignored by FromEnv
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"WORDFEUD_HOST", "WORDFEUD_SCHEME", "WORDFEUD_USER_AGENT", "WORDFEUD_CACHE", "WORDFEUD_REDIS_URL"} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "game02.wordfeud.com", cfg.Host)
	assert.Equal(t, "http", cfg.Scheme)
	assert.Equal(t, "/wf/", cfg.Root)
	assert.Equal(t, "WebFeudClient/2.0.3 (iOS; 5.0.1; iPhone4S)", cfg.UserAgent)
	assert.Zero(t, cfg.Timeout)
	assert.Equal(t, BackendMemory, cfg.Cache.Backend)
	assert.NoError(t, cfg.Validate())
}

func TestResolveFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_REDIS_HOST", "cache.internal")

	path := writeConfig(t, `
host: game05.wordfeud.com
scheme: https
timeout: 15s
cache:
  backend: redis
  redis:
    url: redis://${TEST_REDIS_HOST}:6380/1
    pool_size: 4
`)

	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "game05.wordfeud.com", cfg.Host)
	assert.Equal(t, "https", cfg.Scheme)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis://cache.internal:6380/1", cfg.Cache.Redis.URL)
	assert.Equal(t, 4, cfg.Cache.Redis.PoolSize)

	// Unset keys keep their defaults
	assert.Equal(t, "/wf/", cfg.Root)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, 2, cfg.Cache.Redis.MinIdleConns)
}

func TestResolveUnsetVariableExpandsEmpty(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "user_agent: \"bot ${WF_TEST_DOES_NOT_EXIST}\"\n")

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "bot ", cfg.UserAgent)
}

func TestResolveFileErrors(t *testing.T) {
	clearEnv(t)
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "host: [unclosed"},
		{"bad timeout", "timeout: soon"},
		{"bad scheme", "scheme: ftp"},
		{"unknown backend", "cache:\n  backend: disk"},
		{"host with scheme", "host: http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestResolveMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Resolve(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "host: from-file.example.com\n")
	t.Setenv("WORDFEUD_HOST", "from-env.example.com")
	t.Setenv("WORDFEUD_CACHE", "redis")
	t.Setenv("WORDFEUD_REDIS_URL", "redis://env:6379")

	cfg, err := Resolve(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.example.com", cfg.Host)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis://env:6379", cfg.Cache.Redis.URL)
}

func TestResolveWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDFEUD_SCHEME", "https")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "https", cfg.Scheme)
	assert.Equal(t, DefaultHost, cfg.Host)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty host", func(c *Config) { c.Host = "" }, false},
		{"root without slash", func(c *Config) { c.Root = "wf/" }, false},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, false},
		{"redis without url", func(c *Config) { c.Cache.Backend = BackendRedis; c.Cache.Redis.URL = "" }, false},
		{"host with port", func(c *Config) { c.Host = "localhost:8080" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
