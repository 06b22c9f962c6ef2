// Package config loads client settings from defaults, an optional YAML file
// and the environment, in that order.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Defaults
const (
	DefaultHost      = "game02.wordfeud.com"
	DefaultScheme    = "http"
	DefaultRoot      = "/wf/"
	DefaultUserAgent = "WebFeudClient/2.0.3 (iOS; 5.0.1; iPhone4S)"
)

// Config holds everything needed to build a client
type Config struct {
	Host      string        `yaml:"host"`
	Scheme    string        `yaml:"scheme"`
	Root      string        `yaml:"root"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"-"`
	Cache     CacheConfig   `yaml:"cache"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// CacheConfig selects where board and ruleset data is kept
type CacheConfig struct {
	Backend string      `yaml:"backend"`
	Redis   RedisConfig `yaml:"redis"`
}

// RedisConfig holds Redis connection settings for the redis backend
type RedisConfig struct {
	URL          string `yaml:"url"`
	PoolSize     int    `yaml:"pool_size"`
	MinIdleConns int    `yaml:"min_idle_conns"`
	KeyPrefix    string `yaml:"key_prefix"`
}

// Default returns the stock settings. Timeout 0 means no timeout.
func Default() *Config {
	return &Config{
		Host:      DefaultHost,
		Scheme:    DefaultScheme,
		Root:      DefaultRoot,
		UserAgent: DefaultUserAgent,
		Cache: CacheConfig{
			Backend: BackendMemory,
			Redis: RedisConfig{
				URL:          "redis://localhost:6379",
				PoolSize:     10,
				MinIdleConns: 2,
				KeyPrefix:    "wordfeud",
			},
		},
	}
}

// Resolve builds the effective configuration: defaults, then the file at
// path if one is given, then environment overrides.
// Environment variables in the format ${VAR_NAME} inside the file are expanded.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.merge(path); err != nil {
			return nil, err
		}
	}
	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func (c *Config) merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if c.TimeoutRaw != "" {
		c.Timeout, err = time.ParseDuration(c.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing timeout %q: %w", c.TimeoutRaw, err)
		}
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} with the variable's value, or nothing if unset
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

// FromEnv applies WORDFEUD_* overrides
func (c *Config) FromEnv() {
	c.Host = getEnvOrDefault("WORDFEUD_HOST", c.Host)
	c.Scheme = getEnvOrDefault("WORDFEUD_SCHEME", c.Scheme)
	c.UserAgent = getEnvOrDefault("WORDFEUD_USER_AGENT", c.UserAgent)
	c.Cache.Backend = getEnvOrDefault("WORDFEUD_CACHE", c.Cache.Backend)
	c.Cache.Redis.URL = getEnvOrDefault("WORDFEUD_REDIS_URL", c.Cache.Redis.URL)
}

// Validate checks that the configuration can build a client.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if strings.Contains(c.Host, "/") {
		return fmt.Errorf("host %q must not contain a path or scheme", c.Host)
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", c.Scheme)
	}
	if !strings.HasPrefix(c.Root, "/") {
		return fmt.Errorf("root %q must start with /", c.Root)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	switch c.Cache.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Cache.Redis.URL == "" {
			return fmt.Errorf("cache.redis.url is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}

	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
