package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcoot/wordfeud-go/internal/config"
)

// Config holds CLI configuration
type Config struct {
	ConfigFile  string
	Server      string
	Session     string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ConfigFile:  os.Getenv("WORDFEUD_CONFIG"),
		Session:     os.Getenv("WORDFEUD_SESSION"),
		SessionFile: getEnvOrDefault("WORDFEUD_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// Resolve loads client settings and applies the --server override, which
// may be a bare host[:port] or a URL with a scheme.
func (c *Config) Resolve() (*config.Config, error) {
	resolved, err := config.Resolve(c.ConfigFile)
	if err != nil {
		return nil, err
	}

	if c.Server != "" {
		server := strings.TrimSuffix(c.Server, "/")
		if scheme, host, ok := strings.Cut(server, "://"); ok {
			resolved.Scheme = scheme
			server = host
		}
		resolved.Host = server
		if err := resolved.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --server: %w", err)
		}
	}

	return resolved, nil
}

// LoadSession loads the session from file if not already set
func (c *Config) LoadSession() error {
	if c.Session != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.Session = strings.TrimSpace(string(data))
	return nil
}

// SaveSession saves the session to the session file
func (c *Config) SaveSession(session string) error {
	c.Session = session

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(session), 0600)
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordfeud/session"
	}
	return filepath.Join(home, ".wordfeud", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
