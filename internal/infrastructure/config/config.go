// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for wikilog configuration.
	DefaultConfigDir = ".wikilog"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultStoreFile is the default SQLite database file name.
	DefaultStoreFile = "logstore.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Site   SiteConfig   `yaml:"site,omitempty"`
	Client ClientConfig `yaml:"client,omitempty"`
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`
}

// SiteConfig identifies the wiki to query.
type SiteConfig struct {
	// APIURL is the full action API endpoint (e.g.
	// "https://de.wikipedia.org/w/api.php").
	APIURL    string `yaml:"api_url,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty"`
}

// ClientConfig holds HTTP client tuning.
type ClientConfig struct {
	// RateLimit is the sustained request rate in requests per second.
	RateLimit float64 `yaml:"rate_limit,omitempty"`
	// Burst is the rate limiter burst size.
	Burst int `yaml:"burst,omitempty"`
	// TimeoutSeconds bounds each API request.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite log store.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			APIURL:    "https://en.wikipedia.org/w/api.php",
			UserAgent: "wikilog/0.1 (https://github.com/ersonp/wikilog)",
		},
		Client: ClientConfig{
			RateLimit:      2,
			Burst:          2,
			TimeoutSeconds: 30,
		},
	}
}

// Load loads configuration from the .wikilog directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration under the .wikilog directory in the given
// path, creating the directory if needed.
func Save(basePath string, cfg *Config) error {
	dir := filepath.Join(basePath, DefaultConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	configFile := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// StorePath returns the SQLite database path, defaulting to the config
// directory when unset.
func StorePath(basePath string, cfg *Config) string {
	if cfg.SQLite.Path != "" {
		return cfg.SQLite.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultStoreFile)
}
