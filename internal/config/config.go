// Package config loads the companion server configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// HTTP server settings
	Server ServerConfig `toml:"server"`

	// Card catalog settings
	Catalog CatalogConfig `toml:"catalog"`

	// Database settings
	Database DatabaseConfig `toml:"database"`

	// Application settings
	App AppConfig `toml:"app"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port           int      `toml:"port"`             // Listen port
	AllowedOrigins []string `toml:"allowed_origins"`  // CORS origins
	RateLimit      float64  `toml:"rate_limit"`       // Requests per second per client (0 = unlimited)
	RateLimitBurst int      `toml:"rate_limit_burst"` // Burst size per client
}

// CatalogConfig contains card catalog settings.
type CatalogConfig struct {
	Path  string `toml:"path"`  // Path to the catalog JSON file
	Watch bool   `toml:"watch"` // Reload the catalog on file change
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Path string `toml:"path"` // Path to the SQLite database (empty = default location)
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
			RateLimit:      10,
			RateLimitBurst: 30,
		},
		Catalog: CatalogConfig{
			Path:  "catalog.json",
			Watch: true,
		},
		Database: DatabaseConfig{
			Path: "",
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".ld-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the default location. Returns the
// default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile loads the configuration from the given path. Returns the default
// config if the file doesn't exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to the default location.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("rate limit cannot be negative: %g", c.Server.RateLimit)
	}

	if c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit burst cannot be negative: %d", c.Server.RateLimitBurst)
	}

	if c.Catalog.Path == "" {
		return fmt.Errorf("catalog path cannot be empty")
	}

	return nil
}
