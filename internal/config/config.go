package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	MinTimeout = 1
	MaxTimeout = 3600

	// EnvPrefix is the prefix of environment overrides, e.g. OPENLOAD_LOGIN.
	EnvPrefix = "openload"
)

// Config represents the main application configuration. Environment
// variables OPENLOAD_LOGIN, OPENLOAD_KEY, OPENLOAD_HOST, OPENLOAD_API_VERSION,
// OPENLOAD_TIMEOUT and OPENLOAD_LOGLEVEL override the file.
type Config struct {
	Login      string `toml:"login"`
	Key        string `toml:"key"`
	Host       string `toml:"host"`
	APIVersion string `toml:"api_version" split_words:"true"`
	Timeout    int    `toml:"timeout"`
	Loglevel   string `toml:"loglevel"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Host:       "api.openload.co",
		APIVersion: "1",
		Timeout:    30,
		Loglevel:   "info",
	}
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "goopenload")

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads configuration from a TOML file and applies environment
// overrides on top. A missing file is not an error when the environment
// supplies the credentials.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// env only
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Login == "" {
		return fmt.Errorf("login is required")
	}
	if c.Key == "" {
		return fmt.Errorf("key is required")
	}
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("host is required")
	}
	if strings.Contains(c.Host, "/") {
		return fmt.Errorf("host must not contain a scheme or path: %s", c.Host)
	}
	if strings.TrimSpace(c.APIVersion) == "" {
		return fmt.Errorf("api_version is required")
	}
	if c.Timeout < MinTimeout || c.Timeout > MaxTimeout {
		return fmt.Errorf("timeout must be between %d and %d seconds", MinTimeout, MaxTimeout)
	}
	if _, err := logrus.ParseLevel(c.Loglevel); err != nil {
		return fmt.Errorf("loglevel must be one of: panic, fatal, error, warn, info, debug, trace")
	}

	return nil
}

// TimeoutDuration returns Timeout as a time.Duration
func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
