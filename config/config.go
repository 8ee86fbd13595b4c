// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Backend names for the persistent store.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	// Store settings
	StorePath string `json:"store_path"`
	Backend   string `json:"backend"`

	// Metadata prefill settings
	FetchMetadata bool          `json:"fetch_metadata"`
	FetchTimeout  time.Duration `json:"fetch_timeout"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		StorePath:     defaultStorePath(),
		Backend:       BackendFile,
		FetchMetadata: true,
		FetchTimeout:  10 * time.Second,
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cliphub.json"
	}
	return filepath.Join(home, ".local", "share", "cliphub", "cliphub.json")
}

// Load loads configuration from environment variables, config file, and
// applies defaults. Priority: env vars > config file > defaults. A .env
// file in the working directory is folded into the environment first.
func Load() (*Config, error) {
	// Optional; missing .env is the normal case.
	godotenv.Load()

	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from cliphub.json in the current
// directory or the user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"cliphub.json",
		filepath.Join(os.Getenv("HOME"), ".config", "cliphub", "cliphub.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("CLIPHUB_STORE_PATH"); v != "" {
		c.StorePath = v
	}
	if v := os.Getenv("CLIPHUB_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("CLIPHUB_FETCH_METADATA"); v != "" {
		c.FetchMetadata = v == "true" || v == "1"
	}
	if v := os.Getenv("CLIPHUB_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.FetchTimeout = d
		}
	}
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("backend must be one of %q, %q, %q", BackendFile, BackendSQLite, BackendMemory)
	}
	if c.StorePath == "" && c.Backend != BackendMemory {
		return fmt.Errorf("store_path must not be empty")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	return nil
}
