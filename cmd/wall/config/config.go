// Package config holds the client's user-facing configuration: which
// backend to talk to, theme, timeouts. Settings come from three layers,
// later layers winning: defaults, the JSON config file in the dot
// directory, and WALL_* environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds user preferences.
type Config struct {
	BaseURL        string `json:"base_url" env:"WALL_BASE_URL"`
	Environment    string `json:"environment" env:"WALL_ENVIRONMENT"` // named entry in environments.yaml
	Theme          string `json:"theme" env:"WALL_THEME"`             // "light" or "dark"
	TimeoutSeconds int    `json:"timeout_seconds" env:"WALL_TIMEOUT_SECONDS"`
	Debug          bool   `json:"debug" env:"WALL_DEBUG"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:4000/api/v1",
		Theme:          "dark",
		TimeoutSeconds: 15,
	}
}

// Timeout converts the configured timeout into a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Dir returns the dot directory holding config, credential, cache and
// logs. WALL_HOME overrides it for tests and sandboxes.
func Dir() (string, error) {
	if custom := os.Getenv("WALL_HOME"); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wall"), nil
}

// File returns the full path to the config file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration: defaults, then the config file, then
// environment overrides. A missing file is not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := File()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("corrupt config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	// .env is optional and only consulted for WALL_* overrides.
	_ = godotenv.Load()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if cfg.Environment != "" {
		if url, ok, err := lookupEnvironment(cfg.Environment); err != nil {
			return cfg, err
		} else if ok {
			cfg.BaseURL = url
		}
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := File()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
