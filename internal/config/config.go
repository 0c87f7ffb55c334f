// Package config loads the optional user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable presentation settings.
type Config struct {
	// Columns is the hexdump row width. Must be a positive multiple
	// of 2.
	Columns int `yaml:"columns"`

	// Color enables colored prompt and help output on terminals.
	Color bool `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Columns: 16, Color: true}
}

// DefaultPath returns the per-user config location, or "" when no
// user config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tapehead", "config.yaml")
}

// Load reads the config at path, layered over the defaults. A missing
// file is not an error; a present but invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Columns < 2 || cfg.Columns%2 != 0 {
		return cfg, fmt.Errorf("config %s: columns must be a positive multiple of 2, got %d", path, cfg.Columns)
	}
	return cfg, nil
}
