// Package config holds the application constants and the optional file
// configuration. Configuration is best-effort: a missing or unreadable
// file never surfaces an error, the defaults simply apply.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the user-tunable part of the application.
type Config struct {
	// Theme selects one of the built-in color themes.
	Theme string `yaml:"theme"`

	// DefaultDuration preloads the input fields (in seconds) when no
	// persisted snapshot is available.
	DefaultDuration uint64 `yaml:"default_duration"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{Theme: "default"}
}

// Load reads the config file from the standard location, falling back
// to defaults when the file is absent or malformed.
func Load() *Config {
	return loadFrom(filepath.Join(configDir(), AppName, "config.yaml"))
}

func loadFrom(path string) *Config {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}
	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	return cfg
}

func configDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}
