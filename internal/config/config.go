// Package config loads the user settings file for the cubenet CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the persistent CLI settings.
type Config struct {
	DBPath   string `yaml:"db_path"`
	TraceDir string `yaml:"trace_dir"`
	Mode     string `yaml:"mode"`
	SaveRuns bool   `yaml:"save_runs"`
}

// Dir returns the cubenet directory in the user's home.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubenet"), nil
}

// DefaultPath returns the default location of config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Defaults returns the settings used when no file overrides them.
func Defaults() Config {
	cfg := Config{Mode: "both", SaveRuns: true}
	if dir, err := Dir(); err == nil {
		cfg.DBPath = filepath.Join(dir, "cubenet.db")
		cfg.TraceDir = filepath.Join(dir, "traces")
	}
	return cfg
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config.yaml: %w", err)
	}
	return cfg, nil
}

// Normalize expands a leading ~ and lowercases the mode.
func (c *Config) Normalize() {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	if c.Mode == "" {
		c.Mode = "both"
	}
	c.DBPath = expandHome(c.DBPath)
	c.TraceDir = expandHome(c.TraceDir)
}

// Validate reports settings the CLI cannot act on.
func (c Config) Validate() error {
	switch c.Mode {
	case "flat", "cube", "both":
	default:
		return fmt.Errorf("mode must be flat, cube or both, got %q", c.Mode)
	}
	if c.SaveRuns && c.DBPath == "" {
		return errors.New("db_path is required when save_runs is set")
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
