package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all tool configuration. Precedence, lowest first:
// defaults, config file, DFQ_* environment, command-line flags.
type Config struct {
	Output  OutputConfig
	Overlay OverlayConfig
	Logging LogConfig
}

// OutputConfig selects what is reported and how.
type OutputConfig struct {
	Units        string `envconfig:"UNITS" toml:"units"`
	Format       string `envconfig:"FORMAT" toml:"format"`
	Cols         string `envconfig:"COLS" toml:"cols"`
	CSVSeparator string `envconfig:"CSV_SEPARATOR" toml:"csv_separator"`
	All          bool   `envconfig:"ALL" toml:"all"`
}

// OverlayConfig gates the Lustre extension columns.
type OverlayConfig struct {
	Lustre     bool `envconfig:"LUSTRE" toml:"lustre"`
	LustreOnly bool `envconfig:"LUSTRE_ONLY" toml:"lustre_only"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" toml:"log_level"`
	Development bool   `envconfig:"LOG_DEV" toml:"log_dev"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Units:        "binary",
			Format:       "table",
			CSVSeparator: ",",
		},
		Logging: LogConfig{
			Level: "warn",
		},
	}
}

// Load builds the effective configuration: defaults, then the optional
// config file, then DFQ_* environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if path, ok := filePath(); ok {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process("dfq", &cfg.Output); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	if err := envconfig.Process("dfq", &cfg.Overlay); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	if err := envconfig.Process("dfq", &cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads configuration or falls back to the defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// filePath locates the config file under XDG_CONFIG_HOME (or
// ~/.config), returning false when none exists.
func filePath() (string, bool) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		base = filepath.Join(home, ".config")
	}
	path := filepath.Join(base, "dfq", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// applyFile overlays TOML file settings onto cfg. A missing file is not
// an error; a malformed one is.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	var file struct {
		OutputConfig
		OverlayConfig
		LogConfig
	}
	file.OutputConfig = cfg.Output
	file.OverlayConfig = cfg.Overlay
	file.LogConfig = cfg.Logging
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Output = file.OutputConfig
	cfg.Overlay = file.OverlayConfig
	cfg.Logging = file.LogConfig
	return nil
}
