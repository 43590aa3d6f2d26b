// Package config loads the taqyim configuration from a YAML file with
// environment overrides. Everything has a default, so a missing config file
// is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all taqyim configuration.
type Config struct {
	// DataPath is the SQLite file holding the persisted collections.
	DataPath string `yaml:"data_path"`

	Logging LoggingConfig `yaml:"logging"`

	UI UIConfig `yaml:"ui"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	File   string `yaml:"file"`   // empty = stderr
}

// UIConfig configures the terminal interface.
type UIConfig struct {
	Theme        string `yaml:"theme"`         // auto, light, dark
	ArabicLabels bool   `yaml:"arabic_labels"` // render department/type labels in Arabic
}

// baseDir returns the per-user taqyim directory.
func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taqyim"
	}
	return filepath.Join(home, ".taqyim")
}

// DefaultConfigPath returns the config file location used when --config is
// not given.
func DefaultConfigPath() string {
	return filepath.Join(baseDir(), "config.yaml")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataPath: filepath.Join(baseDir(), "taqyim.db"),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("TAQYIM_DATA_PATH"); path != "" {
		c.DataPath = path
	}
	if level := os.Getenv("TAQYIM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TAQYIM_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	if file := os.Getenv("TAQYIM_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if theme := os.Getenv("TAQYIM_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}
