// Package config provides configuration loading for the govec binaries
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/govec/internal/report"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config path is given
const DefaultFileName = "govec.yaml"

// Config holds all configuration for the application
type Config struct {
	Debug  bool         `yaml:"debug"`
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision *int   `yaml:"precision"`
}

// WatchConfig holds batch file watch settings
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Debounce returns the watch debounce as a duration
func (w WatchConfig) Debounce() time.Duration {
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// ReportOptions returns the render options for the configured output
func (c *Config) ReportOptions() (report.Options, error) {
	format, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{Format: format, Precision: *c.Output.Precision}, nil
}

// Default returns a config with every default applied
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads, parses and validates the config file at path and applies defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads path when set, else DefaultFileName from dir if that file exists,
// else defaults; it also returns the path actually loaded ("" for defaults)
func Resolve(path, dir string) (*Config, string, error) {
	if path == "" {
		fallback := filepath.Join(dir, DefaultFileName)
		if _, err := os.Stat(fallback); err != nil {
			return Default(), "", nil
		}
		path = fallback
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Output.Precision != nil && *c.Output.Precision > 17 {
		return fmt.Errorf("output precision %d exceeds 17 digits", *c.Output.Precision)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %dms", c.Watch.DebounceMS)
	}
	return nil
}
