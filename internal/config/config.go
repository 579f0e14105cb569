// Package config provides configuration management for the aggregation
// pipeline. Configuration is an explicit value passed into the adapter and
// export boundaries; there is no process-wide mutable state.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"geosift/internal/export"
	"geosift/internal/models"
)

// Configuration validation errors.
var (
	ErrNoSources           = errors.New("at least one source is required")
	ErrUnknownSourceName   = errors.New("source name is not a known source tag")
	ErrSourceMissingKey    = errors.New("source key is required")
	ErrNoEnabledSources    = errors.New("at least one source must be enabled")
	ErrInvalidRadius       = errors.New("search.radius_km must be positive")
	ErrInvalidMaxResults   = errors.New("search.max_results must be at least 1")
	ErrInvalidWindowDays   = errors.New("search.window_days must be non-negative")
	ErrInvalidTimeout      = errors.New("request.timeout_sec must be at least 1")
	ErrMissingOutputDir    = errors.New("output.directory is required")
	ErrInvalidOutputFormat = errors.New("output.format must be 'json', 'csv', 'geojson' or 'all'")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Search  SearchConfig   `yaml:"search"`
	Sources []SourceConfig `yaml:"sources"`
	Request RequestConfig  `yaml:"request"`
	Output  OutputConfig   `yaml:"output"`
	Logging LoggingConfig  `yaml:"logging"`
}

// SearchConfig holds the default search parameters.
type SearchConfig struct {
	RadiusKM   float64 `yaml:"radius_km"`
	MaxResults int     `yaml:"max_results"`
	WindowDays int     `yaml:"window_days"`
}

// SourceConfig describes one source: its tag and the capture it replays
// from. Bucket is any gocloud blob URL; Key is the object inside it.
type SourceConfig struct {
	Name    string `yaml:"name"`
	Bucket  string `yaml:"bucket"`
	Key     string `yaml:"key"`
	Enabled bool   `yaml:"enabled"`
}

// RequestConfig holds the settings handed to adapters at the boundary.
type RequestConfig struct {
	TimeoutSec int    `yaml:"timeout_sec"`
	UserAgent  string `yaml:"user_agent"`
}

// GetTimeout returns the adapter timeout as a duration.
func (rc *RequestConfig) GetTimeout() time.Duration {
	return time.Duration(rc.TimeoutSec) * time.Second
}

// OutputConfig defines export behavior.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Format    string `yaml:"format"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the documented defaults: a 10 km radius, 100 results
// per source, a 7 day lookback window and JSON output under ./results.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			RadiusKM:   10,
			MaxResults: 100,
			WindowDays: 7,
		},
		Request: RequestConfig{
			TimeoutSec: 30,
			UserAgent:  "geosift/1.0",
		},
		Output: OutputConfig{
			Directory: "results",
			Format:    "all",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return ErrNoSources
	}

	enabledCount := 0

	for i, src := range c.Sources {
		if !models.KnownSource(src.Name) {
			return fmt.Errorf("%w: source[%d] %q", ErrUnknownSourceName, i, src.Name)
		}

		if src.Key == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingKey, i)
		}

		if src.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSources
	}

	if c.Search.RadiusKM <= 0 {
		return ErrInvalidRadius
	}

	if c.Search.MaxResults < 1 {
		return ErrInvalidMaxResults
	}

	if c.Search.WindowDays < 0 {
		return ErrInvalidWindowDays
	}

	if c.Request.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Output.Directory == "" {
		return ErrMissingOutputDir
	}

	switch c.Output.Format {
	case export.FormatJSON, export.FormatCSV, export.FormatGeoJSON, "all":
	default:
		return ErrInvalidOutputFormat
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// EnabledSources returns only enabled sources.
func (c *Config) EnabledSources() []SourceConfig {
	var enabled []SourceConfig

	for _, src := range c.Sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}

	return enabled
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Sources: %d, RadiusKM: %.1f, MaxResults: %d, Output: %s/%s}",
		len(c.Sources),
		c.Search.RadiusKM,
		c.Search.MaxResults,
		c.Output.Directory,
		c.Output.Format,
	)
}
