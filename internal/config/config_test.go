package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Sources = []SourceConfig{
		{Name: "twitter", Bucket: "file:///captures", Key: "twitter.json", Enabled: true},
		{Name: "wikipedia", Bucket: "file:///captures", Key: "wikipedia.json", Enabled: false},
	}

	return cfg
}

func TestDefaultConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Search.RadiusKM != 10 {
		t.Errorf("RadiusKM = %v, want 10", cfg.Search.RadiusKM)
	}

	if cfg.Search.MaxResults != 100 {
		t.Errorf("MaxResults = %v, want 100", cfg.Search.MaxResults)
	}

	if cfg.Search.WindowDays != 7 {
		t.Errorf("WindowDays = %v, want 7", cfg.Search.WindowDays)
	}

	if cfg.Request.TimeoutSec != 30 {
		t.Errorf("TimeoutSec = %v, want 30", cfg.Request.TimeoutSec)
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate returned unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"no sources", func(c *Config) { c.Sources = nil }, ErrNoSources},
		{"unknown source", func(c *Config) { c.Sources[0].Name = "myspace" }, ErrUnknownSourceName},
		{"missing key", func(c *Config) { c.Sources[0].Key = "" }, ErrSourceMissingKey},
		{"none enabled", func(c *Config) { c.Sources[0].Enabled = false }, ErrNoEnabledSources},
		{"bad radius", func(c *Config) { c.Search.RadiusKM = 0 }, ErrInvalidRadius},
		{"bad max results", func(c *Config) { c.Search.MaxResults = 0 }, ErrInvalidMaxResults},
		{"bad window", func(c *Config) { c.Search.WindowDays = -1 }, ErrInvalidWindowDays},
		{"bad timeout", func(c *Config) { c.Request.TimeoutSec = 0 }, ErrInvalidTimeout},
		{"no output dir", func(c *Config) { c.Output.Directory = "" }, ErrMissingOutputDir},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, ErrInvalidOutputFormat},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnabledSources(t *testing.T) {
	enabled := validConfig().EnabledSources()

	if len(enabled) != 1 || enabled[0].Name != "twitter" {
		t.Errorf("EnabledSources = %v, want only twitter", enabled)
	}
}

func TestLoadConfig(t *testing.T) {
	yaml := `
search:
  radius_km: 5
  max_results: 50
  window_days: 3
sources:
  - name: flickr
    bucket: file:///captures
    key: flickr.json
    enabled: true
output:
  directory: out
  format: geojson
logging:
  level: debug
`

	path := filepath.Join(t.TempDir(), "geosift.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Search.RadiusKM != 5 {
		t.Errorf("RadiusKM = %v, want 5", cfg.Search.RadiusKM)
	}

	if cfg.Output.Format != "geojson" {
		t.Errorf("Format = %q, want geojson", cfg.Output.Format)
	}

	// Sections missing from the file keep their defaults.
	if cfg.Request.TimeoutSec != 30 {
		t.Errorf("TimeoutSec = %v, want the default 30", cfg.Request.TimeoutSec)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func TestLoadConfig_InvalidConfigRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geosift.yaml")
	if err := os.WriteFile(path, []byte("sources: []\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); !errors.Is(err, ErrNoSources) {
		t.Errorf("LoadConfig error = %v, want ErrNoSources", err)
	}
}
