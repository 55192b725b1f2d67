/*
PURPOSE:
  Defines the configuration structure and loading logic for weather-summary.
  Only presentation is configurable; the weather table itself is fixed.

REQUIREMENTS:
  User-specified:
  - Styled output by default.

  Implementation-discovered:
  - Machine-readable formats (json, csv, yaml) for scripting.
  - Color must be switchable off for pipes and CI logs.
  - No file is read unless the user passes --config.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if the config file is unreadable or invalid.
  - Validate() rejects unknown format, color and log level values.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Flag overrides are applied by the caller, then Validate() is called.

USAGE:
  cfg, err := config.Load("weather_summary.yaml")

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Update Validate() when adding a new output format.
*/

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatYAML = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrInvalidFormat   = errors.New("invalid output format")
	ErrInvalidColor    = errors.New("invalid color mode")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Formats lists the accepted values for Config.Format.
var Formats = []string{FormatText, FormatJSON, FormatCSV, FormatYAML}

// Config represents the full configuration for weather-summary.
type Config struct {
	// Format selects the report renderer: text, json, csv or yaml.
	Format string `yaml:"format"`
	// Color is auto (TTY detection), always or never. Only affects text.
	Color    string `yaml:"color"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:   FormatText,
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// Load reads configuration from a YAML file.
// An empty path returns the defaults without touching the filesystem.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated fields. Values are matched case-insensitively
// and lowercased in place.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))

	switch c.Format {
	case FormatText, FormatJSON, FormatCSV, FormatYAML:
	default:
		return fmt.Errorf("%w %q (want one of %s)", ErrInvalidFormat, c.Format, strings.Join(Formats, ", "))
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w %q (want auto, always or never)", ErrInvalidColor, c.Color)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog.Level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidLogLevel, c.LogLevel, err)
	}
	return lvl, nil
}
