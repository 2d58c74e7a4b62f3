// Package config handles configuration loading and validation for viewxy.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTheme is the palette used when the config names none.
const DefaultTheme = "tokyo-night"

// Config holds the application configuration.
type Config struct {
	Theme     string          `yaml:"theme"`
	Highlight HighlightConfig `yaml:"highlight"`
	Swatch    SwatchConfig    `yaml:"swatch"`
}

// HighlightConfig controls how matched label ranges are printed.
type HighlightConfig struct {
	Foreground string `yaml:"foreground"` // hex color, empty = theme background
	Background string `yaml:"background"` // hex color, empty = theme warning
	Bold       *bool  `yaml:"bold"`       // nil = true
}

// SwatchConfig controls the color swatch printed by `viewxy color`.
type SwatchConfig struct {
	Width int `yaml:"width"` // cells
}

// BoldOrDefault reports whether highlights are bold.
func (h HighlightConfig) BoldOrDefault() bool {
	if h.Bold == nil {
		return true
	}
	return *h.Bold
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme: DefaultTheme,
		Swatch: SwatchConfig{
			Width: 4,
		},
	}
}

// Load reads configuration from the given path and fills unset options with
// defaults. If configPath is empty or doesn't exist, the defaults are
// returned. Load does not validate; callers run Validate so that
// `viewxy config validate` can report every problem in a broken file.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Swatch.Width == 0 {
		c.Swatch.Width = defaults.Swatch.Width
	}
}
