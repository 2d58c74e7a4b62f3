package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alleschools/viewxy/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "viewxy", "config.yaml")
}

// loadedConfig returns the loaded config, or the defaults when commands run
// without the root Before hook (tests).
func (f *Flags) loadedConfig() *config.Config {
	if f.Config == nil {
		cfg := config.DefaultConfig()
		f.Config = &cfg
	}
	return f.Config
}

// validConfig returns the loaded config if it passes validation.
func (f *Flags) validConfig() (*config.Config, error) {
	cfg := f.loadedConfig()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
