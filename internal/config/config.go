// Package config provides configuration management for the options lab.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	errs "optionsim/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Grid       GridConfig       `mapstructure:"grid"`
	Strategy   StrategyConfig   `mapstructure:"strategy"`
	UI         UIConfig         `mapstructure:"ui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// SimulationConfig holds Monte Carlo simulation defaults.
type SimulationConfig struct {
	Drift   float64 `mapstructure:"drift"`
	Samples int     `mapstructure:"samples"`
	Seed    int64   `mapstructure:"seed"`
}

// GridConfig holds price-grid defaults for the payoff curve.
type GridConfig struct {
	Span   float64 `mapstructure:"span"` // grid runs spot +/- span
	Points int     `mapstructure:"points"`
}

// StrategyConfig holds strategy construction defaults.
type StrategyConfig struct {
	Width float64 `mapstructure:"width"` // spread width in index points
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/optionsim"
	}
	return filepath.Join(home, ".config", "optionsim")
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{Drift: 0.06, Samples: 12000, Seed: 42},
		Grid:       GridConfig{Span: 5000, Points: 400},
		Strategy:   StrategyConfig{Width: 400},
		UI:         UIConfig{ColorEnabled: true},
		Logging:    LoggingConfig{Level: "info", Console: false, File: true},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config file is not an error: a template is written and the defaults
// are returned.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("simulation.drift", cfg.Simulation.Drift)
	v.SetDefault("simulation.samples", cfg.Simulation.Samples)
	v.SetDefault("simulation.seed", cfg.Simulation.Seed)
	v.SetDefault("grid.span", cfg.Grid.Span)
	v.SetDefault("grid.points", cfg.Grid.Points)
	v.SetDefault("strategy.width", cfg.Strategy.Width)
	v.SetDefault("ui.color_enabled", cfg.UI.ColorEnabled)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
	v.SetDefault("logging.file", cfg.Logging.File)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.toml: %w", err)
		}
		if err := createTemplateConfig(configDir); err != nil {
			return nil, fmt.Errorf("writing config template: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPTIONSIM_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Simulation.Seed = seed
		}
	}
	if v := os.Getenv("OPTIONSIM_SAMPLES"); v != "" {
		if samples, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Samples = samples
		}
	}
	if v := os.Getenv("OPTIONSIM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Simulation.Samples <= 0 {
		return fmt.Errorf("%w: simulation.samples must be positive", errs.ErrConfigInvalid)
	}
	if c.Grid.Span <= 0 {
		return fmt.Errorf("%w: grid.span must be positive", errs.ErrConfigInvalid)
	}
	if c.Grid.Points < 2 {
		return fmt.Errorf("%w: grid.points must be at least 2", errs.ErrConfigInvalid)
	}
	if c.Strategy.Width <= 0 {
		return fmt.Errorf("%w: strategy.width must be positive", errs.ErrConfigInvalid)
	}
	return nil
}
