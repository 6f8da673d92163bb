// Package config provides Viper-based configuration loading for the arena
// engine and its demo driver.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// AIConfig holds the opponent action selector's thresholds.
type AIConfig struct {
	// SwitchHPThreshold is the active HP ratio below which the AI looks
	// for a defensive switch.
	SwitchHPThreshold float64 `mapstructure:"switch_hp_threshold"`
	// BenchHPThreshold is the minimum HP ratio a bench member needs to be
	// a switch candidate.
	BenchHPThreshold float64 `mapstructure:"bench_hp_threshold"`
}

// SimulationConfig holds the AI-vs-AI tournament match simulation settings.
type SimulationConfig struct {
	// BaseWeight is the deterministic share of a side's score; the
	// remainder is random. 1.0 makes the stronger team always win.
	BaseWeight float64 `mapstructure:"base_weight"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	AI         AIConfig         `mapstructure:"ai"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAI(c.AI); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateAI(a AIConfig) error {
	var errs []string
	if a.SwitchHPThreshold < 0 || a.SwitchHPThreshold > 1 {
		errs = append(errs, fmt.Sprintf("ai.switch_hp_threshold must be in [0, 1], got %v", a.SwitchHPThreshold))
	}
	if a.BenchHPThreshold < 0 || a.BenchHPThreshold > 1 {
		errs = append(errs, fmt.Sprintf("ai.bench_hp_threshold must be in [0, 1], got %v", a.BenchHPThreshold))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	if s.BaseWeight < 0 || s.BaseWeight > 1 {
		return fmt.Errorf("simulation.base_weight must be in [0, 1], got %v", s.BaseWeight)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the engine's built-in configuration, used when no config
// file is supplied.
func Default() Config {
	return Config{
		Logging:    LoggingConfig{Level: "info", Format: "console"},
		AI:         AIConfig{SwitchHPThreshold: 0.30, BenchHPThreshold: 0.50},
		Simulation: SimulationConfig{BaseWeight: 0.8},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("ai.switch_hp_threshold", 0.30)
	v.SetDefault("ai.bench_hp_threshold", 0.50)
	v.SetDefault("simulation.base_weight", 0.8)
}
