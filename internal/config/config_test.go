package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		AI: AIConfig{
			SwitchHPThreshold: 0.30,
			BenchHPThreshold:  0.50,
		},
		Simulation: SimulationConfig{
			BaseWeight: 0.8,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
ai:
  switch_hp_threshold: 0.25
  bench_hp_threshold: 0.6
simulation:
  base_weight: 0.9
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 0.25, cfg.AI.SwitchHPThreshold)
	assert.Equal(t, 0.6, cfg.AI.BenchHPThreshold)
	assert.Equal(t, 0.9, cfg.Simulation.BaseWeight)
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: warn
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 0.30, cfg.AI.SwitchHPThreshold)
	assert.Equal(t, 0.50, cfg.AI.BenchHPThreshold)
	assert.Equal(t, 0.8, cfg.Simulation.BaseWeight)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
ai:
  switch_hp_threshold: 1.5
`), 0644)
	require.NoError(t, err)

	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateAIThresholds(t *testing.T) {
	cfg := validConfig()
	cfg.AI.SwitchHPThreshold = -0.1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.AI.BenchHPThreshold = 1.1
	assert.Error(t, cfg.Validate())
}

func TestValidateSimulationBaseWeight(t *testing.T) {
	cfg := validConfig()
	cfg.Simulation.BaseWeight = -0.1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Simulation.BaseWeight = 1.1
	assert.Error(t, cfg.Validate())
}

// Property-based tests

func TestPropertyValidThresholds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.AI.SwitchHPThreshold = rapid.Float64Range(0, 1).Draw(t, "switch")
		cfg.AI.BenchHPThreshold = rapid.Float64Range(0, 1).Draw(t, "bench")
		cfg.Simulation.BaseWeight = rapid.Float64Range(0, 1).Draw(t, "weight")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid thresholds rejected: %v", err)
		}
	})
}

func TestPropertyInvalidBaseWeight(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		// Generate weights outside the valid range
		weight := rapid.OneOf(
			rapid.Float64Range(-100, -0.001),
			rapid.Float64Range(1.001, 100),
		).Draw(t, "weight")
		cfg := validConfig()
		cfg.Simulation.BaseWeight = weight
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid base weight %v accepted", weight)
		}
	})
}
