package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.Grid.LonCount())
	assert.Equal(t, 7, cfg.Grid.LatCount())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Scenarios)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("REPSHAPE_LOG_LEVEL", "")
	t.Setenv("REPSHAPE_LOG_FORMAT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("REPSHAPE_LOG_LEVEL", "")
	t.Setenv("REPSHAPE_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "nested", "repshape.yaml")
	cfg := DefaultConfig()
	cfg.Grid.Distance = 2.5
	cfg.Concurrency = 2
	cfg.Scenarios = []ScenarioConfig{
		{Name: "chain", Steps: []StepConfig{{Op: "transpose"}, {Op: "reshape", Args: []int{42}}}},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("REPSHAPE_LOG_LEVEL", "")
	t.Setenv("REPSHAPE_LOG_FORMAT", "")

	path := filepath.Join(t.TempDir(), "repshape.yaml")
	data := `grid:
  lat_start: -60
  lat_stop: 61
  lat_step: 60
scenarios:
  - name: ravel only
    steps:
      - op: ravel
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Grid.LatCount())
	assert.Equal(t, 6, cfg.Grid.LonCount())
	assert.Equal(t, 1.0, cfg.Grid.Distance)
	require.Len(t, cfg.Scenarios, 1)
	assert.Equal(t, "ravel", cfg.Scenarios[0].Steps[0].Op)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [unterminated"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("REPSHAPE_LOG_LEVEL", "debug")
	t.Setenv("REPSHAPE_LOG_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lon step", func(c *Config) { c.Grid.LonStep = 0 }},
		{"empty lat range", func(c *Config) { c.Grid.LatStop = c.Grid.LatStart }},
		{"latitude past pole", func(c *Config) { c.Grid.LatStop = 121 }},
		{"latitude below pole", func(c *Config) { c.Grid.LatStart = -120 }},
		{"negative distance", func(c *Config) { c.Grid.Distance = -1 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }},
		{"negative concurrency", func(c *Config) { c.Concurrency = -1 }},
		{"unnamed scenario", func(c *Config) { c.Scenarios[0].Name = "" }},
		{"duplicate scenario", func(c *Config) { c.Scenarios[1].Name = c.Scenarios[0].Name }},
		{"empty scenario", func(c *Config) { c.Scenarios[0].Steps = nil }},
		{"step without op", func(c *Config) { c.Scenarios[0].Steps[0].Op = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
