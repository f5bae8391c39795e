// Package config loads and validates repshape configuration.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Grid        GridConfig       `yaml:"grid"`
	Scenarios   []ScenarioConfig `yaml:"scenarios"`
	Logging     LoggingConfig    `yaml:"logging"`
	Concurrency int              `yaml:"concurrency"` // fixtures evaluated at once; 0 = unlimited
}

// GridConfig describes the coordinate grid the fixtures are built from.
// Longitudes run down the first axis and latitudes along the second.
type GridConfig struct {
	LonStart float64 `yaml:"lon_start"` // hourangle
	LonStop  float64 `yaml:"lon_stop"`
	LonStep  float64 `yaml:"lon_step"`
	LatStart float64 `yaml:"lat_start"` // deg
	LatStop  float64 `yaml:"lat_stop"`
	LatStep  float64 `yaml:"lat_step"`
	Distance float64 `yaml:"distance"` // kpc
}

// ScenarioConfig is a named chain of operations applied to every fixture.
type ScenarioConfig struct {
	Name  string       `yaml:"name"`
	Steps []StepConfig `yaml:"steps"`
}

// StepConfig is one operation of a scenario. The meaning of Args depends on
// the operation: a shape for reshape, axes for transpose, indices for take.
type StepConfig struct {
	Op   string `yaml:"op"`
	Args []int  `yaml:"args,omitempty"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration: the 6 x 7 grid of
// longitudes 0h..20h and latitudes -90..90 deg at 1 kpc, and one scenario
// per container operation.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			LonStart: 0, LonStop: 24, LonStep: 4,
			LatStart: -90, LatStop: 91, LatStep: 30,
			Distance: 1,
		},
		Scenarios: []ScenarioConfig{
			{Name: "ravel", Steps: []StepConfig{{Op: "ravel"}}},
			{Name: "flatten", Steps: []StepConfig{{Op: "flatten"}}},
			{Name: "copy", Steps: []StepConfig{{Op: "copy"}}},
			{Name: "transpose", Steps: []StepConfig{{Op: "transpose"}}},
			{Name: "diagonal", Steps: []StepConfig{{Op: "diagonal"}}},
			{Name: "swapaxes", Steps: []StepConfig{{Op: "swapaxes", Args: []int{0, 1}}}},
			{Name: "reshape (3, 2, 7)", Steps: []StepConfig{{Op: "reshape", Args: []int{3, 2, 7}}}},
			{Name: "reshape (3, 14)", Steps: []StepConfig{{Op: "reshape", Args: []int{3, 14}}}},
			{Name: "squeeze", Steps: []StepConfig{
				{Op: "reshape", Args: []int{3, 1, 2, 1, 7}},
				{Op: "squeeze"},
			}},
			{Name: "add axis", Steps: []StepConfig{{Op: "expand_dims", Args: []int{1}}}},
			{Name: "take", Steps: []StepConfig{{Op: "take", Args: []int{1, 5}}}},
			{Name: "broadcast", Steps: []StepConfig{
				{Op: "expand_dims", Args: []int{1}},
				{Op: "broadcast_to", Args: []int{6, 4, 7}},
			}},
			{Name: "set shape (2, 3, 7)", Steps: []StepConfig{{Op: "set_shape", Args: []int{2, 3, 7}}}},
			{Name: "set shape (42,)", Steps: []StepConfig{{Op: "set_shape", Args: []int{42}}}},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("REPSHAPE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("REPSHAPE_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted logging formats.
var ValidLogFormats = []string{"json", "console"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Grid.validate(); err != nil {
		return err
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalidConfig, c.Logging.Level, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("%w: log format %q (valid: %v)", ErrInvalidConfig, c.Logging.Format, ValidLogFormats)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative, got %d", ErrInvalidConfig, c.Concurrency)
	}

	seen := make(map[string]bool, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("%w: scenario %d has no name", ErrInvalidConfig, i)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate scenario %q", ErrInvalidConfig, s.Name)
		}
		seen[s.Name] = true
		if len(s.Steps) == 0 {
			return fmt.Errorf("%w: scenario %q has no steps", ErrInvalidConfig, s.Name)
		}
		for j, step := range s.Steps {
			if step.Op == "" {
				return fmt.Errorf("%w: scenario %q step %d has no op", ErrInvalidConfig, s.Name, j)
			}
		}
	}
	return nil
}

func (g GridConfig) validate() error {
	if g.LonStep <= 0 || g.LatStep <= 0 {
		return fmt.Errorf("%w: grid steps must be positive", ErrInvalidConfig)
	}
	if g.LonStop <= g.LonStart || g.LatStop <= g.LatStart {
		return fmt.Errorf("%w: grid ranges must not be empty", ErrInvalidConfig)
	}
	if g.LatStart < -90 || g.LatStart > 90 {
		return fmt.Errorf("%w: lat_start %v outside [-90, 90]", ErrInvalidConfig, g.LatStart)
	}
	if last := g.LatStart + g.LatStep*float64(g.LatCount()-1); last > 90 {
		return fmt.Errorf("%w: last latitude %v exceeds 90", ErrInvalidConfig, last)
	}
	if g.Distance <= 0 {
		return fmt.Errorf("%w: distance must be positive, got %v", ErrInvalidConfig, g.Distance)
	}
	return nil
}

// LonCount returns the number of longitudes in the grid.
func (g GridConfig) LonCount() int {
	return count(g.LonStart, g.LonStop, g.LonStep)
}

// LatCount returns the number of latitudes in the grid.
func (g GridConfig) LatCount() int {
	return count(g.LatStart, g.LatStop, g.LatStep)
}

func count(start, stop, step float64) int {
	if step <= 0 || stop <= start {
		return 0
	}
	return int(math.Ceil((stop - start) / step))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
