package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"knot-chain/pkg/rope"
)

// Config holds the settings of a batch of rope runs.
type Config struct {
	// Chain lengths to simulate over the same command stream.
	Knots []int `yaml:"knots"`

	// Input is the command file; empty or "-" reads stdin.
	Input string `yaml:"input"`

	// VisitedCapacity is the initial size hint for each visited set.
	VisitedCapacity int `yaml:"visited_capacity"`

	// Workers bounds how many chain lengths run at once.
	Workers int `yaml:"workers"`

	// Checked verifies the adjacency invariant after every elementary step.
	Checked bool `yaml:"checked"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the two chain lengths the puzzle asks about.
func DefaultConfig() *Config {
	return &Config{
		Knots:           []int{2, 10},
		VisitedCapacity: rope.DefaultVisitedCapacity,
		Workers:         max(runtime.NumCPU(), 1),
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads a YAML config on top of the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects settings no run could satisfy.
func (c *Config) Validate() error {
	if len(c.Knots) == 0 {
		return errors.New("config: at least one chain length is required")
	}
	for _, n := range c.Knots {
		if n < 1 {
			return fmt.Errorf("config: %w: got %d", rope.ErrInvalidLength, n)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}
	return nil
}
