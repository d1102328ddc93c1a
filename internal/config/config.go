// Package config loads puzzlekit settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = ".puzzlekit/config.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents puzzlekit configuration options
type Config struct {
	// InputDir is the directory holding dayNN.txt input files
	InputDir string `yaml:"input_dir"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Parallelism is how many days may run at once (1 = sequential)
	Parallelism int `yaml:"parallelism"`

	// NoColor disables colored answers even on a terminal
	NoColor bool `yaml:"no_color"`

	// Days restricts a run to these days when none are given on the command line
	Days []int `yaml:"days"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		InputDir:    "./input",
		LogLevel:    "warn",
		Parallelism: 1,
		NoColor:     false,
		Days:        nil,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed or invalid, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields absent from the file keep their defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn or error)", ErrInvalidConfig, c.LogLevel)
	}
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalidConfig)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism %d must be at least 1", ErrInvalidConfig, c.Parallelism)
	}
	for _, d := range c.Days {
		if d < 1 || d > 25 {
			return fmt.Errorf("%w: day %d out of range 1..25", ErrInvalidConfig, d)
		}
	}

	return nil
}
