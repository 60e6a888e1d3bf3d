// Package config loads the optional .md2note.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2note/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidWorkers = errors.New("invalid worker count")
	ErrEmptyExclude   = errors.New("exclude pattern cannot be empty")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Limits for config fields.
const (
	MaxWorkers       = 32  // sane upper bound for parallel file conversion
	MaxPatternLength = 256 // exclusion substrings are file name fragments
)

// Config holds all configuration for a conversion run. CLI flags override
// any value set here.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Exclude []string      `yaml:"exclude"`
	Convert ConvertConfig `yaml:"convert"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Used when no directory argument is given
}

// ConvertConfig defines conversion run options.
type ConvertConfig struct {
	DryRun  bool `yaml:"dryRun"`  // Compute everything, write nothing
	Verbose bool `yaml:"verbose"` // Surface info-level diagnostics
	Workers int  `yaml:"workers"` // Parallel workers (0 = auto)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks bounds on config values. Called by LoadConfig, but
// available to consumers who construct Config manually.
func (c *Config) Validate() error {
	if c.Convert.Workers < 0 || c.Convert.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d, 0 means auto)", ErrInvalidWorkers, c.Convert.Workers, MaxWorkers)
	}
	for i, pattern := range c.Exclude {
		if pattern == "" {
			return fmt.Errorf("%w: exclude[%d]", ErrEmptyExclude, i)
		}
		if len(pattern) > MaxPatternLength {
			return fmt.Errorf("%w: exclude[%d] (%d chars, max %d)", ErrFieldTooLong, i, len(pattern), MaxPatternLength)
		}
	}
	return nil
}
