// Package config provides configuration management for the campaign cleaner.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the cleaner looks for a configuration file when run.
const DefaultPath = "configs/cleaner.yaml"

// Defaults used when no configuration file is present.
const (
	DefaultInputDir       = "files/input"
	DefaultOutputDir      = "files/output"
	DefaultArchivePattern = "*.csv.zip"
	DefaultAssumedYear    = 2022
	DefaultLogLevel       = "info"
)

// Configuration validation errors.
var (
	ErrMissingInputDir       = errors.New("pipeline.input_dir is required")
	ErrMissingOutputDir      = errors.New("pipeline.output_dir is required")
	ErrSameInputOutputDir    = errors.New("pipeline.input_dir and pipeline.output_dir must differ")
	ErrMissingArchivePattern = errors.New("pipeline.archive_pattern is required")
	ErrInvalidArchivePattern = errors.New("pipeline.archive_pattern is not a valid glob")
	ErrInvalidAssumedYear    = errors.New("pipeline.assumed_year must be between 1 and 9999")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete cleaner configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig locates the input archives and the output tables.
type PipelineConfig struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	ArchivePattern string `yaml:"archive_pattern"`
	AssumedYear    int    `yaml:"assumed_year"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			InputDir:       DefaultInputDir,
			OutputDir:      DefaultOutputDir,
			ArchivePattern: DefaultArchivePattern,
			AssumedYear:    DefaultAssumedYear,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of Default.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	return LoadConfig(path)
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	p := c.Pipeline

	if p.InputDir == "" {
		return ErrMissingInputDir
	}

	if p.OutputDir == "" {
		return ErrMissingOutputDir
	}

	if filepath.Clean(p.InputDir) == filepath.Clean(p.OutputDir) {
		return ErrSameInputOutputDir
	}

	if p.ArchivePattern == "" {
		return ErrMissingArchivePattern
	}

	if _, err := filepath.Match(p.ArchivePattern, ""); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArchivePattern, err)
	}

	if p.AssumedYear < 1 || p.AssumedYear > 9999 {
		return ErrInvalidAssumedYear
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Pattern: %s, Year: %d}",
		c.Pipeline.InputDir,
		c.Pipeline.OutputDir,
		c.Pipeline.ArchivePattern,
		c.Pipeline.AssumedYear,
	)
}
