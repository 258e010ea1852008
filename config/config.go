// Package config provides file- and environment-driven configuration for the
// volcano command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid")

// MaxWorkers caps the worker count accepted from any source.
const MaxWorkers = 64

// Config holds all command configuration values.
type Config struct {
	Input       string `yaml:"input"`
	Start       string `yaml:"start"`
	Budget      int    `yaml:"budget"`
	TeamBudget  int    `yaml:"team_budget"`
	Workers     int    `yaml:"workers"`
	Bound       bool   `yaml:"bound"`
	LogLevel    string `yaml:"log_level"`
	Format      string `yaml:"format"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Start:      "AA",
		Budget:     30,
		TeamBudget: 26,
		Workers:    1,
		Bound:      true,
		LogLevel:   "info",
		Format:     "text",
	}
}

// Load layers defaults, the YAML file at path (skipped when path is empty)
// and VOLCANO_* environment variables, in that order, and validates the
// result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Input = envOrDefault("VOLCANO_INPUT", c.Input)
	c.Start = envOrDefault("VOLCANO_START", c.Start)
	c.LogLevel = envOrDefault("VOLCANO_LOG_LEVEL", c.LogLevel)
	c.Format = envOrDefault("VOLCANO_FORMAT", c.Format)
	c.MetricsFile = envOrDefault("VOLCANO_METRICS_FILE", c.MetricsFile)

	ints := []struct {
		key string
		dst *int
	}{
		{"VOLCANO_BUDGET", &c.Budget},
		{"VOLCANO_TEAM_BUDGET", &c.TeamBudget},
		{"VOLCANO_WORKERS", &c.Workers},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalid, v.key, raw)
		}
		*v.dst = n
	}

	if raw, ok := os.LookupEnv("VOLCANO_BOUND"); ok && raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: VOLCANO_BOUND must be a boolean, got %q", ErrInvalid, raw)
		}
		c.Bound = b
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
