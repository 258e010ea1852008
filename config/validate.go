package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate reports the first unusable value, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	if c.Start == "" {
		return fmt.Errorf("%w: start node is required", ErrInvalid)
	}
	if c.Budget < 0 {
		return fmt.Errorf("%w: budget must be non-negative, got %d", ErrInvalid, c.Budget)
	}
	if c.TeamBudget < 0 {
		return fmt.Errorf("%w: team budget must be non-negative, got %d", ErrInvalid, c.TeamBudget)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 1 and %d, got %d", ErrInvalid, MaxWorkers, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	switch c.Format {
	case "text", "json", "pretty":
	default:
		return fmt.Errorf("%w: format must be text, json or pretty, got %q", ErrInvalid, c.Format)
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}

	return lvl, nil
}
