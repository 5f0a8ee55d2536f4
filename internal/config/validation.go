package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation error
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the configuration for values the commands cannot work with
func Validate(config *Config) error {
	if err := config.Calc.Validate(); err != nil {
		return fmt.Errorf("calc: %w", err)
	}
	if err := config.Pow.Validate(); err != nil {
		return fmt.Errorf("pow: %w", err)
	}
	if err := config.Check.Validate(); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	return nil
}

// Validate validates the calculator configuration
func (c *CalcConfig) Validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive, got %d: %w", c.CacheSize, ErrInvalidConfig)
	}
	return nil
}

// Validate validates the exponentiation configuration
func (c *PowConfig) Validate() error {
	if c.OutFile == "" {
		return fmt.Errorf("out_file is required: %w", ErrInvalidConfig)
	}
	return nil
}

// Validate validates the differential check configuration
func (c *CheckConfig) Validate() error {
	switch {
	case c.Iterations <= 0:
		return fmt.Errorf("iterations must be positive, got %d: %w", c.Iterations, ErrInvalidConfig)
	case c.Range <= 0:
		return fmt.Errorf("range must be positive, got %d: %w", c.Range, ErrInvalidConfig)
	case c.Range > 1<<31:
		// products of the native phase must fit into int64
		return fmt.Errorf("range must not exceed %d, got %d: %w", int64(1)<<31, c.Range, ErrInvalidConfig)
	case c.Digits < 0:
		return fmt.Errorf("digits must not be negative, got %d: %w", c.Digits, ErrInvalidConfig)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, ErrInvalidConfig)
	case c.ErrorsFile == "":
		return fmt.Errorf("errors_file is required: %w", ErrInvalidConfig)
	}
	return nil
}
