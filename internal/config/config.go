package config

import (
	"errors"
	"fmt"
	"strings"
)

// Config represents the application configuration
type Config struct {
	Packages []Package
}

// Package is one raw reading from a fitness sensor: a workout code
// followed by its positional values
type Package struct {
	Code string
	Data []float64
}

// ErrNoPackages is returned when there is nothing to process
var ErrNoPackages = errors.New("no sensor packages configured")

// DefaultConfig returns the sample batch processed on every run
func DefaultConfig() Config {
	return Config{
		Packages: []Package{
			{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			{Code: "RUN", Data: []float64{15000, 1, 75}},
			{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
		},
	}
}

// Validate checks that every package is addressed to some workout type.
// Whether the code is recognised is decided when the package is read.
func (c *Config) Validate() error {
	if len(c.Packages) == 0 {
		return ErrNoPackages
	}
	for i, p := range c.Packages {
		if strings.TrimSpace(p.Code) == "" {
			return fmt.Errorf("packages[%d].code is required", i)
		}
		if len(p.Data) == 0 {
			return fmt.Errorf("packages[%d] (%s) has no data", i, p.Code)
		}
	}
	return nil
}
