package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces the game's environment variables.
const envPrefix = "PIXELRESTAURANT_"

// Config holds game configuration options.
type Config struct {
	// StepInterval is the time between two steps of the walk.
	StepInterval time.Duration `env:"STEP_INTERVAL" envDefault:"200ms"`
	// PathPreview is how long the route is shown before anyone moves.
	PathPreview time.Duration `env:"PATH_PREVIEW" envDefault:"1s"`
	// Followers is the number of guests walking behind the waiter.
	Followers int `env:"FOLLOWERS" envDefault:"2"`
	// Layout names the embedded layout file, without extension.
	Layout string `env:"LAYOUT" envDefault:"restaurant"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		StepInterval: 200 * time.Millisecond,
		PathPreview:  time.Second,
		Followers:    2,
		Layout:       "restaurant",
	}
}

// LoadConfig reads PIXELRESTAURANT_* environment variables over the defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	var errs []error
	if c.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("step interval must be positive, got %s", c.StepInterval))
	}
	if c.PathPreview < 0 {
		errs = append(errs, fmt.Errorf("path preview must not be negative, got %s", c.PathPreview))
	}
	if c.Followers < 0 {
		errs = append(errs, fmt.Errorf("followers must not be negative, got %d", c.Followers))
	}
	if c.Layout == "" {
		errs = append(errs, errors.New("layout name is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("game: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
