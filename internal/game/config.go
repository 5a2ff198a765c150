package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultMaxTurns bounds a run when no ceiling is configured.
const DefaultMaxTurns = 1000

// Config holds game configuration options.
type Config struct {
	// MaxTurns ends the run after this many rounds.
	MaxTurns int `env:"WARRIORTOWER_MAX_TURNS" envDefault:"1000"`
	// Echo copies narration to the standard logger.
	Echo bool `env:"WARRIORTOWER_ECHO" envDefault:"false"`
}

// DefaultConfig returns the configuration used when the environment sets nothing.
func DefaultConfig() Config {
	return Config{MaxTurns: DefaultMaxTurns}
}

// ParseConfig loads configuration from environment variables.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("WARRIORTOWER_MAX_TURNS must be positive, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}
