package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds runtime wiring options for building the app. Environment
// variables provide defaults; command-line flags override them.
type Config struct {
	Strategy   string `env:"FAIRDICE_STRATEGY" envDefault:"counter"` // random | counter
	MaxRetries int    `env:"FAIRDICE_MAX_RETRIES" envDefault:"3"`    // 0 = unlimited
	LogLevel   string `env:"FAIRDICE_LOG_LEVEL" envDefault:"warn"`   // zerolog level name
	DiceFile   string `env:"FAIRDICE_DICE_FILE"`                     // optional YAML dice file
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks values that flags and environment cannot constrain.
func (c Config) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must be >= 0, got %d", c.MaxRetries)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return nil
}
