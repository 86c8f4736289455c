package scaffold

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the conventional location of generated presenters.
type Config struct {
	Dir     string `env:"PRESENTER_DIR"     envDefault:"presenters"`
	Package string `env:"PRESENTER_PACKAGE" envDefault:"presenters"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
