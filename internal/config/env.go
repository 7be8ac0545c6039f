package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the runtime knobs of a run. Fighter stats are not among them.
type Settings struct {
	Seed      int64  `env:"WARSIM_SEED" envDefault:"0"`
	Lang      string `env:"WARSIM_LANG" envDefault:"en"`
	LogLevel  string `env:"WARSIM_LOG_LEVEL" envDefault:"warn"`
	Out       string `env:"WARSIM_OUT"`
	MaxRounds int    `env:"WARSIM_MAX_ROUNDS" envDefault:"0"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.MaxRounds < 0 {
		return Settings{}, fmt.Errorf("WARSIM_MAX_ROUNDS must not be negative, got %d", s.MaxRounds)
	}
	return s, nil
}
