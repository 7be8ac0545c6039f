package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed assets/roster.yaml
var rosterYAML []byte

var ErrInvalidRoster = errors.New("invalid roster")

func loadYAML(b []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// DefaultRoster returns the built-in roster shared by both squads.
func DefaultRoster() (*RosterConfig, error) {
	return ParseRoster(rosterYAML)
}

func ParseRoster(b []byte) (*RosterConfig, error) {
	var rc RosterConfig
	if err := loadYAML(b, &rc); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return &rc, nil
}

func (rc *RosterConfig) Validate() error {
	if len(rc.Fighters) == 0 {
		return fmt.Errorf("%w: no fighters", ErrInvalidRoster)
	}
	for i, f := range rc.Fighters {
		switch {
		case strings.TrimSpace(f.Kind) == "":
			return fmt.Errorf("%w: fighter %d: kind is required", ErrInvalidRoster, i)
		case f.Health <= 0:
			return fmt.Errorf("%w: fighter %d (%s): health must be positive, got %d", ErrInvalidRoster, i, f.Kind, f.Health)
		case f.Damage <= 0:
			return fmt.Errorf("%w: fighter %d (%s): damage must be positive, got %d", ErrInvalidRoster, i, f.Kind, f.Damage)
		case f.Charges < 0:
			return fmt.Errorf("%w: fighter %d (%s): charges must not be negative, got %d", ErrInvalidRoster, i, f.Kind, f.Charges)
		}
	}
	return nil
}
