// Package config provides YAML-based game configuration loading, presets and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MinBoardSize is the smallest board that fits the three-segment starting
// snake: the tail sits two cells left of the centre column, at n/2-2.
const MinBoardSize = 4

// GameConfig contains all configuration for a snake session.
type GameConfig struct {
	BoardSize    int           `yaml:"board_size"`
	TickInterval time.Duration `yaml:"tick_interval"`
	MaxScore     int           `yaml:"max_score"`
}

// Validate rejects configurations the engine cannot run.
func (c GameConfig) Validate() error {
	if c.BoardSize < MinBoardSize {
		return fmt.Errorf("config: %w: board_size must be >= %d, got %d", ErrInvalidConfig, MinBoardSize, c.BoardSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: %w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.MaxScore <= 0 {
		return fmt.Errorf("config: %w: max_score must be positive, got %d", ErrInvalidConfig, c.MaxScore)
	}
	return nil
}

// Overrides holds command-line values that replace loaded settings.
// Zero fields leave the loaded value untouched.
type Overrides struct {
	BoardSize    int
	TickInterval time.Duration
	MaxScore     int
}

// Source is a loaded configuration together with the command-line overrides
// that must survive any preset chosen later.
type Source struct {
	Base      GameConfig
	Overrides Overrides
}

// Resolve applies preset to the base config, then the overrides, and
// validates the result. Overrides win over the preset.
func (s Source) Resolve(preset Preset) (GameConfig, error) {
	cfg := s.Base
	ApplyPreset(&cfg, preset)
	cfg = s.Overrides.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Apply returns a copy of c with the non-zero overrides applied.
func (o Overrides) Apply(c GameConfig) GameConfig {
	if o.BoardSize != 0 {
		c.BoardSize = o.BoardSize
	}
	if o.TickInterval != 0 {
		c.TickInterval = o.TickInterval
	}
	if o.MaxScore != 0 {
		c.MaxScore = o.MaxScore
	}
	return c
}
