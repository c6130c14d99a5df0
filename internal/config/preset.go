package config

import (
	"fmt"
	"time"
)

// Preset is a named, fixed game setup. Presets pick the board and pace
// before a game starts; the pace never changes during play.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// Presets lists the known presets in display order.
var Presets = []Preset{PresetEasy, PresetNormal, PresetHard}

// ParsePreset converts a flag value into a Preset. An empty string means no preset.
func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case "", PresetEasy, PresetNormal, PresetHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config according to a preset.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.BoardSize = 24
		cfg.TickInterval = 300 * time.Millisecond
	case PresetNormal:
		def := DefaultGameConfig()
		cfg.BoardSize = def.BoardSize
		cfg.TickInterval = def.TickInterval
	case PresetHard:
		cfg.BoardSize = 16
		cfg.TickInterval = 120 * time.Millisecond
	}
}
