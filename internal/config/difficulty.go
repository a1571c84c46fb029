package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // No level progression
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset parses a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset adjusts a loaded configuration for the preset.
// Normal leaves the configuration untouched.
func ApplyPreset(cfg *FruitsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.InitialInterval = scale(cfg.Spawn.InitialInterval, 1.25)
		cfg.Level.Interval = scale(cfg.Level.Interval, 1.5)
		cfg.Physics.FallSpeed *= 0.85
	case DifficultyHard:
		cfg.Spawn.InitialInterval = scale(cfg.Spawn.InitialInterval, 0.75)
		cfg.Level.Interval = scale(cfg.Level.Interval, 0.75)
		cfg.Physics.FallSpeed *= 1.2
		cfg.Spawn.MaxCombo++
	case DifficultyFixed:
		cfg.Level.Enabled = false
	}

	if cfg.Spawn.InitialInterval < cfg.Spawn.MinInterval {
		cfg.Spawn.InitialInterval = cfg.Spawn.MinInterval
	}
}

func scale(d time.Duration, k float64) time.Duration {
	return time.Duration(float64(d) * k)
}
