package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in display order.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyFixed,
}

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the tuning based on a difficulty preset.
// Normal leaves the loaded tuning untouched; fixed disables the speed ramp.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.BaseSpeed *= 0.8
		cfg.Obstacles.Acceleration *= 0.5
		cfg.Obstacles.Count = max(cfg.Obstacles.Count-3, 1)
	case DifficultyHard:
		cfg.Obstacles.BaseSpeed *= 1.2
		cfg.Obstacles.Acceleration *= 1.5
		cfg.Obstacles.Count += 4
	case DifficultyFixed:
		cfg.Obstacles.Acceleration = 0
	}
}
