package config

import (
	_ "embed"
)

//go:embed defaults/highflyer.yaml
var defaultYAML []byte

// Default returns the built-in High Flyer tuning.
// It matches defaults/highflyer.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:         25,
			Height:        50,
			Speed:         7.5,
			RotationDecay: 0.5,
		},
		Obstacles: ObstacleConfig{
			Count:        10,
			Size:         20,
			BaseSpeed:    7.5,
			Acceleration: 0.75,
		},
		Scoring: ScoringConfig{
			SpeedFactor: 0.01,
		},
		Timing: TimingConfig{
			GoDelayMS:       500,
			TitleFlashTicks: 15,
		},
		Backdrop: BackdropConfig{
			ScrollSpeed: 7.5,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Audio: AudioConfig{
			Bell:       true,
			ButtonBell: false,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultYAML
}
