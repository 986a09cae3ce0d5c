// Package config provides YAML-based tuning for High Flyer, difficulty
// presets and live reloading of the tuning file.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tuning for a High Flyer session.
type Config struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Timing    TimingConfig   `yaml:"timing"`
	Backdrop  BackdropConfig `yaml:"backdrop"`
	Input     InputConfig    `yaml:"input"`
	Audio     AudioConfig    `yaml:"audio"`
}

// ScreenConfig defines the world dimensions.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the rocket.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	RotationDecay float64 `yaml:"rotation_decay"`
}

// ObstacleConfig defines the falling obstacle field.
type ObstacleConfig struct {
	Count        int     `yaml:"count"`
	Size         float64 `yaml:"size"`
	BaseSpeed    float64 `yaml:"base_speed"`
	Acceleration float64 `yaml:"acceleration"`
}

// ScoringConfig defines how fast the score grows.
type ScoringConfig struct {
	SpeedFactor float64 `yaml:"speed_factor"`
}

// TimingConfig defines frame-count based delays.
type TimingConfig struct {
	GoDelayMS       int `yaml:"go_delay_ms"`
	TitleFlashTicks int `yaml:"title_flash_ticks"`
}

// BackdropConfig defines the scrolling star field.
type BackdropConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// InputConfig defines held-key emulation for terminals.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// AudioConfig defines which cues ring the terminal bell.
type AudioConfig struct {
	Bell       bool `yaml:"bell"`
	ButtonBell bool `yaml:"button_bell"`
}

// GoDelayTicks converts the GO delay into ticks at the given rate.
func (c Config) GoDelayTicks(tickRate int) int {
	if tickRate <= 0 || c.Timing.GoDelayMS <= 0 {
		return 0
	}
	return (c.Timing.GoDelayMS*tickRate + 999) / 1000
}

// HoldTicks converts the key hold window into ticks at the given rate.
// A press is always held for at least one tick.
func (c Config) HoldTicks(tickRate int) int {
	ticks := c.Input.HoldMS * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Validate checks that the tuning describes a playable field.
func (c Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen: width and height must be positive, got %vx%v", c.Screen.Width, c.Screen.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player: width and height must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.Screen.Width || 2*c.Player.Height > c.Screen.Height {
		errs = append(errs, errors.New("player: rocket does not fit on screen"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed: must be positive, got %v", c.Player.Speed))
	}
	if c.Player.RotationDecay < 0 || c.Player.RotationDecay >= 1 {
		errs = append(errs, fmt.Errorf("player.rotation_decay: must be in [0, 1), got %v", c.Player.RotationDecay))
	}
	if c.Obstacles.Count <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.count: must be positive, got %d", c.Obstacles.Count))
	}
	if c.Obstacles.Size <= 0 || 3*c.Obstacles.Size > c.Screen.Width {
		errs = append(errs, fmt.Errorf("obstacles.size: must be positive and at most a third of the screen width, got %v", c.Obstacles.Size))
	}
	if c.Obstacles.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.base_speed: must be positive, got %v", c.Obstacles.BaseSpeed))
	}
	if c.Obstacles.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("obstacles.acceleration: must not be negative, got %v", c.Obstacles.Acceleration))
	}
	if c.Scoring.SpeedFactor < 0 {
		errs = append(errs, fmt.Errorf("scoring.speed_factor: must not be negative, got %v", c.Scoring.SpeedFactor))
	}
	if c.Timing.GoDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.go_delay_ms: must not be negative, got %d", c.Timing.GoDelayMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
