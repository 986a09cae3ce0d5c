package highflyer

import (
	"math"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/core"
)

// Player is the rocket. Position is the top-left corner in world units.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Horizontal distance per tick
	Angle         float64 // Cosmetic tilt in degrees, positive leans left
}

// NewPlayer places a rocket at mid-screen, two rocket-heights above the bottom.
// A rocket too wide to start there is pulled back inside the right wall.
func NewPlayer(cfg config.Config) Player {
	return Player{
		X:      core.ClampF(cfg.Screen.Width/2, 0, math.Max(cfg.Screen.Width-cfg.Player.Width, 0)),
		Y:      cfg.Screen.Height - 2*cfg.Player.Height,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Speed:  cfg.Player.Speed,
	}
}

// Rect returns the rocket's collision box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Move applies one tick of held input. The rocket stays within [0, screenW-Width];
// pressing into a wall does not move it. Left wins when both directions can move.
// While moving the angle snaps to ±tilt, otherwise it decays by the given factor.
func (p *Player) Move(left, right bool, screenW, tilt, decay float64) {
	maxX := math.Max(screenW-p.Width, 0)
	p.X = core.ClampF(p.X, 0, maxX)

	if left {
		if x := core.ClampF(p.X-p.Speed, 0, maxX); x != p.X {
			p.X = x
			p.Angle = tilt
			return
		}
	}
	if right {
		if x := core.ClampF(p.X+p.Speed, 0, maxX); x != p.X {
			p.X = x
			p.Angle = -tilt
			return
		}
	}

	p.Angle *= decay
}

// tiltAngle is the lean of a moving rocket: the angle of its flight path when
// it moves sideways at the player speed while the field scrolls at base speed.
func tiltAngle(cfg config.Config) float64 {
	return 90 - math.Atan(cfg.Obstacles.BaseSpeed/cfg.Player.Speed)*180/math.Pi
}
