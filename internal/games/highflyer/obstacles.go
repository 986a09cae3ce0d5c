package highflyer

import (
	"math/rand"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/core"
)

// Obstacle is a falling square. Obstacles are recycled to the top of the
// screen instead of being destroyed, getting faster each time.
type Obstacle struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Size, o.Size)
}

// Fall advances the obstacle by one tick. An obstacle that reaches the bottom
// edge (or is somehow outside [0, screenH)) is recycled in the same tick:
// new random x, y back to 0, speed permanently increased by accel.
func (o *Obstacle) Fall(rng *rand.Rand, screenW, screenH, accel float64) (recycled bool) {
	if o.Y >= 0 && o.Y < screenH {
		o.Y += o.Speed
	}
	if o.Y >= 0 && o.Y < screenH {
		return false
	}

	o.X = spawnX(rng, o.Size, screenW)
	o.Y = 0
	o.Speed += accel
	return true
}

// spawnX picks a uniform x in [size, screenW-2*size].
func spawnX(rng *rand.Rand, size, screenW float64) float64 {
	lo, hi := size, screenW-2*size
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// NewObstacles creates the round's obstacle field at y=0 and base speed.
func NewObstacles(cfg config.Config, rng *rand.Rand) []Obstacle {
	obstacles := make([]Obstacle, cfg.Obstacles.Count)
	for i := range obstacles {
		obstacles[i] = Obstacle{
			X:     spawnX(rng, cfg.Obstacles.Size, cfg.Screen.Width),
			Y:     0,
			Size:  cfg.Obstacles.Size,
			Speed: cfg.Obstacles.BaseSpeed,
		}
	}
	return obstacles
}

// Collides reports whether the rocket overlaps any obstacle.
func Collides(p Player, obstacles []Obstacle) bool {
	pr := p.Rect()
	for _, o := range obstacles {
		if pr.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
