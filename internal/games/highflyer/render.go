package highflyer

import (
	"fmt"

	"github.com/vovakirdan/high-flyer/internal/core"
)

// Visual characters for rendering
const (
	StarChar        = '·'
	ObstacleChar    = '■'
	RocketBody      = '█'
	RocketNose      = '▲'
	RocketNoseLeft  = '◤'
	RocketNoseRight = '◥'
	RocketFlame     = '▼'
	ButtonFill      = '▒'
)

// instructionsText is shown on the instructions screen.
const instructionsText = "Dodge the falling squares as you fly higher and higher. " +
	"Hold the left and right arrow keys (or A and D) to move sideways. " +
	"Every square that gets past you comes back faster, and so does your score. " +
	"Press P to pause. Good luck!"

// noseTilt is the angle past which the rocket is drawn leaning.
const noseTilt = 10.0

// Render draws the current screen. The world is scaled to fit dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, dst.Width(), dst.Height())

	switch g.mode {
	case ModeHome:
		g.drawBackdrop(dst, vp)
		g.drawHome(dst, vp)
	case ModeInstructions:
		g.drawInstructions(dst, vp)
	case ModePlaying:
		g.drawBackdrop(dst, vp)
		g.drawPlaying(dst, vp)
	case ModeGameOver:
		g.drawGameOver(dst, vp)
	}
}

// drawBackdrop scatters stars that scroll down with the field.
func (g *Game) drawBackdrop(dst *core.Screen, vp core.Viewport) {
	_, offset := vp.ToCell(0, g.scroll)
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if ((x*31+(y-offset)*17)%53+53)%53 == 0 {
				dst.SetColored(x, y, StarChar, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawHome(dst *core.Screen, vp core.Viewport) {
	title := g.layout.Title
	if g.titleAlt {
		title.Color = core.ColorOrange
	}
	g.drawButton(dst, vp, title)
	g.drawButton(dst, vp, g.layout.Start)
	g.drawButton(dst, vp, g.layout.Instructions)

	if g.best > 0 {
		dst.DrawTextColored(1, 0, fmt.Sprintf("BEST: %d", g.best), core.ColorYellow)
	}
}

func (g *Game) drawInstructions(dst *core.Screen, vp core.Viewport) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	area := vp.RectToCells(core.NewRectF(w/40, h/30, w-w/20, h*3/4-h/15))
	dst.DrawTextWrapped(area, instructionsText, core.ColorWhite)
	g.drawButton(dst, vp, g.layout.Home)
}

func (g *Game) drawPlaying(dst *core.Screen, vp core.Viewport) {
	if g.goTicks > 0 {
		dst.DrawTextIn(core.NewRect(0, 0, dst.Width(), dst.Height()), "GO!", core.ColorBrightGreen)
		return
	}

	for _, o := range g.obstacles {
		dst.DrawRectColored(vp.RectToCells(o.Rect()), ObstacleChar, core.ColorBrightBlue)
	}
	g.drawRocket(dst, vp)

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE: %d", g.score), core.ColorWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawRocket renders the player: a nose that leans with the angle, a body
// and a flame underneath.
func (g *Game) drawRocket(dst *core.Screen, vp core.Viewport) {
	r := vp.RectToCells(g.player.Rect())

	nose := RocketNose
	switch {
	case g.player.Angle > noseTilt:
		nose = RocketNoseLeft
	case g.player.Angle < -noseTilt:
		nose = RocketNoseRight
	}

	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, nose, core.ColorWhite)
		for y := r.Y + 1; y < r.Bottom(); y++ {
			dst.SetColored(x, y, RocketBody, core.ColorWhite)
		}
		if r.H > 1 {
			dst.SetColored(x, r.Bottom()-1, RocketFlame, core.ColorOrange)
		}
	}
}

func (g *Game) drawGameOver(dst *core.Screen, vp core.Viewport) {
	h := dst.Height()
	full := core.NewRect(0, 0, dst.Width(), 1)

	full.Y = h / 6
	dst.DrawTextIn(full, "GAME OVER", core.ColorGreen)
	full.Y = h / 3
	dst.DrawTextIn(full, fmt.Sprintf("SCORE: %d", g.score), core.ColorWhite)
	full.Y = h/3 + 2
	dst.DrawTextIn(full, fmt.Sprintf("BEST: %d", g.best), core.ColorYellow)

	g.drawButton(dst, vp, g.layout.Retry)
	g.drawButton(dst, vp, g.layout.Quit)
}

// drawButton fills the button's cells and writes its label in the middle.
func (g *Game) drawButton(dst *core.Screen, vp core.Viewport, b Button) {
	r := vp.RectToCells(b.Bounds)
	dst.DrawRectColored(r, ButtonFill, b.Color)
	dst.DrawTextIn(r, " "+b.Label+" ", core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextIn(core.NewRect(box.X, box.Y+1, box.W, 1), title, core.ColorDefault)
	dst.DrawTextIn(core.NewRect(box.X, box.Y+3, box.W, 1), subtitle, core.ColorDefault)
}
