package highflyer

import (
	"github.com/vovakirdan/high-flyer/internal/core"
)

// Button is a clickable screen region that can also be triggered from the keyboard.
type Button struct {
	Label   string
	Bounds  core.RectF // World units
	Color   core.Color
	Hotkeys []core.Action
}

// Activated reports whether the frame presses this button, either by a
// pointer press inside its bounds (edges included) or by one of its hotkeys.
func (b Button) Activated(in core.InputFrame, vp core.Viewport) bool {
	for _, p := range in.Clicks {
		x, y := vp.ToWorld(p.Col, p.Row)
		if b.Bounds.Contains(x, y) {
			return true
		}
	}
	for _, a := range b.Hotkeys {
		if in.Has(a) {
			return true
		}
	}
	return false
}

// Layout holds every button of the game, sized for one world.
type Layout struct {
	Title        Button
	Start        Button
	Instructions Button
	Home         Button
	Retry        Button
	Quit         Button
}

// NewLayout places the buttons for a w x h world. On the default 800x600
// world the boxes are title (0,50,800,200), start (200,300,400,100),
// instructions and home (200,450,400,100), retry (100,400,250,150) and
// quit (450,400,250,150).
func NewLayout(w, h float64) Layout {
	wide := core.NewRectF(w/4, 0, w/2, h/6)
	half := func(x float64) core.RectF {
		return core.NewRectF(x, h*2/3, w*5/16, h/4)
	}

	start := wide
	start.Y = h / 2
	lower := wide
	lower.Y = h * 3 / 4

	return Layout{
		Title: Button{
			Label:  "HIGH FLYER",
			Bounds: core.NewRectF(0, h/12, w, h/3),
			Color:  core.ColorBrightBlue,
		},
		Start: Button{
			Label:   "START",
			Bounds:  start,
			Color:   core.ColorGreen,
			Hotkeys: []core.Action{core.ActionConfirm},
		},
		Instructions: Button{
			Label:   "INSTRUCTIONS",
			Bounds:  lower,
			Color:   core.ColorBrightBlue,
			Hotkeys: []core.Action{core.ActionInstructions},
		},
		Home: Button{
			Label:   "HOME SCREEN",
			Bounds:  lower,
			Color:   core.ColorOrange,
			Hotkeys: []core.Action{core.ActionBack, core.ActionConfirm},
		},
		Retry: Button{
			Label:   "RETRY",
			Bounds:  half(w / 8),
			Color:   core.ColorGreen,
			Hotkeys: []core.Action{core.ActionRestart, core.ActionConfirm},
		},
		Quit: Button{
			Label:  "QUIT",
			Bounds: half(w * 9 / 16),
			Color:  core.ColorRed,
		},
	}
}
