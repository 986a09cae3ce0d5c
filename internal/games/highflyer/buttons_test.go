package highflyer

import (
	"testing"

	"github.com/vovakirdan/high-flyer/internal/core"
)

func TestNewLayoutDefaultWorld(t *testing.T) {
	l := NewLayout(800, 600)

	tests := []struct {
		name string
		got  core.RectF
		want core.RectF
	}{
		{"title", l.Title.Bounds, core.NewRectF(0, 50, 800, 200)},
		{"start", l.Start.Bounds, core.NewRectF(200, 300, 400, 100)},
		{"instructions", l.Instructions.Bounds, core.NewRectF(200, 450, 400, 100)},
		{"home", l.Home.Bounds, core.NewRectF(200, 450, 400, 100)},
		{"retry", l.Retry.Bounds, core.NewRectF(100, 400, 250, 150)},
		{"quit", l.Quit.Bounds, core.NewRectF(450, 400, 250, 150)},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s bounds = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestButtonActivated(t *testing.T) {
	vp := core.NewViewport(800, 600, 80, 24)
	start := NewLayout(800, 600).Start

	tests := []struct {
		name  string
		frame func() core.InputFrame
		want  bool
	}{
		{"empty frame", core.NewInputFrame, false},
		{"hotkey", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Set(core.ActionConfirm)
			return in
		}, true},
		{"other key", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Set(core.ActionRestart)
			return in
		}, false},
		{"click inside", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(40, 13) // world (405, 337.5)
			return in
		}, true},
		{"click on first column", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(20, 12) // world (205, 312.5)
			return in
		}, true},
		{"click left of button", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(19, 13)
			return in
		}, false},
		{"click below button", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(40, 16)
			return in
		}, false},
		{"click off screen", func() core.InputFrame {
			in := core.NewInputFrame()
			in.Click(-3, 500)
			return in
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := start.Activated(tt.frame(), vp); got != tt.want {
				t.Errorf("Activated() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestButtonActivatedEdgeInclusive(t *testing.T) {
	// A 100x100 world on a 100x100 grid puts cell centres on half units.
	vp := core.NewViewport(100, 100, 100, 100)
	b := Button{Bounds: core.NewRectF(10.5, 10.5, 5, 5)}

	in := core.NewInputFrame()
	in.Click(10, 10) // world (10.5, 10.5), the top-left corner
	if !b.Activated(in, vp) {
		t.Error("click on the top-left corner not activated")
	}

	in = core.NewInputFrame()
	in.Click(15, 15) // world (15.5, 15.5), the bottom-right corner
	if !b.Activated(in, vp) {
		t.Error("click on the bottom-right corner not activated")
	}
}
