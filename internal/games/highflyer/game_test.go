package highflyer

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.Default())
	g.Reset(testRuntime())
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func click(col, row int) core.InputFrame {
	in := core.NewInputFrame()
	in.Click(col, row)
	return in
}

// enterRound moves a fresh game from home into a running round past the GO! screen.
func enterRound(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionConfirm))
	if g.Mode() != ModePlaying {
		t.Fatalf("mode after start = %v, want playing", g.Mode())
	}
	for g.goTicks > 0 {
		g.Step(core.NewInputFrame())
	}
}

// crash puts every obstacle right above the rocket so the next tick collides.
func crash(g *Game) {
	for i := range g.obstacles {
		g.obstacles[i].X = g.player.X
		g.obstacles[i].Y = g.player.Y - g.obstacles[i].Speed
	}
}

func TestResetShowsHome(t *testing.T) {
	g := newTestGame(t)

	if g.Mode() != ModeHome {
		t.Errorf("mode = %v, want home", g.Mode())
	}
	res := g.Step(core.NewInputFrame())
	if !reflect.DeepEqual(res.Cues, []core.Cue{core.CueMusicHome}) {
		t.Errorf("first cues = %v, want [music-home]", res.Cues)
	}
	if res := g.Step(core.NewInputFrame()); len(res.Cues) != 0 {
		t.Errorf("idle cues = %v, want none", res.Cues)
	}
}

func TestStartRoundResets(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	res := g.Step(press(core.ActionConfirm))
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v, want playing", g.Mode())
	}
	if !reflect.DeepEqual(res.Cues, []core.Cue{core.CueButton, core.CueMusicGame}) {
		t.Errorf("cues = %v, want [button music-game]", res.Cues)
	}
	assertFreshRound(t, g)

	for g.goTicks > 0 {
		g.Step(core.NewInputFrame())
	}
	for i := 0; i < 20 && g.Mode() == ModePlaying; i++ {
		g.Step(core.NewInputFrame())
	}
	crash(g)
	g.Step(core.NewInputFrame())
	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game-over", g.Mode())
	}
	if g.score == 0 {
		t.Fatal("score did not grow during the round")
	}

	g.Step(press(core.ActionRestart))
	if g.Mode() != ModePlaying {
		t.Fatalf("mode after retry = %v, want playing", g.Mode())
	}
	assertFreshRound(t, g)
}

func assertFreshRound(t *testing.T, g *Game) {
	t.Helper()
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	if len(g.obstacles) != 10 {
		t.Fatalf("obstacles = %d, want 10", len(g.obstacles))
	}
	for i, o := range g.obstacles {
		if o.Speed != 7.5 || o.Y != 0 {
			t.Errorf("obstacle %d = %+v, want y=0 speed=7.5", i, o)
		}
	}
	if g.player.X != 400 || g.player.Y != 500 || g.player.Angle != 0 {
		t.Errorf("player = %+v, want fresh rocket at (400, 500)", g.player)
	}
}

func TestGoDelay(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionConfirm))

	if g.goTicks != 30 {
		t.Fatalf("goTicks = %d, want 30", g.goTicks)
	}
	before := g.Snapshot().Obstacles
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionLeft))
	}
	if !reflect.DeepEqual(g.obstacles, before) {
		t.Error("obstacles moved during the GO! screen")
	}
	if g.score != 0 || g.player.X != 400 {
		t.Errorf("score=%d x=%v during GO!, want 0 and 400", g.score, g.player.X)
	}

	g.Step(press(core.ActionLeft))
	if g.score != 1 {
		t.Errorf("score after first tick = %d, want 1", g.score)
	}
	if g.player.X != 392.5 {
		t.Errorf("player x = %v, want 392.5", g.player.X)
	}
}

func TestScoreIncrement(t *testing.T) {
	tests := []struct {
		speed, factor float64
		want          int
	}{
		{10, 0.01, 1},
		{7.5, 0.01, 1},
		{5, 0.01, 0},
		{20, 0.01, 4},
		{3, 0.5, 4},  // 4.5 rounds to even
		{5, 0.5, 12}, // 12.5 rounds to even
		{7, 0.5, 24}, // 24.5 rounds to even
		{1, 1.5, 2},  // 1.5 rounds to even
	}

	for _, tt := range tests {
		g := newTestGame(t)
		g.cfg.Scoring.SpeedFactor = tt.factor
		g.obstacles = []Obstacle{{Speed: tt.speed}}
		if got := g.scoreIncrement(); got != tt.want {
			t.Errorf("scoreIncrement(speed=%v, factor=%v) = %d, want %d", tt.speed, tt.factor, got, tt.want)
		}
	}
}

func TestScoreUsesLeadObstacle(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)
	for i := range g.obstacles {
		g.obstacles[i] = Obstacle{X: 20, Y: 0, Size: 20, Speed: 7.5}
	}
	g.obstacles[0].Speed = 10

	g.Step(core.NewInputFrame())
	if g.score != 1 {
		t.Errorf("score = %d, want 1", g.score)
	}
}

func TestHomeTerminate(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(press(core.ActionQuit))
	if g.Mode() != ModeTerminated || !res.State.Terminated {
		t.Fatalf("mode = %v terminated=%v, want terminated", g.Mode(), res.State.Terminated)
	}

	snap := g.Snapshot()
	res = g.Step(press(core.ActionConfirm))
	if !res.State.Terminated {
		t.Error("terminated game came back")
	}
	if !reflect.DeepEqual(g.Snapshot(), snap) {
		t.Error("terminated game kept simulating")
	}

	dst := core.NewScreen(80, 24)
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), dst.Height()), 'x')
	g.Render(dst)
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.Get(x, y) != ' ' {
				t.Fatalf("terminated game drew %q at (%d, %d)", dst.Get(x, y), x, y)
			}
		}
	}
}

func TestQuitFromEveryMode(t *testing.T) {
	setups := map[string]func(*testing.T, *Game){
		"home":         func(*testing.T, *Game) {},
		"instructions": func(_ *testing.T, g *Game) { g.Step(press(core.ActionInstructions)) },
		"playing":      enterRound,
		"game-over": func(t *testing.T, g *Game) {
			enterRound(t, g)
			crash(g)
			g.Step(core.NewInputFrame())
		},
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			g := newTestGame(t)
			setup(t, g)
			if g.Mode().String() != name {
				t.Fatalf("setup reached %v, want %s", g.Mode(), name)
			}
			if res := g.Step(press(core.ActionQuit)); !res.State.Terminated {
				t.Errorf("quit from %s did not terminate", name)
			}
		})
	}
}

func TestInstructionsRoundTrip(t *testing.T) {
	g := newTestGame(t)

	g.Step(click(40, 19)) // world (405, 487.5)
	if g.Mode() != ModeInstructions {
		t.Fatalf("mode = %v, want instructions", g.Mode())
	}

	// The start button's area does nothing here.
	g.Step(click(40, 13))
	if g.Mode() != ModeInstructions {
		t.Fatalf("mode = %v, want instructions", g.Mode())
	}

	res := g.Step(click(40, 19))
	if g.Mode() != ModeHome {
		t.Fatalf("mode = %v, want home", g.Mode())
	}
	if !reflect.DeepEqual(res.Cues, []core.Cue{core.CueButton}) {
		t.Errorf("cues = %v, want [button]", res.Cues)
	}

	g.Step(press(core.ActionInstructions))
	g.Step(press(core.ActionBack))
	if g.Mode() != ModeHome {
		t.Errorf("mode = %v after back key, want home", g.Mode())
	}
}

func TestHomeClickOutsideButtons(t *testing.T) {
	g := newTestGame(t)
	for _, p := range [][2]int{{0, 0}, {79, 23}, {10, 13}, {40, 17}} {
		g.Step(click(p[0], p[1]))
		if g.Mode() != ModeHome {
			t.Fatalf("click at %v changed mode to %v", p, g.Mode())
		}
	}
}

func TestHomeStartClick(t *testing.T) {
	g := newTestGame(t)
	g.Step(click(40, 13)) // world (405, 337.5)
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing", g.Mode())
	}
}

func TestCollisionEndsRound(t *testing.T) {
	g := newTestGame(t)
	g.SetBestScore(1_000_000)
	enterRound(t, g)
	g.Step(core.NewInputFrame())
	crash(g)

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game-over", g.Mode())
	}
	if !reflect.DeepEqual(res.Cues, []core.Cue{core.CueCollision, core.CueMusicStop}) {
		t.Errorf("cues = %v, want [collision music-stop]", res.Cues)
	}
	if g.best != 1_000_000 {
		t.Errorf("best = %d, want the stored best to stay", g.best)
	}

	score := g.score
	for i := 0; i < 10; i++ {
		g.Step(press(core.ActionLeft))
	}
	if g.score != score {
		t.Error("score changed after game over")
	}
}

func TestGameOverRaisesBest(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	crash(g)
	g.Step(core.NewInputFrame())
	if g.best != g.score || g.best == 0 {
		t.Errorf("best = %d, want score %d", g.best, g.score)
	}
}

func TestGameOverQuitButton(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)
	crash(g)
	g.Step(core.NewInputFrame())

	res := g.Step(click(50, 18)) // world (505, 462.5)
	if !res.State.Terminated {
		t.Fatalf("mode = %v, want terminated", g.Mode())
	}
	if !reflect.DeepEqual(res.Cues, []core.Cue{core.CueButton, core.CueMusicStop}) {
		t.Errorf("cues = %v, want [button music-stop]", res.Cues)
	}
}

func TestGameOverRetryClick(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)
	crash(g)
	g.Step(core.NewInputFrame())

	g.Step(click(20, 18)) // world (205, 462.5)
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing", g.Mode())
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)
	g.Step(core.NewInputFrame())

	res := g.Step(press(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause did not take")
	}
	snap := g.Snapshot()
	for i := 0; i < 20; i++ {
		g.Step(press(core.ActionRight))
	}
	after := g.Snapshot()
	if after.Score != snap.Score || after.Player != snap.Player || !reflect.DeepEqual(after.Obstacles, snap.Obstacles) {
		t.Error("game advanced while paused")
	}

	g.Step(press(core.ActionPause))
	if g.paused {
		t.Fatal("unpause did not take")
	}
	g.Step(core.NewInputFrame())
	if g.score == snap.Score {
		t.Error("score did not grow after unpause")
	}
}

func TestPauseIgnoredOutsideRound(t *testing.T) {
	g := newTestGame(t)
	if res := g.Step(press(core.ActionPause)); res.State.Paused {
		t.Error("home screen paused")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	inputs[0] = press(core.ActionConfirm)
	for i := 1; i < len(inputs); i++ {
		switch (i / 20) % 3 {
		case 0:
			inputs[i] = press(core.ActionLeft)
		case 1:
			inputs[i] = press(core.ActionRight)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("runs differ:\n%+v\n%+v", s1, s2)
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := newTestGame(t)
	rt := testRuntime()
	rt.Seed = 43
	g2 := New(config.Default())
	g2.Reset(rt)

	g1.Step(press(core.ActionConfirm))
	g2.Step(press(core.ActionConfirm))
	if reflect.DeepEqual(g1.obstacles, g2.obstacles) {
		t.Error("different seeds produced the same field")
	}
}

func TestObstaclesSpeedUp(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)
	// Keep the rocket out of the way.
	g.player.Y = 10_000

	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}
	for i, o := range g.obstacles {
		if o.Speed <= 7.5 {
			t.Errorf("obstacle %d speed = %v, want faster than 7.5", i, o.Speed)
		}
	}
}

func TestSetConfigDuringRound(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)

	cfg := config.Default()
	cfg.Obstacles.Count = 5
	g.SetConfig(cfg)
	if len(g.obstacles) != 10 {
		t.Fatalf("obstacles = %d, want 10 until the round ends", len(g.obstacles))
	}

	crash(g)
	g.Step(core.NewInputFrame())
	g.Step(press(core.ActionRestart))
	if len(g.obstacles) != 5 {
		t.Errorf("obstacles = %d after retry, want 5", len(g.obstacles))
	}
	if g.Config().Obstacles.Count != 5 {
		t.Errorf("Config().Obstacles.Count = %d, want 5", g.Config().Obstacles.Count)
	}
}

func TestSetConfigOnHome(t *testing.T) {
	g := newTestGame(t)
	cfg := config.Default()
	cfg.Timing.GoDelayMS = 0
	g.SetConfig(cfg)

	g.Step(press(core.ActionConfirm))
	if g.goTicks != 0 {
		t.Errorf("goTicks = %d, want 0", g.goTicks)
	}
}

func TestResizeKeepsState(t *testing.T) {
	g := newTestGame(t)
	enterRound(t, g)
	g.Step(core.NewInputFrame())
	snap := g.Snapshot()

	g.Resize(120, 40)
	if !reflect.DeepEqual(g.Snapshot(), snap) {
		t.Error("resize changed the simulation")
	}
	if g.viewport.Cols != 120 || g.viewport.Rows != 40 {
		t.Errorf("viewport = %dx%d, want 120x40", g.viewport.Cols, g.viewport.Rows)
	}
}

func TestTitleFlash(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 14; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.titleAlt {
		t.Fatal("title flashed early")
	}
	g.Step(core.NewInputFrame())
	if !g.titleAlt {
		t.Error("title did not flash after 15 ticks")
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		ModeHome:         "home",
		ModeInstructions: "instructions",
		ModePlaying:      "playing",
		ModeGameOver:     "game-over",
		ModeTerminated:   "terminated",
		Mode(99):         "unknown",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(m), got, want)
		}
	}
}

func TestWideRocketStaysInBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Player.Width = 500
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	g := New(cfg)
	g.Reset(testRuntime())
	enterRound(t, g)

	maxX := cfg.Screen.Width - cfg.Player.Width
	inputs := []core.InputFrame{
		core.NewInputFrame(),
		press(core.ActionRight),
		press(core.ActionLeft),
		core.NewInputFrame(),
	}
	for i, in := range inputs {
		g.Step(in)
		if g.Mode() != ModePlaying {
			t.Fatalf("step %d: mode = %v, want playing", i, g.Mode())
		}
		if x := g.Snapshot().Player.X; x < 0 || x > maxX {
			t.Fatalf("step %d: X = %v outside [0, %v]", i, x, maxX)
		}
	}
}
