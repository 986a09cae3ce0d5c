// Package highflyer implements High Flyer: a rocket at the bottom of the
// screen dodges squares falling from the top, and every square that reaches
// the bottom comes back faster.
//
// The game simulates in fixed world units (800x600 by default) and is drawn
// onto whatever terminal grid the platform provides through a core.Viewport.
package highflyer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/core"
)

// ID is the game's identifier, used in screenshot file names.
const ID = "highflyer"

// Game implements the High Flyer screens, physics and scoring.
type Game struct {
	cfg      config.Config
	pending  *config.Config // Applied at the next round start
	runtime  core.RuntimeConfig
	viewport core.Viewport
	layout   Layout
	rng      *rand.Rand

	mode      Mode
	player    Player
	obstacles []Obstacle
	score     int
	best      int
	paused    bool
	goTicks   int     // Remaining ticks of the GO! screen
	tickCount int     // Ticks since Reset
	scroll    float64 // Backdrop offset in world units
	titleAlt  bool    // Title shows its alternate color
	cues      []core.Cue
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "High Flyer"
}

// Reset returns the game to the home screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.layout = NewLayout(g.cfg.Screen.Width, g.cfg.Screen.Height)
	g.viewport = core.NewViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, runtime.ScreenW, runtime.ScreenH)

	g.mode = ModeHome
	g.player = NewPlayer(g.cfg)
	g.obstacles = nil
	g.score = 0
	g.paused = false
	g.goTicks = 0
	g.tickCount = 0
	g.scroll = 0
	g.titleAlt = false
	g.cues = []core.Cue{core.CueMusicHome}
}

// Resize adapts the game to a new terminal size without touching its state.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW = cols
	g.runtime.ScreenH = rows
	g.viewport = core.NewViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, cols, rows)
}

// SetConfig replaces the tuning. Outside a round it applies immediately;
// during a round it waits for the next round start.
func (g *Game) SetConfig(cfg config.Config) {
	if g.mode == ModePlaying || g.mode == ModeGameOver {
		g.pending = &cfg
		return
	}
	g.applyConfig(cfg)
}

func (g *Game) applyConfig(cfg config.Config) {
	g.cfg = cfg
	g.pending = nil
	g.layout = NewLayout(cfg.Screen.Width, cfg.Screen.Height)
	g.viewport = core.NewViewport(cfg.Screen.Width, cfg.Screen.Height, g.runtime.ScreenW, g.runtime.ScreenH)
}

// Config returns the tuning currently in effect.
func (g *Game) Config() config.Config {
	return g.cfg
}

// SetBestScore sets the best score shown on the home and game-over screens.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// Mode returns the screen currently shown.
func (g *Game) Mode() Mode {
	return g.mode
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.mode != ModeTerminated {
		g.tickCount++

		if in.Has(core.ActionQuit) {
			g.terminate()
		} else {
			switch g.mode {
			case ModeHome:
				g.stepHome(in)
			case ModeInstructions:
				g.stepInstructions(in)
			case ModePlaying:
				g.stepPlaying(in)
			case ModeGameOver:
				g.stepGameOver(in)
			}
		}
	}

	res := core.StepResult{State: g.State()}
	if len(g.cues) > 0 {
		res.Cues = g.cues
		g.cues = nil
	}
	return res
}

func (g *Game) stepHome(in core.InputFrame) {
	g.advanceBackdrop()
	if n := g.cfg.Timing.TitleFlashTicks; n > 0 && g.tickCount%n == 0 {
		g.titleAlt = !g.titleAlt
	}

	switch {
	case g.layout.Start.Activated(in, g.viewport):
		g.cue(core.CueButton)
		g.startRound()
	case g.layout.Instructions.Activated(in, g.viewport):
		g.cue(core.CueButton)
		g.mode = ModeInstructions
	}
}

func (g *Game) stepInstructions(in core.InputFrame) {
	if g.layout.Home.Activated(in, g.viewport) {
		g.cue(core.CueButton)
		g.mode = ModeHome
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	if g.goTicks > 0 {
		g.goTicks--
		return
	}

	g.score += g.scoreIncrement()
	g.advanceBackdrop()

	g.player.Move(in.Has(core.ActionLeft), in.Has(core.ActionRight),
		g.cfg.Screen.Width, tiltAngle(g.cfg), g.cfg.Player.RotationDecay)

	for i := range g.obstacles {
		g.obstacles[i].Fall(g.rng, g.cfg.Screen.Width, g.cfg.Screen.Height, g.cfg.Obstacles.Acceleration)
	}

	if Collides(g.player, g.obstacles) {
		g.mode = ModeGameOver
		if g.score > g.best {
			g.best = g.score
		}
		g.cue(core.CueCollision)
		g.cue(core.CueMusicStop)
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	switch {
	case g.layout.Retry.Activated(in, g.viewport):
		g.cue(core.CueButton)
		g.startRound()
	case g.layout.Quit.Activated(in, g.viewport):
		g.cue(core.CueButton)
		g.terminate()
	}
}

// startRound resets score, rocket and obstacle field and shows GO!.
func (g *Game) startRound() {
	if g.pending != nil {
		g.applyConfig(*g.pending)
	}
	g.mode = ModePlaying
	g.score = 0
	g.paused = false
	g.player = NewPlayer(g.cfg)
	g.obstacles = NewObstacles(g.cfg, g.rng)
	g.goTicks = g.cfg.GoDelayTicks(g.runtime.TickRate)
	g.cue(core.CueMusicGame)
}

func (g *Game) terminate() {
	g.mode = ModeTerminated
	g.paused = false
	g.cue(core.CueMusicStop)
}

// scoreIncrement is the lead obstacle's speed squared times the speed
// factor, rounded half to even.
func (g *Game) scoreIncrement() int {
	if len(g.obstacles) == 0 {
		return 0
	}
	s := g.obstacles[0].Speed
	return int(math.RoundToEven(s * s * g.cfg.Scoring.SpeedFactor))
}

func (g *Game) advanceBackdrop() {
	g.scroll = math.Mod(g.scroll+g.cfg.Backdrop.ScrollSpeed, g.cfg.Screen.Height)
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		GameOver:   g.mode == ModeGameOver,
		Paused:     g.paused,
		Terminated: g.mode == ModeTerminated,
	}
}

// Snapshot is a copy of the simulation state, used to compare runs.
type Snapshot struct {
	Tick      int
	Mode      Mode
	Score     int
	Paused    bool
	GoTicks   int
	Player    Player
	Obstacles []Obstacle
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tickCount,
		Mode:      g.mode,
		Score:     g.score,
		Paused:    g.paused,
		GoTicks:   g.goTicks,
		Player:    g.player,
		Obstacles: append([]Obstacle(nil), g.obstacles...),
	}
}
