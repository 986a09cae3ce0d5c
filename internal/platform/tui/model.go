package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/core"
	"github.com/vovakirdan/high-flyer/internal/games/highflyer"
	"github.com/vovakirdan/high-flyer/internal/storage"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

// Options configures a game session.
type Options struct {
	Config  config.Config
	Preset  config.DifficultyPreset // Reapplied to hot-reloaded tuning
	Runtime core.RuntimeConfig
	Store   *storage.Store // Nil plays without persistence
	Player  string         // Recorded with each score
	Speaker Speaker        // Nil plays silently
	Updates <-chan config.Config
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a High Flyer session.
type Model struct {
	game       *highflyer.Game
	screen     *core.Screen
	store      *storage.Store
	board      string
	player     string
	preset     config.DifficultyPreset
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	speaker    Speaker
	updates    <-chan config.Config
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	bell       bool // Ring with the frames of the current tick
}

// NewModel creates a new Bubble Tea model and resets the game to its home screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	preset := opts.Preset
	if preset == "" {
		preset = config.DifficultyNormal
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	fieldW, fieldH := fieldSize(cfg.ScreenW, cfg.ScreenH)
	game := highflyer.New(opts.Config)
	game.Reset(core.RuntimeConfig{ScreenW: fieldW, ScreenH: fieldH, TickRate: cfg.TickRate, Seed: cfg.Seed})

	m := Model{
		game:       game,
		screen:     core.NewScreen(fieldW, fieldH),
		store:      opts.Store,
		board:      Board(preset),
		player:     opts.Player,
		preset:     preset,
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys, opts.Config.HoldTicks(cfg.TickRate)),
		help:       h,
		speaker:    opts.Speaker,
		updates:    opts.Updates,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.loadBest()
	return m
}

// Board names the score board for a difficulty preset.
func Board(preset config.DifficultyPreset) string {
	return string(preset)
}

// fieldSize is the playfield left after the footer.
func fieldSize(w, h int) (int, int) {
	return max(w, 1), max(h-footerRows, 1)
}

// Init starts the tick loop and the config listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.updates))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ConfigReloadedMsg:
		return m.handleReload(msg.Config)

	case TickMsg:
		return m.handleTick()

	case BellMsg:
		m.bell = true
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Quit reaches the game on the next tick so it can wind down cleanly.
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize adapts the playfield to the new window without resetting the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	w, h := fieldSize(msg.Width, msg.Height)
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
	m.help.Width = msg.Width
	return m, nil
}

// handleReload applies tuning re-read from disk and keeps listening.
func (m Model) handleReload(cfg config.Config) (tea.Model, tea.Cmd) {
	config.ApplyPreset(&cfg, m.preset)
	m.game.SetConfig(cfg)
	m.keyMapper.SetHoldTicks(cfg.HoldTicks(m.config.TickRate))
	if bs, ok := m.speaker.(*BellSpeaker); ok {
		bs.SetAudio(cfg.Audio)
	}
	m.logger.Info("Config reloaded", "preset", m.preset)
	return m, waitForConfig(m.updates)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keyMapper.Hold(&m.inputFrame)

	wasGameOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	m.bell = false

	var cmds []tea.Cmd
	for _, cue := range result.Cues {
		if m.speaker != nil {
			cmds = append(cmds, m.speaker.Play(cue))
		}
	}

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !wasGameOver {
		m.keyMapper.Release()
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.gameState.Terminated {
		m.quitting = true
		return m, tea.Quit
	}
	cmds = append(cmds, tickCmd(m.config.TickRate))
	return m, tea.Batch(cmds...)
}

// saveScore records a finished round once. Storage failures never stop play.
func (m *Model) saveScore() {
	score := m.gameState.Score
	m.logger.Info("Round over", "board", m.board, "player", m.player, "score", score)
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.board, m.player, score); err != nil {
		m.logger.Warn("Could not save score", "err", err)
		return
	}
	m.loadBest()
}

// loadBest shows the stored best score for the board.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.board)
	if err != nil {
		m.logger.Warn("Could not read best score", "err", err)
		return
	}
	m.game.SetBestScore(best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("Screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".highflyer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", highflyer.ID, time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("Screenshot failed", "err", err)
		return
	}
	m.logger.Info("Screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	frame := RenderFrame(m.screen, m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.bell {
		// The renderer only writes changed frames, so the bell sounds once.
		return "\a" + frame
	}
	return frame
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	model := NewModel(opts)

	progOpts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, progOpts...)

	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
