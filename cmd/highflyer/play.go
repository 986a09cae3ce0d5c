package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/core"
	"github.com/vovakirdan/high-flyer/internal/platform/tui"
	"github.com/vovakirdan/high-flyer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a round in this terminal",
	Long: `Start High Flyer in this terminal.

Controls:
  Left/A, Right/D  - Steer
  Enter/Space      - Start / retry
  I                - Instructions
  Esc/B/H          - Back to the home screen
  R                - Retry after a crash
  P                - Pause
  Q/Ctrl+C         - Quit
  Mouse            - Click the buttons

Difficulty options:
  easy   - Fewer squares, slower start, gentle speed-up
  normal - The tuning as loaded
  hard   - More squares, faster start, steep speed-up
  fixed  - No speed-up, the squares keep their starting speed

Examples:
  highflyer play
  highflyer play --difficulty easy
  highflyer play --config ./my-highflyer.yaml --watch
  highflyer play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagWatch, "watch", false, "Reload tuning when the config file changes")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return playRound(logger, store, preset, terminalRuntime())
}

// playRound runs one game session until the player quits.
func playRound(logger *log.Logger, store *storage.Store, preset config.DifficultyPreset, rt core.RuntimeConfig) error {
	cfg, err := loadTuning(preset)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Config:  cfg,
		Preset:  preset,
		Runtime: rt,
		Store:   store,
		Player:  playerName(),
		Speaker: tui.NewBellSpeaker(cfg.Audio, logger),
		Logger:  logger,
	}

	if flagWatch {
		w, err := watchTuning(logger)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Updates = w.Updates
	}

	logger.Info("Starting game", "difficulty", preset, "fps", rt.TickRate, "seed", rt.Seed)
	return tui.Run(opts)
}

// loadTuning resolves the tuning file and applies the preset.
func loadTuning(preset config.DifficultyPreset) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// watchTuning watches --config, or the user config file when none is given.
// Reload errors are logged and the last good tuning stays in effect.
func watchTuning(logger *log.Logger) (*config.Watcher, error) {
	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		return nil, errors.New("--watch needs --config or a home directory")
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Watched config does not exist yet", "path", path)
	}

	w, err := config.Watch(path)
	if err != nil {
		return nil, err
	}
	go func() {
		for err := range w.Errors {
			logger.Warn("Config reload failed", "err", err)
		}
	}()
	logger.Info("Watching config", "path", w.Path())
	return w, nil
}

// openStore opens the score database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("Playing without scores", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// terminalRuntime builds the runtime config from the global flags and the
// current terminal size.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playerName is recorded with every local score.
func playerName() string {
	for _, v := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(v); name != "" {
			return name
		}
	}
	return "player"
}
