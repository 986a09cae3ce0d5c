package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, fly, repeat",
	Long: `Start High Flyer with a difficulty picker.

The picker shows the best score of every difficulty. After a session
ends you return to the picker to fly again.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Fly
  Tab/S        - High scores
  Q            - Quit

Examples:
  highflyer menu
  highflyer menu --fps 30
  highflyer menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	var source tui.ScoreSource
	if store != nil {
		source = store
	}

	rt := terminalRuntime()
	for {
		res, err := tui.RunMenu(source, preset, rt)
		if err != nil {
			return err
		}
		rt = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			if err := tui.RunScoreboard(source, tui.Board(preset), rt.ScreenW, rt.ScreenH); err != nil {
				return err
			}

		default:
			preset = res.Preset
			if err := playRound(logger, store, preset, rt); err != nil {
				return err
			}
		}
	}
}
