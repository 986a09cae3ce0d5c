package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/platform/tui"
	"github.com/vovakirdan/high-flyer/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresStats  bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the high scores of a board. Every difficulty keeps its own
board (easy, normal, hard, fixed); the default is normal.

Examples:
  highflyer scores
  highflyer scores hard --limit 20
  highflyer scores --recent
  highflyer scores --stats
  highflyer scores --tui
  highflyer scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-board statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score on the board")
}

func runScores(cmd *cobra.Command, args []string) error {
	board := tui.Board(config.DifficultyNormal)
	if len(args) == 1 {
		board = args[0]
	}

	// Unlike play, scores cannot do anything without the database.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresTUI:
		rt := terminalRuntime()
		return tui.RunScoreboard(store, board, rt.ScreenW, rt.ScreenH)
	case flagScoresClear:
		n, err := store.ClearScores(board)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared %d scores from %s.\n", n, board)
		return nil
	case flagScoresStats:
		return printStats(out, store)
	default:
		return printScores(out, store, board, flagScoresLimit, flagScoresRecent)
	}
}

// printScores writes a board's top (or latest) scores as a plain table.
func printScores(out io.Writer, store *storage.Store, board string, limit int, recent bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if recent {
		scores, err = store.RecentScores(board, limit)
	} else {
		scores, err = store.TopScores(board, limit)
	}
	if err != nil {
		return err
	}

	heading := "High Scores"
	if recent {
		heading = "Recent Rounds"
	}
	fmt.Fprintf(out, "%s - High Flyer (%s)\n\n", heading, board)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'highflyer play --difficulty %s' to set the first high score!\n", board)
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-16s  %s\n", i+1, entry.Score, player, dateStr)
	}

	if best, err := store.HighScore(board); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

// printStats writes one summary line per difficulty and stored board.
func printStats(out io.Writer, store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %-10s  %s\n", "Board", "Rounds", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %-10s  %s\n", "-----", "------", "----", "-------", "-----------")
	for _, board := range tui.ScoreBoards(store) {
		st, ok := all[board]
		if !ok {
			fmt.Fprintf(out, "  %-8s  %-6d  %-10s  %-10s  %s\n", board, 0, "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-8s  %-6d  %-10d  %-10.1f  %s\n",
			board, st.Rounds, st.HighScore, st.AvgScore, st.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
