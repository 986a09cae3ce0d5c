// highflyer is a terminal arcade game: steer a rocket past falling squares.
//
// Usage:
//
//	highflyer play             - Fly a round in this terminal
//	highflyer menu             - Pick a difficulty, fly, repeat
//	highflyer serve            - Start SSH server for remote play
//	highflyer scores [board]   - Show high scores
//	highflyer config           - Print, check or export tuning
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.highflyer/scores.db)
//	--env-file <path>    - Read HIGHFLYER_* defaults from a dotenv file
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/high-flyer/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagEnvFile  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "highflyer",
	Short: "High Flyer - dodge the falling squares in your terminal",
	Long: `High Flyer is a terminal arcade game. Steer your rocket left and right
to dodge the squares falling from the sky. They fall faster the longer
you survive, and so does your score.

Available commands:
  play     - Fly a round in this terminal
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print, check or export tuning

Flags can also be set with HIGHFLYER_* environment variables
(HIGHFLYER_FPS, HIGHFLYER_DB, HIGHFLYER_LOG_LEVEL, ...), which are
read from .env when present.

Examples:
  highflyer play
  highflyer play --difficulty hard
  highflyer menu
  highflyer serve --ssh :2222 --http :8080
  highflyer scores normal`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Dotenv file with HIGHFLYER_* defaults")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
