package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/high-flyer/internal/config"
)

var flagInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print, check or export tuning",
	Long: `Inspect the tuning High Flyer plays with.

Tuning is looked up in this order:
  --config <path>
  ~/.highflyer/configs/highflyer.yaml
  ./configs/highflyer.yaml
  built-in defaults

Keys missing from a file keep their default values.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved tuning as YAML",
	Long: `Print the tuning that 'highflyer play' would use, with the
difficulty preset applied.

Examples:
  highflyer config show
  highflyer config show --difficulty hard
  highflyer config show --config ./my-highflyer.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		cfg, err := loadTuning(preset)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in default tuning",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a tuning file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default tuning to the user config file",
	Long: `Write the built-in defaults to ~/.highflyer/configs/highflyer.yaml
so they can be edited. Combine with 'highflyer play --watch' to tune
the game while playing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.UserConfigPath()
		if path == "" {
			return errors.New("cannot determine home directory")
		}
		if fileExists(path) && !flagInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create config directory: %w", err)
		}
		if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
			return fmt.Errorf("cannot write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	configShowCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configInitCmd.Flags().BoolVar(&flagInitForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultCmd)
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configInitCmd)
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
