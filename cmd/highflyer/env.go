package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the environment variables that stand in for flags.
const envPrefix = "HIGHFLYER_"

// loadEnv reads the dotenv file, then fills every flag the user did not set
// from its HIGHFLYER_* variable. A missing default .env is not an error.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(flagEnvFile); err != nil {
		explicit := cmd.Flags().Changed("env-file")
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot load %s: %w", flagEnvFile, err)
		}
	}
	return applyEnv(cmd.Flags(), os.LookupEnv)
}

// envName maps a flag name to its variable, e.g. log-level to HIGHFLYER_LOG_LEVEL.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnv sets unchanged flags from the environment.
func applyEnv(flags *pflag.FlagSet, lookup func(string) (string, bool)) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "help" {
			return
		}
		v, ok := lookup(envName(f.Name))
		if !ok {
			return
		}
		if err := f.Value.Set(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", envName(f.Name), err))
		}
	})
	return errors.Join(errs...)
}
