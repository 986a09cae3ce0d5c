package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/high-flyer/internal/config"
	"github.com/vovakirdan/high-flyer/internal/leaderboard"
	"github.com/vovakirdan/high-flyer/internal/platform/tui"
	"github.com/vovakirdan/high-flyer/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the High Flyer SSH server",
	Long: `Start an SSH server that lets users connect and fly.

Each SSH connection gets its own game. Scores are stored per-server,
so all users share the same boards; the SSH user name is recorded with
each score. With --http a read-only JSON leaderboard is served too.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.highflyer/host_key

Examples:
  highflyer serve                           # Listen on :23235 with auto-generated key
  highflyer serve --ssh :2222               # Listen on port 2222
  highflyer serve --http :8080              # Also serve the JSON leaderboard
  highflyer serve --difficulty hard         # Every session flies hard
  highflyer serve --config ./tuning.yaml --watch

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard HTTP address (disabled if empty)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().BoolVar(&flagWatch, "watch", false, "Apply tuning changes to new sessions")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	tuning, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Sessions share one store; without it the server still runs.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("Serving without scores", "db", flagDBPath, "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Config = tuning
	cfg.Preset = preset

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	if flagHTTPAddr != "" {
		if store == nil {
			logger.Warn("Leaderboard disabled: no score database")
		} else {
			board := leaderboard.NewServer(store, logger.WithPrefix("leaderboard"))
			g.Go(func() error {
				return board.ListenAndServe(ctx, flagHTTPAddr)
			})
		}
	}

	if flagWatch {
		w, err := watchTuning(logger)
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		defer w.Close()
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case next, ok := <-w.Updates:
					if !ok {
						return nil
					}
					server.SetConfig(next)
					logger.Info("Tuning reloaded for new sessions", "difficulty", preset)
				}
			}
		})
	}

	logger.Info("Connect with", "cmd", "ssh localhost -p "+portOf(flagSSHAddr))
	return g.Wait()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
