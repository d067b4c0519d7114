package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/emtprep/emtdrill/internal/app"
	"github.com/emtprep/emtdrill/internal/config"
	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/engine"
	"github.com/emtprep/emtdrill/internal/logging"
)

// startFunc opens a session on the shell before the TUI starts.
type startFunc func(*engine.Shell) (engine.Outcome, error)

// resolveConfig loads settings from the env file and environment, then
// applies any flags the user set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("swipe-threshold") {
		cfg.SwipeThreshold, _ = flags.GetInt("swipe-threshold")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	return cfg, cfg.Validate()
}

// loadStore opens the embedded bank, treating any failure as unavailable content.
func loadStore() (*content.Store, error) {
	store, err := content.Default()
	if err != nil {
		if errors.Is(err, content.ErrContentUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", content.ErrContentUnavailable, err)
	}
	return store, nil
}

func newSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// newShell wires config, logging and content into an engine shell. The
// returned closer flushes the log file.
func newShell(cmd *cobra.Command) (*engine.Shell, config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, config.Config{}, nil, nil, fmt.Errorf("load config: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger, closer, err := logging.Open(cfg.LogFile, debug)
	if err != nil {
		return nil, config.Config{}, nil, nil, err
	}

	store, err := loadStore()
	if err != nil {
		closer.Close()
		return nil, config.Config{}, nil, nil, err
	}

	shell, err := engine.New(store, newSource(cfg.Seed), cfg, logger)
	if err != nil {
		closer.Close()
		return nil, config.Config{}, nil, nil, err
	}
	return shell, cfg, logger, closer, nil
}

// runApp builds the shell, optionally starts a session, and launches the TUI.
// A session that cannot start aborts before the terminal is taken over.
func runApp(cmd *cobra.Command, start startFunc) error {
	shell, cfg, logger, closer, err := newShell(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := app.Options{
		Shell:          shell,
		SwipeThreshold: cfg.SwipeThreshold,
		Logger:         logger,
	}

	if start != nil {
		out, err := start(shell)
		if err != nil {
			return err
		}
		opts.Initial = out
	} else {
		noSplash, _ := cmd.Flags().GetBool("no-splash")
		opts.Splash = !noSplash
	}

	return app.Run(opts)
}
