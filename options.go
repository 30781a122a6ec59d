package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/game"
	"github.com/pthm-cable/rps/logging"
)

// runOptions is the resolved command line shared by the run commands.
type runOptions struct {
	cfg      *config.Config
	game     game.Options
	maxTicks int
}

// loadRunOptions reads the global flags, loads config and installs the logger.
func loadRunOptions(cmd *cobra.Command) (runOptions, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	seed, _ := flags.GetInt64("seed")
	outputDir, _ := flags.GetString("output-dir")
	logStats, _ := flags.GetBool("log-stats")
	statsWindow, _ := flags.GetFloat64("stats-window")
	maxTicks, _ := flags.GetInt("max-ticks")
	logLevel, _ := flags.GetString("log-level")
	logFormat, _ := flags.GetString("log-format")

	slog.SetDefault(logging.NewLogger(logLevel, logFormat, os.Stderr))

	if err := config.Init(configPath); err != nil {
		return runOptions{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Cfg()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Use config stats window if not overridden by CLI
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	return runOptions{
		cfg: cfg,
		game: game.Options{
			Seed:           seed,
			OutputDir:      outputDir,
			LogStats:       logStats,
			StatsWindowSec: statsWindow,
		},
		maxTicks: maxTicks,
	}, nil
}
