package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock, paper, scissors agent simulation",
		Long: `rps runs a population of rock, paper and scissors agents that chase
their prey, flee their predators and convert each other on contact
until a single kind remains.

Without a subcommand the simulation opens a window with controls.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadRunOptions(cmd)
			if err != nil {
				return err
			}
			return runWindowed(opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to config.yaml (empty = use defaults)")
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed (0 = time-based)")
	rootCmd.PersistentFlags().String("output-dir", "", "Output directory for CSV logs and config snapshot")
	rootCmd.PersistentFlags().Bool("log-stats", false, "Output window stats via slog")
	rootCmd.PersistentFlags().Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	rootCmd.PersistentFlags().Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newHeadlessCmd(),
	)

	return rootCmd
}
