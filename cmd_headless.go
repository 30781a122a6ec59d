package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/rps/game"
)

// headlessResult is one finished (or abandoned) headless run.
type headlessResult struct {
	RunID   string  `json:"run_id"`
	Winner  string  `json:"winner,omitempty"`
	Ticks   int32   `json:"ticks"`
	Elapsed float64 `json:"elapsed_sec"`
}

func newHeadlessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run the simulation without graphics until a kind wins",
		Long: `headless steps the simulation at the configured tick length with no
window or audio. Each run ends when a single kind remains or --max-ticks
is reached; --runs repeats the simulation with a fresh population.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadRunOptions(cmd)
			if err != nil {
				return err
			}
			runs, _ := cmd.Flags().GetInt("runs")
			jsonOut, _ := cmd.Flags().GetBool("json")

			results := runHeadless(opts, runs)

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(results)
			}
			for _, r := range results {
				winner := r.Winner
				if winner == "" {
					winner = "none"
				}
				fmt.Fprintf(out, "%s winner=%s ticks=%d elapsed=%.2fs\n", r.RunID, winner, r.Ticks, r.Elapsed)
			}
			return nil
		},
	}

	cmd.Flags().Int("runs", 1, "Number of runs to simulate")

	return cmd
}

// runHeadless plays runs back to back on a single game.
func runHeadless(opts runOptions, runs int) []headlessResult {
	if runs < 1 {
		runs = 1
	}
	opts.game.Headless = true

	g := game.New(opts.cfg, opts.game, game.Sinks{})
	defer g.Unload()

	slog.Info("starting headless simulation",
		"seed", opts.game.Seed,
		"runs", runs,
		"max_ticks", opts.maxTicks,
	)

	dt := opts.cfg.Physics.DT
	results := make([]headlessResult, 0, runs)
	for i := 0; i < runs; i++ {
		if i > 0 {
			g.Reset()
		}
		for g.Phase() != game.PhaseFinished {
			g.Step(dt)
			if opts.maxTicks > 0 && int(g.Tick()) >= opts.maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick(), "run_id", g.RunID())
				break
			}
		}

		res := headlessResult{RunID: g.RunID(), Ticks: g.Tick(), Elapsed: g.Elapsed()}
		if winner, ok := g.Winner(); ok {
			res.Winner = winner.String()
		}
		results = append(results, res)
	}
	return results
}
