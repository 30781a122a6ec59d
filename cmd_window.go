package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/audio"
	"github.com/pthm-cable/rps/game"
	"github.com/pthm-cable/rps/renderer"
	"github.com/pthm-cable/rps/telemetry"
	"github.com/pthm-cable/rps/ui"
)

// maxFrameSteps caps how many reference frames a single slow frame may advance.
const maxFrameSteps = 4

func runWindowed(opts runOptions) error {
	cfg := opts.cfg

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Rock Paper Scissors")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	fps := telemetry.NewFPSMonitor(cfg.Features.FPSMonitor)
	scene := renderer.NewScene(cfg, opts.game.Seed, fps)
	scene.Init()
	defer scene.Unload()

	sinks := game.Sinks{Render: scene, Chart: scene}

	var player *audio.Player
	if cfg.Features.Audio {
		player = audio.NewPlayer(cfg)
		defer player.Close()
		sinks.Audio = player
	}

	g := game.New(cfg, opts.game, sinks)
	defer g.Unload()

	panel := ui.NewControlPanel(cfg, 0, 0, renderer.KindColor)
	panel.SetPosition(int32(cfg.Screen.Width)-panel.Width()-10, 10)

	slog.Info("starting simulation",
		"seed", opts.game.Seed,
		"run_id", g.RunID(),
		"max_ticks", opts.maxTicks,
	)

	musicLabel := "Music: off"
	if player != nil {
		musicLabel = player.Mixer().TrackLabel()
	}

	for !rl.WindowShouldClose() {
		fps.Update(time.Now())

		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			if !g.Start() {
				g.Reset()
			}
		case rl.IsKeyPressed(rl.KeyR):
			g.Reset()
		case rl.IsKeyPressed(rl.KeyF):
			fps.Toggle()
		case rl.IsKeyPressed(rl.KeyH):
			panel.Toggle()
		}

		dt := float64(rl.GetFrameTime())
		if dt <= 0 {
			dt = cfg.Physics.DT
		}
		if limit := cfg.Physics.DT * maxFrameSteps; dt > limit {
			dt = limit
		}

		g.Step(dt)
		if player != nil {
			player.Update(dt)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		scene.Draw()
		act := panel.Draw(g, musicLabel)
		rl.EndDrawing()

		switch {
		case act.Start:
			g.Start()
		case act.Restart:
			g.Reset()
		}
		if act.CycleMusic && player != nil {
			musicLabel = player.CycleBackground()
		}
		if act.Export {
			path, err := exportSeries(g, opts.game.OutputDir)
			if err != nil {
				slog.Error("csv export failed", "error", err)
			} else {
				slog.Info("series exported", "path", path)
			}
		}

		if opts.maxTicks > 0 && int(g.Tick()) >= opts.maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}

	return nil
}

// exportSeries writes the current run's series to <dir>/rps-<run id>.csv.
func exportSeries(g *game.Game, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fmt.Sprintf("rps-%s.csv", g.RunID()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := g.ExportCSV(f); err != nil {
		return "", err
	}
	return path, nil
}
