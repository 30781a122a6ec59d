// Package game owns the agent world and runs the tick pipeline: controls,
// steering, integration, collisions, census, win detection and the
// collaborator calls that follow.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/systems"
	"github.com/pthm-cable/rps/telemetry"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	OutputDir      string          // empty disables CSV/config output
	LogStats       bool            // log window stats via slog
	StatsWindowSec float64         // 0 uses telemetry.stats_window
	Headless       bool            // no user to press start: skip the idle phase
	InitialCounts  *systems.Census // first population; nil spawns from the density control
}

// Game holds the complete simulation state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	world *ecs.World

	agentMapper *ecs.Map5[
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
		components.Species,
	]
	agentFilter *ecs.Filter5[
		components.Position,
		components.Velocity,
		components.Body,
		components.Motion,
		components.Species,
	]

	// Per-tick scratch, reused across ticks
	entities    []ecs.Entity
	agents      []systems.Agent
	velocities  []components.Velocity
	conversions []systems.Conversion
	frame       Frame

	controls *Controls
	steering systems.SteeringParams
	bounds   systems.Bounds

	// State
	phase   Phase
	started bool
	tick    int32
	elapsed float64
	census  systems.Census
	winner  systems.WinTracker
	runID   string
	seed    int64

	series telemetry.Series

	// Collaborators
	sinks     Sinks
	listeners []func(WinEvent)

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
}

// New creates a game from config and options and spawns the first population.
// Output directory failures are logged and disable file output.
func New(cfg *config.Config, opts Options, sinks Sinks) *Game {
	world := ecs.NewWorld()

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		seed:  opts.Seed,
		world: world,
		agentMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Body,
			components.Motion,
			components.Species,
		](world),
		agentFilter: ecs.NewFilter5[
			components.Position,
			components.Velocity,
			components.Body,
			components.Motion,
			components.Species,
		](world),
		controls:      NewControls(cfg),
		steering:      systems.SteeringParamsFromConfig(cfg),
		bounds:        systems.Bounds{Width: cfg.Derived.ArenaW32, Height: cfg.Derived.ArenaH32},
		sinks:         sinks,
		collector:     telemetry.NewCollector(statsWindow, float32(cfg.Physics.DT)),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("output disabled", "dir", opts.OutputDir, "error", err)
	} else if om != nil {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	g.phase = PhaseIdle
	if opts.Headless || !cfg.Features.IdlePhase {
		g.phase = PhaseRunning
		g.started = true
	}

	if opts.InitialCounts != nil {
		g.reseed(*opts.InitialCounts)
	} else {
		g.reseed(g.uniformCounts())
	}

	return g
}

// OnWin registers a callback invoked once per run when a winner is decided.
func (g *Game) OnWin(fn func(WinEvent)) {
	g.listeners = append(g.listeners, fn)
}

// Controls returns the control surface. Writes apply at the next tick.
func (g *Game) Controls() *Controls {
	return g.controls
}

// Counts returns the per-kind counts from the last census.
func (g *Game) Counts() systems.Census {
	return g.census
}

// Winner returns the run's winner, if decided.
func (g *Game) Winner() (components.Kind, bool) {
	return g.winner.Winner()
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Tick returns the number of ticks since the run clock was last reset.
func (g *Game) Tick() int32 {
	return g.tick
}

// Elapsed returns simulated seconds since the run clock was last reset.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Frame returns the last frame built by Step.
func (g *Game) Frame() *Frame {
	return &g.frame
}

// Series returns one sample per tick of the current run.
func (g *Game) Series() []telemetry.Sample {
	return g.series.Samples()
}

// RunID returns the identifier of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Seed returns the RNG seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Bounds returns the arena size.
func (g *Game) Bounds() systems.Bounds {
	return g.bounds
}

// AgentCount returns the number of live agents.
func (g *Game) AgentCount() int {
	return g.census.Total()
}

// AgentsOfKind lists the current agents of one kind, for post-win layouts.
func (g *Game) AgentsOfKind(k components.Kind) []AgentView {
	var out []AgentView
	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, body, _, sp := query.Get()
		if sp.Kind == k {
			out = append(out, AgentView{Kind: sp.Kind, Pos: *pos, Radius: body.Radius})
		}
	}
	return out
}

// PerfStats returns rolling tick timing.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Unload releases output files.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// newRunID returns a fresh run identifier.
func newRunID() string {
	return uuid.NewString()
}
