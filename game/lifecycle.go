package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
)

// Start leaves the idle phase and enables steering and collisions. The run
// clock and series restart; the drifting population is kept as it is.
// Returns false if the game was not idle.
func (g *Game) Start() bool {
	if g.phase != PhaseIdle {
		return false
	}
	g.phase = PhaseRunning
	g.started = true
	g.restartClock()

	slog.Info("run started", "run_id", g.runID, "rock", g.census[components.Rock],
		"paper", g.census[components.Paper], "scissors", g.census[components.Scissors])
	return true
}

// Reset applies the staged controls, reseeds the population at the density
// setting and clears the winner and series. A game that was ever started
// returns to running; otherwise it stays idle.
func (g *Game) Reset() {
	g.controls.commit()
	g.ResetWithCounts(g.uniformCounts())
}

// ResetWithCounts is Reset with an explicit population per kind.
// Negative counts are treated as zero.
func (g *Game) ResetWithCounts(counts systems.Census) {
	if g.started {
		g.phase = PhaseRunning
	} else {
		g.phase = PhaseIdle
	}
	g.reseed(counts)
}

// uniformCounts returns the density control's population, equal per kind.
func (g *Game) uniformCounts() systems.Census {
	n := g.controls.PerKind()
	return systems.Census{n, n, n}
}

// reseed replaces every agent and starts a new run.
func (g *Game) reseed(counts systems.Census) {
	g.clearAgents()

	// Interleave kinds so spawn order alternates rock, paper, scissors.
	for i := 0; ; i++ {
		spawned := false
		for _, k := range components.Kinds {
			if i < counts[k] {
				g.spawnAgent(k)
				spawned = true
			}
		}
		if !spawned {
			break
		}
	}

	g.census = g.countAgents()
	g.restartClock()
	g.frame = Frame{Agents: g.frame.Agents[:0]}
	g.buildFrame()

	slog.Info("population seeded",
		"run_id", g.runID,
		"seed", g.seed,
		"phase", g.phase.String(),
		"rock", g.census[components.Rock],
		"paper", g.census[components.Paper],
		"scissors", g.census[components.Scissors],
	)
}

// restartClock begins a new run over the current population.
func (g *Game) restartClock() {
	g.runID = newRunID()
	g.tick = 0
	g.elapsed = 0
	g.series.Reset()
	g.winner.Reset()
	g.collector.Reset()
}

// spawnAgent creates one agent of the given kind at a random position.
func (g *Game) spawnAgent(kind components.Kind) ecs.Entity {
	cfg := g.cfg
	r := cfg.Derived.Radius32

	pos := components.Position{
		X: spawnCoord(g.rng.Float32(), r, g.bounds.Width),
		Y: spawnCoord(g.rng.Float32(), r, g.bounds.Height),
	}
	vel := components.Velocity{
		X: g.rng.Float32()*2 - 1,
		Y: g.rng.Float32()*2 - 1,
	}
	lo := float32(cfg.Agent.SpeedScaleMin)
	hi := float32(cfg.Agent.SpeedScaleMax)
	motion := components.Motion{SpeedScale: lo + g.rng.Float32()*(hi-lo)}
	body := components.Body{Radius: r}
	species := components.Species{Kind: kind}

	return g.agentMapper.NewEntity(&pos, &vel, &body, &motion, &species)
}

// spawnCoord maps u in [0,1) to a coordinate in [r, size-r).
func spawnCoord(u, r, size float32) float32 {
	if size <= 2*r {
		return size / 2
	}
	return r + u*(size-2*r)
}

// liveEntities collects every agent entity.
// Must complete before the world is modified.
func (g *Game) liveEntities() []ecs.Entity {
	var out []ecs.Entity
	query := g.agentFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// clearAgents removes every agent.
func (g *Game) clearAgents() {
	for _, e := range g.liveEntities() {
		g.world.RemoveEntity(e)
	}
}

// countAgents runs a census over the world.
func (g *Game) countAgents() systems.Census {
	var c systems.Census
	query := g.agentFilter.Query()
	for query.Next() {
		_, _, _, _, sp := query.Get()
		c[sp.Kind]++
	}
	return c
}

// resize grows or shrinks the population to perKind agents of each kind in
// total. New agents cycle rock, paper, scissors; removals pick uniformly at
// random. Survivors keep their state.
func (g *Game) resize(perKind int) {
	target := perKind * components.NumKinds
	entities := g.liveEntities()
	current := len(entities)

	switch {
	case current < target:
		for i := 0; i < target-current; i++ {
			g.spawnAgent(components.Kinds[i%components.NumKinds])
		}
	case current > target:
		for n := current - target; n > 0; n-- {
			idx := g.rng.Intn(len(entities))
			g.world.RemoveEntity(entities[idx])
			last := len(entities) - 1
			entities[idx] = entities[last]
			entities = entities[:last]
		}
	default:
		return
	}

	g.census = g.countAgents()
	slog.Debug("population resized", "from", current, "to", target, "per_kind", perKind)
}
