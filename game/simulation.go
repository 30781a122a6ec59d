package game

import (
	"fmt"
	"io"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
	"github.com/pthm-cable/rps/telemetry"
)

// Step advances the simulation by one tick of dt seconds. Movement is scaled
// by dt relative to physics.dt, so a headless step of physics.dt moves each
// agent exactly one reference frame.
//
// Pipeline: staged controls and resize, steering or drift, bursts and
// integration, collisions, census, win check, series, collaborators.
func (g *Game) Step(dt float64) {
	cfg := g.cfg
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseControls)
	if g.controls.commit() {
		g.resize(g.controls.PerKind())
	}
	settings := g.controls.Active()
	speed := float32(settings.Speed)
	frames := float32(dt / cfg.Physics.DT)
	interactive := g.phase.interactive()

	g.perfCollector.StartPhase(telemetry.PhaseSteering)
	g.snapshot()
	if interactive {
		aggression := g.controls.AggressionRatio()
		// Headings are computed against start-of-tick positions, then applied.
		for i := range g.agents {
			g.velocities[i] = systems.Steer(i, g.agents, aggression, g.steering, g.rng)
		}
		for i := range g.agents {
			g.agents[i].Vel = g.velocities[i]
		}
	} else {
		drift := float32(cfg.Idle.Drift)
		maxSpeed := float32(cfg.Idle.MaxSpeed)
		for i := range g.agents {
			systems.IdleDrift(&g.agents[i].Vel, drift, maxSpeed, g.rng)
		}
	}

	g.perfCollector.StartPhase(telemetry.PhaseIntegrate)
	chance := float32(cfg.Burst.Chance)
	strength := float32(cfg.Burst.Strength)
	for i := range g.agents {
		a := &g.agents[i]
		if systems.MaybeBurst(&a.Vel, chance, strength, g.rng) {
			g.collector.RecordBurst()
		}
		systems.Integrate(&a.Pos, &a.Vel, a.Radius, a.SpeedScale, speed, frames, g.bounds)
	}

	g.perfCollector.StartPhase(telemetry.PhaseCollision)
	if interactive {
		g.conversions = systems.ResolveCollisions(g.agents, g.conversions[:0])
		for _, c := range g.conversions {
			g.collector.RecordConversion(c.From, c.To)
		}
	}
	g.writeBack()

	g.perfCollector.StartPhase(telemetry.PhaseCensus)
	g.census = systems.Count(g.agents)
	g.tick++
	g.elapsed += dt

	var winner components.Kind
	var won bool
	if interactive {
		winner, won = g.winner.Observe(g.census)
	}
	if won {
		g.phase = PhaseFinished
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.series.Record(g.tick, g.elapsed, g.census)
	g.flushTelemetry()

	g.perfCollector.StartPhase(telemetry.PhaseCollaborators)
	if g.phase == PhaseRunning && g.sinks.Audio != nil {
		guard("audio", func() { g.sinks.Audio.Mix(g.census, settings.Speed) })
	}
	if won {
		g.finishRun(winner)
	}
	g.buildFrame()
	if g.sinks.Render != nil {
		guard("render", func() { g.sinks.Render.Render(&g.frame) })
	}

	g.perfCollector.EndTick()
}

// snapshot copies every agent out of the world into g.agents.
func (g *Game) snapshot() {
	g.entities = g.entities[:0]
	g.agents = g.agents[:0]

	query := g.agentFilter.Query()
	for query.Next() {
		pos, vel, body, motion, sp := query.Get()
		g.entities = append(g.entities, query.Entity())
		g.agents = append(g.agents, systems.Agent{
			Pos:        *pos,
			Vel:        *vel,
			Kind:       sp.Kind,
			Radius:     body.Radius,
			SpeedScale: motion.SpeedScale,
		})
	}

	if cap(g.velocities) < len(g.agents) {
		g.velocities = make([]components.Velocity, len(g.agents))
	}
	g.velocities = g.velocities[:len(g.agents)]
}

// writeBack stores snapshot results into the world.
func (g *Game) writeBack() {
	for i, e := range g.entities {
		a := &g.agents[i]
		pos, vel, _, _, sp := g.agentMapper.Get(e)
		*pos = a.Pos
		*vel = a.Vel
		if sp.Kind != a.Kind {
			sp.ConvertTo(a.Kind)
		}
	}
}

// buildFrame refreshes the render snapshot from the world.
func (g *Game) buildFrame() {
	f := &g.frame
	f.Agents = f.Agents[:0]
	query := g.agentFilter.Query()
	for query.Next() {
		pos, _, body, _, sp := query.Get()
		f.Agents = append(f.Agents, AgentView{Kind: sp.Kind, Pos: *pos, Radius: body.Radius})
	}
	f.Counts = g.census
	f.Phase = g.phase
	f.Winner, f.HasWinner = g.winner.Winner()
	f.Tick = g.tick
	f.Elapsed = g.elapsed
	f.Settings = g.controls.Active()
}

// ExportCSV writes the current run's series: a header row plus one row per tick.
func (g *Game) ExportCSV(w io.Writer) error {
	if err := telemetry.WriteCSV(w, g.series.Samples()); err != nil {
		return fmt.Errorf("exporting run %s: %w", g.runID, err)
	}
	return nil
}
