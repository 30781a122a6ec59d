package game

import (
	"log/slog"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/systems"
	"github.com/pthm-cable/rps/telemetry"
)

// AgentView is the read-only render tuple for one agent.
type AgentView struct {
	Kind   components.Kind
	Pos    components.Position
	Radius float32
}

// Frame is the per-tick snapshot handed to the render sink. It is reused
// between ticks and is only valid until the next Step.
type Frame struct {
	Agents    []AgentView
	Counts    systems.Census
	Phase     Phase
	Winner    components.Kind
	HasWinner bool
	Tick      int32
	Elapsed   float64
	Settings  Settings
}

// WinEvent is delivered once per run when a single kind remains.
type WinEvent struct {
	Winner  components.Kind
	Tick    int32
	Elapsed float64
	RunID   string
}

// RenderSink consumes one frame per tick.
type RenderSink interface {
	Render(f *Frame)
}

// AudioSink consumes per-kind counts and the speed multiplier while a run is live.
type AudioSink interface {
	Mix(counts systems.Census, speed float64)
}

// ChartSink receives a finished run's series.
type ChartSink interface {
	ShowResult(winner components.Kind, samples []telemetry.Sample)
}

// WinListener is implemented by collaborators that react to a win.
type WinListener interface {
	OnWin(ev WinEvent)
}

// Sinks groups the optional collaborators. Nil fields are skipped.
type Sinks struct {
	Render RenderSink
	Audio  AudioSink
	Chart  ChartSink
}

// guard runs a collaborator call, logging and swallowing any panic so a
// failing collaborator never stops the tick.
func guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("collaborator failed", "collaborator", name, "panic", r)
		}
	}()
	fn()
}
