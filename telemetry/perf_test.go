package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorTracksPhases(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseSteering)
		time.Sleep(50 * time.Microsecond)
		pc.StartPhase(PhaseCollision)
		time.Sleep(400 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTick <= 0 {
		t.Error("expected positive average tick duration")
	}
	for _, ph := range []PerfPhase{PhaseSteering, PhaseCollision} {
		if stats.PhaseAvg(ph) <= 0 {
			t.Errorf("expected %s phase to be tracked", ph)
		}
	}
	if stats.PhaseAvg(PhaseCensus) != 0 {
		t.Errorf("census was never started, got %v", stats.PhaseAvg(PhaseCensus))
	}
	if stats.PhasePct(PhaseCollision) <= stats.PhasePct(PhaseSteering) {
		t.Errorf("collision (%v%%) should outweigh steering (%v%%)",
			stats.PhasePct(PhaseCollision), stats.PhasePct(PhaseSteering))
	}
	if stats.MinTick > stats.AvgTick || stats.AvgTick > stats.MaxTick {
		t.Errorf("expected min <= avg <= max, got %v / %v / %v", stats.MinTick, stats.AvgTick, stats.MaxTick)
	}
}

func TestPerfCollectorWindow(t *testing.T) {
	tests := []struct {
		name   string
		window int
		ticks  int
		want   int
	}{
		{"partial window", 5, 3, 3},
		{"rolls over", 5, 12, 5},
		{"default window", 0, 100, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc := NewPerfCollector(tt.window)
			for i := 0; i < tt.ticks; i++ {
				pc.StartTick()
				pc.StartPhase(PhaseCensus)
				pc.EndTick()
			}
			if got := pc.SampleCount(); got != tt.want {
				t.Errorf("SampleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPerfCollectorEmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTick != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("expected zero stats for empty collector, got %+v", stats)
	}
	if pct := stats.PhasePct(PhaseSteering); pct != 0 {
		t.Errorf("PhasePct on empty stats = %v, want 0", pct)
	}
}

func TestPerfPhaseString(t *testing.T) {
	tests := []struct {
		phase PerfPhase
		want  string
	}{
		{PhaseControls, "controls"},
		{PhaseCollision, "collision"},
		{PhaseCollaborators, "collaborators"},
		{PerfPhase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("PerfPhase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}

func TestPerfStatsRow(t *testing.T) {
	stats := PerfStats{
		AvgTick: 1000 * time.Microsecond,
		MaxTick: 3 * time.Millisecond,
	}
	stats.phaseAvg[PhaseSteering] = 600 * time.Microsecond
	stats.phaseAvg[PhaseCollision] = 300 * time.Microsecond
	stats.phaseAvg[PhaseCensus] = 100 * time.Microsecond

	row := stats.Row(240)
	if row.WindowEnd != 240 {
		t.Errorf("WindowEnd = %d, want 240", row.WindowEnd)
	}
	if row.AvgTickUS != 1000 || row.MaxTickUS != 3000 {
		t.Errorf("tick us = avg %d max %d, want 1000 / 3000", row.AvgTickUS, row.MaxTickUS)
	}
	if row.SteeringPct != 60 || row.CollisionPct != 30 || row.CensusPct != 10 {
		t.Errorf("phase pct = %v / %v / %v, want 60 / 30 / 10", row.SteeringPct, row.CollisionPct, row.CensusPct)
	}
	if row.ControlsPct != 0 {
		t.Errorf("untracked phase pct = %v, want 0", row.ControlsPct)
	}
}
