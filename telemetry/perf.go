package telemetry

import (
	"log/slog"
	"time"
)

// PerfPhase identifies one stage of the tick pipeline.
type PerfPhase int

// Pipeline stages, in execution order.
const (
	PhaseControls PerfPhase = iota
	PhaseSteering
	PhaseIntegrate
	PhaseCollision
	PhaseCensus
	PhaseTelemetry
	PhaseCollaborators
	numPerfPhases
)

var perfPhaseNames = [numPerfPhases]string{
	"controls", "steering", "integrate", "collision", "census", "telemetry", "collaborators",
}

// String returns the phase name used in logs and CSV headers.
func (p PerfPhase) String() string {
	if p < 0 || p >= numPerfPhases {
		return "unknown"
	}
	return perfPhaseNames[p]
}

type phaseTimes [numPerfPhases]time.Duration

type tickTiming struct {
	total  time.Duration
	phases phaseTimes
}

// PerfCollector keeps per-phase tick timings over a rolling window of ticks.
type PerfCollector struct {
	ring  []tickTiming
	next  int
	count int

	current    tickTiming
	tickStart  time.Time
	phaseStart time.Time
	phase      PerfPhase
	inPhase    bool
}

// NewPerfCollector creates a collector averaging over window ticks.
// A window below 1 uses 60 ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{ring: make([]tickTiming, window)}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickTiming{}
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens phase.
func (p *PerfCollector) StartPhase(phase PerfPhase) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
	p.inPhase = true
}

// EndTick closes the tick and stores it in the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.current.total = now.Sub(p.tickStart)

	p.ring[p.next] = p.current
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase && p.phase >= 0 && p.phase < numPerfPhases {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
	p.inPhase = false
}

// SampleCount returns the number of ticks currently in the window.
func (p *PerfCollector) SampleCount() int {
	return p.count
}

// PerfStats summarizes the window.
type PerfStats struct {
	AvgTick        time.Duration
	MinTick        time.Duration
	MaxTick        time.Duration
	TicksPerSecond float64

	phaseAvg phaseTimes
}

// PhaseAvg returns the mean time spent in phase per tick.
func (s PerfStats) PhaseAvg(phase PerfPhase) time.Duration {
	if phase < 0 || phase >= numPerfPhases {
		return 0
	}
	return s.phaseAvg[phase]
}

// PhasePct returns phase's share of the mean tick, in percent.
func (s PerfStats) PhasePct(phase PerfPhase) float64 {
	if s.AvgTick <= 0 {
		return 0
	}
	return float64(s.PhaseAvg(phase)) / float64(s.AvgTick) * 100
}

// Stats aggregates the ticks in the window.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.count == 0 {
		return s
	}

	var total time.Duration
	var sums phaseTimes
	for i := 0; i < p.count; i++ {
		t := p.ring[i]
		total += t.total
		if i == 0 || t.total < s.MinTick {
			s.MinTick = t.total
		}
		if t.total > s.MaxTick {
			s.MaxTick = t.total
		}
		for ph, d := range t.phases {
			sums[ph] += d
		}
	}

	n := time.Duration(p.count)
	s.AvgTick = total / n
	for ph := range sums {
		s.phaseAvg[ph] = sums[ph] / n
	}
	if s.AvgTick > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTick)
	}
	return s
}

// LogStats logs the window at info level. Phases under 0.1% are omitted.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTick.Microseconds(),
		"min_tick_us", s.MinTick.Microseconds(),
		"max_tick_us", s.MaxTick.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	for ph := PerfPhase(0); ph < numPerfPhases; ph++ {
		if pct := s.PhasePct(ph); pct > 0.1 {
			attrs = append(attrs, ph.String()+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	for ph := PerfPhase(0); ph < numPerfPhases; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct(ph)))
	}
	return slog.GroupValue(attrs...)
}

// PerfRow is one perf.csv row.
type PerfRow struct {
	WindowEnd        int32   `csv:"window_end"`
	AvgTickUS        int64   `csv:"avg_tick_us"`
	MinTickUS        int64   `csv:"min_tick_us"`
	MaxTickUS        int64   `csv:"max_tick_us"`
	TicksPerSec      float64 `csv:"ticks_per_sec"`
	ControlsPct      float64 `csv:"controls_pct"`
	SteeringPct      float64 `csv:"steering_pct"`
	IntegratePct     float64 `csv:"integrate_pct"`
	CollisionPct     float64 `csv:"collision_pct"`
	CensusPct        float64 `csv:"census_pct"`
	TelemetryPct     float64 `csv:"telemetry_pct"`
	CollaboratorsPct float64 `csv:"collaborators_pct"`
}

// Row flattens the stats for CSV output.
func (s PerfStats) Row(windowEnd int32) PerfRow {
	return PerfRow{
		WindowEnd:        windowEnd,
		AvgTickUS:        s.AvgTick.Microseconds(),
		MinTickUS:        s.MinTick.Microseconds(),
		MaxTickUS:        s.MaxTick.Microseconds(),
		TicksPerSec:      s.TicksPerSecond,
		ControlsPct:      s.PhasePct(PhaseControls),
		SteeringPct:      s.PhasePct(PhaseSteering),
		IntegratePct:     s.PhasePct(PhaseIntegrate),
		CollisionPct:     s.PhasePct(PhaseCollision),
		CensusPct:        s.PhasePct(PhaseCensus),
		TelemetryPct:     s.PhasePct(PhaseTelemetry),
		CollaboratorsPct: s.PhasePct(PhaseCollaborators),
	}
}
