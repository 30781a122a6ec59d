package game

import (
	"log/slog"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/telemetry"
)

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.elapsed, g.census)
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// finishRun logs and records a decided run and notifies collaborators.
func (g *Game) finishRun(winner components.Kind) {
	ev := WinEvent{
		Winner:  winner,
		Tick:    g.tick,
		Elapsed: g.elapsed,
		RunID:   g.runID,
	}

	samples := g.series.Samples()
	summary := telemetry.Summarize(samples)
	slog.Info("winner decided",
		"winner", winner.String(),
		"tick", g.tick,
		"elapsed", g.elapsed,
		"run_id", g.runID,
		"conversions", g.collector.TotalConversions(),
		"summary", summary,
	)

	if g.outputManager != nil {
		if err := g.outputManager.WriteSeries(g.runID, samples); err != nil {
			slog.Error("failed to write series", "run_id", g.runID, "error", err)
		}
		rec := summary.Record(g.runID, g.seed, winner, g.collector.TotalConversions())
		if err := g.outputManager.WriteRun(rec); err != nil {
			slog.Error("failed to write run summary", "run_id", g.runID, "error", err)
		}
	}

	g.notifyWin(ev, samples)
}

// notifyWin delivers the win to every collaborator exactly once.
func (g *Game) notifyWin(ev WinEvent, samples []telemetry.Sample) {
	named := []struct {
		name string
		sink any
	}{
		{"render", g.sinks.Render},
		{"audio", g.sinks.Audio},
		{"chart", g.sinks.Chart},
	}
	// One collaborator may fill several roles; it still hears the win once.
	var notified []WinListener
	for _, n := range named {
		l, ok := n.sink.(WinListener)
		if !ok || containsListener(notified, l) {
			continue
		}
		notified = append(notified, l)
		guard(n.name, func() { l.OnWin(ev) })
	}

	if g.sinks.Chart != nil {
		guard("chart", func() { g.sinks.Chart.ShowResult(ev.Winner, samples) })
	}

	for _, fn := range g.listeners {
		guard("win listener", func() { fn(ev) })
	}
}

func containsListener(ls []WinListener, l WinListener) bool {
	for _, x := range ls {
		if x == l {
			return true
		}
	}
	return false
}
