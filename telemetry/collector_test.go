package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/rps/components"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1, 0.1) // 10 ticks per window
	if c.WindowDurationTicks() != 10 {
		t.Fatalf("WindowDurationTicks() = %d, want 10", c.WindowDurationTicks())
	}
	if c.ShouldFlush(9) {
		t.Error("should not flush before a full window")
	}
	if !c.ShouldFlush(10) {
		t.Error("should flush after a full window")
	}

	c.RecordConversion(components.Rock, components.Paper)
	c.RecordConversion(components.Rock, components.Paper)
	c.RecordConversion(components.Paper, components.Scissors)
	c.RecordBurst()

	stats := c.Flush(10, 1.0, [components.NumKinds]int{1, 6, 3})
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window = [%d, %d], want [0, 10]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.PaperGained != 2 || stats.ScissorsGained != 1 || stats.RockLost != 2 || stats.PaperLost != 1 {
		t.Errorf("gains/losses = %+v", stats)
	}
	if stats.Conversions != 3 || stats.Bursts != 1 {
		t.Errorf("conversions %d bursts %d, want 3 / 1", stats.Conversions, stats.Bursts)
	}
	if stats.Leader != "paper" || math.Abs(stats.LeaderShare-0.6) > 1e-9 {
		t.Errorf("leader = %s %.2f, want paper 0.60", stats.Leader, stats.LeaderShare)
	}

	// Counters reset, totals kept.
	next := c.Flush(20, 2.0, [components.NumKinds]int{1, 6, 3})
	if next.Conversions != 0 || next.Bursts != 0 || next.WindowStartTick != 10 {
		t.Errorf("second window = %+v", next)
	}
	if c.TotalConversions() != 3 {
		t.Errorf("TotalConversions() = %d, want 3", c.TotalConversions())
	}

	c.Reset()
	if c.TotalConversions() != 0 || c.ShouldFlush(5) || c.WindowDurationTicks() != 10 {
		t.Error("Reset should clear totals and keep window size")
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0, 1.0/60)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("WindowDurationTicks() = %d, want 1", c.WindowDurationTicks())
	}
}

func TestLeaderEmpty(t *testing.T) {
	if name, share := leader([components.NumKinds]int{}); name != "" || share != 0 {
		t.Errorf("leader of empty = %q %v", name, share)
	}
}
