package telemetry

import (
	"math"

	"github.com/pthm-cable/rps/components"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	gained      [components.NumKinds]int
	lost        [components.NumKinds]int
	conversions int
	bursts      int

	// Run totals, not reset on flush
	totalConversions int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
	}
}

// RecordConversion records one agent changing from one kind to another.
func (c *Collector) RecordConversion(from, to components.Kind) {
	c.gained[to]++
	c.lost[from]++
	c.conversions++
	c.totalConversions++
}

// RecordBurst records a random velocity impulse.
func (c *Collector) RecordBurst() {
	c.bursts++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// counts are the live populations at window end.
func (c *Collector) Flush(currentTick int32, elapsed float64, counts [components.NumKinds]int) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      elapsed,

		Rock:     counts[components.Rock],
		Paper:    counts[components.Paper],
		Scissors: counts[components.Scissors],

		RockGained:     c.gained[components.Rock],
		PaperGained:    c.gained[components.Paper],
		ScissorsGained: c.gained[components.Scissors],
		RockLost:       c.lost[components.Rock],
		PaperLost:      c.lost[components.Paper],
		ScissorsLost:   c.lost[components.Scissors],

		Conversions: c.conversions,
		Bursts:      c.bursts,
	}
	stats.Leader, stats.LeaderShare = leader(counts)

	// Reset for next window
	c.windowStartTick = currentTick
	c.gained = [components.NumKinds]int{}
	c.lost = [components.NumKinds]int{}
	c.conversions = 0
	c.bursts = 0

	return stats
}

// Reset clears the window and run totals, starting a new window at tick 0.
func (c *Collector) Reset() {
	*c = Collector{
		windowDurationSec:   c.windowDurationSec,
		windowDurationTicks: c.windowDurationTicks,
	}
}

// TotalConversions returns the number of conversions since the last Reset.
func (c *Collector) TotalConversions() int {
	return c.totalConversions
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

// leader returns the most numerous kind and its share of the population.
// Ties go to the kind listed first.
func leader(counts [components.NumKinds]int) (string, float64) {
	best := components.Rock
	total := 0
	for _, k := range components.Kinds {
		total += counts[k]
		if counts[k] > counts[best] {
			best = k
		}
	}
	if total == 0 {
		return "", 0
	}
	return best.String(), float64(counts[best]) / float64(total)
}
