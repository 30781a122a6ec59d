package game

import (
	"math"

	"github.com/pthm-cable/rps/config"
)

// Settings are the three tunables of the control surface.
type Settings struct {
	Speed      float64 // global speed multiplier
	Aggression int     // 0-100 slider position
	Density    int     // 0-100 slider position
}

// Controls stages control-surface writes and applies them at the next tick
// boundary. All writes are clamped to their ranges; none fail.
type Controls struct {
	cfg    config.ControlsConfig
	active Settings
	staged Settings
}

// NewControls creates controls at the configured defaults.
func NewControls(cfg *config.Config) *Controls {
	c := &Controls{cfg: cfg.Controls}
	c.staged = Settings{
		Speed:      c.clampSpeed(cfg.Controls.DefaultSpeed),
		Aggression: clampPercent(cfg.Controls.DefaultAggression),
		Density:    clampPercent(cfg.Controls.DefaultDensity),
	}
	c.active = c.staged
	return c
}

// SetSpeed stages a new speed multiplier.
func (c *Controls) SetSpeed(v float64) {
	c.staged.Speed = c.clampSpeed(v)
}

// SetAggression stages a new aggression slider position (0-100).
func (c *Controls) SetAggression(v int) {
	c.staged.Aggression = clampPercent(v)
}

// SetDensity stages a new density slider position (0-100).
func (c *Controls) SetDensity(v int) {
	c.staged.Density = clampPercent(v)
}

// Staged returns the values that will apply at the next tick.
func (c *Controls) Staged() Settings {
	return c.staged
}

// Active returns the values in effect for the current tick.
func (c *Controls) Active() Settings {
	return c.active
}

// commit makes staged values active and reports whether the population
// target changed.
func (c *Controls) commit() (resize bool) {
	resize = c.PerKindFor(c.staged.Density) != c.PerKindFor(c.active.Density)
	c.active = c.staged
	return resize
}

// AggressionRatio returns the active prey-seeking weight.
func (c *Controls) AggressionRatio() float32 {
	return float32(AggressionRatio(c.active.Aggression, c.cfg.AggressionMin, c.cfg.AggressionMax))
}

// PerKind returns the active per-kind population target.
func (c *Controls) PerKind() int {
	return c.PerKindFor(c.active.Density)
}

// PerKindFor maps a density slider position to a per-kind count.
func (c *Controls) PerKindFor(density int) int {
	return PerKindFromDensity(density, c.cfg.MinPerKind, c.cfg.MaxPerKind)
}

func (c *Controls) clampSpeed(v float64) float64 {
	if math.IsNaN(v) {
		return c.cfg.DefaultSpeed
	}
	return math.Max(c.cfg.SpeedMin, math.Min(v, c.cfg.SpeedMax))
}

// AggressionRatio maps a 0-100 slider position onto [lo, hi].
func AggressionRatio(slider int, lo, hi float64) float64 {
	return lo + (hi-lo)*float64(clampPercent(slider))/100
}

// PerKindFromDensity maps a 0-100 density onto [minPer, maxPer], rounding down.
func PerKindFromDensity(density, minPer, maxPer int) int {
	pct := float64(clampPercent(density)) / 100
	n := int(math.Floor(float64(minPer) + float64(maxPer-minPer)*pct))
	return max(minPer, min(n, maxPer))
}

func clampPercent(v int) int {
	return max(0, min(v, 100))
}
