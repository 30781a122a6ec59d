package renderer

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/telemetry"
)

// ResultChart plots per-kind counts over the tail of a finished run.
type ResultChart struct {
	windowSec float64
	smoothing int

	title   string
	points  []telemetry.Sample
	start   float64 // elapsed of the first raw sample, for axis labels
	lo, hi  int
	visible bool
}

// NewResultChart creates a chart showing the last windowSec seconds,
// averaged over blocks of smoothing samples.
func NewResultChart(windowSec float64, smoothing int) *ResultChart {
	return &ResultChart{windowSec: windowSec, smoothing: smoothing}
}

// Load replaces the chart contents with a finished run's series.
func (c *ResultChart) Load(winner components.Kind, samples []telemetry.Sample) {
	c.title = fmt.Sprintf("%s Wins! Counts Over Time (%.0f seconds max)", strings.ToUpper(winner.String()), c.windowSec)
	c.points = telemetry.Smooth(telemetry.Window(samples, c.windowSec), c.smoothing)
	c.start = 0
	if len(samples) > 0 {
		c.start = samples[0].Elapsed
	}
	c.lo, c.hi = countRange(c.points)
	c.visible = len(c.points) > 0
}

// Hide clears the chart.
func (c *ResultChart) Hide() {
	c.visible = false
	c.points = nil
}

// Visible reports whether a result is loaded.
func (c *ResultChart) Visible() bool {
	return c.visible
}

// Draw renders the chart into the given rectangle.
func (c *ResultChart) Draw(x, y, w, h int32) {
	if !c.visible {
		return
	}

	rl.DrawRectangle(x, y, w, h, rl.Color{R: 250, G: 250, B: 250, A: 235})
	rl.DrawRectangleLines(x, y, w, h, rl.Color{R: 60, G: 60, B: 60, A: 255})

	titleSize := int32(18)
	titleW := rl.MeasureText(c.title, titleSize)
	rl.DrawText(c.title, x+(w-titleW)/2, y+10, titleSize, rl.Black)

	// Legend
	legendY := y + 36
	legendX := x + w/2 - 120
	for _, k := range components.Kinds {
		rl.DrawRectangle(legendX, legendY+2, 24, 10, KindColor(k))
		rl.DrawText(k.Title(), legendX+30, legendY, 16, rl.Black)
		legendX += 90
	}

	const pad = 40
	plotX := float32(x + pad)
	plotY := float32(y + 64)
	plotW := float32(w - 2*pad)
	plotH := float32(h - 64 - pad)
	axis := rl.Color{R: 120, G: 120, B: 120, A: 255}
	rl.DrawLineV(rl.Vector2{X: plotX, Y: plotY + plotH}, rl.Vector2{X: plotX + plotW, Y: plotY + plotH}, axis)
	rl.DrawLineV(rl.Vector2{X: plotX, Y: plotY}, rl.Vector2{X: plotX, Y: plotY + plotH}, axis)

	rl.DrawText(fmt.Sprintf("%d", c.hi), x+6, int32(plotY)-6, 12, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("%d", c.lo), x+6, int32(plotY+plotH)-6, 12, rl.DarkGray)

	first := c.points[0].Elapsed
	last := c.points[len(c.points)-1].Elapsed
	rl.DrawText(fmt.Sprintf("%.1f", first-c.start), int32(plotX), int32(plotY+plotH)+6, 12, rl.DarkGray)
	lastLabel := fmt.Sprintf("%.1f", last-c.start)
	rl.DrawText(lastLabel, int32(plotX+plotW)-rl.MeasureText(lastLabel, 12), int32(plotY+plotH)+6, 12, rl.DarkGray)

	span := last - first
	rangeY := float32(c.hi - c.lo)
	if rangeY == 0 {
		rangeY = 1
	}
	project := func(s telemetry.Sample, k components.Kind) rl.Vector2 {
		fx := float32(0.5)
		if span > 0 {
			fx = float32((s.Elapsed - first) / span)
		}
		fy := float32(s.Count(k)-c.lo) / rangeY
		return rl.Vector2{X: plotX + fx*plotW, Y: plotY + plotH - fy*plotH}
	}

	for _, k := range components.Kinds {
		col := KindColor(k)
		prev := project(c.points[0], k)
		for _, s := range c.points[1:] {
			next := project(s, k)
			rl.DrawLineEx(prev, next, 2, col)
			prev = next
		}
	}
}

// countRange returns the smallest and largest count across all kinds.
func countRange(samples []telemetry.Sample) (lo, hi int) {
	if len(samples) == 0 {
		return 0, 0
	}
	lo, hi = samples[0].Rock, samples[0].Rock
	for _, s := range samples {
		for _, n := range s.Counts() {
			if n < lo {
				lo = n
			}
			if n > hi {
				hi = n
			}
		}
	}
	return lo, hi
}
