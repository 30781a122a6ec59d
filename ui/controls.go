package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/game"
)

// Actions reports the buttons pressed during one Draw call.
type Actions struct {
	Start      bool
	Restart    bool
	CycleMusic bool
	Export     bool
}

// KindColorFunc maps a kind to its display colour.
type KindColorFunc func(components.Kind) rl.Color

// ControlPanel renders the speed, aggression and density sliders plus the
// run buttons. Slider writes go through game.Controls and take effect at the
// next tick boundary.
type ControlPanel struct {
	renderer  *Renderer
	cfg       config.ControlsConfig
	colorOf   KindColorFunc
	x, y      int32
	width     int32
	visible   bool
	showMusic bool
}

// NewControlPanel creates a panel anchored at (x, y).
func NewControlPanel(cfg *config.Config, x, y int32, colorOf KindColorFunc) *ControlPanel {
	r := NewRenderer()
	return &ControlPanel{
		renderer:  r,
		cfg:       cfg.Controls,
		colorOf:   colorOf,
		x:         x,
		y:         y,
		width:     r.Theme.LabelWidth + r.Theme.SliderWidth + 90,
		visible:   true,
		showMusic: cfg.Features.Audio,
	}
}

// Width returns the panel width in pixels.
func (c *ControlPanel) Width() int32 {
	return c.width
}

// SetPosition moves the panel's top-left corner.
func (c *ControlPanel) SetPosition(x, y int32) {
	c.x, c.y = x, y
}

// Toggle switches panel visibility.
func (c *ControlPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlPanel) IsVisible() bool {
	return c.visible
}

// Draw renders the panel, applies slider changes and returns pressed buttons.
// musicLabel is the text of the music cycle button.
func (c *ControlPanel) Draw(g *game.Game, musicLabel string) Actions {
	var act Actions
	if !c.visible {
		return act
	}

	r := c.renderer
	th := r.Theme
	ctl := g.Controls()
	staged := ctl.Staged()

	panelHeight := th.Padding*2 + th.LineHeight + 4 + 3*(th.SliderHeight+8) + 3*(th.BarHeight+4) + 8 + th.ButtonHeight
	if g.Phase() == game.PhaseFinished {
		panelHeight += th.ButtonHeight + 6
	}
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := c.x + th.Padding
	y := r.DrawSectionHeader(x, c.y+th.Padding, fmt.Sprintf("Run: %s  tick %d", g.Phase(), g.Tick()))

	speed, y := r.DrawSlider(x, y, "Speed", float32(staged.Speed),
		float32(c.cfg.SpeedMin), float32(c.cfg.SpeedMax), FormatSpeed(staged.Speed))
	if !nearlyEqual(float64(speed), staged.Speed) {
		ctl.SetSpeed(float64(speed))
	}

	aggression, y := r.DrawSlider(x, y, "Aggression", float32(staged.Aggression), 0, 100, FormatPercent(staged.Aggression))
	if v := int(math.Round(float64(aggression))); v != staged.Aggression {
		ctl.SetAggression(v)
	}

	density, y := r.DrawSlider(x, y, "Density", float32(staged.Density), 0, 100, FormatPerKind(ctl.PerKindFor(staged.Density)))
	if v := int(math.Round(float64(density))); v != staged.Density {
		ctl.SetDensity(v)
	}

	counts := g.Counts()
	total := counts.Total()
	for _, k := range components.Kinds {
		share := float32(0)
		if total > 0 {
			share = float32(counts.Of(k)) / float32(total)
		}
		y = r.DrawShareBar(x, y, th.LabelWidth+th.SliderWidth, share, c.colorOf(k))
	}
	y += 8

	buttonW := (c.width - th.Padding*3) / 2
	if g.Phase() == game.PhaseIdle {
		act.Start = r.DrawButton(x, y, buttonW, "Start")
	} else {
		act.Restart = r.DrawButton(x, y, buttonW, "Restart")
	}
	if c.showMusic {
		act.CycleMusic = r.DrawButton(x+buttonW+th.Padding, y, buttonW, musicLabel)
	}

	if g.Phase() == game.PhaseFinished {
		y += th.ButtonHeight + 6
		act.Export = r.DrawButton(x, y, buttonW*2+th.Padding, "Export CSV")
	}

	return act
}

// FormatSpeed formats the speed multiplier as shown next to its slider.
func FormatSpeed(v float64) string {
	return fmt.Sprintf("%.1fx", v)
}

// FormatPercent formats a 0-100 slider value.
func FormatPercent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// FormatPerKind formats the per-kind population implied by the density slider.
func FormatPerKind(n int) string {
	return fmt.Sprintf("%d each", n)
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}
