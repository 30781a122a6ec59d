// Package renderer draws the arena, agents and result chart with raylib.
package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/components"
	"github.com/pthm-cable/rps/config"
	"github.com/pthm-cable/rps/game"
	"github.com/pthm-cable/rps/telemetry"
)

// Scene is the render sink. It keeps the latest frame handed over by the
// game and draws it on demand from the window loop.
type Scene struct {
	background *BackgroundRenderer
	chart      *ResultChart
	fps        *telemetry.FPSMonitor

	frame     *game.Frame
	banner    string
	glyphSize int32
	width     int32
	height    int32
	showChart bool
}

// NewScene creates a render sink for the configured arena.
func NewScene(cfg *config.Config, seed int64, fps *telemetry.FPSMonitor) *Scene {
	w := int32(cfg.Derived.ArenaW32)
	h := int32(cfg.Derived.ArenaH32)
	return &Scene{
		background: NewBackgroundRenderer(w, h, seed, 236, 232, 220),
		chart:      NewResultChart(cfg.Telemetry.ChartWindow, cfg.Telemetry.ChartSmoothing),
		fps:        fps,
		glyphSize:  int32(cfg.Derived.SpriteSize * 0.6),
		width:      w,
		height:     h,
		showChart:  cfg.Features.Chart,
	}
}

// Render implements game.RenderSink. The frame is only read during Draw.
func (s *Scene) Render(f *game.Frame) {
	s.frame = f
	if f.Phase != game.PhaseFinished && (s.chart.Visible() || s.banner != "") {
		s.chart.Hide()
		s.banner = ""
	}
}

// ShowResult implements game.ChartSink.
func (s *Scene) ShowResult(winner components.Kind, samples []telemetry.Sample) {
	if !s.showChart {
		return
	}
	s.chart.Load(winner, samples)
}

// OnWin implements game.WinListener.
func (s *Scene) OnWin(ev game.WinEvent) {
	s.banner = fmt.Sprintf("%s Wins! (%.1fs)", ev.Winner.Title(), ev.Elapsed)
}

// Init loads GPU resources (must be called after raylib window is created).
func (s *Scene) Init() {
	s.background.Init()
}

// Draw renders the current frame. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw() {
	s.background.Draw()

	f := s.frame
	if f == nil {
		return
	}

	for _, a := range f.Agents {
		s.drawAgent(a)
	}

	s.drawCounters(f)
	s.drawFPS()

	if f.Phase == game.PhaseFinished {
		if s.chart.Visible() {
			cw := s.width * 4 / 5
			ch := s.height * 3 / 5
			s.chart.Draw((s.width-cw)/2, (s.height-ch)/2, cw, ch)
		} else if s.banner != "" {
			s.drawBanner(s.banner)
		}
	}
}

// Unload frees resources.
func (s *Scene) Unload() {
	s.background.Unload()
}

func (s *Scene) drawAgent(a game.AgentView) {
	col := KindColor(a.Kind)
	rl.DrawCircleV(rl.Vector2{X: a.Pos.X, Y: a.Pos.Y}, a.Radius, col)

	glyph := KindGlyph(a.Kind)
	tw := rl.MeasureText(glyph, s.glyphSize)
	rl.DrawText(glyph, int32(a.Pos.X)-tw/2, int32(a.Pos.Y)-s.glyphSize/2, s.glyphSize, rl.White)
}

func (s *Scene) drawCounters(f *game.Frame) {
	y := int32(10)
	for _, k := range components.Kinds {
		rl.DrawText(fmt.Sprintf("%s: %d", k.Title(), f.Counts.Of(k)), 10, y, 20, KindColor(k))
		y += 24
	}
}

func (s *Scene) drawFPS() {
	if s.fps == nil || !s.fps.Enabled() {
		return
	}
	col := rl.DarkGreen
	if s.fps.Low() {
		col = rl.Red
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", s.fps.FPS()), 10, 84, 16, col)
}

func (s *Scene) drawBanner(text string) {
	size := int32(40)
	tw := rl.MeasureText(text, size)
	rl.DrawText(text, (s.width-tw)/2, s.height/2-size/2, size, rl.Black)
}
