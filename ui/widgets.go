package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 4
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawSlider draws a labelled raygui slider bar with its formatted value to
// the right and returns the (possibly changed) value and the new Y.
func (r *Renderer) DrawSlider(x, y int32, label string, value, minVal, maxVal float32, valueText string) (float32, int32) {
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	bounds := rl.Rectangle{
		X:      float32(x + r.Theme.LabelWidth),
		Y:      float32(y),
		Width:  float32(r.Theme.SliderWidth),
		Height: float32(r.Theme.SliderHeight),
	}
	value = gui.SliderBar(bounds, "", "", value, minVal, maxVal)
	rl.DrawText(valueText, x+r.Theme.LabelWidth+r.Theme.SliderWidth+8, y, r.Theme.FontSize, r.Theme.ValueColor)
	return value, y + r.Theme.SliderHeight + 8
}

// DrawButton draws a raygui button and reports whether it was pressed.
func (r *Renderer) DrawButton(x, y, width int32, text string) bool {
	return gui.Button(rl.Rectangle{
		X:      float32(x),
		Y:      float32(y),
		Width:  float32(width),
		Height: float32(r.Theme.ButtonHeight),
	}, text)
}

// DrawShareBar draws a horizontal bar filled to share in [0, 1].
func (r *Renderer) DrawShareBar(x, y, width int32, share float32, fill rl.Color) int32 {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	rl.DrawRectangle(x, y, width, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(x, y, int32(float32(width)*share), r.Theme.BarHeight, fill)
	rl.DrawText(fmt.Sprintf("%.0f%%", share*100), x+width+5, y-1, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.BarHeight + 4
}
