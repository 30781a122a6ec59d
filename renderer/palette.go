package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rps/components"
)

var kindColors = [components.NumKinds]rl.Color{
	components.Rock:     {R: 220, G: 40, B: 40, A: 255},
	components.Paper:    {R: 40, G: 80, B: 220, A: 255},
	components.Scissors: {R: 30, G: 150, B: 50, A: 255},
}

var kindGlyphs = [components.NumKinds]string{
	components.Rock:     "R",
	components.Paper:    "P",
	components.Scissors: "S",
}

// KindColor returns the display colour for a kind.
func KindColor(k components.Kind) rl.Color {
	if !k.Valid() {
		return rl.Gray
	}
	return kindColors[k]
}

// KindGlyph returns the single-letter glyph drawn on an agent.
func KindGlyph(k components.Kind) string {
	if !k.Valid() {
		return "?"
	}
	return kindGlyphs[k]
}
