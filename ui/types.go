// Package ui provides the on-screen control panel and its styling.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	SliderWidth    int32
	SliderHeight   int32
	ButtonHeight   int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.White,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     80,
		SliderWidth:    140,
		SliderHeight:   14,
		ButtonHeight:   24,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
