package renderer

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/ojrac/opensimplex-go"
)

const (
	backgroundOctaves     = 4
	backgroundFrequency   = 0.004
	backgroundPersistence = 0.5
	backgroundContrast    = 18 // max brightness offset around the base colour
)

// BackgroundRenderer draws a soft simplex noise texture behind the arena.
// The texture is generated once from the seed so a run's backdrop is stable.
type BackgroundRenderer struct {
	texture rl.Texture2D

	width, height int32
	seed          int64
	base          color.RGBA
	initialized   bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(width, height int32, seed int64, baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		width:  width,
		height: height,
		seed:   seed,
		base:   color.RGBA{R: baseR, G: baseG, B: baseB, A: 255},
	}
}

// Init uploads the noise texture (must be called after raylib window is created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	img := NoiseImage(int(b.width), int(b.height), b.seed, b.base)
	b.texture = rl.LoadTextureFromImage(rl.NewImageFromImage(img))
	b.initialized = true
}

// Draw renders the background texture.
func (b *BackgroundRenderer) Draw() {
	if !b.initialized {
		b.Init()
	}
	rl.DrawTexture(b.texture, 0, 0, rl.White)
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		rl.UnloadTexture(b.texture)
		b.initialized = false
	}
}

// NoiseImage shades base with layered simplex noise.
func NoiseImage(width, height int, seed int64, base color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	noise := opensimplex.NewNormalized(seed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := octaveNoise(noise, float64(x), float64(y), backgroundOctaves, backgroundFrequency, backgroundPersistence)
			offset := int((n - 0.5) * 2 * backgroundContrast)
			img.SetRGBA(x, y, color.RGBA{
				R: shade(base.R, offset),
				G: shade(base.G, offset),
				B: shade(base.B, offset),
				A: 255,
			})
		}
	}
	return img
}

// octaveNoise layers several noise frequencies; the result stays in [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

func shade(c uint8, offset int) uint8 {
	v := int(c) + offset
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
