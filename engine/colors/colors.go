package colors

import "github.com/go-gl/mathgl/mgl32"

// Color is a linear RGBA color with components in [0..1].
type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	// Midnight is the engine's default clear color.
	Midnight = Color{0, 16.0 / 255, 32.0 / 255, 1}
)

// RGB builds an opaque color.
func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

// RGB8 builds an opaque color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Clamp limits every channel to [0..1].
func (c Color) Clamp() Color {
	for i, v := range c {
		c[i] = mgl32.Clamp(v, 0, 1)
	}
	return c
}

func (c Color) Vec3() mgl32.Vec3 { return mgl32.Vec3{c[0], c[1], c[2]} }
func (c Color) Vec4() mgl32.Vec4 { return mgl32.Vec4(c) }
