package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGB color whose channels always lie in [0, 1].
// Every constructor and arithmetic combination clamps.
type Color struct {
	r, g, b float64
}

// NewColor creates a color, clamping each channel to [0, 1]
func NewColor(r, g, b float64) Color {
	return Color{r: clamp01(r), g: clamp01(g), b: clamp01(b)}
}

// R returns the red channel
func (c Color) R() float64 { return c.r }

// G returns the green channel
func (c Color) G() float64 { return c.g }

// B returns the blue channel
func (c Color) B() float64 { return c.b }

// Add returns the clamped channel-wise sum
func (c Color) Add(other Color) Color {
	return NewColor(c.r+other.r, c.g+other.g, c.b+other.b)
}

// Scale returns the color multiplied by a scalar, clamped
func (c Color) Scale(s float64) Color {
	return NewColor(c.r*s, c.g*s, c.b*s)
}

// Modulate returns the channel-wise product of two colors
func (c Color) Modulate(other Color) Color {
	return NewColor(c.r*other.r, c.g*other.g, c.b*other.b)
}

// Mix blends c and other as c*(1-t) + other*t on raw channels, clamping once
func (c Color) Mix(other Color, t float64) Color {
	return NewColor(
		c.r*(1-t)+other.r*t,
		c.g*(1-t)+other.g*t,
		c.b*(1-t)+other.b*t,
	)
}

// Vec returns the channels as a Vec3 (R, G, B)
func (c Color) Vec() Vec3 {
	return Vec3{c.r, c.g, c.b}
}

// RGBA converts the color to an opaque 8-bit color
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.r),
		G: to8(c.g),
		B: to8(c.b),
		A: 255,
	}
}

// FromRGBA converts an 8-bit color back to a Color
func FromRGBA(c color.RGBA) Color {
	return Color{
		r: float64(c.R) / 255,
		g: float64(c.G) / 255,
		b: float64(c.B) / 255,
	}
}

// String implements fmt.Stringer
func (c Color) String() string {
	return fmt.Sprintf("Color(%.3f, %.3f, %.3f)", c.r, c.g, c.b)
}

// ColorAccumulator sums raw channel values without clamping so that
// averages over many samples are not biased toward the clamp bounds.
type ColorAccumulator struct {
	R, G, B float64
}

// Add accumulates a color sample
func (a *ColorAccumulator) Add(c Color) {
	a.R += c.r
	a.G += c.g
	a.B += c.b
}

// AddWeighted accumulates a color sample scaled by w
func (a *ColorAccumulator) AddWeighted(c Color, w float64) {
	a.R += c.r * w
	a.G += c.g * w
	a.B += c.b * w
}

// Average divides the sums by n and clamps into a Color
func (a ColorAccumulator) Average(n int) Color {
	if n <= 0 {
		return Color{}
	}
	inv := 1.0 / float64(n)
	return NewColor(a.R*inv, a.G*inv, a.B*inv)
}

// Color clamps the raw sums into a Color
func (a ColorAccumulator) Color() Color {
	return NewColor(a.R, a.G, a.B)
}

func clamp01(v float64) float64 {
	// NaN collapses to 0 so it never escapes into an image
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
