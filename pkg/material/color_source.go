package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying surface colors
type ColorSource interface {
	// Evaluate returns the surface color at a world-space point
	Evaluate(point core.Vec3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Color {
	return s.Color
}

// TexturedColor modulates a base color with a procedural texture evaluated
// in the local frame of a sphere (center, radius).
type TexturedColor struct {
	Base    core.Color
	Texture Texture
	Center  core.Vec3
	Radius  float64
}

// Evaluate maps the point into the unit local frame and applies the texture
func (tc *TexturedColor) Evaluate(point core.Vec3) core.Color {
	local := point.Subtract(tc.Center)
	if tc.Radius > 0 {
		local = local.Divide(tc.Radius)
	}
	return tc.Texture.Apply(tc.Base, local)
}
