package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Checkerboard is the ground-plane pattern: the parity of the floored,
// scaled X and Z coordinates selects between two fixed colors.
// It is not lit; shadows are applied by the tracer.
type Checkerboard struct {
	Scale float64    // Squares per world unit
	Light core.Color // Color of odd squares
	Dark  core.Color // Color of even squares
}

// DefaultCheckerboard returns one-unit white and dark gray squares
func DefaultCheckerboard() *Checkerboard {
	return &Checkerboard{
		Scale: 1.0,
		Light: core.NewColor(1, 1, 1),
		Dark:  core.NewColor(0.2, 0.2, 0.2),
	}
}

// Evaluate returns the square color under point
func (c *Checkerboard) Evaluate(point core.Vec3) core.Color {
	scale := c.Scale
	if scale == 0 {
		scale = 1
	}
	ix := int64(math.Floor(point.X * scale))
	iz := int64(math.Floor(point.Z * scale))
	if (ix+iz)&1 != 0 {
		return c.Light
	}
	return c.Dark
}
