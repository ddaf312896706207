package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point        core.Vec3            // A point on the plane
	Normal       core.Vec3            // Unit normal
	Reflectivity float64              // Base reflectivity in [0, 1]
	Surface      material.ColorSource // Surface pattern, checkerboard by default
}

// NewPlane creates a checkerboard plane. The normal is normalized.
func NewPlane(point, normal core.Vec3, reflectivity float64) *Plane {
	return &Plane{
		Point:        point,
		Normal:       normal.Normalize(),
		Reflectivity: clampReflectivity(reflectivity),
		Surface:      material.DefaultCheckerboard(),
	}
}

// WithSurface replaces the surface pattern and returns the plane
func (p *Plane) WithSurface(surface material.ColorSource) *Plane {
	p.Surface = surface
	return p
}

func (p *Plane) shape() {}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Parallel rays never hit, whatever their origin
	if math.Abs(denominator) < planeParallelEpsilon {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < planeMinDistance {
		return 0, false
	}
	return t, true
}

// ShadedColor returns the surface pattern color. Planes are not lit by the
// analytic light; the tracer darkens shadowed points instead.
func (p *Plane) ShadedColor(point core.Vec3, lighting material.Lighting) core.Color {
	if p.Surface == nil {
		return material.DefaultCheckerboard().Evaluate(point)
	}
	return p.Surface.Evaluate(point)
}
