package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Cube represents an axis-aligned cube
type Cube struct {
	Center       core.Vec3
	Size         float64 // Edge length
	Color        core.Color
	Reflectivity float64
}

// NewCube creates a new axis-aligned cube with the given edge length
func NewCube(center core.Vec3, size float64, color core.Color, reflectivity float64) *Cube {
	return &Cube{
		Center:       center,
		Size:         size,
		Color:        color,
		Reflectivity: clampReflectivity(reflectivity),
	}
}

func (c *Cube) shape() {}

// Bounds returns the cube's box
func (c *Cube) Bounds() core.AABB {
	return core.NewCenteredAABB(c.Center, c.Size)
}

// Min returns the lower corner of the cube
func (c *Cube) Min() core.Vec3 {
	return c.Bounds().Min
}

// Max returns the upper corner of the cube
func (c *Cube) Max() core.Vec3 {
	return c.Bounds().Max
}

// Intersect tests the ray against the three axis slabs. A ray starting
// inside the cube hits at the exit distance.
func (c *Cube) Intersect(ray core.Ray) (float64, bool) {
	tNear, tFar, ok := c.Bounds().Slabs(ray)
	if !ok {
		return 0, false
	}

	t := tNear
	if t < 0 {
		t = tFar
	}
	if t < 0 || math.IsInf(t, 0) {
		return 0, false
	}
	return t, true
}

// faceNormal picks the face whose plane is closest to point
func (c *Cube) faceNormal(point core.Vec3) core.Vec3 {
	local := point.Subtract(c.Center)
	half := c.Size / 2

	bestAxis := 0
	bestDist := math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		d := math.Abs(half - math.Abs(local.Component(axis)))
		if d < bestDist {
			bestDist = d
			bestAxis = axis
		}
	}

	sign := 1.0
	if local.Component(bestAxis) < 0 {
		sign = -1.0
	}
	var n core.Vec3
	switch bestAxis {
	case 0:
		n.X = sign
	case 1:
		n.Y = sign
	default:
		n.Z = sign
	}
	return n
}

// ShadedColor lights the cube's base color with its face normal
func (c *Cube) ShadedColor(point core.Vec3, lighting material.Lighting) core.Color {
	return lighting.Shade(c.Color, c.faceNormal(point))
}
