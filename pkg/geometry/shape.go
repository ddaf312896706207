package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	// Rays closer than this to parallel with a plane never hit it
	planeParallelEpsilon = 1e-6
	// Plane hits nearer than this are self-intersections of spawned rays
	planeMinDistance = 1e-4
)

// Shape is the closed set of primitives the tracer understands:
// *Sphere, *Plane and *Cube. The unexported marker keeps the set closed so
// SurfaceNormal and Reflectivity can switch over every variant.
type Shape interface {
	// Intersect returns the smallest non-negative hit distance along ray
	Intersect(ray core.Ray) (float64, bool)
	// ShadedColor returns the locally lit surface color at a hit point
	ShadedColor(point core.Vec3, lighting material.Lighting) core.Color
	shape()
}

// SurfaceNormal returns the unit surface normal of s at point
func SurfaceNormal(s Shape, point core.Vec3) core.Vec3 {
	switch obj := s.(type) {
	case *Sphere:
		return point.Subtract(obj.Center).Normalize()
	case *Plane:
		return obj.Normal
	case *Cube:
		return obj.faceNormal(point)
	}
	panic(fmt.Sprintf("geometry: unknown shape %T", s))
}

// Reflectivity returns the base reflectivity of s in [0, 1]
func Reflectivity(s Shape) float64 {
	switch obj := s.(type) {
	case *Sphere:
		return obj.Reflectivity
	case *Plane:
		return obj.Reflectivity
	case *Cube:
		return obj.Reflectivity
	}
	panic(fmt.Sprintf("geometry: unknown shape %T", s))
}

// Validate reports shapes that violate their construction contract
func Validate(s Shape) error {
	switch obj := s.(type) {
	case *Sphere:
		if !(obj.Radius > 0) {
			return fmt.Errorf("sphere radius %v: %w", obj.Radius, core.ErrInvalidShape)
		}
	case *Plane:
		if obj.Normal == (core.Vec3{}) {
			return fmt.Errorf("plane normal is zero: %w", core.ErrInvalidShape)
		}
	case *Cube:
		if !(obj.Size > 0) {
			return fmt.Errorf("cube size %v: %w", obj.Size, core.ErrInvalidShape)
		}
	default:
		return fmt.Errorf("unsupported shape %T: %w", s, core.ErrInvalidShape)
	}
	return nil
}

// clampReflectivity keeps reflectivity within [0, 1]
func clampReflectivity(r float64) float64 {
	return max(0, min(1, r))
}
