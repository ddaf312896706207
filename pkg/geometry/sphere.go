package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center       core.Vec3
	Radius       float64
	Color        core.Color
	Reflectivity float64
	Texture      material.Texture // Optional procedural pattern over Color
}

// NewSphere creates a new untextured sphere
func NewSphere(center core.Vec3, radius float64, color core.Color, reflectivity float64) *Sphere {
	return &Sphere{
		Center:       center,
		Radius:       radius,
		Color:        color,
		Reflectivity: clampReflectivity(reflectivity),
	}
}

// WithTexture sets the procedural texture and returns the sphere
func (s *Sphere) WithTexture(texture material.Texture) *Sphere {
	s.Texture = texture
	return s
}

func (s *Sphere) shape() {}

// Intersect tests if a ray intersects with the sphere.
// The near root is preferred; when the origin is inside the sphere the
// far root is used instead.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return 0, false
	}
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < 0 {
		root = (-halfB + sqrtD) / a
		if root < 0 {
			return 0, false
		}
	}
	return root, true
}

// ShadedColor applies the texture (if any) and then the lighting model
func (s *Sphere) ShadedColor(point core.Vec3, lighting material.Lighting) core.Color {
	base := s.Color
	if s.Texture.Type != material.TextureNone {
		textured := material.TexturedColor{
			Base:    s.Color,
			Texture: s.Texture,
			Center:  s.Center,
			Radius:  s.Radius,
		}
		base = textured.Evaluate(point)
	}
	return lighting.Shade(base, point.Subtract(s.Center).Normalize())
}
