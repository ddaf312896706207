package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Lighting holds the fixed analytic light used to shade primitives:
// ambient + Lambertian diffuse + Blinn-Phong specular.
type Lighting struct {
	LightDir         core.Vec3 // Direction toward the light (normalized on use)
	ViewDir          core.Vec3 // Direction toward the viewer (normalized on use)
	Ambient          float64   // Light present even on surfaces facing away
	DiffuseWeight    float64   // Weight of the N·L term
	SpecularStrength float64   // Weight of the specular highlight
	Shininess        float64   // Blinn-Phong exponent
}

// DefaultLighting returns a light from above, tilted toward a camera looking down +Z
func DefaultLighting() Lighting {
	return Lighting{
		LightDir:         core.NewVec3(0, 1, -0.3),
		ViewDir:          core.NewVec3(0, 0, -1),
		Ambient:          0.15,
		DiffuseWeight:    0.5,
		SpecularStrength: 0.7,
		Shininess:        64,
	}
}

// MergeLighting returns base with every non-zero field of override applied
func MergeLighting(base, override Lighting) Lighting {
	result := base
	if override.LightDir != (core.Vec3{}) {
		result.LightDir = override.LightDir
	}
	if override.ViewDir != (core.Vec3{}) {
		result.ViewDir = override.ViewDir
	}
	if override.Ambient != 0 {
		result.Ambient = override.Ambient
	}
	if override.DiffuseWeight != 0 {
		result.DiffuseWeight = override.DiffuseWeight
	}
	if override.SpecularStrength != 0 {
		result.SpecularStrength = override.SpecularStrength
	}
	if override.Shininess != 0 {
		result.Shininess = override.Shininess
	}
	return result
}

// Shade lights a base color at a surface with unit normal n.
// Intermediate terms stay unclamped; the result is clamped once.
func (l Lighting) Shade(base core.Color, n core.Vec3) core.Color {
	lightDir := l.LightDir.Normalize()
	viewDir := l.ViewDir.Normalize()

	diffuse := math.Max(0, n.Dot(lightDir))

	halfway := lightDir.Add(viewDir).Normalize()
	specular := math.Pow(math.Max(0, n.Dot(halfway)), l.Shininess)

	intensity := l.Ambient + l.DiffuseWeight*diffuse + l.SpecularStrength*specular
	return core.NewColor(
		base.R()*intensity,
		base.G()*intensity,
		base.B()*intensity,
	)
}
