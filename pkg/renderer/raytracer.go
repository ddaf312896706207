package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const (
	// MaxReflectivity caps the Fresnel-adjusted reflectance so that a little
	// surface color always survives, even at grazing angles
	MaxReflectivity = 0.9

	// Offset of spawned reflection rays along the surface normal
	reflectionBias = 1e-4
	// Offset of shadow rays toward the light, also their minimum hit distance
	shadowBias = 1e-3
)

// Scene interface to avoid circular imports
type Scene interface {
	GetShapes() []geometry.Shape
	GetBackground() core.Color
	GetLighting() material.Lighting
	GetShadowConfig() ShadowConfig
	GetCameraConfig() CameraConfig
	GetSamplingConfig() SamplingConfig
	GetSize() (width, height int)
}

// Raytracer computes the color seen along a ray through a read-only scene.
// It holds no mutable state and may be shared by any number of goroutines.
type Raytracer struct {
	shapes     []geometry.Shape
	background core.Color
	lighting   material.Lighting
	shadow     ShadowConfig
}

// NewRaytracer creates a raytracer over the scene's shapes and lighting
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		shapes:     scene.GetShapes(),
		background: scene.GetBackground(),
		lighting:   scene.GetLighting(),
		shadow:     scene.GetShadowConfig(),
	}
}

// ClosestHit scans every shape and returns the nearest hit. Ties keep the
// earlier shape.
func (rt *Raytracer) ClosestHit(ray core.Ray) (geometry.Shape, float64, bool) {
	var closest geometry.Shape
	closestDist := math.Inf(1)

	for _, shape := range rt.shapes {
		if dist, ok := shape.Intersect(ray); ok && dist < closestDist {
			closestDist = dist
			closest = shape
		}
	}
	return closest, closestDist, closest != nil
}

// TraceScene returns the color seen along ray, following mirror reflections
// for at most depth bounces. A depth of zero or less yields the background.
func (rt *Raytracer) TraceScene(ray core.Ray, depth int) core.Color {
	if depth <= 0 {
		return rt.background
	}

	shape, dist, ok := rt.ClosestHit(ray)
	if !ok {
		return rt.background
	}

	point := ray.At(dist)
	surface := shape.ShadedColor(point, rt.lighting)

	if _, isPlane := shape.(*geometry.Plane); isPlane && rt.shadow.Enabled {
		if rt.inShadow(point) {
			surface = surface.Scale(rt.shadow.Factor)
		}
	}

	reflectivity := geometry.Reflectivity(shape)
	if reflectivity <= 0 {
		return surface
	}

	normal := geometry.SurfaceNormal(shape, point)
	r := min(schlick(ray.Direction, normal, reflectivity), MaxReflectivity)

	reflected := core.NewRay(
		point.Add(normal.Multiply(reflectionBias)),
		ray.Direction.Reflect(normal),
	)
	reflection := rt.TraceScene(reflected, depth-1)

	return surface.Mix(reflection, r)
}

// inShadow casts a ray from point toward the shadow light. Shadow rays test
// occlusion only and never recurse.
func (rt *Raytracer) inShadow(point core.Vec3) bool {
	if rt.shadow.Light == nil {
		return false
	}
	toLight := rt.shadow.Light.PositionFor(point).Subtract(point)
	distToLight := toLight.Length()
	if distToLight <= shadowBias {
		return false
	}
	dir := toLight.Divide(distToLight)
	shadowRay := core.NewRay(point.Add(dir.Multiply(shadowBias)), dir)

	for _, shape := range rt.shapes {
		if t, ok := shape.Intersect(shadowRay); ok && t > 0 && t < distToLight {
			return true
		}
	}
	return false
}

// schlick returns the view-dependent reflectance for base reflectance r0
func schlick(direction, normal core.Vec3, r0 float64) float64 {
	cosTheta := math.Abs(direction.Negate().Normalize().Dot(normal))
	cosTheta = min(cosTheta, 1)
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}
