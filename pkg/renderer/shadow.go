package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// ShadowLight is the light that ground-plane shadow rays are cast toward
type ShadowLight interface {
	// PositionFor returns the light position as seen from a surface point
	PositionFor(point core.Vec3) core.Vec3
}

// OverheadLight sits directly above every shaded point at a fixed height,
// which casts perfectly vertical shadows
type OverheadLight struct {
	Height float64
}

// PositionFor places the light above point
func (l OverheadLight) PositionFor(point core.Vec3) core.Vec3 {
	return core.NewVec3(point.X, l.Height, point.Z)
}

// PointLight is a single fixed light position
type PointLight struct {
	Position core.Vec3
}

// PositionFor returns the fixed position
func (l PointLight) PositionFor(point core.Vec3) core.Vec3 {
	return l.Position
}

// ShadowConfig controls shadows on the ground plane
type ShadowConfig struct {
	Enabled bool
	Light   ShadowLight
	Factor  float64 // Brightness multiplier applied to shadowed points
}

// DefaultShadowConfig returns vertical shadows darkened to 15% brightness
func DefaultShadowConfig() ShadowConfig {
	return ShadowConfig{
		Enabled: true,
		Light:   OverheadLight{Height: 1000},
		Factor:  0.15,
	}
}

// MergeShadowConfig merges override into base. Light and Factor are taken
// when set; Enabled is true when either config enables shadows.
func MergeShadowConfig(base, override ShadowConfig) ShadowConfig {
	result := base
	result.Enabled = base.Enabled || override.Enabled
	if override.Light != nil {
		result.Light = override.Light
	}
	if override.Factor != 0 {
		result.Factor = override.Factor
	}
	return result
}
