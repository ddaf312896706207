package material

import (
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TextureType selects a procedural pattern applied to a sphere's base color
type TextureType int

const (
	TextureNone TextureType = iota
	TextureGradient
	TextureMarble
	TextureNoise
)

// TextureTypes lists the patterns a generator may pick from
var TextureTypes = []TextureType{TextureNone, TextureGradient, TextureMarble, TextureNoise}

func (t TextureType) String() string {
	switch t {
	case TextureGradient:
		return "gradient"
	case TextureMarble:
		return "marble"
	case TextureNoise:
		return "noise"
	default:
		return "none"
	}
}

// ParseTextureType parses a texture name; the empty string means none
func ParseTextureType(name string) (TextureType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "solid":
		return TextureNone, nil
	case "gradient":
		return TextureGradient, nil
	case "marble":
		return TextureMarble, nil
	case "noise":
		return TextureNoise, nil
	}
	return TextureNone, fmt.Errorf("unknown texture type %q", name)
}

// Texture is a procedural pattern plus the per-instance seed that varies it
type Texture struct {
	Type TextureType
	Seed int64
}

// Apply modulates base by the pattern at local, a point in the sphere's
// unit frame (hit point minus center, divided by radius).
func (t Texture) Apply(base core.Color, local core.Vec3) core.Color {
	phase := seedPhase(t.Seed)
	offset := core.NewVec3(phase*3.1, phase*7.7, phase*5.3)

	switch t.Type {
	case TextureGradient:
		g := 0.5 * (1 + math.Sin(3*local.Y+phase))
		return base.Scale(0.45 + 0.55*g)

	case TextureMarble:
		turb := turbulence(local.Multiply(4).Add(offset), 4, t.Seed)
		v := 0.5 * (1 + math.Sin(6*local.X+5*turb+phase))
		vein := v * v * v
		return core.NewColor(
			base.R()*(0.55+0.45*v)+0.3*vein,
			base.G()*(0.55+0.45*v)+0.3*vein,
			base.B()*(0.55+0.45*v)+0.3*vein,
		)

	case TextureNoise:
		n := valueNoise(local.Multiply(8).Add(offset), t.Seed)
		return base.Scale(0.6 + 0.4*n)
	}
	return base
}

// seedPhase maps a seed to an angle in [0, 2π)
func seedPhase(seed int64) float64 {
	h := mix64(uint64(seed))
	return float64(h>>11) / float64(1<<53) * 2 * math.Pi
}

// turbulence sums octaves of |2n-1| with halving amplitude
func turbulence(p core.Vec3, octaves int, seed int64) float64 {
	sum := 0.0
	scale := 1.0
	for o := 0; o < octaves; o++ {
		n := valueNoise(p.Multiply(scale), seed)
		sum += math.Abs(2*n-1) / scale
		scale *= 2
	}
	return sum
}

// valueNoise is trilinearly interpolated lattice noise in [0, 1]
func valueNoise(p core.Vec3, seed int64) float64 {
	fx, fy, fz := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	ix, iy, iz := int64(fx), int64(fy), int64(fz)
	tx, ty, tz := smooth(p.X-fx), smooth(p.Y-fy), smooth(p.Z-fz)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	corner := func(dx, dy, dz int64) float64 {
		return lattice(ix+dx, iy+dy, iz+dz, seed)
	}

	x00 := lerp(corner(0, 0, 0), corner(1, 0, 0), tx)
	x10 := lerp(corner(0, 1, 0), corner(1, 1, 0), tx)
	x01 := lerp(corner(0, 0, 1), corner(1, 0, 1), tx)
	x11 := lerp(corner(0, 1, 1), corner(1, 1, 1), tx)
	y0 := lerp(x00, x10, ty)
	y1 := lerp(x01, x11, ty)
	return lerp(y0, y1, tz)
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

// lattice hashes integer coordinates and the seed into [0, 1)
func lattice(x, y, z, seed int64) float64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F ^ uint64(z)*0x165667B19E3779F9 ^ uint64(seed)
	return float64(mix64(h)>>11) / float64(1<<53)
}

// mix64 is the splitmix64 finalizer
func mix64(z uint64) uint64 {
	z += 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
