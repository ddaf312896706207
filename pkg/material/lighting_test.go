package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestLighting_Shade(t *testing.T) {
	lighting := Lighting{
		LightDir:         core.NewVec3(0, 1, 0),
		ViewDir:          core.NewVec3(0, 1, 0),
		Ambient:          0.1,
		DiffuseWeight:    0.5,
		SpecularStrength: 0.2,
		Shininess:        64,
	}
	base := core.NewColor(1, 0.5, 0)

	tests := []struct {
		name     string
		normal   core.Vec3
		expected float64 // intensity multiplier
	}{
		// N·L = 1, N·H = 1
		{"facing light", core.NewVec3(0, 1, 0), 0.1 + 0.5 + 0.2},
		// N·L = 0, N·H = 0
		{"grazing", core.NewVec3(1, 0, 0), 0.1},
		// Back-facing: diffuse and specular clamp to zero, ambient only
		{"facing away", core.NewVec3(0, -1, 0), 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lighting.Shade(base, tt.normal)
			if math.Abs(got.R()-tt.expected) > 1e-9 ||
				math.Abs(got.G()-0.5*tt.expected) > 1e-9 ||
				got.B() != 0 {
				t.Errorf("Expected intensity %f, got %v", tt.expected, got)
			}
		})
	}
}

func TestLighting_ShadeClampsOnce(t *testing.T) {
	lighting := DefaultLighting()
	lighting.Ambient = 3
	got := lighting.Shade(core.NewColor(0.5, 0.5, 0.5), core.NewVec3(0, 0, -1))
	if got.R() != 1 || got.G() != 1 || got.B() != 1 {
		t.Errorf("Expected saturated white, got %v", got)
	}
}

func TestMergeLighting(t *testing.T) {
	base := DefaultLighting()
	merged := MergeLighting(base, Lighting{Ambient: 0.4, LightDir: core.NewVec3(1, 1, 0)})

	if merged.Ambient != 0.4 {
		t.Errorf("Expected ambient override 0.4, got %f", merged.Ambient)
	}
	if merged.LightDir != core.NewVec3(1, 1, 0) {
		t.Errorf("Expected light direction override, got %v", merged.LightDir)
	}
	if merged.Shininess != base.Shininess || merged.ViewDir != base.ViewDir {
		t.Errorf("Unset fields should keep base values, got %+v", merged)
	}
}
