package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestCube_Intersect(t *testing.T) {
	// Unit cube spanning [-1, 1] on every axis
	cube := NewCube(core.NewVec3(0, 0, 0), 2, core.NewColor(1, 1, 1), 0)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"front face", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), true, 4},
		{"top face", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), true, 4},
		{"diagonal", core.NewVec3(-5, -5, -5), core.NewVec3(1, 1, 1), true, 4},
		{"from inside uses exit", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), true, 1},
		{"behind ray", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1), false, 0},
		{"parallel outside slab", core.NewVec3(0, 3, -5), core.NewVec3(0, 0, 1), false, 0},
		{"parallel inside slab", core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1), true, 4},
		{"misses corner", core.NewVec3(1.5, 1.5, -5), core.NewVec3(0, 0, 1), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, hit := cube.Intersect(core.NewRay(tt.origin, tt.direction))
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v (t=%f)", tt.expectHit, hit, dist)
			}
			if hit && math.Abs(dist-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}
		})
	}
}

func TestCube_FaceNormals(t *testing.T) {
	cube := NewCube(core.NewVec3(10, 0, 0), 2, core.NewColor(1, 1, 1), 0)

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(11, 0.2, -0.3), core.NewVec3(1, 0, 0)},
		{core.NewVec3(9, 0.5, 0.5), core.NewVec3(-1, 0, 0)},
		{core.NewVec3(10.3, 1, 0.1), core.NewVec3(0, 1, 0)},
		{core.NewVec3(10.3, -1, 0.1), core.NewVec3(0, -1, 0)},
		{core.NewVec3(10, 0.4, 1), core.NewVec3(0, 0, 1)},
		{core.NewVec3(10, 0.4, -1), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		n := SurfaceNormal(cube, tt.point)
		if n != tt.expected {
			t.Errorf("At %v expected normal %v, got %v", tt.point, tt.expected, n)
		}
	}
}

func TestCube_ShadedColorUsesFaceNormal(t *testing.T) {
	cube := NewCube(core.NewVec3(0, 0, 0), 2, core.NewColor(0, 0.6, 1), 0)
	lighting := material.DefaultLighting()

	top := cube.ShadedColor(core.NewVec3(0, 1, 0), lighting)
	want := lighting.Shade(cube.Color, core.NewVec3(0, 1, 0))
	if top != want {
		t.Errorf("Expected %v on top face, got %v", want, top)
	}
}
