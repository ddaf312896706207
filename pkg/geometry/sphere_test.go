package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const tolerance = 1e-9

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 10), 2, core.NewColor(1, 0, 0), 0)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"head-on from outside", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), true, 8},
		{"origin inside uses far root", core.NewVec3(0, 0, 10), core.NewVec3(0, 0, 1), true, 2},
		{"origin inside off-center", core.NewVec3(0, 0, 9), core.NewVec3(0, 0, 1), true, 3},
		{"sphere behind ray", core.NewVec3(0, 0, 20), core.NewVec3(0, 0, 1), false, 0},
		{"ray passes beside", core.NewVec3(3, 0, 0), core.NewVec3(0, 0, 1), false, 0},
		{"tangent grazing", core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 1), true, 10},
		{"zero direction", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist, hit := sphere.Intersect(core.NewRay(tt.origin, tt.direction))
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v (t=%f)", tt.expectHit, hit, dist)
			}
			if hit && math.Abs(dist-tt.expectedT) > 1e-6 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, dist)
			}
		})
	}
}

func TestSphere_IntersectNeverNegative(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 1, 1), 0)
	directions := []core.Vec3{
		core.NewVec3(1, 0, 0),
		core.NewVec3(-1, 0.2, 0.1),
		core.NewVec3(0.3, -1, 0.5),
	}
	for _, d := range directions {
		dist, hit := sphere.Intersect(core.NewRay(core.NewVec3(0.2, 0.1, 0), d))
		if !hit {
			t.Errorf("Expected hit from inside along %v", d)
			continue
		}
		if dist < 0 {
			t.Errorf("Expected non-negative distance, got %f", dist)
		}
	}
}

func TestSphere_ShadedColor(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 0.5, 0), 0)
	lighting := material.DefaultLighting()

	top := core.NewVec3(0, 1, 0)
	got := sphere.ShadedColor(top, lighting)
	want := lighting.Shade(sphere.Color, core.NewVec3(0, 1, 0))
	if got != want {
		t.Errorf("Expected %v at top of sphere, got %v", want, got)
	}

	bottom := sphere.ShadedColor(core.NewVec3(0, -1, 0), lighting)
	if bottom.R() >= got.R() {
		t.Errorf("Expected underside (%v) darker than top (%v)", bottom, got)
	}
}

func TestSphere_TextureChangesColor(t *testing.T) {
	plain := NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(0.8, 0.8, 0.8), 0)
	textured := NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(0.8, 0.8, 0.8), 0).
		WithTexture(material.Texture{Type: material.TextureGradient})
	lighting := material.DefaultLighting()

	point := core.NewVec3(0, 0, -1)
	if plain.ShadedColor(point, lighting) == textured.ShadedColor(point, lighting) {
		t.Error("Expected gradient texture to change the shaded color")
	}
}

func TestSurfaceNormal_Sphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, core.NewColor(1, 1, 1), 0)
	n := SurfaceNormal(sphere, core.NewVec3(1, 2, 1))
	expected := core.NewVec3(0, 0, -1)
	if n.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected normal %v, got %v", expected, n)
	}
}

func TestReflectivity_Clamped(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		expected float64
	}{
		{"sphere above one", NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 1, 1), 1.5), 1},
		{"cube below zero", NewCube(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 1, 1), -0.2), 0},
		{"plane in range", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0.3), 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflectivity(tt.shape); got != tt.expected {
				t.Errorf("Expected reflectivity %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr bool
	}{
		{"valid sphere", NewSphere(core.NewVec3(0, 0, 0), 1, core.NewColor(1, 1, 1), 0), false},
		{"zero radius", NewSphere(core.NewVec3(0, 0, 0), 0, core.NewColor(1, 1, 1), 0), true},
		{"negative radius", NewSphere(core.NewVec3(0, 0, 0), -1, core.NewColor(1, 1, 1), 0), true},
		{"valid cube", NewCube(core.NewVec3(0, 0, 0), 2, core.NewColor(1, 1, 1), 0), false},
		{"zero cube", NewCube(core.NewVec3(0, 0, 0), 0, core.NewColor(1, 1, 1), 0), true},
		{"valid plane", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0), false},
		{"zero normal", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.shape)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidShape) {
					t.Errorf("Expected ErrInvalidShape, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
