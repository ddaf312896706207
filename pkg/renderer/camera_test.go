package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestCamera_CenterRayLooksForward(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 101, 51)

	ray := camera.GetRay(0.5, 0.5)
	if !vecNear(ray.Direction, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected center ray along +Z, got %v", ray.Direction)
	}
	if ray.Origin != (core.Vec3{}) {
		t.Errorf("Expected origin at camera center, got %v", ray.Origin)
	}
	// Odd sizes put a pixel exactly at the center
	if ray := camera.PixelRay(50, 25); !vecNear(ray.Direction, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected center pixel along +Z, got %v", ray.Direction)
	}
}

func TestCamera_Orientation(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 200, 100)

	tests := []struct {
		name  string
		u, v  float64
		check func(d core.Vec3) bool
	}{
		{"right edge points +X", 1, 0.5, func(d core.Vec3) bool { return d.X > 0 && math.Abs(d.Y) < 1e-9 }},
		{"left edge points -X", 0, 0.5, func(d core.Vec3) bool { return d.X < 0 }},
		{"top edge points +Y", 0.5, 1, func(d core.Vec3) bool { return d.Y > 0 && math.Abs(d.X) < 1e-9 }},
		{"bottom edge points -Y", 0.5, 0, func(d core.Vec3) bool { return d.Y < 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := camera.GetRay(tt.u, tt.v).Direction
			if !tt.check(d) {
				t.Errorf("Unexpected direction %v", d)
			}
			if math.Abs(d.Length()-1) > 1e-9 {
				t.Errorf("Expected unit direction, got length %f", d.Length())
			}
		})
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	config := DefaultCameraConfig()
	config.VFov = 90
	camera := NewCamera(config, 100, 100)

	// With a 90° fov the top edge is 45° above the view axis
	d := camera.GetRay(0.5, 1).Direction
	angle := math.Atan2(d.Y, d.Z) * 180 / math.Pi
	if math.Abs(angle-45) > 1e-9 {
		t.Errorf("Expected 45 degrees to the top edge, got %f", angle)
	}
}

func TestCamera_LookAtAndDegenerateUp(t *testing.T) {
	config := CameraConfig{
		Center: core.NewVec3(0, 5, 0),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0), // parallel to the view direction
		VFov:   40,
	}
	camera := NewCamera(config, 10, 10)

	if !vecNear(camera.GetCameraForward(), core.NewVec3(0, -1, 0), 1e-9) {
		t.Errorf("Expected forward -Y, got %v", camera.GetCameraForward())
	}
	d := camera.GetRay(0.5, 0.5).Direction
	if !vecNear(d, core.NewVec3(0, -1, 0), 1e-9) {
		t.Errorf("Expected center ray straight down, got %v", d)
	}
}

func TestNormalizedCoord_SinglePixel(t *testing.T) {
	if got := normalizedCoord(0, 1); got != 0.5 {
		t.Errorf("Expected 0.5 for a one-pixel axis, got %f", got)
	}
	if got := normalizedCoord(9, 10); got != 1 {
		t.Errorf("Expected last pixel at 1, got %f", got)
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()

	merged := MergeCameraConfig(base, CameraConfig{VFov: 30})
	if merged.VFov != 30 || merged.LookAt != base.LookAt || merged.Center != base.Center {
		t.Errorf("Expected only fov replaced, got %+v", merged)
	}

	merged = MergeCameraConfig(base, CameraConfig{LookAt: core.NewVec3(1, 0, 0)})
	if merged.Center != (core.Vec3{}) || merged.LookAt != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected look-at replaced, got %+v", merged)
	}
}
