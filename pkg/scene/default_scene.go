package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates a scene with one sphere per texture, a mirror
// sphere and a cube on a reflective checkerboard floor
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("default", 800, 450)

	defaultCameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 2.5, -7),
		LookAt: core.NewVec3(0, 1, 2),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45.0,
	}
	s.Camera = defaultCameraConfig
	if len(cameraOverrides) > 0 {
		s.Camera = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	floor := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0.25)

	marble := geometry.NewSphere(core.NewVec3(-3, 1, 2), 1, core.NewColor(0.9, 0.85, 0.8), 0.1).
		WithTexture(material.Texture{Type: material.TextureMarble, Seed: 11})
	gradient := geometry.NewSphere(core.NewVec3(0, 1, 3), 1, core.NewColor(0.85, 0.2, 0.2), 0.2).
		WithTexture(material.Texture{Type: material.TextureGradient, Seed: 23})
	noise := geometry.NewSphere(core.NewVec3(3, 1, 2), 1, core.NewColor(0.3, 0.6, 0.95), 0.1).
		WithTexture(material.Texture{Type: material.TextureNoise, Seed: 37})
	mirror := geometry.NewSphere(core.NewVec3(-1.5, 0.6, 0), 0.6, core.NewColor(0.75, 0.8, 0.95), 0.8)
	cube := geometry.NewCube(core.NewVec3(1.6, 0.5, 0), 1, core.NewColor(0.95, 0.75, 0.2), 0)

	s.Shapes = append(s.Shapes, floor, marble, gradient, noise, mirror, cube)
	return s
}
