package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// DefaultBackground is the light gray seen where rays escape the scene
var DefaultBackground = core.NewColor(0.88, 0.88, 0.88)

// Scene contains all the elements needed for rendering. It is built on a
// single goroutine and read-only once rendering starts.
type Scene struct {
	Name       string
	Width      int // Image width
	Height     int // Image height
	Shapes     []geometry.Shape
	Camera     renderer.CameraConfig
	Background core.Color
	Lighting   material.Lighting
	Shadow     renderer.ShadowConfig
	Sampling   renderer.SamplingConfig
}

// Source produces a scene: a built-in, a procedural generator or a file
type Source interface {
	Build() (*Scene, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func() (*Scene, error)

// Build calls f
func (f SourceFunc) Build() (*Scene, error) {
	return f()
}

// newScene returns an empty scene with default settings
func newScene(name string, width, height int) *Scene {
	return &Scene{
		Name:       name,
		Width:      width,
		Height:     height,
		Shapes:     make([]geometry.Shape, 0),
		Camera:     renderer.DefaultCameraConfig(),
		Background: DefaultBackground,
		Lighting:   material.DefaultLighting(),
		Shadow:     renderer.DefaultShadowConfig(),
		Sampling:   renderer.DefaultSamplingConfig(),
	}
}

// Validate checks the image size and every shape
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene %q is %dx%d: %w", s.Name, s.Width, s.Height, core.ErrInvalidImageSize)
	}
	for i, shape := range s.Shapes {
		if err := geometry.Validate(shape); err != nil {
			return fmt.Errorf("scene %q shape %d: %w", s.Name, i, err)
		}
	}
	return nil
}

// CountShapes returns the number of spheres, planes and cubes
func (s *Scene) CountShapes() (spheres, planes, cubes int) {
	for _, shape := range s.Shapes {
		switch shape.(type) {
		case *geometry.Sphere:
			spheres++
		case *geometry.Plane:
			planes++
		case *geometry.Cube:
			cubes++
		}
	}
	return spheres, planes, cubes
}

// GetShapes returns the primitives in the scene
func (s *Scene) GetShapes() []geometry.Shape { return s.Shapes }

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Color { return s.Background }

// GetLighting returns the analytic light
func (s *Scene) GetLighting() material.Lighting { return s.Lighting }

// GetShadowConfig returns the ground shadow settings
func (s *Scene) GetShadowConfig() renderer.ShadowConfig { return s.Shadow }

// GetCameraConfig returns the camera settings
func (s *Scene) GetCameraConfig() renderer.CameraConfig { return s.Camera }

// GetSamplingConfig returns the anti-aliasing settings
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.Sampling }

// GetSize returns the image size
func (s *Scene) GetSize() (width, height int) { return s.Width, s.Height }
