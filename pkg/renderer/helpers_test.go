package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// testScene implements Scene for testing
type testScene struct {
	shapes     []geometry.Shape
	background core.Color
	lighting   material.Lighting
	shadow     ShadowConfig
	camera     CameraConfig
	sampling   SamplingConfig
	width      int
	height     int
}

func newTestScene(shapes ...geometry.Shape) *testScene {
	return &testScene{
		shapes:     shapes,
		background: core.NewColor(0.88, 0.88, 0.88),
		lighting:   material.DefaultLighting(),
		camera:     DefaultCameraConfig(),
		sampling:   DefaultSamplingConfig(),
		width:      32,
		height:     24,
	}
}

func (s *testScene) GetShapes() []geometry.Shape       { return s.shapes }
func (s *testScene) GetBackground() core.Color         { return s.background }
func (s *testScene) GetLighting() material.Lighting    { return s.lighting }
func (s *testScene) GetShadowConfig() ShadowConfig     { return s.shadow }
func (s *testScene) GetCameraConfig() CameraConfig     { return s.camera }
func (s *testScene) GetSamplingConfig() SamplingConfig { return s.sampling }
func (s *testScene) GetSize() (width, height int)      { return s.width, s.height }

func vecNear(a, b core.Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}
