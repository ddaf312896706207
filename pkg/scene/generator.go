package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const (
	generatorRadius  = 1.0
	generatorSpacing = generatorRadius * 2.5 // center-to-center distance
	generatorDepth   = 10.0                  // mean Z of the shape line
	generatorSpread  = 4.0                   // Z varies by ± this much
	minColorValue    = 0.3
	maxColorValue    = 1.0
	maxReflectivity  = 0.8
)

// ShapeGenerator lays out Count spheres and cubes on a horizontal line
// centered on x = 0, each with a random depth, color, reflectivity and
// texture. All randomness comes from Seed, consumed on the calling goroutine.
type ShapeGenerator struct {
	Count     int
	Width     int     // Image width of the generated scene
	Height    int     // Image height of the generated scene
	Seed      int64   // Random seed; equal seeds give equal scenes
	CubeRatio float64 // Probability that a shape is a cube, 0.5 when zero
}

// Generate returns the shapes of the line, or nil when Count <= 0
func (g ShapeGenerator) Generate() []geometry.Shape {
	if g.Count <= 0 {
		return nil
	}

	random := rand.New(rand.NewSource(g.Seed))
	cubeRatio := g.CubeRatio
	if cubeRatio == 0 {
		cubeRatio = 0.5
	}

	totalWidth := float64(g.Count-1) * generatorSpacing
	startX := -totalWidth / 2

	randomColor := func() core.Color {
		span := maxColorValue - minColorValue
		return core.NewColor(
			minColorValue+random.Float64()*span,
			minColorValue+random.Float64()*span,
			minColorValue+random.Float64()*span,
		)
	}

	shapes := make([]geometry.Shape, 0, g.Count)
	for i := 0; i < g.Count; i++ {
		center := core.NewVec3(
			startX+float64(i)*generatorSpacing,
			generatorRadius,
			generatorDepth+(random.Float64()*2-1)*generatorSpread,
		)
		color := randomColor()
		reflectivity := random.Float64() * maxReflectivity

		if random.Float64() < cubeRatio {
			shapes = append(shapes, geometry.NewCube(center, generatorRadius*2, color, reflectivity))
			continue
		}

		texture := material.Texture{
			Type: material.TextureTypes[random.Intn(len(material.TextureTypes))],
			Seed: random.Int63(),
		}
		shapes = append(shapes, geometry.NewSphere(center, generatorRadius, color, reflectivity).WithTexture(texture))
	}
	return shapes
}

// Build implements Source
func (g ShapeGenerator) Build() (*Scene, error) {
	return NewRandomScene(g)
}

// NewRandomScene places the generated line on a checkerboard floor and
// frames it with the camera
func NewRandomScene(g ShapeGenerator) (*Scene, error) {
	if g.Count <= 0 {
		return nil, fmt.Errorf("shape count must be positive, got %d", g.Count)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", g.Width, g.Height, core.ErrInvalidImageSize)
	}

	s := newScene(fmt.Sprintf("random-%d", g.Count), g.Width, g.Height)
	s.Shapes = append(s.Shapes, geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0.2).
		WithSurface(&material.Checkerboard{
			Scale: 0.5,
			Light: core.NewColor(1, 1, 1),
			Dark:  core.NewColor(0.2, 0.2, 0.2),
		}))
	s.Shapes = append(s.Shapes, g.Generate()...)

	// Back the camera off until the whole line fits horizontally
	const vfov = 50.0
	aspect := float64(g.Width) / float64(g.Height)
	halfVisible := math.Tan(vfov*math.Pi/360) * aspect
	halfLine := float64(g.Count-1)*generatorSpacing/2 + generatorRadius*2
	distance := max(8.0, halfLine*1.1/halfVisible-generatorDepth)

	s.Camera = renderer.CameraConfig{
		Center: core.NewVec3(0, 3, -distance),
		LookAt: core.NewVec3(0, generatorRadius, generatorDepth),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   vfov,
	}
	return s, nil
}
