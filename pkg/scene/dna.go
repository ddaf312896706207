package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// DNAConfig describes a double helix of sphere pairs joined by bridges
type DNAConfig struct {
	Width        int     // Image width
	Height       int     // Image height
	Pairs        int     // Number of base pairs; two spheres each
	HelixRadius  float64 // Distance of each strand from the axis
	StepY        float64 // Rise per pair
	AngleStep    float64 // Twist per pair in radians
	Bridges      bool    // Add a small sphere midway between each pair
	SphereRadius float64
	BridgeRadius float64
}

// DefaultDNAConfig returns an airy helix of 300 pairs
func DefaultDNAConfig() DNAConfig {
	return DNAConfig{
		Width:        1920,
		Height:       1080,
		Pairs:        300,
		HelixRadius:  2.5,
		StepY:        0.15,
		AngleStep:    0.18,
		Bridges:      true,
		SphereRadius: 0.35,
		BridgeRadius: 0.14,
	}
}

var (
	dnaBlueStart = [3]float64{0.18, 0.55, 0.95}
	dnaBlueEnd   = [3]float64{0.30, 0.80, 1.00}
	dnaPinkStart = [3]float64{1.00, 0.35, 0.65}
	dnaPinkEnd   = [3]float64{1.00, 0.60, 0.85}
	dnaBridge    = [3]float64{0.60, 0.60, 0.70}
)

// DNASceneFile lays out the helix as a scene file. Positions and colors
// are rounded to two decimals so written files stay readable.
func DNASceneFile(cfg DNAConfig) (*loaders.SceneFile, error) {
	if cfg.Pairs <= 0 {
		return nil, fmt.Errorf("DNA pair count must be positive, got %d", cfg.Pairs)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, core.ErrInvalidImageSize)
	}

	totalHeight := float64(cfg.Pairs-1) * cfg.StepY
	startY := cfg.SphereRadius + 0.5
	midY := startY + totalHeight/2

	const vfov = 40.0
	halfExtent := math.Max(totalHeight/2, cfg.HelixRadius*float64(cfg.Height)/float64(cfg.Width)) + cfg.HelixRadius
	distance := halfExtent * 1.15 / math.Tan(vfov*math.Pi/360)

	sf := &loaders.SceneFile{
		Name: "DNA Helix",
		Image: &loaders.ImageSpec{
			Width:      cfg.Width,
			Height:     cfg.Height,
			Background: &loaders.ColorValue{R: 0.05, G: 0.05, B: 0.08},
		},
		Camera: &loaders.CameraSpec{
			Position: loaders.Vec3Value{0, midY, -distance},
			LookAt:   &loaders.Vec3Value{0, midY, 0},
			FOV:      vfov,
		},
		Shapes: []loaders.ShapeSpec{{
			Type:   loaders.ShapePlane,
			Point:  &loaders.Vec3Value{0, 0, 0},
			Normal: &loaders.Vec3Value{0, 1, 0},
		}},
	}

	sphere := func(x, y, z, radius float64, color [3]float64) loaders.ShapeSpec {
		r := radius
		return loaders.ShapeSpec{
			Type:     loaders.ShapeSphere,
			Position: &loaders.Vec3Value{round2(x), round2(y), round2(z)},
			Radius:   &r,
			Color:    &loaders.ColorValue{R: round2(color[0]), G: round2(color[1]), B: round2(color[2])},
		}
	}

	for i := 0; i < cfg.Pairs; i++ {
		t := 0.0
		if cfg.Pairs > 1 {
			t = float64(i) / float64(cfg.Pairs-1)
		}
		angle := float64(i) * cfg.AngleStep
		y := startY + float64(i)*cfg.StepY

		x1, z1 := cfg.HelixRadius*math.Cos(angle), cfg.HelixRadius*math.Sin(angle)
		x2, z2 := cfg.HelixRadius*math.Cos(angle+math.Pi), cfg.HelixRadius*math.Sin(angle+math.Pi)

		sf.Shapes = append(sf.Shapes,
			sphere(x1, y, z1, cfg.SphereRadius, lerp3(dnaBlueStart, dnaBlueEnd, t)),
			sphere(x2, y, z2, cfg.SphereRadius, lerp3(dnaPinkStart, dnaPinkEnd, t)),
		)
		if cfg.Bridges {
			sf.Shapes = append(sf.Shapes, sphere((x1+x2)/2, y, (z1+z2)/2, cfg.BridgeRadius, dnaBridge))
		}
	}
	return sf, nil
}

// NewDNAScene builds the helix scene in memory
func NewDNAScene(cfg DNAConfig) (*Scene, error) {
	sf, err := DNASceneFile(cfg)
	if err != nil {
		return nil, err
	}
	return FromSceneFile(sf)
}

// WriteDNASceneFile writes the helix to a JSON scene file
func WriteDNASceneFile(path string, cfg DNAConfig) error {
	sf, err := DNASceneFile(cfg)
	if err != nil {
		return err
	}
	return loaders.WriteSceneFile(path, sf)
}

// Build implements Source
func (cfg DNAConfig) Build() (*Scene, error) {
	return NewDNAScene(cfg)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func lerp3(a, b [3]float64, t float64) [3]float64 {
	return [3]float64{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}
