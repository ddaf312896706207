package renderer

import (
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SamplingConfig contains anti-aliasing and recursion settings
type SamplingConfig struct {
	SamplesPerAxis int   // S: each pixel takes S×S samples
	MaxDepth       int   // Maximum reflection depth
	Jitter         bool  // Random sub-pixel offsets instead of the regular grid
	Seed           int64 // Base seed for jittered sampling
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerAxis: 4,
		MaxDepth:       5,
	}
}

// MergeSamplingConfig merges a partial sampling config with defaults
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerAxis != 0 {
		result.SamplesPerAxis = override.SamplesPerAxis
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Jitter {
		result.Jitter = true
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Sampler supersamples pixels through a camera and raytracer
type Sampler struct {
	camera    *Camera
	raytracer *Raytracer
	config    SamplingConfig
}

// NewSampler creates a sampler. Fewer than one sample per axis means one.
func NewSampler(camera *Camera, raytracer *Raytracer, config SamplingConfig) *Sampler {
	config.SamplesPerAxis = max(1, config.SamplesPerAxis)
	return &Sampler{camera: camera, raytracer: raytracer, config: config}
}

// RowRandom returns the random source for an image row. Each row owns its
// source so jittered output does not depend on how rows are split between
// workers. Regular-grid sampling needs none and gets nil.
func (s *Sampler) RowRandom(row int) *rand.Rand {
	if !s.config.Jitter {
		return nil
	}
	return rand.New(rand.NewSource(s.config.Seed*1_000_003 + int64(row) + 42))
}

// SamplePixel averages S×S traced samples for pixel column x and viewport
// row j. Sums stay unclamped until the final color is built.
func (s *Sampler) SamplePixel(x, j int, random *rand.Rand) core.Color {
	n := s.config.SamplesPerAxis
	var accum core.ColorAccumulator

	for sy := 0; sy < n; sy++ {
		for sx := 0; sx < n; sx++ {
			offX := (float64(sx) + 0.5) / float64(n)
			offY := (float64(sy) + 0.5) / float64(n)
			if s.config.Jitter && random != nil {
				offX = 0.5 + (random.Float64() - 0.5)
				offY = 0.5 + (random.Float64() - 0.5)
			}
			ray := s.camera.SubpixelRay(x, j, offX, offY)
			accum.Add(s.raytracer.TraceScene(ray, s.config.MaxDepth))
		}
	}
	return accum.Average(n * n)
}
