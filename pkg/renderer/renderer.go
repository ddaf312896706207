package renderer

import (
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Target receives rendered pixels. Row y = 0 is the top of the image.
// Implementations must tolerate concurrent writes to distinct rows.
type Target interface {
	Width() int
	Height() int
	SetPixel(x, y int, c core.Color)
}

// Renderer renders a scene into a Target using the parallel row dispatcher
type Renderer struct {
	raytracer   *Raytracer
	camera      CameraConfig
	sampling    SamplingConfig
	numWorkers  int
	progressOut io.Writer
}

// NewRenderer creates a renderer for scene. numWorkers <= 0 means
// DefaultNumWorkers.
func NewRenderer(scene Scene, numWorkers int) *Renderer {
	return &Renderer{
		raytracer:  NewRaytracer(scene),
		camera:     scene.GetCameraConfig(),
		sampling:   MergeSamplingConfig(DefaultSamplingConfig(), scene.GetSamplingConfig()),
		numWorkers: numWorkers,
	}
}

// SetSamplingConfig replaces the sampling configuration
func (r *Renderer) SetSamplingConfig(config SamplingConfig) {
	r.sampling = config
}

// GetSamplingConfig returns the sampling configuration in use
func (r *Renderer) GetSamplingConfig() SamplingConfig {
	return r.sampling
}

// SetProgressOutput enables row progress reporting to w; nil disables it
func (r *Renderer) SetProgressOutput(w io.Writer) {
	r.progressOut = w
}

// Render fills target and blocks until every row is done. The camera is
// fitted to the target's size. Output does not depend on the worker count.
func (r *Renderer) Render(target Target) RenderStats {
	width, height := target.Width(), target.Height()
	timer := StartTimer()

	camera := NewCamera(r.camera, width, height)
	sampler := NewSampler(camera, r.raytracer, r.sampling)
	pool := NewWorkerPool(height, r.numWorkers)

	var progress *ProgressBar
	if r.progressOut != nil {
		progress = NewProgressBar(r.progressOut, height, max(1, height/20))
	}

	core.Logger().Debug("render started",
		"width", width,
		"height", height,
		"samples_per_axis", max(1, r.sampling.SamplesPerAxis),
		"max_depth", r.sampling.MaxDepth,
		"jitter", r.sampling.Jitter,
		"workers", pool.GetNumWorkers())

	pool.Run(func(y int) {
		// Viewport row 0 is the bottom; image row 0 is the top
		j := height - 1 - y
		random := sampler.RowRandom(y)
		for x := 0; x < width; x++ {
			target.SetPixel(x, y, sampler.SamplePixel(x, j, random))
		}
		if progress != nil {
			progress.RowDone()
		}
	})

	if progress != nil {
		progress.Finish()
	}

	stats := newRenderStats(width, height, max(1, r.sampling.SamplesPerAxis), pool.GetNumWorkers())
	stats.Elapsed = timer.Elapsed()
	core.Logger().Debug("render finished", "elapsed", stats.Elapsed, "pixels", stats.TotalPixels)
	return stats
}
