package renderer

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of primary rays traced
	SamplesPerPixel int           // S² for an S×S grid
	Workers         int           // Number of row bands rendered in parallel
	Elapsed         time.Duration // Wall-clock render time
}

// newRenderStats fills in the derived counts for an image
func newRenderStats(width, height, samplesPerAxis, workers int) RenderStats {
	spp := samplesPerAxis * samplesPerAxis
	return RenderStats{
		Width:           width,
		Height:          height,
		TotalPixels:     width * height,
		TotalSamples:    width * height * spp,
		SamplesPerPixel: spp,
		Workers:         workers,
	}
}

// SamplesPerSecond returns primary-ray throughput, or 0 before timing
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// String formats the stats with thousands separators
func (s RenderStats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%dx%d, %d pixels, %d samples (%d/pixel), %d workers, %v",
		s.Width, s.Height, s.TotalPixels, s.TotalSamples, s.SamplesPerPixel,
		s.Workers, s.Elapsed.Round(time.Millisecond))
}
