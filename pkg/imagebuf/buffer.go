// Package imagebuf holds rendered pixels and encodes them to image files.
package imagebuf

import (
	"fmt"
	"image"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Buffer is a fixed-size grid of clamped colors. Row 0 is the top of the
// image. Writes to distinct pixels may happen concurrently.
type Buffer struct {
	width  int
	height int
	pixels []core.Color
}

// New creates a buffer filled with background
func New(width, height int, background core.Color) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, core.ErrInvalidImageSize)
	}
	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = background
	}
	return &Buffer{width: width, height: height, pixels: pixels}, nil
}

// FromImage copies any image into a new buffer
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := New(bounds.Dx(), bounds.Dy(), core.Color{})
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit channels; 8-bit sources are exact multiples of 257
			buf.pixels[y*buf.width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}
	return buf, nil
}

// Width returns the buffer width in pixels
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels
func (b *Buffer) Height() int { return b.height }

// SetPixel stores c at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c core.Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = c
}

// GetPixel returns the color at (x, y), or black when out of range
func (b *Buffer) GetPixel(x, y int) core.Color {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return core.Color{}
	}
	return b.pixels[y*b.width+x]
}

// ToImage converts the buffer to an 8-bit RGBA image
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetRGBA(x, y, b.pixels[y*b.width+x].RGBA())
		}
	}
	return img
}
