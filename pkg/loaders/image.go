package loaders

import (
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-whitted-raytracer/pkg/imagebuf"
)

// LoadImage loads a PNG, BMP or TIFF image into a color buffer
func LoadImage(filename string) (*imagebuf.Buffer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects the format from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return imagebuf.FromImage(img)
}
