package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/imagebuf"
)

// TestLoadImage creates a test PNG and verifies loading
func TestLoadImage(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	buf, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}

	if buf.Width() != 2 || buf.Height() != 2 {
		t.Errorf("Expected 2x2 image, got %dx%d", buf.Width(), buf.Height())
	}

	tests := []struct {
		name     string
		x, y     int
		expected core.Color
	}{
		{"top-left white", 0, 0, core.NewColor(1, 1, 1)},
		{"top-right red", 1, 0, core.NewColor(1, 0, 0)},
		{"bottom-left green", 0, 1, core.NewColor(0, 1, 0)},
		{"bottom-right blue", 1, 1, core.NewColor(0, 0, 1)},
	}
	for _, tt := range tests {
		if got := buf.GetPixel(tt.x, tt.y); got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}

// TestLoadImage_WrittenBuffer reads back every format the buffer writes
func TestLoadImage_WrittenBuffer(t *testing.T) {
	src, err := imagebuf.New(4, 3, core.NewColor(0.88, 0.88, 0.88))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src.SetPixel(1, 1, core.NewColor(0.25, 0.5, 0.75))

	for _, name := range []string{"out.png", "out.bmp", "out.tif"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := src.WriteFile(path); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			got, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			want := core.FromRGBA(src.GetPixel(1, 1).RGBA())
			if got.GetPixel(1, 1) != want {
				t.Errorf("Expected %v, got %v", want, got.GetPixel(1, 1))
			}
		})
	}
}

// TestLoadImageNotFound verifies error handling for missing files
func TestLoadImageNotFound(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}
