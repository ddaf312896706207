package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/imagebuf"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func redSphereScene() *testScene {
	scene := newTestScene(geometry.NewSphere(core.NewVec3(0, 0, 5), 1, core.NewColor(1, 0, 0), 0))
	scene.camera.VFov = 20
	scene.width, scene.height = 21, 21
	return scene
}

func renderInto(t *testing.T, scene *testScene, workers int, sampling SamplingConfig) (*imagebuf.Buffer, RenderStats) {
	t.Helper()
	buf, err := imagebuf.New(scene.width, scene.height, scene.background)
	if err != nil {
		t.Fatalf("imagebuf.New failed: %v", err)
	}
	r := NewRenderer(scene, workers)
	r.SetSamplingConfig(sampling)
	return buf, r.Render(buf)
}

func TestRender_RedSphere(t *testing.T) {
	scene := redSphereScene()
	buf, stats := renderInto(t, scene, 2, SamplingConfig{SamplesPerAxis: 1, MaxDepth: 5})

	center := buf.GetPixel(10, 10)
	if center == scene.background {
		t.Error("Expected center pixel to hit the sphere")
	}
	if center.R() <= center.G() || center.R() <= center.B() {
		t.Errorf("Expected a red center pixel, got %v", center)
	}
	for _, corner := range [][2]int{{0, 0}, {20, 0}, {0, 20}, {20, 20}} {
		if got := buf.GetPixel(corner[0], corner[1]); got != scene.background {
			t.Errorf("Corner %v: expected background, got %v", corner, got)
		}
	}

	if stats.TotalPixels != 441 || stats.TotalSamples != 441 || stats.Workers != 2 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestRender_ImageRowZeroIsTop(t *testing.T) {
	// A sphere above the view axis must land in the upper rows
	scene := newTestScene(geometry.NewSphere(core.NewVec3(0, 1.5, 5), 1, core.NewColor(0, 0, 1), 0))
	scene.width, scene.height = 16, 16
	buf, _ := renderInto(t, scene, 1, SamplingConfig{SamplesPerAxis: 1, MaxDepth: 1})

	top, bottom := 0, 0
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			if buf.GetPixel(x, y) != scene.background {
				top++
			}
			if buf.GetPixel(x, 15-y) != scene.background {
				bottom++
			}
		}
	}
	if top == 0 || bottom >= top {
		t.Errorf("Expected sphere in the top half, got %d top / %d bottom pixels", top, bottom)
	}
}

func TestRender_ParallelMatchesSingleWorker(t *testing.T) {
	floor := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), 0.3)
	scene := newTestScene(
		floor,
		geometry.NewSphere(core.NewVec3(-1, 0, 6), 1, core.NewColor(0.9, 0.2, 0.2), 0.4).
			WithTexture(material.Texture{Type: material.TextureMarble, Seed: 5}),
		geometry.NewCube(core.NewVec3(1.5, -0.5, 5), 1, core.NewColor(0.2, 0.8, 0.3), 0.2),
	)
	scene.shadow = DefaultShadowConfig()
	scene.width, scene.height = 37, 23

	for _, sampling := range []SamplingConfig{
		{SamplesPerAxis: 2, MaxDepth: 5},
		{SamplesPerAxis: 2, MaxDepth: 5, Jitter: true, Seed: 9},
	} {
		single, _ := renderInto(t, scene, 1, sampling)
		for _, workers := range []int{2, 3, 8, 64} {
			parallel, _ := renderInto(t, scene, workers, sampling)
			for y := 0; y < scene.height; y++ {
				for x := 0; x < scene.width; x++ {
					if a, b := single.GetPixel(x, y), parallel.GetPixel(x, y); a != b {
						t.Fatalf("jitter=%v workers=%d pixel (%d,%d): %v vs %v", sampling.Jitter, workers, x, y, a, b)
					}
				}
			}
		}
	}
}

func TestRender_Progress(t *testing.T) {
	scene := redSphereScene()
	buf, _ := imagebuf.New(scene.width, scene.height, scene.background)

	var out bytes.Buffer
	r := NewRenderer(scene, 3)
	r.SetSamplingConfig(SamplingConfig{SamplesPerAxis: 1, MaxDepth: 1})
	r.SetProgressOutput(&out)
	r.Render(buf)

	if !strings.Contains(out.String(), "Progress: 100% (21/21 rows)") {
		t.Errorf("Expected final progress line, got %q", out.String())
	}
}

func TestNewRenderer_MergesSceneSampling(t *testing.T) {
	scene := newTestScene()
	scene.sampling = SamplingConfig{SamplesPerAxis: 3}
	r := NewRenderer(scene, 0)

	got := r.GetSamplingConfig()
	if got.SamplesPerAxis != 3 || got.MaxDepth != DefaultSamplingConfig().MaxDepth {
		t.Errorf("Expected scene samples with default depth, got %+v", got)
	}
}
