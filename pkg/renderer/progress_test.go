package renderer

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestProgressBar(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(&out, 10, 5)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bar.RowDone()
		}()
	}
	wg.Wait()
	bar.Finish()

	if bar.Done() != 10 {
		t.Errorf("Expected 10 rows done, got %d", bar.Done())
	}
	got := out.String()
	if !strings.Contains(got, "Progress:  50% (5/10 rows)") {
		t.Errorf("Expected halfway report, got %q", got)
	}
	if !strings.HasSuffix(got, "Progress: 100% (10/10 rows)\n") {
		t.Errorf("Expected final report, got %q", got)
	}
}

func TestRenderStats(t *testing.T) {
	stats := newRenderStats(1920, 1080, 4, 8)
	if stats.TotalPixels != 2_073_600 || stats.TotalSamples != 33_177_600 || stats.SamplesPerPixel != 16 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.SamplesPerSecond() != 0 {
		t.Error("Expected zero throughput without elapsed time")
	}

	stats.Elapsed = 2 * time.Second
	if got := stats.SamplesPerSecond(); got != 16_588_800 {
		t.Errorf("Expected 16588800 samples/s, got %v", got)
	}
	if s := stats.String(); !strings.Contains(s, "2,073,600 pixels") || !strings.Contains(s, "8 workers") {
		t.Errorf("Unexpected summary %q", s)
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(2 * time.Millisecond)
	if timer.Elapsed() < 2*time.Millisecond {
		t.Errorf("Expected at least 2ms elapsed, got %v", timer.Elapsed())
	}
	if timer.String() == "" {
		t.Error("Expected a formatted duration")
	}
}
