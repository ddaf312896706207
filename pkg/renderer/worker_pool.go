package renderer

import (
	"runtime"
	"sync"
)

// RowRange is a contiguous band of image rows [Start, End)
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the band
func (r RowRange) Len() int {
	return r.End - r.Start
}

// DefaultNumWorkers returns the available hardware parallelism, at least 2
func DefaultNumWorkers() int {
	return max(2, runtime.NumCPU())
}

// SplitRows partitions height rows into one contiguous band per worker.
// Every band gets height/workers rows and the last absorbs the remainder.
// Workers <= 0 means DefaultNumWorkers; there are never more bands than rows.
func SplitRows(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultNumWorkers()
	}
	workers = min(workers, height)

	band := height / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i] = RowRange{Start: i * band, End: (i + 1) * band}
	}
	ranges[workers-1].End = height
	return ranges
}

// WorkerPool runs one goroutine per row band. Bands are fixed up front:
// there is no queue, no rebalancing and no cancellation.
type WorkerPool struct {
	ranges []RowRange
	wg     sync.WaitGroup
}

// NewWorkerPool creates a pool that splits height rows across numWorkers
func NewWorkerPool(height, numWorkers int) *WorkerPool {
	return &WorkerPool{ranges: SplitRows(height, numWorkers)}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.ranges)
}

// GetRanges returns the row band assigned to each worker
func (wp *WorkerPool) GetRanges() []RowRange {
	return wp.ranges
}

// Run calls renderRow for every row and blocks until all workers finish.
// Each row is rendered by exactly one worker, so renderRow may write to
// shared per-row state without locking.
func (wp *WorkerPool) Run(renderRow func(y int)) {
	for _, r := range wp.ranges {
		wp.wg.Add(1)
		go func(r RowRange) {
			defer wp.wg.Done()
			for y := r.Start; y < r.End; y++ {
				renderRow(y)
			}
		}(r)
	}
	wp.wg.Wait()
}
