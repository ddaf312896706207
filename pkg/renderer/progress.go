package renderer

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ProgressBar reports row completion as a percentage. RowDone is safe for
// concurrent use by render workers.
type ProgressBar struct {
	out       io.Writer
	printer   *message.Printer
	totalRows int
	every     int
	done      atomic.Int64
	mu        sync.Mutex // serializes writes to out
}

// NewProgressBar reports to out every `every` completed rows
func NewProgressBar(out io.Writer, totalRows, every int) *ProgressBar {
	return &ProgressBar{
		out:       out,
		printer:   message.NewPrinter(language.English),
		totalRows: max(1, totalRows),
		every:     max(1, every),
	}
}

// RowDone records one finished row
func (p *ProgressBar) RowDone() {
	n := int(p.done.Add(1))
	if n%p.every == 0 && n < p.totalRows {
		p.print(n)
	}
}

// Done returns the number of rows recorded so far
func (p *ProgressBar) Done() int {
	return int(p.done.Load())
}

// Finish prints the final 100% line
func (p *ProgressBar) Finish() {
	p.print(p.totalRows)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printer.Fprintf(p.out, "\n")
}

func (p *ProgressBar) print(rows int) {
	pct := rows * 100 / p.totalRows
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printer.Fprintf(p.out, "\rProgress: %3d%% (%d/%d rows)", pct, rows, p.totalRows)
}

// Timer reports elapsed wall-clock time
type Timer struct {
	start time.Time
}

// StartTimer starts a new timer
func StartTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the time since the timer started
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// String returns the elapsed time rounded to milliseconds
func (t Timer) String() string {
	return t.Elapsed().Round(time.Millisecond).String()
}
