// Package progress tracks how many units of a batch have completed and
// renders that to a terminal.
//
// A Reporter is an observability side channel only: nothing reads it to make
// control decisions. Inc and AddBytes are safe to call from many goroutines.
package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	ioutils "github.com/handiism/picsum-downloader/internal/io"
)

// Mode selects how a Reporter renders.
type Mode int

const (
	// ModeSilent renders nothing. Finish still records the message.
	ModeSilent Mode = iota

	// ModeLines writes one line per update, for pipes and log files.
	ModeLines

	// ModeBar redraws a single line with a progress bar, for terminals.
	ModeBar
)

const barWidth = 40

// Reporter counts completed units against a known total.
type Reporter struct {
	total int64
	done  atomic.Int64
	bytes atomic.Int64
	start time.Time

	mode Mode
	out  io.Writer

	mu       sync.Mutex
	bar      progress.Model
	message  string
	summary  string
	finished bool
}

// Option customizes a Reporter.
type Option func(*Reporter)

// WithOutput renders to w in the given mode.
func WithOutput(w io.Writer, mode Mode) Option {
	return func(r *Reporter) {
		r.out = w
		r.mode = mode
	}
}

// New creates a Reporter for total units. Without options it is silent.
//
// Example:
//
//	r := progress.New(10, "Downloading", progress.WithOutput(os.Stderr, progress.ModeBar))
//	r.Inc(1)
//	r.Finish("done")
func New(total int, message string, opts ...Option) *Reporter {
	r := &Reporter{
		total:   int64(total),
		start:   time.Now(),
		mode:    ModeSilent,
		out:     io.Discard,
		message: message,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Inc advances the completed count by delta and redraws.
func (r *Reporter) Inc(delta int) {
	n := r.done.Add(int64(delta))
	r.render(n)
}

// AddBytes records transferred bytes for the throughput figure.
func (r *Reporter) AddBytes(n int64) {
	r.bytes.Add(n)
}

// SetMessage replaces the label shown next to the bar.
func (r *Reporter) SetMessage(msg string) {
	r.mu.Lock()
	r.message = msg
	r.mu.Unlock()
	r.render(r.done.Load())
}

// Message returns the current label.
func (r *Reporter) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

// Finish stops rendering and prints msg as the final line.
func (r *Reporter) Finish(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finished {
		return
	}
	r.finished = true
	r.summary = msg

	switch r.mode {
	case ModeBar:
		fmt.Fprintf(r.out, "\r\x1b[2K%s\n", msg)
	case ModeLines:
		fmt.Fprintln(r.out, msg)
	}
}

// Summary returns the message passed to Finish.
func (r *Reporter) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary
}

// Position returns the number of completed units.
func (r *Reporter) Position() int {
	return int(r.done.Load())
}

// Total returns the number of units the batch holds.
func (r *Reporter) Total() int {
	return int(r.total)
}

// Bytes returns the bytes recorded through AddBytes.
func (r *Reporter) Bytes() int64 {
	return r.bytes.Load()
}

// Percent returns completion in [0, 1].
func (r *Reporter) Percent() float64 {
	if r.total <= 0 {
		return 1
	}
	p := float64(r.done.Load()) / float64(r.total)
	if p > 1 {
		p = 1
	}
	return p
}

// Elapsed returns the wall-clock time since the Reporter was created.
func (r *Reporter) Elapsed() time.Duration {
	return time.Since(r.start)
}

// Rate returns the average throughput in bytes per second.
func (r *Reporter) Rate() float64 {
	secs := r.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.bytes.Load()) / secs
}

func (r *Reporter) render(n int64) {
	if r.mode == ModeSilent {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finished {
		return
	}
	r.drawLocked(n)
}

// Println writes msg as its own line on the Reporter's output. In bar mode
// the bar is cleared first and redrawn below the line, so callers sharing
// the output never interleave with a redraw.
func (r *Reporter) Println(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode == ModeBar && !r.finished {
		io.WriteString(r.out, "\r\x1b[2K"+msg+"\n")
		r.drawLocked(r.done.Load())
		return
	}
	fmt.Fprintln(r.out, msg)
}

// drawLocked renders the current state. r.mu must be held.
func (r *Reporter) drawLocked(n int64) {
	switch r.mode {
	case ModeBar:
		var b strings.Builder
		b.WriteString("\r\x1b[2K")
		b.WriteString(r.message)
		b.WriteString(" ")
		b.WriteString(r.bar.ViewAs(r.Percent()))
		fmt.Fprintf(&b, " %d/%d (%s/s, %s)", n, r.total,
			ioutils.FormatFileSize(int64(r.Rate())), r.Elapsed().Round(time.Second))
		io.WriteString(r.out, b.String())
	case ModeLines:
		fmt.Fprintf(r.out, "%s %d/%d\n", r.message, n, r.total)
	}
}
