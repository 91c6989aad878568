package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/srcbundle/internal/tui"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// progressLabel prefixes every progress line and bar.
const progressLabel = "Progress"

// NewReporter picks a progress reporter for the current terminal.
// quiet disables progress entirely.
func NewReporter(quiet bool) srcbundle.ProgressReporter {
	switch {
	case quiet:
		return NewNullReporter()
	case tui.IsInteractive():
		return NewTUIReporter(os.Stderr)
	default:
		return NewLineReporter(os.Stderr)
	}
}

// LogWriter returns the writer log lines should go to while reporter runs.
// A TUIReporter repaints its bar over anything written directly to the
// terminal, so logs are routed through it; other reporters leave fallback as is.
func LogWriter(reporter srcbundle.ProgressReporter, fallback io.Writer) io.Writer {
	if r, ok := reporter.(*TUIReporter); ok {
		return r
	}
	return fallback
}

// NullReporter discards all progress.
type NullReporter struct{}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() *NullReporter {
	return &NullReporter{}
}

func (r *NullReporter) Start(total int)     {}
func (r *NullReporter) Advance(path string) {}
func (r *NullReporter) Finish()             {}

// LineReporter prints a count and percentage line each time the whole
// percentage changes, suitable for logs and CI output.
type LineReporter struct {
	out         io.Writer
	total       int
	done        int
	lastPercent int
}

// NewLineReporter creates a LineReporter writing to out.
func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out, lastPercent: -1}
}

func (r *LineReporter) Start(total int) {
	r.total = total
	r.done = 0
	r.lastPercent = -1
}

func (r *LineReporter) Advance(path string) {
	if r.done < r.total {
		r.done++
	}
	percent := 100
	if r.total > 0 {
		percent = r.done * 100 / r.total
	}
	if percent == r.lastPercent {
		return
	}
	r.lastPercent = percent
	fmt.Fprintf(r.out, "%s: %d/%d (%d%%)\n", progressLabel, r.done, r.total, percent)
}

func (r *LineReporter) Finish() {}

// TUIReporter renders a live progress bar through a bubbletea program.
// The program runs on its own goroutine and only receives messages; it never
// touches the bundle output.
//
// TUIReporter is also an io.Writer: while the bar is running, written lines
// are printed above it by the program instead of being painted over.
type TUIReporter struct {
	out     io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUIReporter creates a TUIReporter rendering to out.
func NewTUIReporter(out io.Writer) *TUIReporter {
	return &TUIReporter{out: out}
}

func (r *TUIReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.program = tea.NewProgram(
		tui.NewProgressModel(progressLabel, total),
		tea.WithOutput(r.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		_, _ = r.program.Run()
	}()
}

func (r *TUIReporter) Advance(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.program == nil {
		return
	}
	r.program.Send(tui.ProgressAdvanceMsg{Path: path})
}

func (r *TUIReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.program == nil {
		return
	}
	r.program.Send(tui.ProgressFinishMsg{})
	<-r.done
	r.program = nil
}

// Write prints p above the bar while it runs, and straight to out otherwise.
func (r *TUIReporter) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.program == nil {
		return r.out.Write(p)
	}
	// Send, unlike Program.Println, does not block once the program has exited.
	r.program.Send(tea.Println(strings.TrimSuffix(string(p), "\n"))())
	return len(p), nil
}

// Verify reporters implement the interface at compile time
var (
	_ srcbundle.ProgressReporter = (*NullReporter)(nil)
	_ srcbundle.ProgressReporter = (*LineReporter)(nil)
	_ srcbundle.ProgressReporter = (*TUIReporter)(nil)
	_ io.Writer                  = (*TUIReporter)(nil)
)
