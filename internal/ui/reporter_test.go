package ui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vvka-141/srcbundle/internal/bundle"
	"github.com/vvka-141/srcbundle/internal/files/filesystem"
	"github.com/vvka-141/srcbundle/internal/logging"
	"github.com/vvka-141/srcbundle/pkg/srcbundle"
)

// syncBuffer is written by the bubbletea renderer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func finishWithin(t *testing.T, r srcbundle.ProgressReporter, d time.Duration) {
	t.Helper()
	finished := make(chan struct{})
	go func() {
		r.Finish()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(d):
		t.Fatal("Finish did not return")
	}
}

func TestLineReporter_PrintsPercentageChanges(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReporter(&out)

	r.Start(4)
	for _, p := range []string{"a.js", "b.js", "c.js", "d.js"} {
		r.Advance(p)
	}
	r.Finish()

	expected := "Progress: 1/4 (25%)\n" +
		"Progress: 2/4 (50%)\n" +
		"Progress: 3/4 (75%)\n" +
		"Progress: 4/4 (100%)\n"
	if out.String() != expected {
		t.Errorf("Expected %q, got %q", expected, out.String())
	}
}

func TestLineReporter_CollapsesUnchangedPercent(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReporter(&out)

	r.Start(300)
	for i := 0; i < 300; i++ {
		r.Advance("f.js")
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 101 {
		t.Errorf("Expected one line per percent 0..100 (101), got %d", len(lines))
	}
	if lines[len(lines)-1] != "Progress: 300/300 (100%)" {
		t.Errorf("Unexpected last line %q", lines[len(lines)-1])
	}
}

func TestLineReporter_RestartResetsCounters(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReporter(&out)

	r.Start(1)
	r.Advance("a.js")
	out.Reset()

	r.Start(2)
	r.Advance("b.js")
	if out.String() != "Progress: 1/2 (50%)\n" {
		t.Errorf("Unexpected output after restart: %q", out.String())
	}
}

func TestNullReporter_NoPanic(t *testing.T) {
	r := NewNullReporter()
	r.Start(3)
	r.Advance("a.js")
	r.Finish()
}

func TestTUIReporter_FinishWithoutStartIsNoop(t *testing.T) {
	r := NewTUIReporter(&bytes.Buffer{})
	r.Advance("a.js")
	r.Finish()
}

func TestNewReporter_Quiet(t *testing.T) {
	if _, ok := NewReporter(true).(*NullReporter); !ok {
		t.Error("NewReporter(quiet) should return a NullReporter")
	}
}

func TestNewReporter_NonInteractive(t *testing.T) {
	t.Setenv("SRCBUNDLE_NON_INTERACTIVE", "1")
	if _, ok := NewReporter(false).(*LineReporter); !ok {
		t.Error("NewReporter() should return a LineReporter when not interactive")
	}
}

func TestTUIReporter_RendersFinalFrame(t *testing.T) {
	out := &syncBuffer{}
	r := NewTUIReporter(out)

	r.Start(3)
	for _, p := range []string{"a.js", "b.js", "c.js"} {
		r.Advance(p)
	}
	finishWithin(t, r, 5*time.Second)

	if !strings.Contains(out.String(), "3/3") {
		t.Errorf("Expected final frame to show 3/3, got %q", out.String())
	}
}

func TestTUIReporter_LogLinesArePrintedAboveBar(t *testing.T) {
	out := &syncBuffer{}
	r := NewTUIReporter(out)
	logWriter := LogWriter(r, io.Discard)

	r.Start(2)
	r.Advance("a.js")
	fmt.Fprintln(logWriter, "[ERROR] Error reading b.js: permission denied")
	r.Advance("b.js")
	finishWithin(t, r, 5*time.Second)

	got := out.String()
	errAt := strings.Index(got, "[ERROR] Error reading b.js: permission denied")
	if errAt < 0 {
		t.Fatalf("Expected error line in output, got %q", got)
	}
	if last := strings.LastIndex(got, "2/2"); last < errAt {
		t.Errorf("Expected the final bar after the error line, got %q", got)
	}

	// Once finished, writes go straight to the output.
	fmt.Fprint(logWriter, "done\n")
	if !strings.HasSuffix(out.String(), "done\n") {
		t.Errorf("Expected direct write after Finish, got %q", out.String())
	}
}

func TestTUIReporter_KeepsWriterErrorsVisible(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/p")
	mfs.AddFile("a.js", "a")
	mfs.AddUnreadableFile("b.js", fs.ErrPermission)
	mfs.AddFile("c.js", "c")

	out := &syncBuffer{}
	reporter := NewTUIReporter(out)
	logger := logging.NewConsoleLoggerWithWriter(LogWriter(reporter, out), false, false)
	w := bundle.NewWriter(mfs, logger, reporter)

	entries := []srcbundle.FileEntry{{Path: "/p/a.js"}, {Path: "/p/b.js"}, {Path: "/p/c.js"}}
	summary, err := w.Write(context.Background(), io.Discard, entries)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if len(summary.Failures) != 1 {
		t.Fatalf("Expected one failure, got %d", len(summary.Failures))
	}

	got := out.String()
	if !strings.Contains(got, "[ERROR] Error reading /p/b.js") {
		t.Errorf("Expected error line to survive the progress bar, got %q", got)
	}
	if !strings.Contains(got, "3/3") {
		t.Errorf("Expected final frame to show 3/3, got %q", got)
	}
}

func TestLogWriter(t *testing.T) {
	var fallback bytes.Buffer
	tuiReporter := NewTUIReporter(&bytes.Buffer{})

	if LogWriter(tuiReporter, &fallback) != io.Writer(tuiReporter) {
		t.Error("LogWriter should route through a TUIReporter")
	}
	if LogWriter(NewLineReporter(&bytes.Buffer{}), &fallback) != io.Writer(&fallback) {
		t.Error("LogWriter should keep the fallback for a LineReporter")
	}
	if LogWriter(NewNullReporter(), &fallback) != io.Writer(&fallback) {
		t.Error("LogWriter should keep the fallback for a NullReporter")
	}
}
