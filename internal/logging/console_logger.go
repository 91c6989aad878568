package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorPrefixStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	verbosePrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ConsoleLogger writes log messages to stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	color   bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
	}
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to out.
// When color is true the level prefixes are styled for a terminal.
func NewConsoleLoggerWithWriter(out io.Writer, verbose, color bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		color:   color,
		out:     out,
	}
}

func (l *ConsoleLogger) writer() io.Writer {
	if l.out != nil {
		return l.out
	}
	return os.Stderr
}

func (l *ConsoleLogger) prefix(label string, style lipgloss.Style) string {
	if l.color {
		return style.Render(label) + " "
	}
	return label + " "
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.writer(), prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.writer(), prefix+format+"\n")
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.prefix("[VERBOSE]", verbosePrefixStyle), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.prefix("[ERROR]", errorPrefixStyle), format, args)
}
