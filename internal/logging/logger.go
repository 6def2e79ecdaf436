package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"

	"entity-annotator/internal/diagnostic"
)

// Logger receives progress and diagnostic output.
type Logger interface {
	Verbose(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// ConsoleLogger writes log messages to a writer, stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	mu      sync.Mutex

	verboseTag *color.Color
	warnTag    *color.Color
	errorTag   *color.Color
}

// NewConsoleLogger creates a new ConsoleLogger writing to out.
// If verbose is false, Verbose() calls are no-ops. Colors are only used when
// out is a terminal and NO_COLOR is not set.
func NewConsoleLogger(out io.Writer, verbose bool) *ConsoleLogger {
	if out == nil {
		out = os.Stderr
	}

	l := &ConsoleLogger{
		out:        out,
		verbose:    verbose,
		verboseTag: color.New(color.FgCyan),
		warnTag:    color.New(color.FgYellow, color.Bold),
		errorTag:   color.New(color.FgRed, color.Bold),
	}

	if color.NoColor || !isTerminal(out) {
		l.verboseTag.DisableColor()
		l.warnTag.DisableColor()
		l.errorTag.DisableColor()
	}

	return l
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}

	l.write(l.verboseTag.Sprint("[VERBOSE] "), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Warn logs non-fatal problems.
func (l *ConsoleLogger) Warn(format string, args ...interface{}) {
	l.write(l.warnTag.Sprint("[WARN] "), format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errorTag.Sprint("[ERROR] "), format, args)
}

func (l *ConsoleLogger) write(tag, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprint(l.out, tag+msg+"\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// NullLogger discards everything.
type NullLogger struct{}

func (NullLogger) Verbose(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{})    {}
func (NullLogger) Warn(string, ...interface{})    {}
func (NullLogger) Error(string, ...interface{})   {}

// Report logs every diagnostic at its severity. Infos are verbose-only.
func Report(l Logger, d diagnostic.Diagnostics) {
	for _, item := range d.All() {
		switch item.Severity {
		case diagnostic.SeverityError:
			l.Error("%s", item.String())
		case diagnostic.SeverityWarning:
			l.Warn("%s", item.String())
		default:
			l.Verbose("%s", item.String())
		}
	}
}
