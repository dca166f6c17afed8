// Package logger provides the log sink for blogsearch.
//
// Debug, Info and Section output is only written in verbose mode
// (--verbose). Warnings are always written: they are the channel through
// which index load failures are reported, since those never surface as
// errors to a UI.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	held    *bytes.Buffer
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// Hold buffers all output until the returned release function is called,
// which writes the buffered lines to the output. Used by the TUI, which owns
// the terminal while it runs. Calling release more than once is a no-op.
func Hold() (release func()) {
	mu.Lock()
	defer mu.Unlock()
	if held == nil {
		held = &bytes.Buffer{}
	}
	buf := held

	var once sync.Once
	return func() {
		once.Do(func() {
			mu.Lock()
			defer mu.Unlock()
			if held != buf {
				return
			}
			held = nil
			_, _ = output.Write(buf.Bytes())
		})
	}
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(true, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(true, "[INFO] ", format, args...)
}

// Warn prints a warning. Warnings are written regardless of verbose mode.
func Warn(format string, args ...any) {
	logf(false, "[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(sink(), "\n=== %s ===\n", name)
	}
}

// logf holds the write lock so concurrent writers never interleave on output.
func logf(verboseOnly bool, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verboseOnly && !verbose {
		return
	}
	fmt.Fprintf(sink(), prefix+format+"\n", args...)
}

// sink returns the active writer. Callers hold mu.
func sink() io.Writer {
	if held != nil {
		return held
	}
	return output
}
