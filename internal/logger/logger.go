// Package logger provides levelled logging for the lawadmin CLI.
// Debug and Info messages are printed to stderr only when verbose mode
// is enabled via the --verbose flag; warnings always surface, since
// they report degraded behaviour such as a cache falling back to
// memory. Packages that log often hold a Scope so every message
// carries the emitting component's name.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
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

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message. Warnings are not gated on verbose
// mode: they report degraded behaviour the user should see.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}

// Scope prefixes every message with the component that emitted it.
// Packages hold one instead of repeating the prefix at each call site.
type Scope struct {
	name string
}

// Scoped returns a Scope for the named component.
func Scoped(name string) *Scope {
	return &Scope{name: name}
}

// Debug prints a component-prefixed message if verbose mode is enabled.
func (s *Scope) Debug(format string, args ...any) {
	Debug(s.name+": "+format, args...)
}

// Info prints a component-prefixed message if verbose mode is enabled.
func (s *Scope) Info(format string, args ...any) {
	Info(s.name+": "+format, args...)
}

// Warn prints a component-prefixed warning.
func (s *Scope) Warn(format string, args ...any) {
	Warn(s.name+": "+format, args...)
}
