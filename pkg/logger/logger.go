// Package logger provides logging functionality for the stale bot.
package logger

import (
	"fmt"
	"os"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides leveled logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
	// Debugf logs a formatted message when verbose output is enabled.
	Debugf(format string, args ...interface{})
	// Warnf logs a formatted warning message.
	Warnf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// Debugf does nothing for noop logger.
func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}

// Warnf does nothing for noop logger.
func (n *noopLogger) Warnf(_ string, _ ...interface{}) {}

// defaultLogger is a thread-safe logger that writes to stdout and stderr.
type defaultLogger struct {
	mu      sync.Mutex
	verbose bool
}

// NewDefaultLogger creates a new default logger. Debug messages are emitted
// only when verbose is true.
func NewDefaultLogger(verbose bool) Logger {
	return &defaultLogger{verbose: verbose}
}

// Logf writes a formatted message to stdout with thread safety.
func (d *defaultLogger) Logf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf(format+"\n", args...)
}

// Debugf writes a formatted debug message to stdout when verbose is enabled.
func (d *defaultLogger) Debugf(format string, args ...interface{}) {
	if !d.verbose {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Printf("debug: "+format+"\n", args...)
}

// Warnf writes a formatted warning message to stderr.
func (d *defaultLogger) Warnf(format string, args ...interface{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
