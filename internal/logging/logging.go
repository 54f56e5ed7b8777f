// Package logging defines the small logging seam every constructor in
// this module accepts through a WithLogger option. It intentionally
// stays dependency-free beyond the standard library: none of the
// retrieval pack's example repositories pull in a third-party logging
// library, so the idiomatic choice here is log/slog, not an ecosystem
// logger.
package logging

import (
	"fmt"
	"log/slog"
)

// Logger is the minimal surface library code needs. It is satisfied by
// *SlogLogger and by Noop, and callers may supply their own adapter.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// Noop discards everything. It is the default logger for every
// constructor in the module.
var Noop Logger = noopLogger{}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Warnf(string, ...any)  {}

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	base *slog.Logger
}

// NewSlogLogger wraps base. A nil base falls back to slog.Default().
func NewSlogLogger(base *slog.Logger) *SlogLogger {
	if base == nil {
		base = slog.Default()
	}
	return &SlogLogger{base: base}
}

func (l *SlogLogger) Debugf(format string, args ...any) {
	l.base.Debug(fmt.Sprintf(format, args...))
}

func (l *SlogLogger) Warnf(format string, args ...any) {
	l.base.Warn(fmt.Sprintf(format, args...))
}
