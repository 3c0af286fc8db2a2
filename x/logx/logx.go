// Package logx builds the firmware's structured logger.
package logx

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at level and above.
// A nil w yields a logger that discards everything.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		return Discard()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that never writes.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(127), // above every real level
	}))
}

// Or returns l, or a discarding logger when l is nil.
func Or(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
