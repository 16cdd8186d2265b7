package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// New creates the diagnostic logger for a conversion. Output goes to stderr
// so it never mixes with the converted data on stdout. A terminal gets the
// human readable text handler, anything else gets JSON.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, text bool, level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if text {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
