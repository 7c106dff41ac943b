// Package observability provides logging initialization.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultLevel keeps the CLI quiet unless something goes wrong.
const DefaultLevel = slog.LevelWarn

// InitSlog initializes a logger writing to w at the given level. When w is a
// terminal, it uses a human-readable text format; otherwise it uses JSON for
// structured logging.
func InitSlog(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: level <= slog.LevelDebug,
		Level:     level,
	}
	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel resolves a level name (debug, info, warn, error) or a numeric
// offset such as "info+2".
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return DefaultLevel, fmt.Errorf("invalid log level %q", name)
	}
	return lvl, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
