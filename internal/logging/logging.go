// Package logging builds the slog loggers the command layer uses. The
// computation packages stay silent; everything they need to say travels
// in return values, so loggers are constructed here and handed to the
// CLI only.
package logging

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Config configures logger construction.
type Config struct {
	// Level is the minimum level to emit: debug, info, warn, or error.
	Level string

	// Format selects the handler: text, json, or auto. Auto picks text
	// on a terminal and json otherwise.
	Format string

	// Output receives the log stream. Defaults to stderr so command
	// results on stdout stay machine-readable.
	Output io.Writer

	// AddSource includes the calling source position in each record.
	AddSource bool
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "auto",
		Output: os.Stderr,
	}
}

// New creates a logger from cfg.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, opts)
	case "text":
		handler = slog.NewTextHandler(cfg.Output, opts)
	default: // auto
		if isTerminal(cfg.Output) {
			handler = slog.NewTextHandler(cfg.Output, opts)
		} else {
			handler = slog.NewJSONHandler(cfg.Output, opts)
		}
	}

	return slog.New(handler)
}

// NewNop creates a logger that discards everything, for tests.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to its slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
