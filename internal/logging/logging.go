package logging

import (
	"io"
	"log/slog"
	"os"
	"testing"
)

// Format selects how records are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Valid reports whether f is a known format. The empty format is not valid.
func (f Format) Valid() bool {
	return f == FormatText || f == FormatJSON
}

// Config describes a logger.
type Config struct {
	Level  slog.Level
	Format Format
	// Output receives records in Format. Nil means os.Stderr.
	Output io.Writer
	// Mirror, when set, also receives every record as JSON regardless of
	// Format. The CLI points it at --log-file.
	Mirror io.Writer
}

// New builds a logger from cfg. Unknown formats render as text.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler = NewHandler(out, opts)
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(out, opts)
	}
	if cfg.Mirror != nil {
		h = NewMultiHandler(h, slog.NewJSONHandler(cfg.Mirror, opts))
	}
	return slog.New(h)
}

// Default is the logger in effect before flags are parsed.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelWarn, Format: FormatText})
}

func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// testWriter forwards handler output to t.Log, one call per record.
type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	n := len(p)
	if n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
	}
	w.t.Log(string(p))
	return n, nil
}

// ForTest returns a debug logger whose output shows up with go test -v or
// on failure.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{Level: slog.LevelDebug, Output: &testWriter{t: t}})
}
