package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h)

	now := time.Now()
	logger.Info("settings loaded", "seeded", 3)

	output := buf.String()
	for _, want := range []string{"INFO", "settings loaded", "seeded=3", now.Format(time.Kitchen)} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %q", want, output)
		}
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).With("store", "settings")

	logger.Info("saved", "bytes", 412)

	output := buf.String()
	if !strings.Contains(output, "store=settings") {
		t.Errorf("expected inherited attribute, got: %q", output)
	}
	if !strings.Contains(output, "bytes=412") {
		t.Errorf("expected record attribute, got: %q", output)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("bounds")

	logger.Info("seeded", "x", 960)

	if !strings.Contains(buf.String(), "bounds.x=960") {
		t.Errorf("expected group-prefixed key, got: %q", buf.String())
	}
}

func TestHandler_QuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Info("read", "path", "/home/me/Application Support/config.json")

	want := `path="/home/me/Application Support/config.json"`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected %s in output, got: %q", want, buf.String())
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(t.Context(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "INFO") {
		t.Errorf("expected output to start with the level, got: %q", buf.String())
	}
}

func TestHandler_GroupAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil))

	logger.Info("seeded", slog.Group("bounds", "width", 1000, "height", 600))

	out := buf.String()
	for _, want := range []string{"bounds.width=1000", "bounds.height=600"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
