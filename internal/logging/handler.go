package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// palette holds the colours used for one rendering mode. A nil palette
// renders plain text.
type palette struct {
	stamp *color.Color
	key   *color.Color
	level map[slog.Level]*color.Color
}

func newPalette() *palette {
	return &palette{
		stamp: color.New(color.FgHiBlack),
		key:   color.New(color.FgCyan),
		level: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgMagenta),
			slog.LevelInfo:  color.New(color.FgGreen),
			slog.LevelWarn:  color.New(color.FgYellow),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
	}
}

// levelColor picks the colour of the nearest standard level at or below lvl.
func (p *palette) levelColor(lvl slog.Level) *color.Color {
	switch {
	case lvl >= slog.LevelError:
		return p.level[slog.LevelError]
	case lvl >= slog.LevelWarn:
		return p.level[slog.LevelWarn]
	case lvl >= slog.LevelInfo:
		return p.level[slog.LevelInfo]
	default:
		return p.level[slog.LevelDebug]
	}
}

// Handler is a slog.Handler producing one human-readable line per record:
//
//	3:04PM INFO  settings loaded seeded=3 path=/home/me/.config/tunedeck/config.json
//
// Colour is used only when the destination is a terminal.
type Handler struct {
	level  slog.Leveler
	w      io.Writer
	mu     *sync.Mutex
	colors *palette

	// prefix is the pre-rendered output of WithAttrs calls.
	prefix string
	group  string
}

// NewHandler returns a Handler writing to w. A nil opts logs at Info.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{w: w, mu: &sync.Mutex{}, level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level
	}
	if SupportsColor(w) {
		h.colors = newPalette()
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var line bytes.Buffer

	if !r.Time.IsZero() {
		line.WriteString(h.paint(h.stampColor(), r.Time.Format(time.Kitchen)))
		line.WriteByte(' ')
	}

	lvl := r.Level.String()
	pad := strings.Repeat(" ", max(0, 5-len(lvl)))
	if h.colors != nil {
		lvl = h.colors.levelColor(r.Level).Sprint(lvl)
	}
	line.WriteString(lvl + pad + " ")
	line.WriteString(r.Message)
	line.WriteString(h.prefix)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&line, h.group, a)
		return true
	})
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(line.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var buf bytes.Buffer
	for _, a := range attrs {
		h.writeAttr(&buf, h.group, a)
	}
	clone := *h
	clone.prefix = h.prefix + buf.String()
	return &clone
}

// WithGroup qualifies later keys as group.key.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = qualify(h.group, name)
	return &clone
}

func (h *Handler) writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := qualify(group, a.Key)
		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, sub, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.paint(h.keyColor(), qualify(group, a.Key)))
	buf.WriteByte('=')
	buf.WriteString(quoteIfNeeded(a.Value.String()))
}

func (h *Handler) stampColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.stamp
}

func (h *Handler) keyColor() *color.Color {
	if h.colors == nil {
		return nil
	}
	return h.colors.key
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func qualify(group, key string) string {
	if group == "" {
		return key
	}
	if key == "" {
		return group
	}
	return group + "." + key
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
