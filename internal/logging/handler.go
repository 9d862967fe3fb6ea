package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PrettyHandler writes compact colored lines for interactive terminals.
type PrettyHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Level
	attrs  []slog.Attr
	groups []string
	styles prettyStyles
}

type prettyStyles struct {
	time  lipgloss.Style
	key   lipgloss.Style
	debug lipgloss.Style
	info  lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
}

// NewPrettyHandler creates a new pretty handler. Colors are only emitted
// when w is a color-capable terminal.
func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	r := lipgloss.NewRenderer(w)
	return &PrettyHandler{
		mu:    &sync.Mutex{},
		w:     w,
		level: level,
		styles: prettyStyles{
			time:  r.NewStyle().Foreground(lipgloss.Color("8")),
			key:   r.NewStyle().Foreground(lipgloss.Color("6")),
			debug: r.NewStyle().Foreground(lipgloss.Color("8")),
			info:  r.NewStyle().Foreground(lipgloss.Color("4")),
			warn:  r.NewStyle().Foreground(lipgloss.Color("3")),
			err:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes the log record.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.styles.time.Render(r.Time.Format("15:04:05")))
	b.WriteByte(' ')
	b.WriteString(h.formatLevel(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		h.writeAttr(&b, "", attr)
	}
	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs returns a new handler with attrs. Keys are qualified by the
// groups open at this point, not by groups opened later.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]slog.Attr(nil), h.attrs...)
	prefix := h.groupPrefix()
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, qualify(prefix, a))
	}
	return &clone
}

// WithGroup returns a new handler with a group.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

func (h *PrettyHandler) formatLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return h.styles.err.Render("ERR")
	case level >= slog.LevelWarn:
		return h.styles.warn.Render("WRN")
	case level >= slog.LevelInfo:
		return h.styles.info.Render("INF")
	default:
		return h.styles.debug.Render("DBG")
	}
}

func (h *PrettyHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func qualify(prefix string, a slog.Attr) slog.Attr {
	if prefix == "" {
		return a
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		inner := make([]any, 0, len(group))
		for _, attr := range group {
			inner = append(inner, qualify(prefix, attr))
		}
		return slog.Group(a.Key, inner...)
	}
	a.Key = prefix + a.Key
	return a
}

func (h *PrettyHandler) writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Value.Kind() == slog.KindGroup {
		for _, attr := range a.Value.Group() {
			h.writeAttr(b, prefix, attr)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", h.styles.key.Render(prefix+a.Key), a.Value.Any())
}
