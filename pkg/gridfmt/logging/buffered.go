package logging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// BufferedHandler is a slog.Handler that keeps records in memory as plain
// text lines, one per record. Tests install it through SetLogger and inspect
// the captured output instead of scraping stderr.
type BufferedHandler struct {
	level  slog.Leveler
	mu     *sync.Mutex
	buf    *bytes.Buffer
	attrs  []slog.Attr
	groups []string
}

// NewBufferedHandler returns a handler capturing records at or above level.
// A nil level captures everything.
func NewBufferedHandler(level slog.Leveler) *BufferedHandler {
	if level == nil {
		level = slog.LevelDebug
	}
	return &BufferedHandler{
		level: level,
		mu:    &sync.Mutex{},
		buf:   &bytes.Buffer{},
	}
}

func (h *BufferedHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *BufferedHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.buf, "%s %s", r.Level, r.Message)
	for _, a := range h.attrs {
		fmt.Fprintf(h.buf, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.buf, " %s=%v", h.qualify(a.Key), a.Value)
		return true
	})
	h.buf.WriteByte('\n')
	return nil
}

func (h *BufferedHandler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

// WithAttrs returns a handler writing to the same buffer with attrs appended
// to every record. Keys are qualified with the open groups at add time.
func (h *BufferedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return &next
}

// WithGroup returns a handler writing to the same buffer with attribute keys
// prefixed by name.
func (h *BufferedHandler) WithGroup(name string) slog.Handler {
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

// String returns everything captured so far.
func (h *BufferedHandler) String() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.String()
}

// Contains reports whether any captured record includes s.
func (h *BufferedHandler) Contains(s string) bool {
	return strings.Contains(h.String(), s)
}

// Len returns the number of captured records.
func (h *BufferedHandler) Len() int {
	out := h.String()
	if out == "" {
		return 0
	}
	return strings.Count(out, "\n")
}

// Reset discards the captured records.
func (h *BufferedHandler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
}
