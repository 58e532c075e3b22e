package resilience

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Entry is one retained log record.
type Entry struct {
	Time     time.Time      `json:"time"`
	Level    string         `json:"level"`
	Category Category       `json:"category"`
	Message  string         `json:"message"`
	Context  map[string]any `json:"context,omitempty"`
}

// ErrorLog is a bounded ring buffer of recent log entries. The oldest entry is
// overwritten once maxLogs entries are held.
type ErrorLog struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	full    bool
}

// NewErrorLog creates a ring buffer holding at most maxLogs entries.
func NewErrorLog(maxLogs int) *ErrorLog {
	if maxLogs <= 0 {
		maxLogs = 1
	}

	return &ErrorLog{entries: make([]Entry, maxLogs)}
}

// Add appends an entry, evicting the oldest when full.
func (l *ErrorLog) Add(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[l.next] = e
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
}

// Len returns the number of retained entries.
func (l *ErrorLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.full {
		return len(l.entries)
	}

	return l.next
}

// Recent returns up to n entries, newest first, optionally filtered by category
// and minimum level. An empty category matches everything.
func (l *ErrorLog) Recent(n int, category Category, minLevel slog.Level) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	size := l.next
	if l.full {
		size = len(l.entries)
	}

	out := make([]Entry, 0, min(n, size))
	for i := 0; i < size && len(out) < n; i++ {
		idx := (l.next - 1 - i + len(l.entries)) % len(l.entries)
		e := l.entries[idx]
		if category != "" && e.Category != category {
			continue
		}
		if levelOf(e.Level) < minLevel {
			continue
		}
		out = append(out, e)
	}

	return out
}

// CountByCategory summarizes retained entries.
func (l *ErrorLog) CountByCategory() map[Category]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	size := l.next
	if l.full {
		size = len(l.entries)
	}

	counts := make(map[Category]int)
	for i := 0; i < size; i++ {
		counts[l.entries[i].Category]++
	}

	return counts
}

// Clear drops every entry.
func (l *ErrorLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	clear(l.entries)
	l.next = 0
	l.full = false
}

func levelOf(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// Handler is a slog.Handler that records every handled record into an ErrorLog
// and forwards it to the wrapped handler.
type Handler struct {
	next   slog.Handler
	log    *ErrorLog
	attrs  []slog.Attr
	groups []string
	now    func() time.Time
}

// NewHandler decorates next so its records are also retained in log.
func NewHandler(next slog.Handler, log *ErrorLog) *Handler {
	return &Handler{next: next, log: log, now: time.Now}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.log.Add(h.entryFor(r))

	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.next = h.next.WithAttrs(attrs)
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), h.qualify(attrs)...)

	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.next = h.next.WithGroup(name)
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

func (h *Handler) qualify(attrs []slog.Attr) []slog.Attr {
	if len(h.groups) == 0 {
		return attrs
	}

	prefix := ""
	for _, g := range h.groups {
		prefix += g + "."
	}

	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}

	return out
}

func (h *Handler) entryFor(r slog.Record) Entry {
	ctxMap := make(map[string]any, len(h.attrs)+r.NumAttrs())

	var category Category
	var errText string

	collect := func(a slog.Attr) {
		v := a.Value.Resolve()
		switch a.Key {
		case CategoryKey:
			category = Category(v.String())

			return
		case "error":
			errText = v.String()
		}
		ctxMap[a.Key] = v.Any()
	}

	for _, a := range h.attrs {
		collect(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collect(h.qualify([]slog.Attr{a})[0])

		return true
	})

	if category == "" {
		if r.Level >= slog.LevelError || errText != "" {
			category = Categorize(r.Message + " " + errText)
		} else {
			category = CategorySystem
		}
	}

	t := r.Time
	if t.IsZero() {
		t = h.now()
	}

	if len(ctxMap) == 0 {
		ctxMap = nil
	}

	return Entry{
		Time:     t,
		Level:    r.Level.String(),
		Category: category,
		Message:  r.Message,
		Context:  ctxMap,
	}
}
