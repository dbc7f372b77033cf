package testutils

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// LogEntry is one captured record: its level, message and attributes,
// including those added with Logger.With.
type LogEntry map[string]interface{}

// Level returns the entry's level name ("INFO", "WARN", ...).
func (e LogEntry) Level() string {
	s, _ := e["level"].(string)
	return s
}

// Message returns the entry's message.
func (e LogEntry) Message() string {
	s, _ := e["message"].(string)
	return s
}

// LogCapture is a memory-backed slog.Handler for asserting on log output.
// Handlers derived through WithAttrs share the capture buffer.
type LogCapture struct {
	store *captureStore
	attrs []slog.Attr
}

type captureStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ slog.Handler = (*LogCapture)(nil)

// NewLogCapture returns a logger writing to a fresh LogCapture, and the capture.
func NewLogCapture() (*slog.Logger, *LogCapture) {
	c := &LogCapture{store: &captureStore{}}
	return slog.New(c), c
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Enabled satisfies slog.Handler; every level is captured.
func (c *LogCapture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (c *LogCapture) Handle(_ context.Context, r slog.Record) error {
	entry := LogEntry{
		"level":   r.Level.String(),
		"message": r.Message,
	}
	for _, a := range c.attrs {
		entry[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	c.store.mu.Lock()
	c.store.entries = append(c.store.entries, entry)
	c.store.mu.Unlock()
	return nil
}

// WithAttrs satisfies slog.Handler.
func (c *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	merged = append(merged, c.attrs...)
	merged = append(merged, attrs...)
	return &LogCapture{store: c.store, attrs: merged}
}

// WithGroup satisfies slog.Handler. Groups are flattened.
func (c *LogCapture) WithGroup(string) slog.Handler {
	return c
}

// Entries returns a copy of everything captured so far.
func (c *LogCapture) Entries() []LogEntry {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return append([]LogEntry(nil), c.store.entries...)
}

// Find returns the captured entries whose message is msg.
func (c *LogCapture) Find(msg string) []LogEntry {
	var found []LogEntry
	for _, e := range c.Entries() {
		if e.Message() == msg {
			found = append(found, e)
		}
	}
	return found
}

// Clear discards everything captured so far.
func (c *LogCapture) Clear() {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.entries = nil
}
