// Package testutil provides shared test helpers, currently a buffered slog
// handler for asserting on structured log output.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord represents a captured log record for testing
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// BufferedSlogHandler captures log records so tests can assert on what the
// pipeline logged.
type BufferedSlogHandler struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewTestLogger creates a logger backed by a buffered handler
func NewTestLogger(t *testing.T) (*slog.Logger, *BufferedSlogHandler) {
	t.Helper()
	handler := &BufferedSlogHandler{}
	return slog.New(handler), handler
}

// Handle implements slog.Handler
func (h *BufferedSlogHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.append(r, attrs)
	return nil
}

func (h *BufferedSlogHandler) append(r slog.Record, attrs map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
}

// Enabled implements slog.Handler; all levels are captured in tests
func (h *BufferedSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. The derived handler folds the bound
// attributes into every record it captures, sharing this handler's store.
func (h *BufferedSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &boundHandler{parent: h, attrs: attrs}
}

// WithGroup implements slog.Handler; groups are flattened for assertions
func (h *BufferedSlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// boundHandler carries attributes added via Logger.With
type boundHandler struct {
	parent *BufferedSlogHandler
	attrs  []slog.Attr
}

func (b *boundHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	for _, a := range b.attrs {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	b.parent.append(r, attrs)
	return nil
}

func (b *boundHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (b *boundHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &boundHandler{parent: b.parent, attrs: append(append([]slog.Attr{}, b.attrs...), attrs...)}
}

func (b *boundHandler) WithGroup(_ string) slog.Handler {
	return b
}

// Records returns a copy of all captured records
func (h *BufferedSlogHandler) Records() []LogRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	records := make([]LogRecord, len(h.records))
	copy(records, h.records)
	return records
}

// ContainsMessage checks whether any captured record contains the message
func (h *BufferedSlogHandler) ContainsMessage(message string) bool {
	for _, r := range h.Records() {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// AssertLogContains fails the test unless a record at the given level
// contains the message.
func AssertLogContains(t *testing.T, handler *BufferedSlogHandler, level slog.Level, message string) {
	t.Helper()

	for _, r := range handler.Records() {
		if r.Level == level && strings.Contains(r.Message, message) {
			return
		}
	}
	t.Errorf("expected log message not found at level %s: %q", level, message)
	for _, r := range handler.Records() {
		t.Logf("  captured: [%s] %s %v", r.Level, r.Message, r.Attrs)
	}
}
