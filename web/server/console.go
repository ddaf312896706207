package server

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// ConsoleLog keeps the most recent messages, oldest first
type ConsoleLog struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsoleLog creates a console holding at most limit messages
func NewConsoleLog(limit int) *ConsoleLog {
	return &ConsoleLog{limit: max(1, limit)}
}

// Add appends a message, dropping the oldest when full
func (c *ConsoleLog) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == c.limit {
		copy(c.messages, c.messages[1:])
		c.messages = c.messages[:c.limit-1]
	}
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of the stored messages
func (c *ConsoleLog) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage{}, c.messages...)
}

// ConsoleHandler is a slog.Handler that records messages at or above its
// level into a ConsoleLog and passes every record on to next.
type ConsoleHandler struct {
	console *ConsoleLog
	level   slog.Leveler
	attrs   []slog.Attr
	next    slog.Handler
}

// NewConsoleHandler creates a handler writing to console. next may be nil.
func NewConsoleHandler(console *ConsoleLog, level slog.Leveler, next slog.Handler) *ConsoleHandler {
	return &ConsoleHandler{console: console, level: level, next: next}
}

func (h *ConsoleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= h.level.Level() {
		return true
	}
	return h.next != nil && h.next.Enabled(ctx, level)
}

func (h *ConsoleHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level.Level() {
		h.console.Add(ConsoleMessage{
			Message:   h.format(r),
			Timestamp: r.Time,
			Level:     levelName(r.Level),
		})
	}
	if h.next != nil && h.next.Enabled(ctx, r.Level) {
		return h.next.Handle(ctx, r)
	}
	return nil
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	if h.next != nil {
		clone.next = h.next.WithAttrs(attrs)
	}
	return &clone
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if h.next != nil {
		clone.next = h.next.WithGroup(name)
	}
	return &clone
}

// format renders "message key=value ..."
func (h *ConsoleHandler) format(r slog.Record) string {
	var b strings.Builder
	b.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		b.WriteByte(' ')
		b.WriteString(a.String())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	return b.String()
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "error"
	case level >= slog.LevelWarn:
		return "warning"
	case level >= slog.LevelInfo:
		return "info"
	}
	return "debug"
}
