package pkg

import (
	"context"
	"errors"
	"log/slog"
)

// TraceLevel sits below debug and also dumps every decoded field.
const TraceLevel = slog.Level(-8)

var _ slog.Handler = (*MultiLogHandler)(nil)

func ParseLevel(level string) slog.Level {
	var lv slog.LevelVar
	if level == "trace" {
		lv.Set(TraceLevel)
	} else {
		lv.UnmarshalText([]byte(level))
	}
	return lv.Level()
}

// MultiLogHandler hands every record to all of its handlers, e.g. the
// console and a rotating file.
type MultiLogHandler struct {
	handlers []slog.Handler
	level    slog.Leveler
}

func NewMultiLogHandler(level slog.Leveler, handlers ...slog.Handler) *MultiLogHandler {
	return &MultiLogHandler{handlers: handlers, level: level}
}

func (m *MultiLogHandler) Add(h slog.Handler) {
	m.handlers = append(m.handlers, h)
}

// Enabled implements slog.Handler.
func (m *MultiLogHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= m.level.Level()
}

// Handle implements slog.Handler.
func (m *MultiLogHandler) Handle(ctx context.Context, rec slog.Record) error {
	var errs []error
	for _, h := range m.handlers {
		if h.Enabled(ctx, rec.Level) {
			errs = append(errs, h.Handle(ctx, rec.Clone()))
		}
	}
	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (m *MultiLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	result := &MultiLogHandler{handlers: make([]slog.Handler, len(m.handlers)), level: m.level}
	for i, h := range m.handlers {
		result.handlers[i] = h.WithAttrs(attrs)
	}
	return result
}

// WithGroup implements slog.Handler.
func (m *MultiLogHandler) WithGroup(name string) slog.Handler {
	result := &MultiLogHandler{handlers: make([]slog.Handler, len(m.handlers)), level: m.level}
	for i, h := range m.handlers {
		result.handlers[i] = h.WithGroup(name)
	}
	return result
}
