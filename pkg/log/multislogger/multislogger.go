// Package multislogger fans slog records out to several handlers, normalizing
// timestamps to UTC and tagging records with the tray event being handled.
package multislogger

import (
	"context"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// EventKey is the only context value copied onto records. The tray worker is
// the one place that handles work on behalf of something else, so the event
// name is all a log line needs to be traced back to a click.
const EventKey contextKey = "event"

// WithEvent returns ctx tagged with the name of the event being handled.
func WithEvent(ctx context.Context, event string) context.Context {
	return context.WithValue(ctx, EventKey, event)
}

// MultiSlogger is a slog.Logger whose handler set can grow after creation.
type MultiSlogger struct {
	*slog.Logger
	handlers []slog.Handler
}

// New creates a multislogger over h. With no handlers it discards everything
// until AddHandler is called.
func New(h ...slog.Handler) *MultiSlogger {
	ms := new(MultiSlogger)

	if len(h) == 0 {
		// the discard handler is not kept, so it is dropped once a real one is added
		ms.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return ms
	}

	ms.AddHandler(h...)
	return ms
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *slog.Logger {
	return New().Logger
}

// AddHandler adds handlers and rebuilds the underlying slog.Logger, so
// attributes added earlier with Logger.With are lost.
func (m *MultiSlogger) AddHandler(handler ...slog.Handler) {
	m.handlers = append(m.handlers, handler...)

	// slogmulti.Fanout is fixed once built
	m.Logger = slog.New(
		slogmulti.
			Pipe(slogmulti.NewHandleInlineMiddleware(utcTimeMiddleware)).
			Pipe(slogmulti.NewHandleInlineMiddleware(eventMiddleware)).
			Handler(slogmulti.Fanout(m.handlers...)),
	)
}

func utcTimeMiddleware(ctx context.Context, record slog.Record, next func(context.Context, slog.Record) error) error {
	record.Time = record.Time.UTC()
	return next(ctx, record)
}

func eventMiddleware(ctx context.Context, record slog.Record, next func(context.Context, slog.Record) error) error {
	if event, ok := ctx.Value(EventKey).(string); ok && event != "" {
		record.AddAttrs(slog.String(EventKey.String(), event))
	}

	return next(ctx, record)
}
