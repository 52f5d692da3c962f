package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// With attaches a child logger carrying fields to the context. Handlers
// further down the chain pick it up via From.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, ctxKey{}, From(ctx).With(fields...))
}

// From returns the logger stored in context, or the process-wide default
// when none was attached.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
