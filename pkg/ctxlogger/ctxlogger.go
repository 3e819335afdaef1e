// Package ctxlogger carries slog attributes in a context so that every log
// record emitted downstream of AppendCtx picks them up.
package ctxlogger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		for _, attr := range attrs {
			r.AddAttrs(attr)
		}
	}

	return h.Handler.Handle(ctx, r)
}

func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if parent == nil {
		parent = context.Background()
	}

	if attrs, ok := parent.Value(ctxKey{}).([]slog.Attr); ok {
		newAttrs := make([]slog.Attr, len(attrs), len(attrs)+1)
		copy(newAttrs, attrs)
		return context.WithValue(parent, ctxKey{}, append(newAttrs, attr))
	}

	return context.WithValue(parent, ctxKey{}, []slog.Attr{attr})
}
