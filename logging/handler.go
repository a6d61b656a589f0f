package logging

import (
	"context"
	"log/slog"
)

const componentKey = "component"

// filteringHandler drops records below the level the Spec assigns to
// the handler's component. The component is learned from a
// "component" attribute passed to WithAttrs.
type filteringHandler struct {
	inner     slog.Handler
	spec      *Spec
	component string
}

// NewFilteringHandler wraps inner with component level filtering.
func NewFilteringHandler(inner slog.Handler, spec *Spec) slog.Handler {
	return &filteringHandler{inner: inner, spec: spec}
}

func (h *filteringHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.spec.LevelFor(h.component).ToSlog()
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Enabled(ctx, r.Level) {
		return nil
	}
	return h.inner.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &filteringHandler{
		inner:     h.inner.WithAttrs(attrs),
		spec:      h.spec,
		component: h.component,
	}
	for _, attr := range attrs {
		if attr.Key == componentKey {
			next.component = attr.Value.String()
			break
		}
	}
	return next
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{
		inner:     h.inner.WithGroup(name),
		spec:      h.spec,
		component: h.component,
	}
}

type txnKey struct{}

// ContextWithTxnID returns a context carrying the commit transaction
// id. Records logged with that context gain a "txn" attribute when
// the logger was wrapped by WithTxnHandler.
func ContextWithTxnID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, txnKey{}, id)
}

// TxnIDFromContext returns the transaction id in ctx, or "".
func TxnIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(txnKey{}).(string)
	return id
}

// txnHandler adds the context transaction id to every record. Use it
// with the *Context logging methods.
type txnHandler struct {
	slog.Handler
}

func (h txnHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := TxnIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("txn", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h txnHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return txnHandler{h.Handler.WithAttrs(attrs)}
}

func (h txnHandler) WithGroup(name string) slog.Handler {
	return txnHandler{h.Handler.WithGroup(name)}
}

// WithTxnHandler wraps logger so records pick up the transaction id
// from their context. Wrapping an already wrapped logger is a no-op.
func WithTxnHandler(logger *slog.Logger) *slog.Logger {
	if _, ok := logger.Handler().(txnHandler); ok {
		return logger
	}
	return slog.New(txnHandler{logger.Handler()})
}
