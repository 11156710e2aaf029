package logging

import (
	"context"
	"log/slog"

	"github.com/dualwatch/dualwatch/internal/common/tracing"
)

var _ slog.Handler = (*CycleIDHandler)(nil)

// CycleIDHandler annotates records with the probe-cycle correlation ID
// carried by the context, when present.
type CycleIDHandler struct {
	w slog.Handler
}

func NewCycleIDHandler(handler slog.Handler) *CycleIDHandler {
	return &CycleIDHandler{w: handler}
}

func (h *CycleIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.w.Enabled(ctx, level)
}

func (h *CycleIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if cycleID := tracing.GetCycleID(ctx); cycleID != "" {
		r.Add(slog.String("cycle_id", cycleID))
	}

	return h.w.Handle(ctx, r)
}

func (h *CycleIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.clone(h.w.WithAttrs(attrs))
}

func (h *CycleIDHandler) WithGroup(name string) slog.Handler {
	return h.clone(h.w.WithGroup(name))
}

func (h *CycleIDHandler) clone(handler slog.Handler) *CycleIDHandler {
	return &CycleIDHandler{w: handler}
}
