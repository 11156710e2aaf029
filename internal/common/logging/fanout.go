package logging

import (
	"context"
	"errors"
	"log/slog"
)

var _ slog.Handler = (*FanoutHandler)(nil)

// FanoutHandler duplicates records to every wrapped handler, e.g. the
// stderr stream plus the rotating log file.
type FanoutHandler struct {
	ws []slog.Handler
}

func NewFanoutHandler(handlers ...slog.Handler) *FanoutHandler {
	return &FanoutHandler{ws: handlers}
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, w := range h.ws {
		if w.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, w := range h.ws {
		if !w.Enabled(ctx, r.Level) {
			continue
		}

		if err := w.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ws := make([]slog.Handler, len(h.ws))
	for i, w := range h.ws {
		ws[i] = w.WithAttrs(attrs)
	}

	return &FanoutHandler{ws: ws}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	ws := make([]slog.Handler, len(h.ws))
	for i, w := range h.ws {
		ws[i] = w.WithGroup(name)
	}

	return &FanoutHandler{ws: ws}
}
