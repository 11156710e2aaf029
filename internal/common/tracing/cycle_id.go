package tracing

import (
	"context"

	"github.com/google/uuid"
)

type cycleIDCtxKey struct{}

// WithCycleID attaches a fresh correlation ID for one probe cycle,
// unless the context already carries one. Log lines produced within a
// single cycle share the ID.
func WithCycleID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(cycleIDCtxKey{}).(string); ok {
		return ctx
	}

	return context.WithValue(ctx, cycleIDCtxKey{}, generateCycleID())
}

func GetCycleID(ctx context.Context) string {
	cycleID, ok := ctx.Value(cycleIDCtxKey{}).(string)
	if !ok {
		return ""
	}

	return cycleID
}

func generateCycleID() string {
	v, _ := uuid.NewV7()
	return v.String()
}
