package ports

import "context"

// ProbePublisher receives every raw probe outcome, e.g. to expose it as
// metrics. Implementations must be cheap; they run on the prober's tick.
type ProbePublisher interface {
	RecordProbe(ctx context.Context, family Family, outcome Outcome) error
}

// StatePublisher receives combined-state transitions and finished
// outages. It is only invoked on state change, never per tick.
type StatePublisher interface {
	PublishState(ctx context.Context, state CombinedState) error
	PublishOutageEnd(ctx context.Context, scope OutageScope, seconds float64) error
}
