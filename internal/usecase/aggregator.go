package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dualwatch/dualwatch/internal/ports"
)

// Aggregator folds the two per-family down signals into one combined
// state, emits log events on state transitions only, and accounts for
// outage durations with wall-clock time.
//
// The signals are level-triggered: each prober reports its current
// classification every tick, so the latest known value for the family
// that did not just update is always available. The aggregator does the
// edge detection.
type Aggregator struct {
	logger    *slog.Logger
	publisher ports.StatePublisher
	clock     clock.Clock

	v4 <-chan bool
	v6 <-chan bool

	state  ports.CombinedState
	v4Down bool
	v6Down bool

	// Outage clocks. A non-zero value means the condition is currently
	// true and started at that instant.
	v4Since   time.Time
	v6Since   time.Time
	fullSince time.Time
}

func NewAggregator(
	logger *slog.Logger,
	publisher ports.StatePublisher,
	clk clock.Clock,
	v4, v6 <-chan bool,
) *Aggregator {
	return &Aggregator{
		logger:    logger,
		publisher: publisher,
		clock:     clk,
		v4:        v4,
		v6:        v6,
		state:     ports.StateHealthy,
	}
}

// Run consumes signals until ctx is cancelled. A publisher failure is
// fatal and propagates to the caller.
func (a *Aggregator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case down := <-a.v4:
			a.observe(ports.FamilyV4, down)
		case down := <-a.v6:
			a.observe(ports.FamilyV6, down)
		}

		a.drain()

		if err := a.reduce(ctx); err != nil {
			return err
		}
	}
}

// observe records the latest known signal for one family.
func (a *Aggregator) observe(family ports.Family, down bool) {
	if family == ports.FamilyV6 {
		a.v6Down = down
		return
	}

	a.v4Down = down
}

// drain consumes every signal that is already queued, so that both
// families crossing their thresholds in the same batch collapse into a
// single transition instead of two.
func (a *Aggregator) drain() {
	for {
		select {
		case down := <-a.v4:
			a.observe(ports.FamilyV4, down)
		case down := <-a.v6:
			a.observe(ports.FamilyV6, down)
		default:
			return
		}
	}
}

// reduce recomputes the combined state from the latest pair of signals
// and, on change, emits the transition's events. An unchanged state is
// not observable: nothing is logged or published.
func (a *Aggregator) reduce(ctx context.Context) error {
	next := ports.CombinedStateOf(a.v4Down, a.v6Down)
	if next == a.state {
		return nil
	}

	prev := a.state
	a.state = next

	a.logger.DebugContext(ctx, "Combined state changed",
		slog.String("from", prev.String()),
		slog.String("to", next.String()))

	for _, ev := range a.transition(prev, next, a.clock.Now()) {
		if err := a.emit(ctx, ev); err != nil {
			return err
		}
	}

	if err := a.publisher.PublishState(ctx, next); err != nil {
		return fmt.Errorf("failed to publish combined state: %w", err)
	}

	return nil
}

type eventKind int

const (
	eventFamilyDown eventKind = iota
	eventNetworkDown
	eventFamilyUp
	eventNetworkUp
)

type event struct {
	kind      eventKind
	family    ports.Family
	outage    time.Duration
	hasOutage bool
}

// transition updates the outage clocks and returns the events a state
// change produces. prev and next must differ.
func (a *Aggregator) transition(prev, next ports.CombinedState, now time.Time) []event {
	var events []event

	v4Entered := !prev.FamilyDown(ports.FamilyV4) && next.FamilyDown(ports.FamilyV4)
	v6Entered := !prev.FamilyDown(ports.FamilyV6) && next.FamilyDown(ports.FamilyV6)
	v4Cleared := prev.FamilyDown(ports.FamilyV4) && !next.FamilyDown(ports.FamilyV4)
	v6Cleared := prev.FamilyDown(ports.FamilyV6) && !next.FamilyDown(ports.FamilyV6)

	if v4Entered {
		a.v4Since = now
	}

	if v6Entered {
		a.v6Since = now
	}

	if next == ports.StateFullyDown {
		a.fullSince = now
	}

	switch {
	case next == ports.StateFullyDown:
		// One event covers both families, whether they crossed their
		// thresholds together or one was already down.
		events = append(events, event{kind: eventNetworkDown})
	case v4Entered:
		events = append(events, event{kind: eventFamilyDown, family: ports.FamilyV4})
	case v6Entered:
		events = append(events, event{kind: eventFamilyDown, family: ports.FamilyV6})
	}

	switch {
	case v4Cleared && v6Cleared:
		outage, known := takeClock(&a.fullSince, now)
		a.v4Since, a.v6Since = time.Time{}, time.Time{}
		events = append(events, event{kind: eventNetworkUp, outage: outage, hasOutage: known})
	case v4Cleared:
		outage, known := takeClock(&a.v4Since, now)
		a.fullSince = time.Time{}
		events = append(events, event{kind: eventFamilyUp, family: ports.FamilyV4, outage: outage, hasOutage: known})
	case v6Cleared:
		outage, known := takeClock(&a.v6Since, now)
		a.fullSince = time.Time{}
		events = append(events, event{kind: eventFamilyUp, family: ports.FamilyV6, outage: outage, hasOutage: known})
	}

	return events
}

func (a *Aggregator) emit(ctx context.Context, ev event) error {
	switch ev.kind {
	case eventNetworkDown:
		a.logger.ErrorContext(ctx, "Network is down")
	case eventFamilyDown:
		a.logger.ErrorContext(ctx, ev.family.String()+" is down")
	case eventNetworkUp:
		a.logRecovery(ctx, "Network is back online", ev)
		return a.publishOutageEnd(ctx, ports.ScopeNetwork, ev)
	case eventFamilyUp:
		a.logRecovery(ctx, ev.family.String()+" is back online", ev)
		return a.publishOutageEnd(ctx, ports.FamilyScope(ev.family), ev)
	}

	return nil
}

func (a *Aggregator) logRecovery(ctx context.Context, msg string, ev event) {
	if !ev.hasOutage {
		a.logger.InfoContext(ctx, msg)
		return
	}

	a.logger.InfoContext(ctx, msg, slog.String("down_for", formatOutage(ev.outage)))
}

func (a *Aggregator) publishOutageEnd(ctx context.Context, scope ports.OutageScope, ev event) error {
	if !ev.hasOutage {
		return nil
	}

	if err := a.publisher.PublishOutageEnd(ctx, scope, ev.outage.Seconds()); err != nil {
		return fmt.Errorf("failed to publish outage end: %w", err)
	}

	return nil
}

// takeClock stops an outage clock, returning its elapsed time. A zero
// clock means the condition was never seen starting, e.g. the process
// began while already down; report no duration instead of a bogus one.
func takeClock(since *time.Time, now time.Time) (time.Duration, bool) {
	if since.IsZero() {
		return 0, false
	}

	elapsed := now.Sub(*since)
	*since = time.Time{}

	if elapsed < 0 {
		elapsed = 0
	}

	return elapsed, true
}

// formatOutage renders an outage duration as HH:MM:SS.
func formatOutage(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	s := int64(d.Seconds())

	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
