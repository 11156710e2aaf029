package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/netip"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/dualwatch/dualwatch/internal/common/logging"
	"github.com/dualwatch/dualwatch/internal/common/tracing"
	"github.com/dualwatch/dualwatch/internal/ports"
)

// Success latencies are logged at debug level on the first success after
// a failure and every n-th consecutive success after that.
const successSampleEvery = 10

// ProberConfig carries the immutable settings of one prober instance.
type ProberConfig struct {
	Family ports.Family
	Target netip.Addr
	// Interval between probes. The ticker is fixed-rate and skips missed
	// ticks instead of queueing them.
	Interval time.Duration
	// Timeout bounds how long a single probe may block.
	Timeout time.Duration
	// Threshold is the number of consecutive failures required to
	// classify the family as down.
	Threshold int
}

// Prober issues one echo probe per tick for a single address family and
// reports a level-triggered down signal after applying hysteresis. The
// consecutive-failure counter is owned exclusively by this instance.
type Prober struct {
	logger    *slog.Logger
	probe     ports.Probe
	publisher ports.ProbePublisher
	clock     clock.Clock
	cfg       ProberConfig

	out chan<- bool

	failures  int
	successes int
}

func NewProber(
	logger *slog.Logger,
	probe ports.Probe,
	publisher ports.ProbePublisher,
	clk clock.Clock,
	cfg ProberConfig,
	out chan<- bool,
) *Prober {
	return &Prober{
		logger:    logger.With(slog.String("family", cfg.Family.String())),
		probe:     probe,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		out:       out,
	}
}

// Run probes the target once per interval until ctx is cancelled. The
// first probe is issued immediately. The down signal is sent every tick
// whether or not it changed; edge detection belongs to the aggregator.
func (p *Prober) Run(ctx context.Context) error {
	ticker := p.clock.Ticker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		down, err := p.tick(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		}

		select {
		case p.out <- down:
		case <-ctx.Done():
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (p *Prober) tick(ctx context.Context) (bool, error) {
	tctx := tracing.WithCycleID(ctx)

	outcome, err := p.probe.Probe(tctx, p.cfg.Target, p.cfg.Timeout)
	if err != nil {
		return false, err
	}

	if perr := p.publisher.RecordProbe(tctx, p.cfg.Family, outcome); perr != nil {
		p.logger.WarnContext(tctx, "Failed to record probe outcome", logging.Error(perr))
	}

	if outcome.OK() {
		p.observeSuccess(tctx, outcome.Latency)
	} else {
		p.observeFailure(tctx, outcome.Err)
	}

	return p.failures >= p.cfg.Threshold, nil
}

func (p *Prober) observeSuccess(ctx context.Context, latency time.Duration) {
	p.failures = 0

	logging.Trace(ctx, p.logger, "Probe reply",
		slog.String("target", p.cfg.Target.String()),
		slog.Duration("latency", latency))

	if p.successes%successSampleEvery == 0 {
		p.logger.DebugContext(ctx, "Target responded",
			slog.String("target", p.cfg.Target.String()),
			slog.Int64("latency_ms", latency.Milliseconds()))
	}

	p.successes++
}

func (p *Prober) observeFailure(ctx context.Context, reason error) {
	p.successes = 0
	p.failures++

	p.logger.DebugContext(ctx, "Probe failed",
		slog.String("target", p.cfg.Target.String()),
		logging.Error(reason))

	if p.failures < p.cfg.Threshold {
		p.logger.WarnContext(ctx, "Consecutive probe failures below down threshold",
			slog.Int("failures", p.failures),
			slog.Int("threshold", p.cfg.Threshold))
	}
}
