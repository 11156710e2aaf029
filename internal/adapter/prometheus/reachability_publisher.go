package prometheus

import (
	"context"
	"log/slog"

	"github.com/dualwatch/dualwatch/internal/ports"
)

// ReachabilityPublisher mirrors probe outcomes and combined-state
// transitions into the exporter's metrics.
type ReachabilityPublisher struct {
	logger   *slog.Logger
	exporter *Exporter
}

func NewReachabilityPublisher(logger *slog.Logger, exporter *Exporter) *ReachabilityPublisher {
	return &ReachabilityPublisher{
		logger:   logger,
		exporter: exporter,
	}
}

func (p *ReachabilityPublisher) RecordProbe(_ context.Context, family ports.Family, outcome ports.Outcome) error {
	m := p.exporter.metrics
	label := string(ports.FamilyScope(family))

	if outcome.OK() {
		m.probesTotal.WithLabelValues(label, "success").Inc()
		m.probeLatency.WithLabelValues(label).Set(outcome.Latency.Seconds())
		return nil
	}

	m.probesTotal.WithLabelValues(label, "failure").Inc()

	return nil
}

func (p *ReachabilityPublisher) PublishState(ctx context.Context, state ports.CombinedState) error {
	p.logger.DebugContext(ctx, "Publishing combined state",
		slog.String("state", state.String()))

	m := p.exporter.metrics

	m.networkUp.Set(boolGauge(state == ports.StateHealthy))
	m.familyUp.WithLabelValues(string(ports.ScopeIPv4)).Set(boolGauge(!state.FamilyDown(ports.FamilyV4)))
	m.familyUp.WithLabelValues(string(ports.ScopeIPv6)).Set(boolGauge(!state.FamilyDown(ports.FamilyV6)))

	return nil
}

func (p *ReachabilityPublisher) PublishOutageEnd(ctx context.Context, scope ports.OutageScope, seconds float64) error {
	p.logger.DebugContext(ctx, "Publishing finished outage",
		slog.String("scope", string(scope)),
		slog.Float64("seconds", seconds))

	m := p.exporter.metrics

	m.outagesTotal.WithLabelValues(string(scope)).Inc()
	m.outageSeconds.WithLabelValues(string(scope)).Add(seconds)

	return nil
}

func boolGauge(b bool) float64 {
	if b {
		return 1.0
	}

	return 0.0
}
