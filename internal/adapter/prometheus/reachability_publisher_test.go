package prometheus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/dualwatch/dualwatch/internal/ports"
)

func TestReachabilityPublisher_PublishStateSetsGauges(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.PublishState(ctx, ports.StateV4Down)
	require.NoError(t, err)

	requireMetric(t, 0.0, exporter.metrics.networkUp)
	requireMetric(t, 0.0, exporter.metrics.familyUp.WithLabelValues("ipv4"))
	requireMetric(t, 1.0, exporter.metrics.familyUp.WithLabelValues("ipv6"))

	err = publisher.PublishState(ctx, ports.StateHealthy)
	require.NoError(t, err)

	requireMetric(t, 1.0, exporter.metrics.networkUp)
	requireMetric(t, 1.0, exporter.metrics.familyUp.WithLabelValues("ipv4"))
	requireMetric(t, 1.0, exporter.metrics.familyUp.WithLabelValues("ipv6"))
}

func TestReachabilityPublisher_PublishStateFullyDown(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.PublishState(ctx, ports.StateFullyDown)
	require.NoError(t, err)

	requireMetric(t, 0.0, exporter.metrics.networkUp)
	requireMetric(t, 0.0, exporter.metrics.familyUp.WithLabelValues("ipv4"))
	requireMetric(t, 0.0, exporter.metrics.familyUp.WithLabelValues("ipv6"))
}

func TestReachabilityPublisher_RecordProbeCountsOutcomes(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.RecordProbe(ctx, ports.FamilyV4, ports.Outcome{Latency: 20 * time.Millisecond})
	require.NoError(t, err)

	err = publisher.RecordProbe(ctx, ports.FamilyV4, ports.Outcome{Err: context.DeadlineExceeded})
	require.NoError(t, err)

	err = publisher.RecordProbe(ctx, ports.FamilyV6, ports.Outcome{Err: context.DeadlineExceeded})
	require.NoError(t, err)

	requireMetric(t, 1.0, exporter.metrics.probesTotal.WithLabelValues("ipv4", "success"))
	requireMetric(t, 1.0, exporter.metrics.probesTotal.WithLabelValues("ipv4", "failure"))
	requireMetric(t, 1.0, exporter.metrics.probesTotal.WithLabelValues("ipv6", "failure"))
	requireMetric(t, 0.02, exporter.metrics.probeLatency.WithLabelValues("ipv4"))
}

func TestReachabilityPublisher_PublishOutageEndAccumulates(t *testing.T) {
	ctx := context.Background()
	exporter, publisher := newTestPublisher(t)

	err := publisher.PublishOutageEnd(ctx, ports.ScopeIPv6, 65.0)
	require.NoError(t, err)

	err = publisher.PublishOutageEnd(ctx, ports.ScopeIPv6, 5.0)
	require.NoError(t, err)

	requireMetric(t, 2.0, exporter.metrics.outagesTotal.WithLabelValues("ipv6"))
	requireMetric(t, 70.0, exporter.metrics.outageSeconds.WithLabelValues("ipv6"))
}

func newTestPublisher(t *testing.T) (*Exporter, *ReachabilityPublisher) {
	t.Helper()

	exporter, err := NewExporter()
	require.NoError(t, err)

	publisher := NewReachabilityPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), exporter)

	return exporter, publisher
}

func requireMetric(t *testing.T, expected float64, metric prometheus.Collector) {
	t.Helper()

	require.InDelta(t, expected, testutil.ToFloat64(metric), 0.001)
}
