package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/netip"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dualwatch/dualwatch/internal/ports"
	portsm "github.com/dualwatch/dualwatch/internal/ports/mocks"
)

var (
	testTarget  = netip.MustParseAddr("192.0.2.1")
	errNoRoute  = errors.New("no route to host")
	testTimeout = time.Millisecond
)

func TestProber_DownSignalCrossesThresholdExactly(t *testing.T) {
	probe := portsm.NewMockProbe(t)
	publisher := newRecordingProbePublisher(t)

	fail := ports.Outcome{Err: errNoRoute}
	ok := ports.Outcome{Latency: 5 * time.Millisecond}

	probe.On("Probe", mock.Anything, testTarget, testTimeout).Return(fail, nil).Once()
	probe.On("Probe", mock.Anything, testTarget, testTimeout).Return(fail, nil).Once()
	probe.On("Probe", mock.Anything, testTarget, testTimeout).Return(fail, nil).Once()
	probe.On("Probe", mock.Anything, testTarget, testTimeout).Return(ok, nil).Once()
	probe.On("Probe", mock.Anything, testTarget, testTimeout).Return(ok, nil).Maybe()

	out := make(chan bool)
	p := newTestProber(probe, publisher, 2, out)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.False(t, <-out, "one failure is below the threshold")
	require.True(t, <-out, "second consecutive failure crosses the threshold")
	require.True(t, <-out, "signal stays down while failures continue")
	require.False(t, <-out, "a single success clears the signal")

	cancel()
	require.NoError(t, <-done)
}

func TestProber_ThresholdOneDeclaresDownImmediately(t *testing.T) {
	probe := portsm.NewMockProbe(t)
	publisher := newRecordingProbePublisher(t)

	probe.On("Probe", mock.Anything, testTarget, testTimeout).
		Return(ports.Outcome{Err: errNoRoute}, nil).Once()
	probe.On("Probe", mock.Anything, testTarget, testTimeout).
		Return(ports.Outcome{Err: errNoRoute}, nil).Maybe()

	out := make(chan bool)
	p := newTestProber(probe, publisher, 1, out)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.True(t, <-out)

	cancel()
	require.NoError(t, <-done)
}

func TestProber_SignalIsLevelTriggered(t *testing.T) {
	probe := portsm.NewMockProbe(t)
	publisher := newRecordingProbePublisher(t)

	probe.On("Probe", mock.Anything, testTarget, testTimeout).
		Return(ports.Outcome{Latency: time.Millisecond}, nil)

	out := make(chan bool)
	p := newTestProber(probe, publisher, 3, out)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	// The signal arrives every tick even though it never changes.
	require.False(t, <-out)
	require.False(t, <-out)
	require.False(t, <-out)

	cancel()
	require.NoError(t, <-done)
}

func TestProber_StopsAfterCancellation(t *testing.T) {
	probe := portsm.NewMockProbe(t)
	publisher := newRecordingProbePublisher(t)

	probe.On("Probe", mock.Anything, testTarget, testTimeout).
		Return(ports.Outcome{Latency: time.Millisecond}, nil).Maybe()

	out := make(chan bool, 1)
	p := newTestProber(probe, publisher, 1, out)

	ctx, cancel := context.WithCancel(t.Context())

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("prober did not stop after cancellation")
	}
}

func newTestProber(probe ports.Probe, publisher ports.ProbePublisher, threshold int, out chan<- bool) *Prober {
	return NewProber(testLogger(), probe, publisher, clock.New(), ProberConfig{
		Family:    ports.FamilyV4,
		Target:    testTarget,
		Interval:  5 * time.Millisecond,
		Timeout:   testTimeout,
		Threshold: threshold,
	}, out)
}

func newRecordingProbePublisher(t *testing.T) *portsm.MockProbePublisher {
	t.Helper()

	publisher := portsm.NewMockProbePublisher(t)
	publisher.On("RecordProbe", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return publisher
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
