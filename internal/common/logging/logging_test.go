package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromVerbosity(t *testing.T) {
	require.Equal(t, slog.LevelInfo, LevelFromVerbosity(0))
	require.Equal(t, slog.LevelDebug, LevelFromVerbosity(1))
	require.Equal(t, LevelTrace, LevelFromVerbosity(2))
	require.Equal(t, LevelTrace, LevelFromVerbosity(5))
}

func TestFanoutHandler_DuplicatesRecords(t *testing.T) {
	var first, second bytes.Buffer

	handler := NewFanoutHandler(
		slog.NewTextHandler(&first, nil),
		slog.NewJSONHandler(&second, nil),
	)

	logger := slog.New(handler)
	logger.Info("network is back online", slog.String("down_for", "00:01:05"))

	require.Contains(t, first.String(), "network is back online")
	require.Contains(t, first.String(), "down_for=00:01:05")
	require.Contains(t, second.String(), `"down_for":"00:01:05"`)
}

func TestFanoutHandler_RespectsPerHandlerLevels(t *testing.T) {
	var quiet, chatty bytes.Buffer

	handler := NewFanoutHandler(
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&chatty, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	require.True(t, handler.Enabled(context.Background(), slog.LevelDebug))

	slog.New(handler).Debug("probe failed")

	require.Empty(t, quiet.String())
	require.Contains(t, chatty.String(), "probe failed")
}

func TestTraceLevelRendersByName(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level:       LevelTrace,
		ReplaceAttr: replaceLevelNames,
	}))

	Trace(context.Background(), logger, "probe reply")

	require.Contains(t, buf.String(), "level=TRACE")
	require.Contains(t, buf.String(), "probe reply")
}
