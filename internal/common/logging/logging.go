package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
)

// LevelTrace sits below debug and carries raw probe results.
const LevelTrace = slog.LevelDebug - 4

// New builds the process logger: a human-readable stream on stderr,
// duplicated into a rotating JSON file when dir is non-empty. The
// returned closer flushes the file sink.
func New(verbosity int, dir string) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{
		Level:       LevelFromVerbosity(verbosity),
		ReplaceAttr: replaceLevelNames,
	}

	var (
		handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
		closer  io.Closer    = nopCloser{}
	)

	if dir != "" {
		file := NewFileWriter(dir)
		handler = NewFanoutHandler(handler, slog.NewJSONHandler(file, opts))
		closer = file
	}

	logger := slog.New(NewCycleIDHandler(handler)).With(NewProgramAttr())

	return logger, closer, nil
}

// LevelFromVerbosity maps a -v count to a level: 0 is info, 1 is debug,
// anything higher is trace.
func LevelFromVerbosity(verbosity int) slog.Level {
	switch {
	case verbosity <= 0:
		return slog.LevelInfo
	case verbosity == 1:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// Trace logs msg at LevelTrace.
func Trace(ctx context.Context, logger *slog.Logger, msg string, args ...any) {
	logger.Log(ctx, LevelTrace, msg, args...)
}

func NewProgramAttr() slog.Attr {
	buildInfo, _ := debug.ReadBuildInfo()
	hostname, _ := os.Hostname()

	return slog.Group("program",
		slog.Int("pid", os.Getpid()),
		slog.String("machine", hostname),
		slog.String("version", buildInfo.Main.Version),
	)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// replaceLevelNames renders the custom trace level by name instead of
// the default "DEBUG-4".
func replaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
		a.Value = slog.StringValue("TRACE")
	}

	return a
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
