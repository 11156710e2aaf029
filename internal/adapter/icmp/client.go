package icmp

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

// Client holds the settings shared by every echo probe and bounds how
// many probes may be in flight at once.
type Client struct {
	logger      *slog.Logger
	privileged  bool
	payloadSize int
	sem         *semaphore.Weighted
}

func New(logger *slog.Logger, privileged bool, payloadSize, concurrency int) (*Client, error) {
	if concurrency <= 0 {
		return nil, fmt.Errorf("icmp: probe concurrency must be greater than zero")
	}

	if payloadSize <= 0 {
		return nil, fmt.Errorf("icmp: payload size must be greater than zero")
	}

	logger.Debug("ICMP client ready",
		slog.Bool("privileged", privileged),
		slog.Int("payload_size", payloadSize),
		slog.Int("concurrency", concurrency))

	return &Client{
		logger:      logger,
		privileged:  privileged,
		payloadSize: payloadSize,
		sem:         semaphore.NewWeighted(int64(concurrency)),
	}, nil
}
