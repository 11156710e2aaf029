package icmp

import (
	"context"
	"errors"
	"net/netip"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"github.com/dualwatch/dualwatch/internal/ports"
)

// ErrNoReply marks a probe whose echo request got no reply before the
// deadline.
var ErrNoReply = errors.New("no echo reply before deadline")

type Probe struct {
	client *Client
}

func NewProbe(client *Client) *Probe {
	return &Probe{client: client}
}

// Probe sends a single echo request to addr. Timeouts, unreachable
// destinations, permission errors and transport errors all surface as a
// failed Outcome; the classification is deliberately coarse, the reason
// only matters for diagnostic logging. Only cancellation of ctx aborts
// the call with an error.
func (p *Probe) Probe(ctx context.Context, addr netip.Addr, timeout time.Duration) (ports.Outcome, error) {
	if err := p.client.sem.Acquire(ctx, 1); err != nil {
		return ports.Outcome{}, err
	}

	defer p.client.sem.Release(1)

	pinger := probing.New(addr.String())
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.Size = p.client.payloadSize
	pinger.SetPrivileged(p.client.privileged)

	if addr.Is6() {
		pinger.SetNetwork("ip6")
	} else {
		pinger.SetNetwork("ip4")
	}

	err := pinger.RunWithContext(ctx)

	// A cancelled probe has no meaningful outcome; distinguish it from
	// the probe itself failing.
	if cerr := ctx.Err(); cerr != nil {
		return ports.Outcome{}, cerr
	}

	if err != nil {
		return ports.Outcome{Err: err}, nil
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return ports.Outcome{Err: ErrNoReply}, nil
	}

	return ports.Outcome{Latency: stats.AvgRtt}, nil
}
