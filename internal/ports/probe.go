package ports

import (
	"context"
	"net/netip"
	"time"
)

// Family identifies which of the two probed address families a value
// belongs to.
type Family int

const (
	FamilyV4 Family = iota
	FamilyV6
)

func (f Family) String() string {
	switch f {
	case FamilyV4:
		return "IPv4"
	case FamilyV6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single echo probe. It is produced once per
// tick and consumed immediately, never stored.
type Outcome struct {
	Latency time.Duration
	Err     error
}

// OK reports whether the probed address replied.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Probe sends one echo request to addr and reports success with latency
// or a classified failure. The returned error is non-nil only when the
// probe was aborted by ctx; a failed probe is a successful call with
// Outcome.Err set.
type Probe interface {
	Probe(ctx context.Context, addr netip.Addr, timeout time.Duration) (Outcome, error)
}
