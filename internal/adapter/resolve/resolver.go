package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"github.com/miekg/dns"
)

var (
	ErrNoIPv4    = errors.New("target has no A record: IPv4 is not supported")
	ErrNoIPv6    = errors.New("target has no AAAA record: IPv6 is not supported")
	ErrNoRecords = errors.New("target resolves to no addresses")
)

// Resolver looks up the A and AAAA records of the watched target
// against a fixed upstream DNS server.
type Resolver struct {
	logger *slog.Logger
	server string
	client *dns.Client
}

func New(logger *slog.Logger, server string, timeout time.Duration) *Resolver {
	return &Resolver{
		logger: logger,
		server: server,
		client: &dns.Client{Timeout: timeout},
	}
}

// Resolve accepts either a URL with a domain host or a bare domain and
// returns one IPv4 and one IPv6 address for it. Both families must be
// present; a target reachable over only one family is rejected.
func (r *Resolver) Resolve(ctx context.Context, target string) (netip.Addr, netip.Addr, error) {
	host, err := hostFromTarget(target)
	if err != nil {
		return netip.Addr{}, netip.Addr{}, err
	}

	v4, ok4, err := r.lookup(ctx, host, dns.TypeA)
	if err != nil {
		return netip.Addr{}, netip.Addr{}, err
	}

	v6, ok6, err := r.lookup(ctx, host, dns.TypeAAAA)
	if err != nil {
		return netip.Addr{}, netip.Addr{}, err
	}

	switch {
	case !ok4 && !ok6:
		return netip.Addr{}, netip.Addr{}, ErrNoRecords
	case !ok4:
		return netip.Addr{}, netip.Addr{}, ErrNoIPv4
	case !ok6:
		return netip.Addr{}, netip.Addr{}, ErrNoIPv6
	}

	return v4, v6, nil
}

func (r *Resolver) lookup(ctx context.Context, host string, qtype uint16) (netip.Addr, bool, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), qtype)
	msg.RecursionDesired = true

	resp, rtt, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return netip.Addr{}, false, fmt.Errorf("failed to query %s record for %s: %w", dns.TypeToString[qtype], host, err)
	}

	r.logger.DebugContext(ctx, "Resolver answered",
		slog.String("host", host),
		slog.String("qtype", dns.TypeToString[qtype]),
		slog.Duration("rtt", rtt))

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return netip.Addr{}, false, nil
	default:
		return netip.Addr{}, false, fmt.Errorf("resolver returned %s for %s", dns.RcodeToString[resp.Rcode], host)
	}

	addr, ok := firstAddr(resp, qtype)

	return addr, ok, nil
}

// firstAddr picks the first answer record matching the queried type.
func firstAddr(resp *dns.Msg, qtype uint16) (netip.Addr, bool) {
	for _, rr := range resp.Answer {
		switch rec := rr.(type) {
		case *dns.A:
			if qtype != dns.TypeA {
				continue
			}

			if addr, ok := netip.AddrFromSlice(rec.A.To4()); ok {
				return addr, true
			}
		case *dns.AAAA:
			if qtype != dns.TypeAAAA {
				continue
			}

			if addr, ok := netip.AddrFromSlice(rec.AAAA.To16()); ok {
				return addr, true
			}
		}
	}

	return netip.Addr{}, false
}

// hostFromTarget extracts the domain to resolve. The target may be a
// full URL or a bare domain; IP literals are rejected since both
// families must come from DNS.
func hostFromTarget(target string) (string, error) {
	if target == "" {
		return "", errors.New("target must not be empty")
	}

	host := target

	if strings.Contains(target, "://") {
		u, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("target is not a valid URL: %w", err)
		}

		host = u.Hostname()
		if host == "" {
			return "", errors.New("target URL has no host")
		}
	}

	if _, err := netip.ParseAddr(host); err == nil {
		return "", errors.New("target must be a domain name, not an IP address")
	}

	return host, nil
}
