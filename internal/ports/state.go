package ports

// CombinedState is the joint reachability classification across both
// address families. It is a pure function of the latest known down
// signal for each family.
type CombinedState int

const (
	StateHealthy CombinedState = iota
	StateV4Down
	StateV6Down
	StateFullyDown
)

func (s CombinedState) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateV4Down:
		return "ipv4_down"
	case StateV6Down:
		return "ipv6_down"
	case StateFullyDown:
		return "fully_down"
	default:
		return "unknown"
	}
}

// CombinedStateOf maps the latest per-family down signals to the
// combined state. The mapping is total and has no memory beyond the two
// booleans.
func CombinedStateOf(v4Down, v6Down bool) CombinedState {
	switch {
	case v4Down && v6Down:
		return StateFullyDown
	case v4Down:
		return StateV4Down
	case v6Down:
		return StateV6Down
	default:
		return StateHealthy
	}
}

// FamilyDown reports whether family f is considered down in state s.
func (s CombinedState) FamilyDown(f Family) bool {
	switch f {
	case FamilyV4:
		return s == StateV4Down || s == StateFullyDown
	case FamilyV6:
		return s == StateV6Down || s == StateFullyDown
	default:
		return false
	}
}

// OutageScope labels what an outage duration refers to: one family or
// the network as a whole.
type OutageScope string

const (
	ScopeIPv4    OutageScope = "ipv4"
	ScopeIPv6    OutageScope = "ipv6"
	ScopeNetwork OutageScope = "network"
)

// FamilyScope returns the outage scope for a single family.
func FamilyScope(f Family) OutageScope {
	if f == FamilyV6 {
		return ScopeIPv6
	}

	return ScopeIPv4
}
