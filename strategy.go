package twincount

import "fmt"

type Strategy uint

const (
	// Locking takes a mutex around every read-modify-write.
	Locking Strategy = iota
	// LockFree uses a hardware fetch-and-add.
	LockFree
	// CompareAndSwap uses a CAS retry loop.
	CompareAndSwap
)

var strategyNames = map[Strategy]string{
	Locking:        "locking",
	LockFree:       "lock-free",
	CompareAndSwap: "compare-and-swap",
}

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{Locking, LockFree, CompareAndSwap}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", uint(s))
}

func (s Strategy) MarshalText() ([]byte, error) {
	if _, ok := strategyNames[s]; !ok {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, uint(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(text []byte) error {
	for strategy, name := range strategyNames {
		if name == string(text) {
			*s = strategy
			return nil
		}
	}
	return fmt.Errorf("%w: unknown strategy %q", ErrInvalidArgument, text)
}

// LockGranularity selects what the Locking strategy locks.
type LockGranularity uint

const (
	// PerElementLock gives every counter its own mutex, so the two workers
	// only contend when they reach the same index at the same time.
	PerElementLock LockGranularity = iota
	// ArrayLock guards the whole array with one mutex. The two workers
	// then take turns on every increment.
	ArrayLock
)

func (g LockGranularity) String() string {
	switch g {
	case PerElementLock:
		return "per-element"
	case ArrayLock:
		return "array"
	default:
		return fmt.Sprintf("LockGranularity(%d)", uint(g))
	}
}
