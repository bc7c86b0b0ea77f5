package twincount

import (
	"fmt"
	"log/slog"
)

type Config struct {
	NumberOfItems   int
	LockGranularity LockGranularity
	// Reporter receives every RunResult produced by Run. Optional.
	Reporter Reporter
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (c Config) validate() error {
	if c.NumberOfItems < 0 {
		return fmt.Errorf("%w: number of items must be non-negative, got %d", ErrInvalidArgument, c.NumberOfItems)
	}
	switch c.LockGranularity {
	case PerElementLock, ArrayLock:
	default:
		return fmt.Errorf("%w: unknown lock granularity %d", ErrInvalidArgument, uint(c.LockGranularity))
	}
	return nil
}
