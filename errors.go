package twincount

import (
	"errors"

	"github.com/addisoncox/twincount/internal"
)

var (
	// ErrInvalidArgument is returned for a negative size or an unknown
	// lock granularity, before any worker is started.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLostUpdate is returned by Verify when a counter does not hold the
	// expected value.
	ErrLostUpdate = errors.New("lost update")
)

// WorkerFault is the panic value raised on the calling goroutine when a
// worker panics mid-walk. There is no partial result.
type WorkerFault = internal.WorkerFault
