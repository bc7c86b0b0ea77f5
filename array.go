package twincount

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/addisoncox/twincount/internal"
	"github.com/google/uuid"
)

// SharedCounterArray owns a fixed-length array of int64 counters that two
// workers increment concurrently, either under a mutex or with atomics.
//
// Increment operations on one array are serialized: a second call blocks
// until the workers of the first have been joined.
type SharedCounterArray struct {
	counters    []int64
	granularity LockGranularity
	// locks is nil under ArrayLock.
	locks     []sync.Mutex
	arrayLock sync.Mutex
	opLock    sync.Mutex
	reporter  Reporter
	logger    *slog.Logger
}

// New returns an array of numberOfItems zeroed counters using per-element
// locks for the locking strategy.
func New(numberOfItems int) (*SharedCounterArray, error) {
	return NewFromConfig(Config{NumberOfItems: numberOfItems})
}

func NewFromConfig(cfg Config) (*SharedCounterArray, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a := &SharedCounterArray{
		counters:    make([]int64, cfg.NumberOfItems),
		granularity: cfg.LockGranularity,
		reporter:    cfg.Reporter,
		logger:      logger,
	}
	if cfg.LockGranularity == PerElementLock {
		a.locks = make([]sync.Mutex, cfg.NumberOfItems)
	}
	return a, nil
}

func (a *SharedCounterArray) Len() int {
	return len(a.counters)
}

func (a *SharedCounterArray) Granularity() LockGranularity {
	return a.granularity
}

func (a *SharedCounterArray) lockFor(index int) *sync.Mutex {
	if a.locks == nil {
		return &a.arrayLock
	}
	return &a.locks[index]
}

// IncrementWithTwoThreadsUsingLocking has two workers each add one to every
// counter, holding the counter's lock for the read-modify-write. It returns
// the sum once both workers have finished.
func (a *SharedCounterArray) IncrementWithTwoThreadsUsingLocking() int64 {
	return a.increment(func(index int) {
		mu := a.lockFor(index)
		mu.Lock()
		a.counters[index]++
		mu.Unlock()
	})
}

// IncrementWithTwoThreadsLockFree is IncrementWithTwoThreadsUsingLocking
// with an atomic fetch-and-add in place of the lock.
func (a *SharedCounterArray) IncrementWithTwoThreadsLockFree() int64 {
	return a.increment(func(index int) {
		internal.AtomicInc(&a.counters[index])
	})
}

// IncrementWithTwoThreadsCAS is the lock-free variant built on a
// compare-and-swap loop.
func (a *SharedCounterArray) IncrementWithTwoThreadsCAS() int64 {
	return a.increment(func(index int) {
		internal.CASInc(&a.counters[index])
	})
}

// increment runs inc for every index on both workers and joins them. A
// worker panic is re-raised here as a *WorkerFault.
func (a *SharedCounterArray) increment(inc func(index int)) int64 {
	a.opLock.Lock()
	defer a.opLock.Unlock()

	if err := internal.RunWorkers(len(a.counters), func(_, index int) {
		inc(index)
	}); err != nil {
		panic(err)
	}
	return a.Sum()
}

// load reads one counter. Safe against both the locked and the atomic
// writers.
func (a *SharedCounterArray) load(index int) int64 {
	mu := a.lockFor(index)
	mu.Lock()
	v := internal.AtomicLoad(&a.counters[index])
	mu.Unlock()
	return v
}

// Sum returns the sum of all counters. Called while workers are running it
// returns a snapshot of a partially updated array.
func (a *SharedCounterArray) Sum() int64 {
	var sum int64
	for i := range a.counters {
		sum += a.load(i)
	}
	return sum
}

// Values returns a copy of the counters.
func (a *SharedCounterArray) Values() []int64 {
	values := make([]int64, len(a.counters))
	for i := range a.counters {
		values[i] = a.load(i)
	}
	return values
}

// Verify checks that every counter equals expected.
func (a *SharedCounterArray) Verify(expected int64) error {
	for i := range a.counters {
		if v := a.load(i); v != expected {
			return fmt.Errorf("%w: counter %d is %d, expected %d", ErrLostUpdate, i, v, expected)
		}
	}
	return nil
}

func (a *SharedCounterArray) operation(strategy Strategy) (func() int64, bool) {
	switch strategy {
	case Locking:
		return a.IncrementWithTwoThreadsUsingLocking, true
	case LockFree:
		return a.IncrementWithTwoThreadsLockFree, true
	case CompareAndSwap:
		return a.IncrementWithTwoThreadsCAS, true
	}
	return nil, false
}

// Run performs one increment operation with the given strategy, times it,
// and hands the result to the configured Reporter. An unknown strategy
// panics.
func (a *SharedCounterArray) Run(strategy Strategy) RunResult {
	op, ok := a.operation(strategy)
	if !ok {
		panic(fmt.Errorf("%w: unknown strategy %d", ErrInvalidArgument, uint(strategy)))
	}

	start := time.Now()
	sum := op()
	result := RunResult{
		ID:            uuid.New(),
		Strategy:      strategy,
		Granularity:   a.granularity,
		NumberOfItems: len(a.counters),
		Sum:           sum,
		StartedAt:     start,
		Duration:      time.Since(start),
	}

	if a.reporter != nil {
		if err := a.reporter.Report(result); err != nil {
			a.logger.Warn("run report failed", "run", result.ID, "strategy", strategy, "err", err)
		}
	}
	return result
}
