package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

const WorkerCount = 2

// WorkerFault records a panic raised inside a worker.
type WorkerFault struct {
	Worker int
	Value  interface{}
	Stack  []byte
}

func (f *WorkerFault) Error() string {
	return fmt.Sprintf("worker %d panicked: %v", f.Worker, f.Value)
}

// RunWorkers starts WorkerCount workers, each pinned to its own OS thread,
// and each calling visit once for every index in [0, n). It returns after
// both workers have exited. A panicking worker stops its walk and is
// reported as a *WorkerFault.
func RunWorkers(n int, visit func(worker, index int)) error {
	var g errgroup.Group
	for w := 0; w < WorkerCount; w++ {
		worker := w
		g.Go(func() (err error) {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerFault{Worker: worker, Value: r, Stack: debug.Stack()}
				}
			}()
			for i := 0; i < n; i++ {
				visit(worker, i)
			}
			return nil
		})
	}
	return g.Wait()
}
