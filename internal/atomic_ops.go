package internal

import (
	"sync/atomic"
)

func AtomicInc(addr *int64) {
	atomic.AddInt64(addr, 1)
}

// CASInc increments addr with a compare-and-swap retry loop.
func CASInc(addr *int64) {
	for {
		old := atomic.LoadInt64(addr)
		if atomic.CompareAndSwapInt64(addr, old, old+1) {
			return
		}
	}
}

func AtomicLoad(addr *int64) int64 {
	return atomic.LoadInt64(addr)
}
