// Package parallel runs data-parallel loops on a fixed number of goroutines.
//
// Each call is one fork/join region: it starts exactly Workers(threads)
// goroutines, and returns only after all of them have finished, which acts as
// the barrier between successive regions. Bodies must not block on I/O and
// must not write memory that another index of the same region reads.
package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultChunksPerWorker controls dynamic chunk size when the caller passes
// chunk <= 0: the range is cut into about this many chunks per worker.
const DefaultChunksPerWorker = 16

// Workers normalizes a requested thread count: values <= 0 mean
// runtime.GOMAXPROCS(0).
func Workers(threads int) int {
	if threads <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return threads
}

// For splits [0,n) into contiguous blocks, one per worker, and calls
// body(lo, hi, worker) for each non-empty block. Block sizes differ by at
// most one.
func For(n, threads int, body func(lo, hi, worker int)) {
	if n <= 0 {
		return
	}
	w := min(Workers(threads), n)
	if w == 1 {
		body(0, n, 0)
		return
	}

	var g errgroup.Group
	base, extra := n/w, n%w
	lo := 0
	for worker := 0; worker < w; worker++ {
		hi := lo + base
		if worker < extra {
			hi++
		}
		blockLo, blockHi, id := lo, hi, worker
		g.Go(func() error {
			body(blockLo, blockHi, id)
			return nil
		})
		lo = hi
	}
	_ = g.Wait() // bodies never fail
}

// ForDynamic hands out [0,n) in chunks of the given size from a shared atomic
// cursor; each worker keeps claiming the next chunk until the range is
// exhausted. This balances irregular per-index cost better than For.
// chunk <= 0 selects n / (workers*DefaultChunksPerWorker), at least 1.
func ForDynamic(n, threads, chunk int, body func(lo, hi, worker int)) {
	if n <= 0 {
		return
	}
	w := min(Workers(threads), n)
	if chunk <= 0 {
		chunk = max(1, n/(w*DefaultChunksPerWorker))
	}

	var (
		g      errgroup.Group
		cursor atomic.Int64
	)
	for worker := 0; worker < w; worker++ {
		id := worker
		g.Go(func() error {
			for {
				lo := int(cursor.Add(int64(chunk))) - chunk
				if lo >= n {
					return nil
				}
				body(lo, min(lo+chunk, n), id)
			}
		})
	}
	_ = g.Wait()
}
