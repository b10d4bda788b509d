// Package parallel provides CPU-bound work splitting helpers used by the
// training and preprocessing code paths.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, items) into one contiguous range per worker and runs
// fn on each range concurrently. It blocks until every range has been
// processed. Worker count is capped at runtime.NumCPU and at items, so fn is
// never invoked with an empty range.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}

	// Spread the remainder one item at a time over the leading workers.
	base := items / workers
	extra := items % workers

	var wg sync.WaitGroup
	wg.Add(workers)

	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		end := start + size
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
		start = end
	}

	wg.Wait()
}

// ParallelizeWithThreshold parallelizes only when items exceeds threshold.
// At or below the threshold fn(0, items) runs once on the calling goroutine,
// which keeps small inputs free of scheduling overhead.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Parallelize(items, fn)
}
