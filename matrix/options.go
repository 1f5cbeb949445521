// Package matrix: functional configuration for Build.
//
// Design goals (mirrors the rest of the library):
//   - Deterministic behavior: no global state, defaults documented as constants.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import (
	"fmt"

	"github.com/alitto/pond/v2"
)

// DefaultWorkers is the default fill concurrency: 1, i.e. the plain
// sequential row-major fill. Parallel fill is strictly opt-in.
const DefaultWorkers = 1

// options carries the gathered Build configuration.
type options struct {
	workers int // fill concurrency; 1 = sequential
}

// Option mutates the internal options state.
type Option func(*options)

// WithWorkers enables concurrent cell fill on a bounded pool of n workers.
// Each row is filled by exactly one task, so every cell is still written
// exactly once; Build does not return until the pool has drained, which
// keeps the single-atomic-handoff guarantee intact.
//
// n must be >= 1; anything else is a programmer error and panics.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("matrix: WithWorkers(%d): workers must be >= 1", n))
	}

	return func(o *options) { o.workers = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// fillParallel distributes row fills over a bounded worker pool.
// Rows are independent (no cell is written twice), and StopAndWait
// guarantees every task completed before the matrix escapes Build.
func fillParallel[T any](data []T, rows, cols int, gen Generator[T], workers int) {
	pool := pond.NewPool(workers)
	var r int
	for r = 0; r < rows; r++ {
		row := r // capture per task
		pool.Submit(func() {
			base := row * cols
			for c := 0; c < cols; c++ {
				data[base+c] = gen(row, c)
			}
		})
	}
	pool.StopAndWait()
}
