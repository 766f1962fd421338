// Copyright 2025 The go-quicksort Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent, index-addressed jobs on a bounded
// number of goroutines. It is used by the example programs to run several
// sort trials at once; each job owns its own data, nothing is shared.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	err := pool.ParallelFor(ctx, len(trials), func(ctx context.Context, i int) error {
//	    return runTrial(ctx, trials[i])
//	})
package workerpool

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many jobs run concurrently.
type Pool struct {
	numWorkers int
}

// New creates a pool running at most numWorkers jobs at once.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ParallelFor calls fn for each index in [0, n) and blocks until all calls
// return or one fails. Workers grab the next index from a shared counter,
// so uneven jobs still balance. The first error cancels ctx for the
// remaining jobs and is returned; indices not yet started are skipped.
//
// With a single worker, indices run in order on the calling goroutine.
func (p *Pool) ParallelFor(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	var nextIdx atomic.Int32
	for range workers {
		g.Go(func() error {
			for {
				idx := int(nextIdx.Add(1)) - 1
				if idx >= n {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(ctx, idx); err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}
