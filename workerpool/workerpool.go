// Copyright 2025 The go-wirelength Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for the
// parallel placement kernels. A Pool is created once and reused across the
// many forward/backward evaluations of an optimization run, so per-call
// goroutine spawning never shows up in the hot loop.
//
// The placement kernels shard their work over net/axis units whose cost
// varies with net fanout, so the pool offers two schedulers: a static
// contiguous split (ParallelFor) for uniform, memory-bound sweeps, and a
// dynamic scheduler (ParallelForDynamic) that hands out fixed-size chunks
// from an atomic claim counter so a few huge nets cannot starve the rest of
// the workers.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for step := 0; step < steps; step++ {
//	    pool.ParallelForDynamic(units, chunk, func(start, end int) {
//	        processUnits(start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many parallel operations.
// Workers are spawned once at creation and live until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of scheduled work.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned immediately.
// A size <= 0 means GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts the pool down. Pending work still completes. Close is
// idempotent; operations on a closed pool degrade to sequential execution.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor executes fn over [0, n) split into one contiguous range per
// worker. Blocks until all ranges complete.
//
// fn receives (start, end) and must process indices in [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}

// ParallelForDynamic executes fn over [0, n) with dynamic scheduling: idle
// workers repeatedly claim the next chunk of indices from a shared atomic
// counter until the index space is exhausted. This keeps load balanced when
// the cost per index varies widely, as it does across nets of unequal
// fanout.
//
// chunk is the number of indices claimed per grab; values <= 0 are treated
// as 1. fn receives (start, end) and must process indices in [start, end).
// Blocks until all chunks complete.
func (p *Pool) ParallelForDynamic(n, chunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if chunk <= 0 {
		chunk = 1
	}

	if p.closed.Load() {
		fn(0, n)
		return
	}

	numChunks := (n + chunk - 1) / chunk
	workers := min(p.numWorkers, numChunks)

	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		p.workC <- workItem{
			fn: func() {
				for {
					start := int(next.Add(int64(chunk))) - chunk
					if start >= n {
						return
					}
					fn(start, min(start+chunk, n))
				}
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
