// Copyright 2025 The go-wirelength Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForDynamic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, chunk := range []int{1, 7, 10, 1000} {
		n := 100
		results := make([]int, n)

		pool.ParallelForDynamic(n, chunk, func(start, end int) {
			for i := start; i < end; i++ {
				results[i] = i * 2
			}
		})

		for i := 0; i < n; i++ {
			if results[i] != i*2 {
				t.Errorf("chunk %d: results[%d] = %d, want %d", chunk, i, results[i], i*2)
			}
		}
	}
}

func TestParallelForDynamicCoversOnce(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 1000
	visits := make([]atomic.Int32, n)

	pool.ParallelForDynamic(n, 3, func(start, end int) {
		for i := start; i < end; i++ {
			visits[i].Add(1)
		}
	})

	for i := range visits {
		if got := visits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n smaller than the worker count
	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // idempotent

	n := 50
	results := make([]int, n)

	pool.ParallelForDynamic(n, 8, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i)
		}
	}
}
