// Copyright 2025 The go-wirelength Authors. SPDX-License-Identifier: Apache-2.0

package wl

import (
	"testing"

	"github.com/ajroetker/go-wirelength/workerpool"
)

func TestHPWLKnownValue(t *testing.T) {
	// Net 0: x spans [1, 5], y spans [2, 8]. Net 1: x spans [0, 10], y at 4.
	nl, err := NewNetlist([][]int32{{0, 1, 2}, {3, 4}}, 5)
	if err != nil {
		t.Fatalf("NewNetlist: %v", err)
	}
	pos := []float64{
		1, 3, 5, 0, 10, // x
		2, 8, 4, 4, 4, // y
	}
	mask := []bool{true, true}

	got, err := HPWL(nil, pos, nl, mask, nil)
	if err != nil {
		t.Fatalf("HPWL: %v", err)
	}
	want := (5.0 - 1) + (8.0 - 2) + (10.0 - 0) + 0
	if got != want {
		t.Errorf("HPWL = %v, want %v", got, want)
	}

	// Masking net 1 removes exactly its span.
	got, err = HPWL(nil, pos, nl, []bool{true, false}, nil)
	if err != nil {
		t.Fatalf("HPWL: %v", err)
	}
	if want := (5.0 - 1) + (8.0 - 2); got != want {
		t.Errorf("HPWL masked = %v, want %v", got, want)
	}

	// Weights scale per-net contributions.
	got, err = HPWL(nil, pos, nl, mask, []float64{2, 0.5})
	if err != nil {
		t.Fatalf("HPWL: %v", err)
	}
	if want := 2*((5.0-1)+(8.0-2)) + 0.5*(10.0-0); got != want {
		t.Errorf("HPWL weighted = %v, want %v", got, want)
	}
}

func TestWAWLBoundedByHPWL(t *testing.T) {
	nl, pos := randomPlacement(50, 500, 11)
	mask := allTrue(nl.NumNets())

	hpwl, err := HPWL(nil, pos, nl, mask, nil)
	if err != nil {
		t.Fatalf("HPWL: %v", err)
	}

	// The smooth proxy underestimates the true span at every sharpness,
	// and approaches it as invGamma grows.
	prev := -1.0
	for _, invGamma := range []float64{0.01, 0.1, 1, 10} {
		wawl, _, err := Forward(nil, pos, nl, mask, nil, invGamma)
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}
		if wawl > hpwl+1e-9 {
			t.Errorf("invGamma=%v: wawl = %v exceeds hpwl = %v", invGamma, wawl, hpwl)
		}
		if wawl <= prev {
			t.Errorf("invGamma=%v: wawl = %v, want > %v", invGamma, wawl, prev)
		}
		prev = wawl
	}

	if relDiff(prev, hpwl) > 1e-2 {
		t.Errorf("wawl at invGamma=10 is %v, want ~hpwl %v", prev, hpwl)
	}
}

func TestHPWLThreadInvariance(t *testing.T) {
	nl, pos := randomPlacement(300, 1000, 12)
	mask := allTrue(nl.NumNets())

	want, err := HPWL(nil, pos, nl, mask, nil)
	if err != nil {
		t.Fatalf("HPWL: %v", err)
	}

	pool := workerpool.New(8)
	defer pool.Close()

	got, err := HPWL(pool, pos, nl, mask, nil)
	if err != nil {
		t.Fatalf("HPWL: %v", err)
	}
	if relDiff(got, want) > 1e-12 {
		t.Errorf("parallel HPWL = %v, sequential = %v", got, want)
	}
}
