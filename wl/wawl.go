// Copyright 2025 go-wirelength Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wl

import "github.com/ajroetker/go-wirelength/workerpool"

// minParallelScaleElems is the minimum gradient buffer size before the
// memory-bound upstream-scale sweep in Backward is parallelized. Below this
// the scheduling overhead costs more than the sweep itself.
const minParallelScaleElems = 16384

// dynamicChunk is the chunk size for dynamic scheduling over n work units:
// roughly 16 chunks per worker, so stragglers on high-fanout nets can be
// absorbed by the rest of the pool, but never below one unit.
func dynamicChunk(n, workers int) int {
	return max(n/workers/16, 1)
}

func checkTensorArgs[T Floats](argName string, n []T, nl *Netlist) error {
	if len(n)%2 != 0 {
		return argErrorf(argName, "length %d is odd, want 2*numPins", len(n))
	}
	if len(n) != 2*nl.NumPins() {
		return argErrorf(argName, "length %d, want 2*numPins = %d", len(n), 2*nl.NumPins())
	}
	return nil
}

func checkNetArgs[T Floats](nl *Netlist, mask []bool, weights []T) error {
	if len(mask) != nl.NumNets() {
		return argErrorf("mask", "length %d, want numNets = %d", len(mask), nl.NumNets())
	}
	if len(weights) != 0 && len(weights) != nl.NumNets() {
		return argErrorf("weights", "length %d, want 0 or numNets = %d", len(weights), nl.NumNets())
	}
	return nil
}

// Forward computes the total weighted-average wirelength of the placement
// and the unscaled gradient of every pin coordinate.
//
// pos holds all x coordinates followed by all y coordinates (length
// 2*nl.NumPins()). mask selects the participating nets; weights is either
// empty (uniform weight 1) or one multiplier per net, applied to each net's
// partial wirelength before the final sum. invGamma is the reciprocal of the
// smoothing parameter: larger values sharpen the approximation towards the
// true span.
//
// The returned gradient buffer has the shape of pos and is the intermediate
// the caller must hand back to Backward; it is not yet scaled by the
// upstream gradient or the net weights. Pins of inactive nets hold zero.
//
// pool may be nil for sequential execution. Work is sharded over (net, axis)
// units with dynamic chunked scheduling.
func Forward[T Floats](pool *workerpool.Pool, pos []T, nl *Netlist, mask []bool, weights []T, invGamma T) (T, []T, error) {
	if err := checkTensorArgs("pos", pos, nl); err != nil {
		return 0, nil, err
	}
	if err := checkNetArgs(nl, mask, weights); err != nil {
		return 0, nil, err
	}

	numNets := nl.NumNets()
	units := 2 * numNets
	partial := make([]T, units)
	grad := make([]T, len(pos))

	if pool == nil {
		baseForwardRange(pos, nl, mask, invGamma, partial, grad, 0, units)
	} else {
		pool.ParallelForDynamic(units, dynamicChunk(units, pool.NumWorkers()), func(start, end int) {
			baseForwardRange(pos, nl, mask, invGamma, partial, grad, start, end)
		})
	}

	if len(weights) != 0 {
		for n := 0; n < numNets; n++ {
			w := weights[n]
			partial[2*n] *= w
			partial[2*n+1] *= w
		}
	}

	var total T
	for _, p := range partial {
		total += p
	}
	return total, grad, nil
}

// Backward turns the intermediate gradient from Forward into the final
// per-pin gradient: every slot is scaled by the upstream gradient of the
// scalar cost, then, when weights are supplied, additionally by the owning
// net's weight. The topology, mask and weights must be the ones the forward
// call saw.
//
// gradIntermediate is not modified; the result is a fresh buffer of the
// same shape. pool may be nil for sequential execution.
func Backward[T Floats](pool *workerpool.Pool, upstream T, gradIntermediate []T, nl *Netlist, mask []bool, weights []T) ([]T, error) {
	if err := checkTensorArgs("gradIntermediate", gradIntermediate, nl); err != nil {
		return nil, err
	}
	if err := checkNetArgs(nl, mask, weights); err != nil {
		return nil, err
	}

	grad := make([]T, len(gradIntermediate))
	scale := func(start, end int) {
		for i := start; i < end; i++ {
			grad[i] = gradIntermediate[i] * upstream
		}
	}
	if pool == nil || len(grad) < minParallelScaleElems {
		scale(0, len(grad))
	} else {
		pool.ParallelFor(len(grad), scale)
	}

	if len(weights) != 0 {
		units := 2 * nl.NumNets()
		if pool == nil {
			baseIntegrateRange(grad, nl, mask, weights, 0, units)
		} else {
			pool.ParallelForDynamic(units, dynamicChunk(units, pool.NumWorkers()), func(start, end int) {
				baseIntegrateRange(grad, nl, mask, weights, start, end)
			})
		}
	}

	return grad, nil
}
