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

// baseHPWLRange computes exact per-axis spans over work units [start, end)
// of the flattened (net, axis) index space, writing into partial[i].
func baseHPWLRange[T Floats](pos []T, nl *Netlist, mask []bool, partial []T, start, end int) {
	numPins := nl.numPins
	for i := start; i < end; i++ {
		net := i >> 1
		if !mask[net] {
			continue
		}
		pins := nl.Pins(net)
		if len(pins) == 0 {
			continue
		}

		axis := i & 1
		values := pos[axis*numPins : (axis+1)*numPins]

		xMax := values[pins[0]]
		xMin := xMax
		for _, p := range pins[1:] {
			xx := values[p]
			if xx > xMax {
				xMax = xx
			}
			if xx < xMin {
				xMin = xx
			}
		}
		partial[i] = xMax - xMin
	}
}

// HPWL computes the exact half-perimeter wirelength of the placement: the
// weighted sum over active nets of (max x - min x) + (max y - min y). It is
// the non-smooth quantity the weighted-average model approximates, and the
// number placers report. Arguments follow Forward; pool may be nil.
func HPWL[T Floats](pool *workerpool.Pool, pos []T, nl *Netlist, mask []bool, weights []T) (T, error) {
	if err := checkTensorArgs("pos", pos, nl); err != nil {
		return 0, err
	}
	if err := checkNetArgs(nl, mask, weights); err != nil {
		return 0, err
	}

	numNets := nl.NumNets()
	units := 2 * numNets
	partial := make([]T, units)

	if pool == nil {
		baseHPWLRange(pos, nl, mask, partial, 0, units)
	} else {
		pool.ParallelForDynamic(units, dynamicChunk(units, pool.NumWorkers()), func(start, end int) {
			baseHPWLRange(pos, nl, mask, partial, start, end)
		})
	}

	var total T
	if len(weights) != 0 {
		for n := 0; n < numNets; n++ {
			total += weights[n] * (partial[2*n] + partial[2*n+1])
		}
	} else {
		for _, p := range partial {
			total += p
		}
	}
	return total, nil
}
