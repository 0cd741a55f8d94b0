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

import stdmath "math"

// Floats is the constraint for coordinate element types.
type Floats interface {
	~float32 | ~float64
}

func expOf[T Floats](x T) T {
	return T(stdmath.Exp(float64(x)))
}

// baseNetAxis computes the weighted-average wirelength of one net along one
// axis and writes the unscaled gradient of each of its pins into grads.
//
// values and grads are the single-axis halves of the position and gradient
// buffers. Shifting by the extrema before exponentiating keeps every
// exponent argument <= 0, so the exponentials stay in (0, 1]. The
// exponentials are recomputed in the gradient loop rather than stored; per
// pin that trades two exp calls for a scratch buffer and its cache traffic,
// matching the reference kernel.
//
// A single-pin net degenerates cleanly: all exponentials are 1, the
// wirelength is x/1 - x/1 = 0 and the gradient terms cancel exactly, so no
// special case is needed.
func baseNetAxis[T Floats](values []T, pins []int32, invGamma T, grads []T) T {
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

	var xexpSum, xexpNegSum, expSum, expNegSum T
	for _, p := range pins {
		xx := values[p]
		ePos := expOf((xx - xMax) * invGamma)
		eNeg := expOf((xMin - xx) * invGamma)

		xexpSum += xx * ePos
		xexpNegSum += xx * eNeg
		expSum += ePos
		expNegSum += eNeg
	}

	bPos := invGamma / expSum
	aPos := (1 - bPos*xexpSum) / expSum
	bNeg := -invGamma / expNegSum
	aNeg := (1 - bNeg*xexpNegSum) / expNegSum

	for _, p := range pins {
		xx := values[p]
		ePos := expOf((xx - xMax) * invGamma)
		eNeg := expOf((xMin - xx) * invGamma)

		grads[p] = (aPos+bPos*xx)*ePos - (aNeg+bNeg*xx)*eNeg
	}

	return xexpSum/expSum - xexpNegSum/expNegSum
}

// baseForwardRange processes work units [start, end) of the flattened
// (net, axis) index space of size 2*NumNets. Unit i addresses net i>>1 on
// axis i&1 (0 = x, 1 = y); its partial wirelength lands in partial[i].
// Inactive nets leave their partial and gradient slots at zero.
func baseForwardRange[T Floats](pos []T, nl *Netlist, mask []bool, invGamma T, partial, grad []T, start, end int) {
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
		grads := grad[axis*numPins : (axis+1)*numPins]

		partial[i] = baseNetAxis(values, pins, invGamma, grads)
	}
}

// BaseForward is the sequential reference for Forward: it fills partial
// (length 2*NumNets, laid out partial[2*net+axis]) and grad (same shape as
// pos) for every active net. Both buffers must arrive zeroed. No validation
// is performed; see Forward for the checked entry point.
func BaseForward[T Floats](pos []T, nl *Netlist, mask []bool, invGamma T, partial, grad []T) {
	baseForwardRange(pos, nl, mask, invGamma, partial, grad, 0, 2*nl.NumNets())
}

// baseIntegrateRange multiplies the gradient slots of each active net by the
// net's weight, over work units [start, end) of the same flattened
// (net, axis) index space the forward pass uses.
func baseIntegrateRange[T Floats](grad []T, nl *Netlist, mask []bool, weights []T, start, end int) {
	numPins := nl.numPins
	for i := start; i < end; i++ {
		net := i >> 1
		if !mask[net] {
			continue
		}

		axis := i & 1
		grads := grad[axis*numPins : (axis+1)*numPins]
		w := weights[net]
		for _, p := range nl.Pins(net) {
			grads[p] *= w
		}
	}
}
