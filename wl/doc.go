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

// Package wl provides the CPU parallel reference kernels for analytical
// VLSI global placement wirelength objectives.
//
// # Weighted-Average Wirelength
//
// The half-perimeter wirelength of a net is (max x - min x) + (max y - min y)
// over its pins, which is not differentiable at the extrema. The
// weighted-average model replaces each axis span with the smooth log-sum-exp
// weighted proxy
//
//	WL = Σ x·exp((x-max)/γ) / Σ exp((x-max)/γ) − Σ x·exp((min-x)/γ) / Σ exp((min-x)/γ)
//
// which converges to the true span as γ shrinks. Shifting by the extrema
// before exponentiating keeps every exponent argument <= 0, so the
// exponentials stay in (0, 1] and never overflow. Forward also produces the
// closed-form analytic gradient with respect to every pin coordinate, so no
// automatic differentiation is involved.
//
// # Data Layout
//
// Positions and gradients are flat buffers of length 2*numPins: all x
// coordinates followed by all y coordinates. Net topology is a Netlist, a
// CSR (compressed sparse row) mapping from nets to pin indices; it is
// validated once at construction so the kernels can run branch-free.
//
// # Parallelism
//
// Each (net, axis) pair is an independent work unit; the kernels flatten
// them into a single index space of size 2*numNets and distribute it over a
// workerpool.Pool with dynamic chunked scheduling, so nets of wildly
// different fanout do not unbalance the workers. Pin gradient slots never
// alias across nets (each pin belongs to exactly one net), so workers write
// without synchronization.
//
// # Example Usage
//
//	nl, _ := wl.NewNetlist([][]int32{{0, 1, 2}, {3, 4}}, 5)
//	mask := nl.DegreeMask(2, 0)
//
//	pool := workerpool.New(8)
//	defer pool.Close()
//
//	cost, grad, _ := wl.Forward(pool, pos, nl, mask, nil, invGamma)
//	pinGrad, _ := wl.Backward(pool, 1.0, grad, nl, mask, nil)
package wl
