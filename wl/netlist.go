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

// Netlist is the net-to-pin topology in CSR layout: flatNetPin holds pin
// indices grouped contiguously per net, and netPinStart[i] marks the
// half-open range [netPinStart[i], netPinStart[i+1]) of net i within it.
//
// All topology invariants the kernels rely on are checked once here, at
// construction: ranges are contiguous, non-overlapping and cover flatNetPin
// exactly; every pin index is in [0, numPins); and no pin appears under more
// than one net. The last invariant is what lets parallel workers write
// gradient slots without synchronization, so a violation is rejected rather
// than documented away.
type Netlist struct {
	flatNetPin  []int32
	netPinStart []int32
	numPins     int
}

// NewNetlist builds a Netlist from one pin-index slice per net. numPins is
// the total pin count of the placement; pins that belong to no net are
// permitted (they simply receive zero gradient).
func NewNetlist(nets [][]int32, numPins int) (*Netlist, error) {
	total := 0
	for _, pins := range nets {
		total += len(pins)
	}

	flat := make([]int32, 0, total)
	start := make([]int32, len(nets)+1)
	for i, pins := range nets {
		flat = append(flat, pins...)
		start[i+1] = int32(len(flat))
	}

	return FromCSR(flat, start, numPins)
}

// FromCSR builds a Netlist directly from CSR arrays, validating every
// topology invariant. The slices are retained, not copied; callers must not
// mutate them afterwards.
func FromCSR(flatNetPin, netPinStart []int32, numPins int) (*Netlist, error) {
	if numPins < 0 {
		return nil, topoErrorf(-1, "negative pin count %d", numPins)
	}
	if len(netPinStart) == 0 {
		return nil, topoErrorf(-1, "netPinStart must have at least one entry")
	}
	if netPinStart[0] != 0 {
		return nil, topoErrorf(-1, "netPinStart[0] = %d, want 0", netPinStart[0])
	}
	numNets := len(netPinStart) - 1
	if last := netPinStart[numNets]; int(last) != len(flatNetPin) {
		return nil, topoErrorf(-1, "netPinStart[%d] = %d, want len(flatNetPin) = %d",
			numNets, last, len(flatNetPin))
	}

	// Ranges must be verified monotone before any of them is sliced, or a
	// bad bookmark would fault instead of erroring.
	for i := 0; i < numNets; i++ {
		if netPinStart[i] > netPinStart[i+1] {
			return nil, topoErrorf(i, "descending range [%d, %d)", netPinStart[i], netPinStart[i+1])
		}
	}

	seen := make([]bool, numPins)
	for i := 0; i < numNets; i++ {
		for _, p := range flatNetPin[netPinStart[i]:netPinStart[i+1]] {
			if p < 0 || int(p) >= numPins {
				return nil, topoErrorf(i, "pin index %d out of range [0, %d)", p, numPins)
			}
			if seen[p] {
				return nil, topoErrorf(i, "pin %d already belongs to another net", p)
			}
			seen[p] = true
		}
	}

	return &Netlist{flatNetPin: flatNetPin, netPinStart: netPinStart, numPins: numPins}, nil
}

// NumNets returns the number of nets.
func (nl *Netlist) NumNets() int {
	return len(nl.netPinStart) - 1
}

// NumPins returns the total pin count of the placement, including pins that
// belong to no net.
func (nl *Netlist) NumPins() int {
	return nl.numPins
}

// Degree returns the fanout of net i.
func (nl *Netlist) Degree(i int) int {
	return int(nl.netPinStart[i+1] - nl.netPinStart[i])
}

// Pins returns the pin indices of net i as a view into the CSR storage.
func (nl *Netlist) Pins(i int) []int32 {
	return nl.flatNetPin[nl.netPinStart[i]:nl.netPinStart[i+1]]
}

// DegreeMask returns the standard participation mask: net i is active when
// minDegree <= Degree(i) and, if maxDegree > 0, Degree(i) <= maxDegree.
// Global placers use this to drop single-pin nets (which contribute nothing)
// and clock-like nets of enormous fanout (which would dominate runtime while
// carrying little placement signal).
func (nl *Netlist) DegreeMask(minDegree, maxDegree int) []bool {
	mask := make([]bool, nl.NumNets())
	for i := range mask {
		d := nl.Degree(i)
		mask[i] = d >= minDegree && (maxDegree <= 0 || d <= maxDegree)
	}
	return mask
}
