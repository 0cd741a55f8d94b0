// Copyright 2025 The go-wirelength Authors. SPDX-License-Identifier: Apache-2.0

package wl

import "fmt"

// ArgError reports an input buffer that failed boundary validation before
// any kernel work started. Arg names the offending argument the way it
// appears in the API.
type ArgError struct {
	Arg    string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("wl: argument %s: %s", e.Arg, e.Reason)
}

func argErrorf(arg, format string, args ...any) *ArgError {
	return &ArgError{Arg: arg, Reason: fmt.Sprintf(format, args...)}
}

// TopologyError reports a malformed net-to-pin mapping detected while
// constructing a Netlist. Net is the index of the offending net, or -1 when
// the defect is not attributable to a single net.
type TopologyError struct {
	Net    int
	Reason string
}

func (e *TopologyError) Error() string {
	if e.Net < 0 {
		return fmt.Sprintf("wl: topology: %s", e.Reason)
	}
	return fmt.Sprintf("wl: topology: net %d: %s", e.Net, e.Reason)
}

func topoErrorf(net int, format string, args ...any) *TopologyError {
	return &TopologyError{Net: net, Reason: fmt.Sprintf(format, args...)}
}
