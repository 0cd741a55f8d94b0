package cli

import (
	"path/filepath"
	"testing"
)

func TestScenarioRoundTrip(t *testing.T) {
	s := RandomScenario(50, 6, 1000, 7, true)
	path := filepath.Join(t.TempDir(), "scenario.toml")

	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}

	if len(got.Nets) != len(s.Nets) {
		t.Fatalf("loaded %d nets, want %d", len(got.Nets), len(s.Nets))
	}
	if len(got.Placement.X) != len(s.Placement.X) {
		t.Fatalf("loaded %d pins, want %d", len(got.Placement.X), len(s.Placement.X))
	}
	for i := range s.Nets {
		if len(got.Nets[i].Pins) != len(s.Nets[i].Pins) {
			t.Errorf("net %d: %d pins, want %d", i, len(got.Nets[i].Pins), len(s.Nets[i].Pins))
		}
	}
	for i := range s.Placement.X {
		if got.Placement.X[i] != s.Placement.X[i] || got.Placement.Y[i] != s.Placement.Y[i] {
			t.Errorf("pin %d: coordinates changed in round trip", i)
			break
		}
	}
}

func TestRandomScenarioTopologyIsValid(t *testing.T) {
	s := RandomScenario(100, 8, 1000, 3, false)

	nl, err := s.Netlist()
	if err != nil {
		t.Fatalf("Netlist: %v", err)
	}
	if nl.NumNets() != 100 {
		t.Errorf("NumNets() = %d, want 100", nl.NumNets())
	}
	for i := 0; i < nl.NumNets(); i++ {
		if d := nl.Degree(i); d < 2 || d > 8 {
			t.Errorf("net %d has fanout %d, want 2..8", i, d)
		}
	}
}

func TestScenarioWeights(t *testing.T) {
	s := &Scenario{
		Placement: Placement{X: []float64{0, 1, 2, 3}, Y: []float64{0, 0, 0, 0}},
		Nets: []Net{
			{Pins: []int32{0, 1}},
			{Pins: []int32{2, 3}, Weight: 1},
		},
	}
	if w := s.Weights(); w != nil {
		t.Errorf("Weights() = %v for uniform scenario, want nil", w)
	}

	s.Nets[1].Weight = 2.5
	w := s.Weights()
	if len(w) != 2 || w[0] != 1 || w[1] != 2.5 {
		t.Errorf("Weights() = %v, want [1 2.5] (unset defaults to 1)", w)
	}
}

func TestLoadScenarioRejectsMismatchedPlacement(t *testing.T) {
	s := &Scenario{
		Placement: Placement{X: []float64{0, 1}, Y: []float64{0}},
		Nets:      []Net{{Pins: []int32{0, 1}}},
	}
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := LoadScenario(path); err == nil {
		t.Fatal("LoadScenario accepted mismatched x/y lengths")
	}
}
