package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ajroetker/go-wirelength/wl"
)

// defaultInvGamma is used when a scenario does not set options.inv_gamma.
// Placement flows anneal this over the run; 0.1 is a mid-schedule value.
const defaultInvGamma = 0.1

// Scenario is the TOML document consumed by eval and produced by gen.
//
//	[placement]
//	x = [0.0, 10.0, 4.0]
//	y = [0.0, 2.0, 8.0]
//
//	[[net]]
//	pins = [0, 1]
//	weight = 2.0   # optional, defaults to 1
//
//	[[net]]
//	pins = [2]
//
//	[options]
//	inv_gamma = 0.1
type Scenario struct {
	Placement Placement `toml:"placement"`
	Nets      []Net     `toml:"net"`
	Options   Options   `toml:"options"`
}

type Placement struct {
	X []float64 `toml:"x"`
	Y []float64 `toml:"y"`
}

type Net struct {
	Pins   []int32 `toml:"pins"`
	Weight float64 `toml:"weight,omitempty"`
}

type Options struct {
	InvGamma float64 `toml:"inv_gamma"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(s.Placement.X) != len(s.Placement.Y) {
		return nil, fmt.Errorf("%s: placement has %d x but %d y coordinates",
			path, len(s.Placement.X), len(s.Placement.Y))
	}
	if s.Options.InvGamma < 0 {
		return nil, fmt.Errorf("%s: inv_gamma must not be negative, got %v", path, s.Options.InvGamma)
	}
	if s.Options.InvGamma == 0 {
		s.Options.InvGamma = defaultInvGamma
	}
	return &s, nil
}

// Save writes the scenario as TOML to path.
func (s *Scenario) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// Netlist builds the validated CSR topology from the scenario's nets.
func (s *Scenario) Netlist() (*wl.Netlist, error) {
	nets := make([][]int32, len(s.Nets))
	for i, n := range s.Nets {
		nets[i] = n.Pins
	}
	return wl.NewNetlist(nets, len(s.Placement.X))
}

// Pos returns the placement as a flat buffer, x half then y half.
func (s *Scenario) Pos() []float64 {
	pos := make([]float64, 0, 2*len(s.Placement.X))
	pos = append(pos, s.Placement.X...)
	return append(pos, s.Placement.Y...)
}

// Weights returns the per-net weight buffer, or nil when every net carries
// the default weight so the kernels can skip weighting entirely. A zero
// weight in the file means "unset" and is treated as 1.
func (s *Scenario) Weights() []float64 {
	weighted := false
	for _, n := range s.Nets {
		if n.Weight != 0 && n.Weight != 1 {
			weighted = true
			break
		}
	}
	if !weighted {
		return nil
	}

	weights := make([]float64, len(s.Nets))
	for i, n := range s.Nets {
		if n.Weight == 0 {
			weights[i] = 1
		} else {
			weights[i] = n.Weight
		}
	}
	return weights
}

// RandomScenario synthesizes a seeded scenario: nets of fanout 2..maxDegree,
// every pin on exactly one net, coordinates uniform in [0, extent).
func RandomScenario(numNets, maxDegree int, extent float64, seed int64, weighted bool) *Scenario {
	if maxDegree < 2 {
		maxDegree = 2
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Scenario{Options: Options{InvGamma: defaultInvGamma}}
	nextPin := int32(0)
	for ni := 0; ni < numNets; ni++ {
		degree := 2 + rng.Intn(maxDegree-1)
		pins := make([]int32, degree)
		for j := range pins {
			pins[j] = nextPin
			nextPin++
		}
		net := Net{Pins: pins}
		if weighted {
			net.Weight = 0.5 + rng.Float64()
		}
		s.Nets = append(s.Nets, net)
	}

	s.Placement.X = make([]float64, nextPin)
	s.Placement.Y = make([]float64, nextPin)
	for i := range s.Placement.X {
		s.Placement.X[i] = rng.Float64() * extent
		s.Placement.Y[i] = rng.Float64() * extent
	}
	return s
}
