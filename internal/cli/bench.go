package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-wirelength/wl"
	"github.com/ajroetker/go-wirelength/workerpool"
)

// benchOpts holds the command-line flags for the bench command.
type benchOpts struct {
	nets       int
	pinsPerNet int // maximum fanout of synthesized nets
	iters      int
	threads    int
	seed       int64
	invGamma   float64
	single     bool
}

func newBenchCmd() *cobra.Command {
	opts := benchOpts{nets: 100000, pinsPerNet: 8, iters: 20, seed: 1, invGamma: defaultInvGamma}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the wirelength kernels on a synthetic netlist",
		Long: `Synthesize a seeded random netlist and time repeated forward+backward
passes, the way the kernels are driven inside a placement optimizer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.nets, "nets", opts.nets, "number of synthetic nets")
	cmd.Flags().IntVar(&opts.pinsPerNet, "pins-per-net", opts.pinsPerNet, "maximum fanout of synthetic nets")
	cmd.Flags().IntVar(&opts.iters, "iters", opts.iters, "forward+backward iterations to time")
	cmd.Flags().IntVar(&opts.threads, "threads", 0, "worker threads (0 = all cores)")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().Float64Var(&opts.invGamma, "inv-gamma", opts.invGamma, "smoothing sharpness")
	cmd.Flags().BoolVar(&opts.single, "float32", false, "compute in single precision")

	return cmd
}

func runBench(ctx context.Context, opts benchOpts) error {
	logger := loggerFromContext(ctx)

	s := RandomScenario(opts.nets, opts.pinsPerNet, 10000, opts.seed, true)
	nl, err := s.Netlist()
	if err != nil {
		return err
	}
	mask := nl.DegreeMask(2, 0)
	logger.Debugf("synthesized %d nets, %d pins, seed %d", nl.NumNets(), nl.NumPins(), opts.seed)

	pool := workerpool.New(opts.threads)
	defer pool.Close()
	logger.Infof("benchmarking %d iterations on %d workers", opts.iters, pool.NumWorkers())

	var forward, backward time.Duration
	if opts.single {
		pos64, weights64 := s.Pos(), s.Weights()
		pos := make([]float32, len(pos64))
		for i, v := range pos64 {
			pos[i] = float32(v)
		}
		weights := make([]float32, len(weights64))
		for i, v := range weights64 {
			weights[i] = float32(v)
		}
		forward, backward, err = benchLoop(pool, pos, nl, mask, weights, float32(opts.invGamma), opts.iters)
	} else {
		forward, backward, err = benchLoop(pool, s.Pos(), nl, mask, s.Weights(), opts.invGamma, opts.iters)
	}
	if err != nil {
		return err
	}

	perIter := (forward + backward) / time.Duration(opts.iters)
	netsPerSec := float64(nl.NumNets()) * float64(opts.iters) / (forward + backward).Seconds()

	fmt.Printf("forward:    %s total, %s/iter\n", forward.Round(time.Microsecond), (forward / time.Duration(opts.iters)).Round(time.Microsecond))
	fmt.Printf("backward:   %s total, %s/iter\n", backward.Round(time.Microsecond), (backward / time.Duration(opts.iters)).Round(time.Microsecond))
	fmt.Printf("combined:   %s/iter, %.3g nets/s\n", perIter.Round(time.Microsecond), netsPerSec)
	return nil
}

// benchLoop times iters forward+backward pairs at either precision.
func benchLoop[T wl.Floats](pool *workerpool.Pool, pos []T, nl *wl.Netlist, mask []bool, weights []T, invGamma T, iters int) (forward, backward time.Duration, err error) {
	for it := 0; it < iters; it++ {
		start := time.Now()
		_, gradInt, err := wl.Forward(pool, pos, nl, mask, weights, invGamma)
		if err != nil {
			return 0, 0, err
		}
		mid := time.Now()
		if _, err := wl.Backward(pool, 1, gradInt, nl, mask, weights); err != nil {
			return 0, 0, err
		}
		forward += mid.Sub(start)
		backward += time.Since(mid)
	}
	return forward, backward, nil
}
