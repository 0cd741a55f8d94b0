package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	nets       int
	pinsPerNet int
	extent     float64
	seed       int64
	weighted   bool
	output     string
}

func newGenCmd() *cobra.Command {
	opts := genOpts{nets: 1000, pinsPerNet: 8, extent: 10000, seed: 1, output: "scenario.toml"}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random placement scenario file",
		Long:  `Generate a seeded random scenario TOML for eval: nets of bounded fanout, every pin on exactly one net, coordinates uniform over the placement extent.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.nets, "nets", opts.nets, "number of nets")
	cmd.Flags().IntVar(&opts.pinsPerNet, "pins-per-net", opts.pinsPerNet, "maximum fanout")
	cmd.Flags().Float64Var(&opts.extent, "extent", opts.extent, "placement extent")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().BoolVar(&opts.weighted, "weighted", false, "assign random net weights")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file path")

	return cmd
}

func runGen(ctx context.Context, opts genOpts) error {
	logger := loggerFromContext(ctx)

	s := RandomScenario(opts.nets, opts.pinsPerNet, opts.extent, opts.seed, opts.weighted)
	if err := s.Save(opts.output); err != nil {
		return err
	}

	logger.Infof("wrote %s: %d nets, %d pins", opts.output, len(s.Nets), len(s.Placement.X))
	return nil
}
