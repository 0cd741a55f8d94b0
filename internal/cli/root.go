package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the wlbench CLI and returns an error if any command fails.
//
// Logging goes to stderr at info level, or debug level with --verbose (-v);
// the logger is attached to the command context and retrieved by commands
// via loggerFromContext. Results are printed to stdout.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "wlbench",
		Short:        "wlbench evaluates and benchmarks placement wirelength kernels",
		Long:         `wlbench drives the go-wirelength placement kernels: it evaluates the half-perimeter and weighted-average wirelength of placement scenarios, times the parallel forward/backward kernels on synthetic netlists, and generates scenario files.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("wlbench %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newGenCmd())

	return root.ExecuteContext(context.Background())
}
