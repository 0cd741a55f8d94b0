// Command wlbench evaluates and benchmarks the go-wirelength placement
// kernels. See internal/cli for the command tree.
package main

import (
	"os"

	"github.com/ajroetker/go-wirelength/internal/cli"
)

// Version information injected at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
