// hexmaze generates hexagonal mazes with a tunable tracer/Kruskal blend.
//
// Usage:
//
//	hexmaze generate [--config=<yaml>] [--width=24 --height=16] [--threshold=0.5] [--seed=N] [--count=N] [-f svg|dot|text] [-o path]
//	hexmaze stats    [--config=<yaml>] [--steps=5] [--seed=N]
//	hexmaze version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "hexmaze",
		Short: "Generate hexagonal mazes",
		Long: "hexmaze carves mazes into hexagonal grids by blending a corridor-growing\n" +
			"tracer walk with a randomized Kruskal pass. --threshold picks the blend:\n" +
			"0 favours long winding corridors, 1 favours short branches.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
	root.Version = version

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
