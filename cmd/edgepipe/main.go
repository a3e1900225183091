// Command edgepipe runs raw Bayer frames through the edge pipeline.
//
// Usage:
//
//	edgepipe synth --pattern vstep --width 64 --height 48 step.png
//	edgepipe run --out-dir edges step.png
//	edgepipe latency
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/edgepipe"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "edgepipe",
		Short:        "Bayer to edge magnitude pipeline",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				edgepipe.SetLogger(slog.New(h))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline events to stderr")

	root.AddCommand(newRunCmd(), newSynthCmd(), newLatencyCmd())
	return root
}
