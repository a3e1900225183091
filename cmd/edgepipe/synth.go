package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/edgepipe/internal/image"
)

func newSynthCmd() *cobra.Command {
	var (
		pattern string
		width   int
		height  int
		low     uint16
		high    uint16
	)

	cmd := &cobra.Command{
		Use:   "synth [flags] OUT",
		Short: "Write a synthetic raw Bayer test frame",
		Long: `Synth writes a raw 12-bit frame for exercising the pipeline.

Patterns:
  uniform  every sample at --high
  vstep    left half --low, right half --high
  hstep    top half --low, bottom half --high`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p   *image.Plane
				err error
			)
			switch pattern {
			case "uniform":
				p, err = image.Uniform(width, height, high)
			case "vstep":
				p, err = image.VerticalStep(width, height, low, high)
			case "hstep":
				p, err = image.HorizontalStep(width, height, low, high)
			default:
				return fmt.Errorf("unknown pattern %q", pattern)
			}
			if err != nil {
				return err
			}
			if err := image.Save(args[0], p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %dx%d\n", args[0], pattern, width, height)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&pattern, "pattern", "vstep", "uniform, vstep or hstep")
	f.IntVar(&width, "width", 64, "raw frame width")
	f.IntVar(&height, "height", 48, "raw frame height")
	f.Uint16Var(&low, "low", 0, "dark level")
	f.Uint16Var(&high, "high", 255, "bright level")

	return cmd
}
