package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/edgepipe"
)

func newLatencyCmd() *cobra.Command {
	var (
		noSmooth  bool
		threshold uint16
	)

	cmd := &cobra.Command{
		Use:   "latency",
		Short: "Print the per-stage latency table and noise floor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := edgepipe.New(
				edgepipe.WithSmoothing(!noSmooth),
				edgepipe.WithThreshold(threshold),
			)
			if err != nil {
				return err
			}

			title := cases.Title(language.English)
			pr := message.NewPrinter(language.English)
			w := cmd.OutOrStdout()
			for _, s := range p.Stages() {
				pr.Fprintf(w, "%-14s %2d\n", title.String(s.Name), s.Latency)
			}
			pr.Fprintf(w, "%-14s %2d\n", "Total", p.Latency())
			pr.Fprintf(w, "%-14s %d\n", "Threshold", p.Threshold())
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&noSmooth, "no-smooth", false, "disable the smoothing filter")
	f.Uint16Var(&threshold, "threshold", edgepipe.DefaultThreshold, "noise floor on the 0..4095 scale")

	return cmd
}
