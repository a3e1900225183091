package main

import (
	"context"
	"fmt"
	goimage "image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/edgepipe"
	"github.com/gogpu/edgepipe/internal/image"
)

type runOptions struct {
	width     int
	height    int
	mode      modeFlag
	threshold uint16
	noSmooth  bool
	lineGap   int
	workers   int
	outDir    string
	format    formatFlag
	mosaic    bool

	stdin io.Reader
}

// stdinPath names standard input as a frame argument.
const stdinPath = "-"

func newRunCmd() *cobra.Command {
	o := &runOptions{
		mode:   modeFlag{mode: edgepipe.ModeCombined},
		format: formatFlag{format: image.FormatPNG},
	}

	cmd := &cobra.Command{
		Use:   "run [flags] FRAME...",
		Short: "Compute edge maps for raw Bayer frames",
		Long: `Run loads each FRAME as a raw 12-bit Bayer plane, streams it through
the pipeline and writes the decimated edge map to --out-dir.

Gray images are taken as already mosaicked raw data. With --mosaic, color
images are resampled to the raw geometry and sampled through an RGGB
filter first.

A FRAME of "-" is read from standard input; its edge map is named
stdin_edges.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.stdin = cmd.InOrStdin()
			return o.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.width, "width", 0, "raw frame width (0: take from the first frame)")
	f.IntVar(&o.height, "height", 0, "raw frame height (0: take from the first frame)")
	f.Var(&o.mode, "mode", "magnitude mode: combined, gx or gy")
	f.Uint16Var(&o.threshold, "threshold", edgepipe.DefaultThreshold, "noise floor on the 0..4095 scale")
	f.BoolVar(&o.noSmooth, "no-smooth", false, "disable the horizontal [1 2 1] filter")
	f.IntVar(&o.lineGap, "line-gap", 0, "invalid steps inserted after each raw row")
	f.IntVar(&o.workers, "workers", 0, "frames processed concurrently (0: GOMAXPROCS)")
	f.StringVarP(&o.outDir, "out-dir", "o", ".", "directory for edge maps")
	f.Var(&o.format, "format", "edge map encoding: png, tiff or bmp")
	f.BoolVar(&o.mosaic, "mosaic", false, "sample color inputs through an RGGB filter")

	return cmd
}

func (o *runOptions) run(ctx context.Context, w io.Writer, paths []string) error {
	frames, err := o.load(ctx, paths)
	if err != nil {
		return err
	}

	width, height := o.width, o.height
	if width == 0 {
		width = frames[0].Width
	}
	if height == 0 {
		height = frames[0].Height
	}

	results, err := edgepipe.ProcessBatch(ctx, frames,
		edgepipe.WithGeometry(width, height),
		edgepipe.WithSmoothing(!o.noSmooth),
		edgepipe.WithMode(o.mode.mode),
		edgepipe.WithThreshold(o.threshold),
		edgepipe.WithLineGap(o.lineGap),
		edgepipe.WithWorkers(o.workers),
	)
	if err != nil {
		return err
	}

	outs := lo.Map(paths, func(p string, _ int) string { return o.outPath(p) })
	if err := o.save(ctx, outs, results); err != nil {
		return err
	}

	pr := message.NewPrinter(language.English)
	for i, r := range results {
		pr.Fprintf(w, "%s: %d of %d samples above threshold (%.1f%%), %d saturated\n",
			outs[i], r.Stats.Edges, r.Stats.ValidOut, 100*r.Stats.EdgeRatio(), r.Stats.Saturated)
	}
	total := lo.Reduce(results, func(acc edgepipe.Stats, r *edgepipe.Result, _ int) edgepipe.Stats {
		return acc.Add(r.Stats)
	}, edgepipe.Stats{})
	pr.Fprintf(w, "%d frames, %d steps, %d edges\n", len(results), total.Steps, total.Edges)

	return nil
}

func (o *runOptions) load(ctx context.Context, paths []string) ([]*edgepipe.Frame, error) {
	frames := make([]*edgepipe.Frame, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := o.loadFrame(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			frames[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

func (o *runOptions) loadFrame(path string) (*edgepipe.Frame, error) {
	img, err := o.decode(path)
	if err != nil {
		return nil, err
	}
	if !o.mosaic {
		return image.FromImage(img), nil
	}

	w, h := o.width, o.height
	if w == 0 {
		w = img.Bounds().Dx() &^ 1
	}
	if h == 0 {
		h = img.Bounds().Dy() &^ 1
	}
	return image.Mosaic(img, w, h)
}

func (o *runOptions) decode(path string) (goimage.Image, error) {
	if path != stdinPath {
		return image.Load(path)
	}
	data, err := io.ReadAll(o.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return image.DecodeBytes(data)
}

func (o *runOptions) save(ctx context.Context, outs []string, results []*edgepipe.Result) error {
	if err := os.MkdirAll(o.outDir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	if o.workers > 0 {
		g.SetLimit(o.workers)
	}
	for i, out := range outs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := image.Save(out, results[i].Edges); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// outPath maps an input path to its edge map path: dir/name_edges.ext.
func (o *runOptions) outPath(in string) string {
	if in == stdinPath {
		in = "stdin"
	}
	base := filepath.Base(in)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(o.outDir, name+"_edges"+o.format.format.Ext())
}
