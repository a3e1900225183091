package edgepipe

import (
	"context"
	"fmt"

	"github.com/gogpu/edgepipe/internal/image"
)

// Frame is a raw Bayer frame or an edge map: a row-major plane of 12-bit
// samples.
type Frame = image.Plane

// NewFrame allocates a zeroed frame.
func NewFrame(width, height int) (*Frame, error) {
	return image.NewPlane(width, height)
}

// Result is the output of one processed frame.
type Result struct {
	// Edges is the (W/2)x(H/2) edge magnitude map in raster order.
	Edges *Frame

	// Stats are the pipeline counters for this frame.
	Stats Stats
}

// ProcessFrame resets the pipeline, streams f through it in raster order and
// collects the decimated edge map.
//
// Each raw row is followed by the configured line gap of invalid steps, and
// the stream is drained with Latency() invalid steps so the last sample
// reaches the output. The mode set with WithMode is applied on every step.
//
// The map carries the pipeline's frame-edge warm-up values. The row taps
// start from zero after reset, so edges appear in the first two rows and at
// the start of the third row even for a flat frame. The window and the
// smoothing filter run straight across row boundaries, so the first samples
// of every row mix in the end of the previous row.
func (p *Pipeline) ProcessFrame(ctx context.Context, f *Frame) (*Result, error) {
	if f == nil {
		return nil, ErrNilFrame
	}
	w, h := p.opts.rawWidth, p.opts.rawHeight
	if f.Width != w || f.Height != h || len(f.Pix) != w*h {
		return nil, fmt.Errorf("%w: frame %dx%d, pipeline %dx%d", ErrFrameSize, f.Width, f.Height, w, h)
	}

	p.Reset()

	edges, err := image.NewPlane(w/2, h/2)
	if err != nil {
		return nil, fmt.Errorf("edgepipe: allocate edge map: %w", err)
	}

	mode := p.opts.mode
	n := 0
	collect := func(o Output) {
		if !o.Valid {
			return
		}
		if n < len(edges.Pix) {
			edges.Pix[n] = o.Sample
		}
		n++
	}

	for y := range h {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("edgepipe: process frame: %w", err)
		}
		for x, v := range f.Row(y) {
			collect(p.Step(Input{Sample: v, Valid: true, X: x, Y: y, Mode: mode}))
		}
		for range p.opts.lineGap {
			collect(p.Step(Input{Mode: mode}))
		}
	}
	for range p.Latency() {
		collect(p.Step(Input{Mode: mode}))
	}

	if n != len(edges.Pix) {
		Logger().Warn("edgepipe: output sample count mismatch", "got", n, "want", len(edges.Pix))
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSampleCount, n, len(edges.Pix))
	}

	st := p.Stats()
	Logger().Debug("edgepipe: frame processed",
		"steps", st.Steps,
		"valid_in", st.ValidIn,
		"valid_out", st.ValidOut,
		"edges", st.Edges,
		"saturated", st.Saturated)

	return &Result{Edges: edges, Stats: st}, nil
}
