package edgepipe

import (
	"context"
	"fmt"

	"github.com/gogpu/edgepipe/internal/parallel"
)

// ProcessBatch runs every frame through its own pipeline built from opts.
// Frames are distributed over a worker pool sized by WithWorkers. Results
// are returned in input order. The first failing frame, in input order,
// determines the returned error.
func ProcessBatch(ctx context.Context, frames []*Frame, opts ...Option) ([]*Result, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, nil
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	results := make([]*Result, len(frames))
	errs := make([]error, len(frames))

	pool.Run(len(frames), func(i int) {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			return
		}
		p, err := New(opts...)
		if err != nil {
			errs[i] = err
			return
		}
		results[i], errs[i] = p.ProcessFrame(ctx, frames[i])
	})

	var total Stats
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("edgepipe: frame %d: %w", i, err)
		}
		total = total.Add(results[i].Stats)
	}

	Logger().Info("edgepipe: batch processed",
		"frames", len(frames),
		"workers", pool.Workers(),
		"edges", total.Edges,
		"saturated", total.Saturated)

	return results, nil
}
