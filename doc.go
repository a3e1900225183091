// Package edgepipe converts a raw Bayer pixel stream into an edge-magnitude
// stream, one sample per step, with a fixed latency per stage.
//
// # Overview
//
// edgepipe is a step-accurate model of a streaming edge detector. Every
// stage is a set of registers clocked in lock step: for each step all stages
// read the registers committed at the end of the previous step, then all
// commit together. The model is meant to be run sample by sample against a
// hardware implementation, or frame by frame as an image filter.
//
// # Quick Start
//
//	import "github.com/gogpu/edgepipe"
//
//	p, err := edgepipe.New(edgepipe.WithGeometry(1280, 960))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Stream samples yourself...
//	out := p.Step(edgepipe.Input{Sample: v, Valid: true, X: x, Y: y})
//
//	// ...or hand over a whole frame.
//	res, err := p.ProcessFrame(ctx, frame)
//
// # Architecture
//
// The stages, in order:
//   - raw row tap: one-row circular delay line over the Bayer stream
//   - Bayer: 2x2 block average with 2x2 decimation, emitted at odd (x, y)
//   - smoothing: [1 2 1]/4 horizontal noise filter, optional
//   - grayscale row tap: two-row cascade giving three aligned rows
//   - convolution: 3x3 horizontal and vertical gradient kernels
//   - magnitude: |Gx|+|Gy|, |Gx| or |Gy|, divided by 4, saturated to
//     12 bits, with values below the noise floor forced to zero
//
// Internal packages:
//   - internal/fixed: bit-width-bounded sample types and saturating helpers
//   - internal/rowtap: circular row delay lines
//   - internal/stage: per-stage register models
//   - internal/image: frame planes and PNG/TIFF/BMP I/O
//   - internal/parallel: worker pool for frame batches
//
// # Timing
//
// Each stage declares its latency. At construction the pipeline drives a
// single valid sample through a fresh copy of every stage and rejects the
// configuration unless the sample's data and its valid flag both reach the
// stage output after exactly that many steps. The output returned by Step
// at step t+Latency() belongs to the input of step t. Only inputs at odd
// raw coordinates close a 2x2 block, so the output carries one valid sample
// per four valid inputs.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the raw frame
//   - X increases right, Y increases down
//   - The Bayer phase is RGGB: (even, even) is red
package edgepipe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
