package edgepipe

import (
	"fmt"

	"github.com/gogpu/edgepipe/internal/fixed"
	"github.com/gogpu/edgepipe/internal/stage"
)

// Default configuration values.
const (
	// DefaultRawWidth is the raw Bayer row width in samples.
	DefaultRawWidth = 1280

	// DefaultRawHeight is the raw Bayer frame height in rows.
	DefaultRawHeight = 960

	// DefaultThreshold is the noise floor on the 0..4095 output scale.
	DefaultThreshold = uint16(stage.DefaultThreshold)
)

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default 1280x960 pipeline with smoothing and combined magnitude
//	p, err := edgepipe.New()
//
//	// Small test geometry, smoothing off, horizontal gradient only
//	p, err := edgepipe.New(
//	    edgepipe.WithGeometry(64, 48),
//	    edgepipe.WithSmoothing(false),
//	    edgepipe.WithMode(edgepipe.ModeGx),
//	)
type Option func(*options)

// options holds the configuration fixed at construction.
type options struct {
	rawWidth  int
	rawHeight int
	smoothing bool
	mode      Mode
	threshold uint16
	lineGap   int
	workers   int
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		rawWidth:  DefaultRawWidth,
		rawHeight: DefaultRawHeight,
		smoothing: true,
		mode:      ModeCombined,
		threshold: DefaultThreshold,
	}
}

// resolveOptions applies opts over the defaults and validates the result.
func resolveOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o, o.validate()
}

func (o options) validate() error {
	if o.rawWidth <= 0 || o.rawHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrGeometry, o.rawWidth, o.rawHeight)
	}
	if o.rawWidth%2 != 0 || o.rawHeight%2 != 0 {
		return fmt.Errorf("%w: %dx%d is not a whole number of 2x2 blocks", ErrGeometry, o.rawWidth, o.rawHeight)
	}
	if o.threshold > uint16(fixed.PixelMax) {
		return fmt.Errorf("%w: %d > %d", ErrThreshold, o.threshold, fixed.PixelMax)
	}
	if o.lineGap < 0 {
		return fmt.Errorf("%w: %d", ErrLineGap, o.lineGap)
	}
	return nil
}

// WithGeometry sets the raw Bayer frame size. Both dimensions must be even
// and positive. The grayscale rows are rawWidth/2 samples wide.
func WithGeometry(rawWidth, rawHeight int) Option {
	return func(o *options) {
		o.rawWidth = rawWidth
		o.rawHeight = rawHeight
	}
}

// WithSmoothing enables or disables the horizontal [1 2 1] noise filter.
// Disabling it keeps the stage latency unchanged.
func WithSmoothing(enabled bool) Option {
	return func(o *options) {
		o.smoothing = enabled
	}
}

// WithMode sets the magnitude mode used by the frame driver.
// Callers of Step pass the mode per step in Input.Mode.
func WithMode(m Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// WithThreshold sets the noise floor. Output magnitudes strictly below it
// are forced to zero.
func WithThreshold(t uint16) Option {
	return func(o *options) {
		o.threshold = t
	}
}

// WithLineGap makes the frame driver insert n invalid steps after every raw
// row. Gaps exercise the validity gating; they do not change the output.
func WithLineGap(n int) Option {
	return func(o *options) {
		o.lineGap = n
	}
}

// WithWorkers sets the number of frames ProcessBatch runs concurrently.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
