package edgepipe

import (
	"fmt"

	"github.com/gogpu/edgepipe/internal/fixed"
	"github.com/gogpu/edgepipe/internal/rowtap"
	"github.com/gogpu/edgepipe/internal/stage"
)

// Mode selects the gradient components combined by the magnitude stage.
type Mode = stage.Mode

// Magnitude modes.
const (
	ModeCombined = stage.ModeCombined
	ModeGx       = stage.ModeGx
	ModeGy       = stage.ModeGy
)

// ParseMode parses "combined", "gx" or "gy".
func ParseMode(s string) (Mode, error) {
	return stage.ParseMode(s)
}

// Input is one step of pipeline input.
type Input struct {
	// Sample is a raw 12-bit Bayer sample. Bits above 12 are dropped.
	Sample uint16

	// Valid marks Sample, X and Y as meaningful this step.
	Valid bool

	// X, Y is the raw coordinate of Sample.
	X, Y int

	// Mode selects the magnitude combination for this step.
	Mode Mode
}

// Output is one step of pipeline output.
type Output struct {
	// Sample is a 12-bit edge magnitude; undefined when Valid is false.
	Sample uint16
	Valid  bool
}

// StageInfo describes one clocked component of the pipeline.
type StageInfo struct {
	Name    string
	Latency int
}

// coord is the coordinate register that travels beside the raw row tap so
// the Bayer stage sees (x, y) aligned with the tap outputs.
type coord struct {
	x, y int
}

// Pipeline is the Bayer-to-edge pipeline: a raw row tap, Bayer decimation,
// horizontal smoothing, a two-row grayscale tap, 3x3 gradient convolution
// and gradient magnitude, in series.
//
// Step advances every stage by one lock-step: all stage inputs are taken
// from the output registers committed at the end of the previous step, then
// every stage commits. No stage sees another stage's same-step update.
//
// A Pipeline is not safe for concurrent use. Independent pipelines share
// nothing and may run in parallel.
type Pipeline struct {
	opts options

	rawTap  *rowtap.Buffer
	coord   coord
	bayer   *stage.Bayer
	smooth  *stage.Smoother
	grayTap *rowtap.Buffer
	conv    *stage.Conv
	mag     *stage.Magnitude
	magSat  bool

	stats Stats
}

// New creates a Pipeline. All state is allocated here; Step does not
// allocate.
func New(opts ...Option) (*Pipeline, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	rawTap, err := rowtap.New(o.rawWidth, 1)
	if err != nil {
		return nil, fmt.Errorf("edgepipe: raw row tap: %w", err)
	}
	grayTap, err := rowtap.New(o.rawWidth/2, 2)
	if err != nil {
		return nil, fmt.Errorf("edgepipe: grayscale row tap: %w", err)
	}

	p := &Pipeline{
		opts:    o,
		rawTap:  rawTap,
		bayer:   stage.NewBayer(),
		smooth:  stage.NewSmoother(o.smoothing),
		grayTap: grayTap,
		conv:    stage.NewConv(),
		mag:     stage.NewMagnitude(fixed.Pixel(o.threshold)),
	}

	if err := checkTiming(p.timeline()); err != nil {
		return nil, err
	}

	Logger().Debug("edgepipe: pipeline created",
		"raw_width", o.rawWidth,
		"raw_height", o.rawHeight,
		"smoothing", o.smoothing,
		"threshold", o.threshold,
		"gray_taps", grayTap.Depth(),
		"latency", p.Latency())

	return p, nil
}

// timed pairs a component with its declared latency.
type timed struct {
	name     string
	timing   stage.Timing
	declared int
}

func (p *Pipeline) timeline() []timed {
	return []timed{
		{"raw row tap", p.rawTap, rowtap.Latency},
		{"bayer", p.bayer, stage.BayerLatency},
		{"smooth", p.smooth, stage.SmoothLatency},
		{"gray row tap", p.grayTap, rowtap.Latency},
		{"conv", p.conv, stage.ConvLatency},
		{"magnitude", p.mag, stage.MagnitudeLatency},
	}
}

// checkTiming drives an impulse through a fresh copy of every stage and
// fails unless its data and its valid flag both arrive after exactly the
// declared latency.
func checkTiming(tl []timed) error {
	for _, s := range tl {
		data, valid := s.timing.Measure()
		if data != s.declared || valid != s.declared {
			return fmt.Errorf("%w: %s delivers data after %d steps and valid after %d, declared %d",
				ErrLatencyMismatch, s.name, data, valid, s.declared)
		}
	}
	return nil
}

// Stages returns the clocked components in pipeline order.
func (p *Pipeline) Stages() []StageInfo {
	tl := p.timeline()
	info := make([]StageInfo, len(tl))
	for i, s := range tl {
		info[i] = StageInfo{Name: s.name, Latency: s.declared}
	}
	return info
}

// Latency returns the number of steps between an input sample and the
// output it produces: the output returned by Step at step t+Latency()
// belongs to the input of step t.
//
// The total is 11. It includes the output register of the two-row
// grayscale tap cascade, which sits between the smoother and the
// convolution window; a count that leaves that register out gives 10.
func (p *Pipeline) Latency() int {
	n := 0
	for _, s := range p.timeline() {
		n += s.declared
	}
	return n
}

// RawWidth returns the raw row width.
func (p *Pipeline) RawWidth() int { return p.opts.rawWidth }

// Threshold returns the noise floor applied by the magnitude stage.
func (p *Pipeline) Threshold() uint16 { return uint16(p.mag.Threshold()) }

// RawHeight returns the raw frame height.
func (p *Pipeline) RawHeight() int { return p.opts.rawHeight }

// Mode returns the magnitude mode the frame driver uses.
func (p *Pipeline) Mode() Mode { return p.opts.mode }

// Step advances the pipeline by one step with in and returns the output
// register as it stood at the start of the step.
func (p *Pipeline) Step(in Input) Output {
	// Snapshot: every register as committed at the end of the last step.
	raw := p.rawTap.Out()
	xy := p.coord
	gray := p.bayer.Out()
	smooth := p.smooth.Out()
	col := p.grayTap.Out()
	grad := p.conv.Out()
	out := p.mag.Out()
	sat := p.magSat

	// Commit.
	p.rawTap.Advance(fixed.Trunc(in.Sample), in.Valid)
	p.coord = coord{x: in.X, y: in.Y}
	p.bayer.Step(stage.BayerIn{Cur: raw.Cur, Prev: raw.Up1, Valid: raw.Valid, X: xy.x, Y: xy.y})
	p.smooth.Step(gray)
	p.grayTap.Advance(smooth.Data, smooth.Valid)
	p.conv.Step(stage.Column{Rows: [3]fixed.Pixel{col.Cur, col.Up1, col.Up2}, Valid: col.Valid})
	p.mag.Step(grad, in.Mode)
	p.magSat = p.mag.Saturated()

	p.stats.Steps++
	if in.Valid {
		p.stats.ValidIn++
	}
	if out.Valid {
		p.stats.ValidOut++
		if out.Data != 0 {
			p.stats.Edges++
		}
		if sat {
			p.stats.Saturated++
		}
	}

	return Output{Sample: uint16(out.Data), Valid: out.Valid}
}

// Reset forces every register, ring slot and cursor to zero and clears the
// statistics. It takes effect immediately, independent of the step phase.
func (p *Pipeline) Reset() {
	p.rawTap.Reset()
	p.coord = coord{}
	p.bayer.Reset()
	p.smooth.Reset()
	p.grayTap.Reset()
	p.conv.Reset()
	p.mag.Reset()
	p.magSat = false
	p.stats = Stats{}

	Logger().Debug("edgepipe: pipeline reset")
}

// Stats returns the counters accumulated since the last Reset.
func (p *Pipeline) Stats() Stats {
	return p.stats
}
