package stage

import "github.com/gogpu/edgepipe/internal/fixed"

// Smoother is a 3-tap [1 2 1]/4 low-pass filter along the grayscale row.
//
// For consecutive valid samples N-2, N-1, N the output is
// (N-2 + 2*(N-1) + N) >> 2. The delay line holds on invalid steps, so gaps
// in the stream do not feed stale values into the filter. The output
// register updates only on valid steps; its valid flag is the input valid
// delayed by one step.
//
// A disabled Smoother keeps the same register and latency but passes the
// sample through unfiltered.
type Smoother struct {
	enabled bool
	d1, d2  fixed.Pixel
	out     Sample
}

// NewSmoother returns a Smoother in its reset state.
func NewSmoother(enabled bool) *Smoother {
	return &Smoother{enabled: enabled}
}

// Step clocks the filter once with in.
func (s *Smoother) Step(in Sample) Sample {
	if !in.Valid {
		s.out.Valid = false
		return s.out
	}

	v := in.Data
	if s.enabled {
		v = fixed.Avg121(s.d2, s.d1, in.Data)
	}
	s.d2, s.d1 = s.d1, in.Data
	s.out = Sample{Data: v, Valid: true}
	return s.out
}

// Out returns the committed output register.
func (s *Smoother) Out() Sample { return s.out }

// Enabled reports whether filtering is applied.
func (s *Smoother) Enabled() bool { return s.enabled }

// Reset zeroes the delay line and the output register.
func (s *Smoother) Reset() {
	s.d1, s.d2 = 0, 0
	s.out = Sample{}
}

// Measure drives one valid sample through a fresh Smoother with the same
// enable setting.
func (s *Smoother) Measure() (data, valid int) {
	fresh := NewSmoother(s.enabled)
	return MeasureImpulse(func(i int) (bool, bool) {
		out := fresh.Step(Sample{Data: impulse, Valid: i == 0})
		return out.Data != 0, out.Valid
	})
}
