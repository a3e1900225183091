// Package stage implements the per-stage register models of the edge
// pipeline: Bayer decimation, horizontal smoothing, 3x3 gradient convolution
// and gradient magnitude.
//
// Every stage follows the same clocking contract. Step takes the inputs
// visible during the current step, computes the next value of every
// register from the values committed at the end of the previous step, then
// commits them together and returns the new output register. Out returns the
// committed output register without clocking. Reset zeroes everything.
//
// Registers on a valid path always shift. Data registers either shift with
// their valid path (alignment registers) or hold on invalid steps (state
// registers and output registers); each stage documents which is which.
package stage

import "github.com/gogpu/edgepipe/internal/fixed"

// Declared stage latencies, in steps from input to visible output.
const (
	// BayerLatency covers the input register, the average register, the
	// margin registers and the gated output register.
	BayerLatency = 2 + BayerMargin + 1

	// SmoothLatency is the single registered filter output.
	SmoothLatency = 1

	// ConvLatency covers the window shift register and the kernel output
	// register.
	ConvLatency = 2

	// MagnitudeLatency is the single registered magnitude output.
	MagnitudeLatency = 1
)

// Sample is a pixel with its valid flag for one step.
type Sample struct {
	Data  fixed.Pixel
	Valid bool
}

// Timing is implemented by every clocked component of the pipeline so the
// composer can check at construction that data and valid flag arrive
// together after the declared latency.
type Timing interface {
	// Measure drives one valid impulse through a fresh copy of the
	// component and reports after how many steps the impulse's data and its
	// valid flag first reach the output register. A path the impulse never
	// leaves reports -1.
	Measure() (data, valid int)
}

// MaxImpulseSteps bounds the clocking done by MeasureImpulse.
const MaxImpulseSteps = 16

// impulse is the sample value driven by Measure. Stages start from zeroed
// registers, so any nonzero output data came from the impulse.
const impulse = fixed.PixelMax

// MeasureImpulse calls step for i = 0, 1, ... until the impulse's data and
// its valid flag have both been seen, or MaxImpulseSteps is reached. step
// must feed the impulse at i == 0 and idle input afterwards, and report
// whether the output register it returns carries the impulse's data and
// whether it is valid. An impulse first seen on step i has latency i+1.
func MeasureImpulse(step func(i int) (data, valid bool)) (dataAt, validAt int) {
	dataAt, validAt = -1, -1
	for i := 0; i < MaxImpulseSteps && (dataAt < 0 || validAt < 0); i++ {
		d, v := step(i)
		if d && dataAt < 0 {
			dataAt = i + 1
		}
		if v && validAt < 0 {
			validAt = i + 1
		}
	}
	return dataAt, validAt
}
