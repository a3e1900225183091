package stage

import (
	"fmt"

	"github.com/gogpu/edgepipe/internal/fixed"
)

// Mode selects which gradient components the magnitude stage combines.
// It is a 2-bit selector; the two codes that are not Gx-only or Gy-only
// both select the combined magnitude.
type Mode uint8

const (
	// ModeCombined outputs |Gx| + |Gy|.
	ModeCombined Mode = 0b00

	// ModeGx outputs |Gx|.
	ModeGx Mode = 0b01

	// ModeGy outputs |Gy|.
	ModeGy Mode = 0b10

	// modeReserved is the unused code; it behaves as ModeCombined.
	modeReserved Mode = 0b11
)

// DefaultThreshold is the noise floor on the 0..4095 output scale.
const DefaultThreshold fixed.Pixel = 60

// MagnitudeShift is the right shift applied before saturation.
const MagnitudeShift = 2

// String returns the mode name.
func (m Mode) String() string {
	switch m & 0b11 {
	case ModeGx:
		return "gx"
	case ModeGy:
		return "gy"
	case modeReserved:
		return "combined(11)"
	default:
		return "combined"
	}
}

// ParseMode parses a mode name as accepted on the command line.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "combined", "both", "":
		return ModeCombined, nil
	case "gx", "x":
		return ModeGx, nil
	case "gy", "y":
		return ModeGy, nil
	}
	return 0, fmt.Errorf("stage: unknown magnitude mode %q", s)
}

// Scale computes the scaled, saturated and noise-suppressed magnitude of
// one gradient pair. The second result reports saturation.
func Scale(gx, gy fixed.Grad, mode Mode, floor fixed.Pixel) (fixed.Pixel, bool) {
	var m fixed.Mag
	switch mode & 0b11 {
	case ModeGx:
		m = fixed.Abs(gx)
	case ModeGy:
		m = fixed.Abs(gy)
	default:
		m = fixed.AddMag(fixed.Abs(gx), fixed.Abs(gy))
	}

	v, sat := fixed.ShiftSat(m, MagnitudeShift)
	return fixed.Suppress(v, floor), sat
}

// Magnitude converts a gradient pair into a 12-bit edge strength.
//
// The output register updates, and its valid flag is set, exactly on steps
// where the input is valid. On other steps the data holds and valid drops.
type Magnitude struct {
	floor     fixed.Pixel
	out       Sample
	saturated bool
}

// NewMagnitude returns a Magnitude stage with the given noise floor.
func NewMagnitude(floor fixed.Pixel) *Magnitude {
	return &Magnitude{floor: floor}
}

// Step clocks the stage once with in, using mode for this step.
func (m *Magnitude) Step(in Gradient, mode Mode) Sample {
	if !in.Valid {
		m.out.Valid = false
		m.saturated = false
		return m.out
	}

	v, sat := Scale(in.Gx, in.Gy, mode, m.floor)
	m.out = Sample{Data: v, Valid: true}
	m.saturated = sat
	return m.out
}

// Out returns the committed output register.
func (m *Magnitude) Out() Sample { return m.out }

// Saturated reports whether the most recent valid update saturated.
func (m *Magnitude) Saturated() bool { return m.saturated }

// Threshold returns the noise floor.
func (m *Magnitude) Threshold() fixed.Pixel { return m.floor }

// Reset zeroes the output register.
func (m *Magnitude) Reset() {
	m.out = Sample{}
	m.saturated = false
}

// Measure drives one valid gradient through a fresh Magnitude stage with no
// noise floor.
func (*Magnitude) Measure() (data, valid int) {
	fresh := NewMagnitude(0)
	return MeasureImpulse(func(i int) (bool, bool) {
		var in Gradient
		if i == 0 {
			in = Gradient{Gx: fixed.Signed(impulse), Valid: true}
		}
		out := fresh.Step(in, ModeCombined)
		return out.Data != 0, out.Valid
	})
}
