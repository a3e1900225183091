package stage

import "github.com/gogpu/edgepipe/internal/fixed"

// BayerMargin is the number of extra registers after the 2x2 average,
// added for downstream timing margin. The coordinate/valid path carries the
// same number of extra registers.
const BayerMargin = 2

// BayerIn is one step of input to the Bayer stage: the current-row and
// previous-row samples of the same raw column, with the raw coordinate of
// the current-row sample.
type BayerIn struct {
	Cur   fixed.Pixel
	Prev  fixed.Pixel
	Valid bool
	X, Y  int
}

// bayerCtrl is one entry of the coordinate/valid alignment path.
type bayerCtrl struct {
	valid bool
	x, y  int
}

// emit reports whether this entry closes a 2x2 block: both coordinates odd
// and the sample valid.
func (c bayerCtrl) emit() bool {
	return c.valid && c.x&1 == 1 && c.y&1 == 1
}

// Bayer averages each 2x2 Bayer block into one grayscale sample, decimating
// a WxH raw stream into a (W/2)x(H/2) grayscale stream.
//
// PIPELINE STRUCTURE:
//
//	in       input register (samples, valid, x, y)         shifts every step
//	data[0]  (colPrev + Prev + colCur + Cur) >> 2          shifts every step
//	data[1:] margin registers                              shift every step
//	out      gated output                                  holds unless emitting
//
// The ctrl array shadows data one-for-one so the emitted valid flag lines up
// with the emitted average. colCur and colPrev are the previous-column
// copies, captured only on valid steps.
//
// In the first raw row and column of a frame the previous-row and
// previous-column values are whatever reset left behind (zero). Averages
// formed there are defined but visually wrong; they are not corrected.
type Bayer struct {
	in      BayerIn
	colCur  fixed.Pixel
	colPrev fixed.Pixel
	data    [1 + BayerMargin]fixed.Pixel
	ctrl    [1 + BayerMargin]bayerCtrl
	out     Sample
}

// NewBayer returns a Bayer stage in its reset state.
func NewBayer() *Bayer {
	return &Bayer{}
}

// Step clocks the stage once with in.
func (b *Bayer) Step(in BayerIn) Sample {
	r := b.in
	last := len(b.data) - 1

	// Next-state values, all from committed state.
	avg := fixed.Avg4(b.colPrev, r.Prev, b.colCur, r.Cur)
	tail, tailCtrl := b.data[last], b.ctrl[last]

	// Commit.
	if tailCtrl.emit() {
		b.out = Sample{Data: tail, Valid: true}
	} else {
		b.out.Valid = false
	}
	copy(b.data[1:], b.data[:last])
	copy(b.ctrl[1:], b.ctrl[:last])
	b.data[0] = avg
	b.ctrl[0] = bayerCtrl{valid: r.Valid, x: r.X, y: r.Y}
	if r.Valid {
		b.colCur, b.colPrev = r.Cur, r.Prev
	}
	b.in = in

	return b.out
}

// Out returns the committed output register.
func (b *Bayer) Out() Sample { return b.out }

// Reset zeroes every register.
func (b *Bayer) Reset() { *b = Bayer{} }

// Measure drives a valid sample at (1, 1), the first coordinate that
// closes a block, through a fresh Bayer stage.
func (*Bayer) Measure() (data, valid int) {
	fresh := NewBayer()
	return MeasureImpulse(func(i int) (bool, bool) {
		var in BayerIn
		if i == 0 {
			in = BayerIn{Cur: impulse, Prev: impulse, Valid: true, X: 1, Y: 1}
		}
		out := fresh.Step(in)
		return out.Data != 0, out.Valid
	})
}
