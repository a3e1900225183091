package stage

import "github.com/gogpu/edgepipe/internal/fixed"

// Column is one column of three vertically adjacent samples: Rows[0] is the
// newest row, Rows[2] the oldest.
type Column struct {
	Rows  [3]fixed.Pixel
	Valid bool
}

// Gradient is a registered pair of kernel outputs.
type Gradient struct {
	Gx, Gy fixed.Grad
	Valid  bool
}

// Conv forms a 3x3 window from three row taps and applies the horizontal
// and vertical gradient kernels.
//
// cols[0] is the newest column, cols[1] one column back, cols[2] two columns
// back. The column registers shift together, only on valid steps. validD is
// the free-running valid delay that tracks the window shift; the kernel
// outputs register only when validD is set and otherwise hold.
//
// With the oldest row on top, the window is
//
//	cols[2].Rows[2]  cols[1].Rows[2]  cols[0].Rows[2]
//	cols[2].Rows[1]  cols[1].Rows[1]  cols[0].Rows[1]
//	cols[2].Rows[0]  cols[1].Rows[0]  cols[0].Rows[0]
type Conv struct {
	cols   [3][3]fixed.Pixel
	validD bool
	out    Gradient
}

// NewConv returns a Conv stage in its reset state.
func NewConv() *Conv {
	return &Conv{}
}

// Step clocks the stage once with in.
func (c *Conv) Step(in Column) Gradient {
	if c.validD {
		gx, gy := Kernels(c.cols)
		c.out = Gradient{Gx: gx, Gy: gy, Valid: true}
	} else {
		c.out.Valid = false
	}

	if in.Valid {
		c.cols[2], c.cols[1], c.cols[0] = c.cols[1], c.cols[0], in.Rows
	}
	c.validD = in.Valid

	return c.out
}

// Out returns the committed output register.
func (c *Conv) Out() Gradient { return c.out }

// Reset zeroes the window, the valid delay and the output register.
func (c *Conv) Reset() { *c = Conv{} }

// Measure drives one valid column with a single bright bottom sample
// through a fresh Conv.
func (*Conv) Measure() (data, valid int) {
	fresh := NewConv()
	return MeasureImpulse(func(i int) (bool, bool) {
		var in Column
		if i == 0 {
			in = Column{Rows: [3]fixed.Pixel{impulse}, Valid: true}
		}
		out := fresh.Step(in)
		return out.Gx != 0 || out.Gy != 0, out.Valid
	})
}

// Kernels applies the gradient kernels to a window laid out as in Conv,
// cols[0] being the rightmost column.
//
//	Gx = (TR - TL) + 2(MR - ML) + (BR - BL)
//	Gy = (BL + 2BM + BR) - (TL + 2TM + TR)
//
// Inputs are zero-extended into the 15-bit signed domain first. With
// 12-bit inputs every partial sum stays within +-16380.
func Kernels(cols [3][3]fixed.Pixel) (gx, gy fixed.Grad) {
	const top, mid, bot = 2, 1, 0
	const left, center, right = 2, 1, 0

	p := func(col, row int) fixed.Grad { return fixed.Signed(cols[col][row]) }

	gx = (p(right, top) - p(left, top)) +
		2*(p(right, mid)-p(left, mid)) +
		(p(right, bot) - p(left, bot))

	gy = (p(left, bot) + 2*p(center, bot) + p(right, bot)) -
		(p(left, top) + 2*p(center, top) + p(right, top))

	return gx, gy
}
