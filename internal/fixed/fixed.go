// Package fixed provides the bit-width-bounded integer types used by the edge
// pipeline, together with the truncating and saturating helpers that keep every
// intermediate result inside its proven range.
//
// Widths:
//
//	Pixel  12-bit unsigned sample            0 .. 4095
//	Grad   15-bit signed gradient       -16380 .. 16380
//	Mag    16-bit unsigned |Gx|+|Gy|         0 .. 32760
//
// No helper in this package checks for overflow at run time. The bounds are
// structural: a 3x3 kernel with weights summing to 4 on each side applied to
// 12-bit inputs cannot leave the 15-bit signed range.
package fixed

const (
	// PixelBits is the width of a pixel sample.
	PixelBits = 12

	// PixelMax is the largest representable pixel value.
	PixelMax Pixel = 1<<PixelBits - 1

	// GradBits is the width of a signed gradient.
	GradBits = 15

	// GradBound is the largest gradient magnitude a 3x3 kernel can produce
	// from 12-bit inputs: 4 * 4095.
	GradBound Grad = 4 * Grad(PixelMax)
)

// Pixel is a 12-bit unsigned sample stored in 16 bits.
type Pixel uint16

// Grad is a 15-bit signed gradient stored in 16 bits.
type Grad int16

// Mag is an unsigned gradient magnitude before scaling.
type Mag uint16

// Trunc keeps the low 12 bits of v, the way a 12-bit input port would.
func Trunc(v uint16) Pixel {
	return Pixel(v) & PixelMax
}

// Avg4 returns (a+b+c+d)>>2. The sum of four 12-bit values fits in 14 bits.
func Avg4(a, b, c, d Pixel) Pixel {
	return (a + b + c + d) >> 2
}

// Avg121 returns (a + 2b + c)>>2, the [1 2 1]/4 low-pass tap.
func Avg121(a, b, c Pixel) Pixel {
	return (a + b<<1 + c) >> 2
}

// Signed zero-extends a pixel into the gradient domain.
func Signed(p Pixel) Grad {
	return Grad(p)
}

// Abs returns |g|. Grad values are bounded by GradBound, so the
// most negative int16 never reaches this function.
func Abs(g Grad) Mag {
	if g < 0 {
		return Mag(-g)
	}
	return Mag(g)
}

// AddMag returns a+b. Two magnitudes bounded by GradBound sum to at most
// 32760, which still fits in 16 bits.
func AddMag(a, b Mag) Mag {
	return a + b
}

// ShiftSat shifts m right by shift and saturates the result to PixelMax.
// The second result reports whether saturation happened.
func ShiftSat(m Mag, shift uint) (Pixel, bool) {
	v := m >> shift
	if v > Mag(PixelMax) {
		return PixelMax, true
	}
	return Pixel(v), false
}

// Suppress forces values strictly below floor to zero.
func Suppress(p, floor Pixel) Pixel {
	if p < floor {
		return 0
	}
	return p
}
