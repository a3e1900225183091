// Package rowtap implements the circular row delay line that feeds the
// vertical taps of the edge pipeline.
//
// A Buffer holds one ring of width slots per row of lookback. Slot i always
// holds the most recent sample written to column i, so the slot under the
// cursor, read before it is written, is the sample from exactly one row back.
//
// Hardware: one single-port RAM per ring, addressed by a shared column
// cursor, plus a register stage on the outputs.
package rowtap

import (
	"errors"
	"fmt"

	"github.com/gogpu/edgepipe/internal/fixed"
)

// Latency is the number of steps between a sample entering Advance and its
// taps being visible to the next stage.
const Latency = 1

// MaxDepth is the deepest row lookback a Buffer supports.
const MaxDepth = 2

// measureSteps bounds the clocking done by Measure.
const measureSteps = 4

// Construction errors.
var (
	// ErrZeroWidth is returned when the row width is not positive.
	ErrZeroWidth = errors.New("rowtap: row width must be positive")

	// ErrDepth is returned when the tap depth is not 1 or 2.
	ErrDepth = errors.New("rowtap: tap depth must be 1 or 2")
)

// Taps is the registered output of a Buffer for one step.
//
// Cur is the current sample delayed by one register so that it stays in the
// same column as Up1 and Up2. Up1 is the sample one row back, Up2 two rows
// back (zero for a depth-1 buffer).
type Taps struct {
	Cur   fixed.Pixel
	Up1   fixed.Pixel
	Up2   fixed.Pixel
	Valid bool
}

// Buffer is a circular row delay line with one or two row taps.
type Buffer struct {
	width  int
	depth  int
	ringA  []fixed.Pixel // one row back
	ringB  []fixed.Pixel // two rows back, nil when depth == 1
	cursor int
	out    Taps
}

// New creates a Buffer for rows of width samples with depth row taps.
func New(width, depth int) (*Buffer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroWidth, width)
	}
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: got %d", ErrDepth, depth)
	}

	b := &Buffer{
		width: width,
		depth: depth,
		ringA: make([]fixed.Pixel, width),
	}
	if depth == 2 {
		b.ringB = make([]fixed.Pixel, width)
	}
	return b, nil
}

// Advance clocks the buffer once.
//
// On an invalid step nothing moves: the rings and cursor hold, the previous
// tap values are kept and the output valid flag drops.
//
// On a valid step every ring is read at the cursor before any ring is
// written. The second ring is then fed from the first ring's pre-step value;
// feeding it the freshly inserted sample would make Up2 alias Up1.
func (b *Buffer) Advance(sample fixed.Pixel, valid bool) Taps {
	if !valid {
		b.out.Valid = false
		return b.out
	}

	c := b.cursor

	// Read phase.
	up1 := b.ringA[c]
	var up2 fixed.Pixel
	if b.ringB != nil {
		up2 = b.ringB[c]
	}

	// Write phase.
	if b.ringB != nil {
		b.ringB[c] = up1
	}
	b.ringA[c] = sample

	c++
	if c == b.width {
		c = 0
	}
	b.cursor = c

	b.out = Taps{Cur: sample, Up1: up1, Up2: up2, Valid: true}
	return b.out
}

// Out returns the taps registered by the most recent Advance.
func (b *Buffer) Out() Taps {
	return b.out
}

// Reset zeroes every ring slot, the output register and the cursor.
func (b *Buffer) Reset() {
	clear(b.ringA)
	clear(b.ringB)
	b.cursor = 0
	b.out = Taps{}
}

// Width returns the row width in samples.
func (b *Buffer) Width() int { return b.width }

// Depth returns the number of row taps.
func (b *Buffer) Depth() int { return b.depth }

// Cursor returns the column the next valid sample will be written to.
func (b *Buffer) Cursor() int { return b.cursor }

// Measure writes one valid sample into a fresh Buffer of the same geometry
// and reports after how many steps it appears on Cur and on Valid.
// A path the sample never reaches reports -1.
func (b *Buffer) Measure() (data, valid int) {
	fresh, err := New(b.Width(), b.Depth())
	if err != nil {
		return -1, -1
	}

	data, valid = -1, -1
	for i := 0; i < measureSteps && (data < 0 || valid < 0); i++ {
		taps := fresh.Advance(fixed.PixelMax, i == 0)
		if taps.Cur != 0 && data < 0 {
			data = i + 1
		}
		if taps.Valid && valid < 0 {
			valid = i + 1
		}
	}
	return data, valid
}
