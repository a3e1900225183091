package stage

import (
	"testing"

	"github.com/gogpu/edgepipe/internal/fixed"
)

func TestKernels(t *testing.T) {
	tests := []struct {
		name   string
		cols   [3][3]fixed.Pixel
		gx, gy fixed.Grad
	}{
		{"flat", window(200, 200, 200), 0, 0},
		{"rising edge", window(0, 0, 255), 1020, 0},
		{"rising edge centered", window(0, 255, 255), 1020, 0},
		{"falling edge", window(255, 0, 0), -1020, 0},
		{
			// oldest row on top dark, newest row bright
			"horizontal edge",
			[3][3]fixed.Pixel{{255, 0, 0}, {255, 0, 0}, {255, 0, 0}},
			0, 1020,
		},
		{"max positive gx", window(0, 0, 4095), fixed.GradBound, 0},
		{"max negative gx", window(4095, 4095, 0), -fixed.GradBound, 0},
		{
			"max negative gy",
			[3][3]fixed.Pixel{{0, 0, 4095}, {0, 0, 4095}, {0, 0, 4095}},
			0, -fixed.GradBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gx, gy := Kernels(tt.cols)
			if gx != tt.gx || gy != tt.gy {
				t.Errorf("Kernels() = (%d, %d), want (%d, %d)", gx, gy, tt.gx, tt.gy)
			}
		})
	}
}

func TestKernelsStayWithinBound(t *testing.T) {
	// Checkerboard extremes push both kernels to their limits.
	vals := []fixed.Pixel{0, fixed.PixelMax}
	for mask := range 1 << 9 {
		var cols [3][3]fixed.Pixel
		for i := range 9 {
			cols[i/3][i%3] = vals[(mask>>i)&1]
		}
		gx, gy := Kernels(cols)
		if gx > fixed.GradBound || gx < -fixed.GradBound {
			t.Fatalf("mask %09b: gx = %d exceeds bound", mask, gx)
		}
		if gy > fixed.GradBound || gy < -fixed.GradBound {
			t.Fatalf("mask %09b: gy = %d exceeds bound", mask, gy)
		}
	}
}

func TestConvWindowOrder(t *testing.T) {
	// Columns 0, 0, 255 arrive left to right; the window is complete one
	// step after the third column.
	c := NewConv()

	c.Step(column(0))
	c.Step(column(0))
	c.Step(column(255))
	out := c.Step(Column{})

	if !out.Valid {
		t.Fatal("output invalid one step after the window filled")
	}
	if out.Gx != 1020 || out.Gy != 0 {
		t.Errorf("(Gx, Gy) = (%d, %d), want (1020, 0)", out.Gx, out.Gy)
	}
}

func TestConvValidDelay(t *testing.T) {
	valid := []bool{true, false, false, true, true, false, true, false, false}

	c := NewConv()
	outs := make([]Gradient, len(valid)+ConvLatency)
	for i := range outs {
		in := Column{}
		if i < len(valid) {
			in = column(fixed.Pixel(i * 10))
			in.Valid = valid[i]
		}
		outs[i] = c.Step(in)
	}

	for i, v := range valid {
		if got := outs[i+ConvLatency-1].Valid; got != v {
			t.Errorf("input %d valid=%v: output valid = %v", i, v, got)
		}
	}
	if outs[0].Valid {
		t.Error("first output valid")
	}
}

func TestConvShiftsOnlyOnValid(t *testing.T) {
	c := NewConv()

	c.Step(column(0))
	c.Step(Column{Rows: [3]fixed.Pixel{4095, 4095, 4095}}) // invalid, ignored
	c.Step(column(0))
	c.Step(Column{Rows: [3]fixed.Pixel{4095, 4095, 4095}})
	c.Step(column(255))
	out := c.Step(Column{})

	if out.Gx != 1020 {
		t.Errorf("Gx = %d, want 1020", out.Gx)
	}
}

func TestConvHoldsOutput(t *testing.T) {
	c := NewConv()
	c.Step(column(0))
	c.Step(column(0))
	c.Step(column(255))
	c.Step(Column{})
	held := c.Out()

	for range 3 {
		out := c.Step(Column{})
		if out.Valid {
			t.Error("output valid without input")
		}
		if out.Gx != held.Gx || out.Gy != held.Gy {
			t.Errorf("held (Gx, Gy) = (%d, %d), want (%d, %d)", out.Gx, out.Gy, held.Gx, held.Gy)
		}
	}

	c.Reset()
	if c.Out() != (Gradient{}) {
		t.Errorf("Out() = %+v after Reset, want zero", c.Out())
	}
}
