package stage

import "github.com/gogpu/edgepipe/internal/fixed"

// Test helper functions shared across stage tests.

// rawFrame builds a w x h raw frame with values from fn.
func rawFrame(w, h int, fn func(x, y int) fixed.Pixel) [][]fixed.Pixel {
	f := make([][]fixed.Pixel, h)
	for y := range f {
		f[y] = make([]fixed.Pixel, w)
		for x := range f[y] {
			f[y][x] = fn(x, y)
		}
	}
	return f
}

// bayerInputs streams a raw frame into BayerIn steps, supplying the
// previous-row sample directly.
func bayerInputs(f [][]fixed.Pixel) []BayerIn {
	var in []BayerIn
	for y, row := range f {
		for x, v := range row {
			var prev fixed.Pixel
			if y > 0 {
				prev = f[y-1][x]
			}
			in = append(in, BayerIn{Cur: v, Prev: prev, Valid: true, X: x, Y: y})
		}
	}
	return in
}

// column builds a valid Column with every row set to v.
func column(v fixed.Pixel) Column {
	return Column{Rows: [3]fixed.Pixel{v, v, v}, Valid: true}
}

// window builds a window whose left, center and right columns are uniform.
func window(left, center, right fixed.Pixel) [3][3]fixed.Pixel {
	return [3][3]fixed.Pixel{
		{right, right, right},
		{center, center, center},
		{left, left, left},
	}
}
