package edgepipe

import "testing"

// Test helper functions shared across package tests.

// lcg is a tiny deterministic generator so test streams are reproducible.
type lcg uint32

func (l *lcg) next() uint32 {
	*l = *l*1664525 + 1013904223
	return uint32(*l >> 8)
}

// rasterStream builds the step inputs for one w x h raw frame in raster
// order, inserting invalid steps wherever gap returns true.
func rasterStream(w, h int, sample func(x, y int) uint16, gap func(step int) bool) []Input {
	var in []Input
	step := 0
	for y := range h {
		for x := range w {
			for gap != nil && gap(step) {
				in = append(in, Input{X: -1, Y: -1})
				step++
			}
			in = append(in, Input{Sample: sample(x, y), Valid: true, X: x, Y: y})
			step++
		}
	}
	return in
}

// run feeds in followed by drain invalid steps and returns every output.
func run(p *Pipeline, in []Input, drain int) []Output {
	out := make([]Output, 0, len(in)+drain)
	for _, s := range in {
		out = append(out, p.Step(s))
	}
	for range drain {
		out = append(out, p.Step(Input{}))
	}
	return out
}

// frameFrom builds a raw frame from fn.
func frameFrom(t *testing.T, w, h int, fn func(x, y int) uint16) *Frame {
	t.Helper()
	f, err := NewFrame(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			f.Set(x, y, fn(x, y))
		}
	}
	return f
}

// newPipeline builds a pipeline or fails the test.
func newPipeline(t *testing.T, opts ...Option) *Pipeline {
	t.Helper()
	p, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

// rowPeak returns the largest sample of row y between columns from and to.
func rowPeak(f *Frame, y, from, to int) uint16 {
	var peak uint16
	for x := from; x < to; x++ {
		peak = max(peak, f.At(x, y))
	}
	return peak
}
