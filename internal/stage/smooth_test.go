package stage

import (
	"testing"

	"github.com/gogpu/edgepipe/internal/fixed"
)

func TestSmootherStepEdge(t *testing.T) {
	in := []fixed.Pixel{0, 0, 0, 255, 255, 255}
	want := []fixed.Pixel{0, 0, 0, 63, 191, 255}

	s := NewSmoother(true)
	for i, v := range in {
		out := s.Step(Sample{Data: v, Valid: true})
		if !out.Valid {
			t.Fatalf("step %d: output invalid", i)
		}
		if out.Data != want[i] {
			t.Errorf("step %d: Data = %d, want %d", i, out.Data, want[i])
		}
	}
}

func TestSmootherIgnoresGaps(t *testing.T) {
	// The filter runs over consecutive valid samples; invalid steps in
	// between neither shift the delay line nor update the output.
	in := []fixed.Pixel{0, 0, 0, 255, 255, 255}
	want := []fixed.Pixel{0, 0, 0, 63, 191, 255}

	s := NewSmoother(true)
	var got []fixed.Pixel
	for _, v := range in {
		for range 3 {
			out := s.Step(Sample{Data: 4095})
			if out.Valid {
				t.Fatal("output valid on an invalid step")
			}
		}
		if out := s.Step(Sample{Data: v, Valid: true}); out.Valid {
			got = append(got, out.Data)
		}
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSmootherDisabledPassesThrough(t *testing.T) {
	s := NewSmoother(false)
	for _, v := range []fixed.Pixel{5, 4095, 0, 17} {
		out := s.Step(Sample{Data: v, Valid: true})
		if out.Data != v || !out.Valid {
			t.Errorf("Step(%d) = %+v, want {%d true}", v, out, v)
		}
	}
	if s.Enabled() {
		t.Error("Enabled() = true, want false")
	}
}

func TestSmootherHoldsOnInvalid(t *testing.T) {
	s := NewSmoother(true)
	s.Step(Sample{Data: 400, Valid: true})
	held := s.Out().Data

	out := s.Step(Sample{Data: 4000})
	if out.Valid || out.Data != held {
		t.Errorf("invalid step: %+v, want {%d false}", out, held)
	}
}

func TestSmootherReset(t *testing.T) {
	s := NewSmoother(true)
	for range 4 {
		s.Step(Sample{Data: 4095, Valid: true})
	}
	s.Reset()

	// After reset the delay line is zero: the first output is 4095/4.
	out := s.Step(Sample{Data: 4095, Valid: true})
	if out.Data != 1023 {
		t.Errorf("first output after Reset = %d, want 1023", out.Data)
	}
}
