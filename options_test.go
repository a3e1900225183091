package edgepipe

import (
	"errors"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o, err := resolveOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if o.rawWidth != 1280 || o.rawHeight != 960 {
		t.Errorf("geometry = %dx%d, want 1280x960", o.rawWidth, o.rawHeight)
	}
	if !o.smoothing {
		t.Error("smoothing disabled by default")
	}
	if o.mode != ModeCombined {
		t.Errorf("mode = %v, want combined", o.mode)
	}
	if o.threshold != 60 {
		t.Errorf("threshold = %d, want 60", o.threshold)
	}
	if o.lineGap != 0 || o.workers != 0 {
		t.Errorf("lineGap, workers = %d, %d, want 0, 0", o.lineGap, o.workers)
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	o, err := resolveOptions([]Option{
		WithGeometry(64, 48),
		WithSmoothing(false),
		WithMode(ModeGy),
		WithThreshold(0),
		WithThreshold(4095),
		WithLineGap(3),
		WithWorkers(2),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := options{
		rawWidth:  64,
		rawHeight: 48,
		smoothing: false,
		mode:      ModeGy,
		threshold: 4095,
		lineGap:   3,
		workers:   2,
	}
	if o != want {
		t.Errorf("options = %+v, want %+v", o, want)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want error
	}{
		{"negative width", WithGeometry(-2, 4), ErrGeometry},
		{"odd geometry", WithGeometry(2, 3), ErrGeometry},
		{"threshold above range", WithThreshold(5000), ErrThreshold},
		{"negative gap", WithLineGap(-3), ErrLineGap},
		{"smallest geometry", WithGeometry(2, 2), nil},
		{"zero threshold", WithThreshold(0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveOptions([]Option{tt.opt})
			if !errors.Is(err, tt.want) {
				t.Errorf("resolveOptions() error = %v, want %v", err, tt.want)
			}
		})
	}
}
