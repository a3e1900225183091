package fixed

import "testing"

func TestTrunc(t *testing.T) {
	tests := []struct {
		in   uint16
		want Pixel
	}{
		{0, 0},
		{4095, 4095},
		{4096, 0},
		{0xFFFF, 4095},
		{0x1234, 0x234},
	}

	for _, tt := range tests {
		if got := Trunc(tt.in); got != tt.want {
			t.Errorf("Trunc(%#x) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAvg4Truncates(t *testing.T) {
	tests := []struct {
		a, b, c, d Pixel
		want       Pixel
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 0, 0}, // 3/4 truncates to 0
		{1, 1, 1, 1, 1},
		{4095, 4095, 4095, 4095, 4095},
		{4095, 4095, 4095, 4094, 4094},
		{10, 20, 30, 41, 25},
	}

	for _, tt := range tests {
		if got := Avg4(tt.a, tt.b, tt.c, tt.d); got != tt.want {
			t.Errorf("Avg4(%d, %d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, tt.d, got, tt.want)
		}
	}
}

func TestAvg121(t *testing.T) {
	tests := []struct {
		a, b, c Pixel
		want    Pixel
	}{
		{0, 0, 255, 63},
		{0, 255, 255, 191},
		{255, 255, 255, 255},
		{4095, 4095, 4095, 4095},
		{1, 0, 2, 0},
	}

	for _, tt := range tests {
		if got := Avg121(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("Avg121(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestAbsAtBound(t *testing.T) {
	if got := Abs(-GradBound); got != Mag(GradBound) {
		t.Errorf("Abs(-%d) = %d, want %d", GradBound, got, GradBound)
	}
	if got := Abs(GradBound); got != Mag(GradBound) {
		t.Errorf("Abs(%d) = %d, want %d", GradBound, got, GradBound)
	}
	if got := Abs(0); got != 0 {
		t.Errorf("Abs(0) = %d, want 0", got)
	}
}

func TestGradBoundFits15Bits(t *testing.T) {
	if int(GradBound) >= 1<<(GradBits-1) {
		t.Errorf("GradBound = %d does not fit in %d signed bits", GradBound, GradBits)
	}
	if sum := AddMag(Abs(-GradBound), Abs(GradBound)); sum != 32760 {
		t.Errorf("AddMag at bound = %d, want 32760", sum)
	}
}

func TestShiftSat(t *testing.T) {
	tests := []struct {
		m       Mag
		want    Pixel
		wantSat bool
	}{
		{1500, 375, false},
		{16380, 4095, false},
		{16383, 4095, false},
		{16384, 4095, true},
		{32000, 4095, true},
		{32760, 4095, true},
		{3, 0, false},
	}

	for _, tt := range tests {
		got, sat := ShiftSat(tt.m, 2)
		if got != tt.want || sat != tt.wantSat {
			t.Errorf("ShiftSat(%d, 2) = (%d, %v), want (%d, %v)", tt.m, got, sat, tt.want, tt.wantSat)
		}
	}
}

func TestSuppress(t *testing.T) {
	tests := []struct {
		p, floor Pixel
		want     Pixel
	}{
		{59, 60, 0},
		{60, 60, 60},
		{61, 60, 61},
		{0, 60, 0},
		{4095, 60, 4095},
		{5, 0, 5},
	}

	for _, tt := range tests {
		if got := Suppress(tt.p, tt.floor); got != tt.want {
			t.Errorf("Suppress(%d, %d) = %d, want %d", tt.p, tt.floor, got, tt.want)
		}
	}
}
