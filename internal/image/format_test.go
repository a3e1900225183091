package image

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{".PNG", FormatPNG},
		{"tif", FormatTIFF},
		{"tiff", FormatTIFF},
		{"bmp", FormatBMP},
		{"jpg", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"frame.tiff", FormatTIFF},
		{"/tmp/out/edges.png", FormatPNG},
		{"preview.bmp", FormatBMP},
		{"noext", FormatUnknown},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormatInfo(t *testing.T) {
	if FormatBMP.Info().BitsPerSample != 8 {
		t.Errorf("BMP BitsPerSample = %d, want 8", FormatBMP.Info().BitsPerSample)
	}
	if FormatTIFF.Ext() != ".tiff" {
		t.Errorf("TIFF Ext() = %q, want .tiff", FormatTIFF.Ext())
	}
	if Format(200).String() != "unknown" {
		t.Errorf("Format(200).String() = %q, want unknown", Format(200).String())
	}
}
