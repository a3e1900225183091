package image

import (
	"path/filepath"
	"strings"
)

// Format represents an on-disk image encoding.
type Format uint8

const (
	// FormatUnknown is an unrecognized encoding.
	FormatUnknown Format = iota

	// FormatPNG is PNG; planes are written as 16-bit gray.
	FormatPNG

	// FormatTIFF is TIFF; planes are written as 16-bit gray.
	FormatTIFF

	// FormatBMP is BMP; planes are written as 8-bit gray previews.
	FormatBMP

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about an encoding.
type FormatInfo struct {
	// Name is the short lower-case name.
	Name string

	// Ext is the canonical file extension, with dot.
	Ext string

	// BitsPerSample is the sample depth a Plane is written with.
	BitsPerSample int
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatUnknown: {Name: "unknown"},
	FormatPNG:     {Name: "png", Ext: ".png", BitsPerSample: 16},
	FormatTIFF:    {Name: "tiff", Ext: ".tiff", BitsPerSample: 16},
	FormatBMP:     {Name: "bmp", Ext: ".bmp", BitsPerSample: 8},
}

// Info returns metadata for the format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return formatInfoTable[FormatUnknown]
	}
	return formatInfoTable[f]
}

// String returns the format name.
func (f Format) String() string {
	return f.Info().Name
}

// Ext returns the canonical file extension.
func (f Format) Ext() string {
	return f.Info().Ext
}

// ParseFormat parses a format name such as "png", "tif" or "bmp".
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG
	case "tif", "tiff":
		return FormatTIFF
	case "bmp":
		return FormatBMP
	default:
		return FormatUnknown
	}
}

// FormatFromPath returns the format implied by the file extension.
func FormatFromPath(path string) Format {
	return ParseFormat(filepath.Ext(path))
}
