package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load decodes the image file at path. The format is taken from the
// extension when known and detected from the content otherwise.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, FormatFromPath(path))
}

// LoadPlane loads the file at path as a 12-bit plane.
func LoadPlane(path string) (*Plane, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// DecodeBytes decodes an image from a byte slice, detecting the format.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), FormatUnknown)
}

// Decode decodes an image in format f from r. FormatUnknown detects the
// format from the content among the registered decoders.
func Decode(r io.Reader, f Format) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	default:
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("image: decode %s: %w", f, err)
	}
	return img, nil
}

// Save encodes p into the file at path, in the format implied by the
// extension.
func Save(path string, p *Plane) error {
	f := FormatFromPath(path)
	if f == FormatUnknown {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(out, p, f); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

// Encode writes p to w in format f. PNG and TIFF keep the full 12 bits in a
// 16-bit gray image; BMP writes an 8-bit preview.
func Encode(w io.Writer, p *Plane, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, p.Gray16())
	case FormatTIFF:
		err = tiff.Encode(w, p.Gray16(), &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatBMP:
		err = bmp.Encode(w, p.Gray())
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", f, err)
	}
	return nil
}
