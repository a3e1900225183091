// Package image provides the frame buffers and file I/O for edgepipe.
//
// A Plane is a single-channel image of 12-bit samples. Raw Bayer frames and
// edge maps are both Planes; conversion to and from the standard library's
// image types scales between 12 bits and 8 or 16 bits.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// SampleBits is the width of a Plane sample.
const SampleBits = 12

// SampleMax is the largest Plane sample.
const SampleMax = 1<<SampleBits - 1

// ErrInvalidDimensions is returned for non-positive plane sizes.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// Plane is a row-major single-channel image of 12-bit samples.
type Plane struct {
	Width  int
	Height int
	Pix    []uint16
}

// NewPlane allocates a zeroed Plane.
func NewPlane(width, height int) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Plane{
		Width:  width,
		Height: height,
		Pix:    make([]uint16, width*height),
	}, nil
}

// At returns the sample at (x, y), or 0 outside the plane.
func (p *Plane) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return p.Pix[y*p.Width+x]
}

// Set stores v, clamped to 12 bits, at (x, y). Out-of-bounds writes are
// ignored.
func (p *Plane) Set(x, y int, v uint16) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	if v > SampleMax {
		v = SampleMax
	}
	p.Pix[y*p.Width+x] = v
}

// Row returns the samples of row y.
func (p *Plane) Row(y int) []uint16 {
	start := y * p.Width
	return p.Pix[start : start+p.Width]
}

// Fill sets every sample to v.
func (p *Plane) Fill(v uint16) {
	if v > SampleMax {
		v = SampleMax
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// Gray16 converts the plane to a 16-bit gray image, scaling 12 to 16 bits.
func (p *Plane) Gray16() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, p.Width, p.Height))
	for y := range p.Height {
		for x, v := range p.Row(y) {
			img.SetGray16(x, y, color.Gray16{Y: v << 4})
		}
	}
	return img
}

// Gray converts the plane to an 8-bit gray image, keeping the top 8 bits.
func (p *Plane) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.Width, p.Height))
	for y := range p.Height {
		row := p.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+p.Width]
		for x, v := range row {
			dst[x] = uint8(v >> 4)
		}
	}
	return img
}

// FromImage converts img to a Plane of its luminance, keeping the top
// 12 bits of the 16-bit gray value.
func FromImage(img image.Image) *Plane {
	b := img.Bounds()
	p := &Plane{Width: b.Dx(), Height: b.Dy(), Pix: make([]uint16, b.Dx()*b.Dy())}

	// Fast path for 16-bit gray, the usual raw sensor dump.
	if g, ok := img.(*image.Gray16); ok {
		for y := range p.Height {
			src := g.Pix[y*g.Stride:]
			row := p.Row(y)
			for x := range row {
				row[x] = (uint16(src[2*x])<<8 | uint16(src[2*x+1])) >> 4
			}
		}
		return p
	}

	for y := range p.Height {
		row := p.Row(y)
		for x := range row {
			c := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			row[x] = c.Y >> 4
		}
	}
	return p
}
