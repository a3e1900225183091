package image

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Uniform returns a width x height plane with every sample set to v.
func Uniform(width, height int, v uint16) (*Plane, error) {
	p, err := NewPlane(width, height)
	if err != nil {
		return nil, err
	}
	p.Fill(v)
	return p, nil
}

// VerticalStep returns a plane whose left half is lo and right half hi.
func VerticalStep(width, height int, lo, hi uint16) (*Plane, error) {
	p, err := NewPlane(width, height)
	if err != nil {
		return nil, err
	}
	for y := range height {
		for x := range width {
			v := lo
			if x >= width/2 {
				v = hi
			}
			p.Set(x, y, v)
		}
	}
	return p, nil
}

// HorizontalStep returns a plane whose top half is lo and bottom half hi.
func HorizontalStep(width, height int, lo, hi uint16) (*Plane, error) {
	p, err := NewPlane(width, height)
	if err != nil {
		return nil, err
	}
	for y := range height {
		v := lo
		if y >= height/2 {
			v = hi
		}
		row := p.Row(y)
		for x := range row {
			row[x] = min(v, SampleMax)
		}
	}
	return p, nil
}

// Mosaic resamples img to width x height and samples it through an RGGB
// color filter array, producing a raw Bayer plane:
//
//	(even row, even col) = R
//	(even row, odd  col) = G
//	(odd  row, even col) = G
//	(odd  row, odd  col) = B
func Mosaic(img image.Image, width, height int) (*Plane, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidDimensions)
	}
	p, err := NewPlane(width, height)
	if err != nil {
		return nil, err
	}

	rgb := image.NewRGBA64(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(rgb, rgb.Bounds(), img, img.Bounds(), draw.Src, nil)

	for y := range height {
		row := p.Row(y)
		for x := range row {
			c := rgb.RGBA64At(x, y)
			var v uint16
			switch {
			case y%2 == 0 && x%2 == 0:
				v = c.R
			case y%2 == 1 && x%2 == 1:
				v = c.B
			default:
				v = c.G
			}
			row[x] = v >> 4
		}
	}
	return p, nil
}
