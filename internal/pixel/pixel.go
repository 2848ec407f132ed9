// Package pixel samples average colors from rectangular regions of an image.
package pixel

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel color with no alpha.
type RGB struct {
	R, G, B uint8
}

// Black is returned for samples that cover no pixel.
var Black = RGB{}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// FromColor converts any color to its non-premultiplied 8-bit RGB channels.
// Alpha is dropped.
func FromColor(c color.Color) RGB {
	n, ok := c.(color.NRGBA)
	if !ok {
		n, _ = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
	return RGB{R: n.R, G: n.G, B: n.B}
}

// AverageColor returns the integer-truncated mean of each channel over all
// pixels of img covered by r. Coordinates are relative to img.Bounds().Min.
// Any part of r outside the image is ignored; if nothing remains, Black is
// returned.
func AverageColor(img image.Image, r Rect) RGB {
	if img == nil {
		return Black
	}
	b := img.Bounds()
	c := r.Clamp(uint32(b.Dx()), uint32(b.Dy())) //nolint:gosec // bounds are never negative
	if c.Empty() {
		return Black
	}

	var rSum, gSum, bSum uint64
	x0, y0 := b.Min.X+int(c.X), b.Min.Y+int(c.Y)
	x1, y1 := x0+int(c.Width), y0+int(c.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p := at(img, x, y)
			rSum += uint64(p.R)
			gSum += uint64(p.G)
			bSum += uint64(p.B)
		}
	}

	count := c.Area()
	return RGB{
		R: uint8(rSum / count), //nolint:gosec // mean of uint8 values fits
		G: uint8(gSum / count), //nolint:gosec // mean of uint8 values fits
		B: uint8(bSum / count), //nolint:gosec // mean of uint8 values fits
	}
}

// at reads one pixel, skipping the color.Color interface for common buffers.
func at(img image.Image, x, y int) RGB {
	switch im := img.(type) {
	case *image.NRGBA:
		c := im.NRGBAAt(x, y)
		return RGB{R: c.R, G: c.G, B: c.B}
	case *image.RGBA:
		c := im.RGBAAt(x, y)
		if c.A == 0xff {
			return RGB{R: c.R, G: c.G, B: c.B}
		}
	}
	return FromColor(img.At(x, y))
}
