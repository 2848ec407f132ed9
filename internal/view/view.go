// Package view maps a rectangle of source pixels onto a grid of terminal
// cells, deriving the two half-block sample rectangles of every cell.
package view

import (
	"math"

	"github.com/llehouerou/hdim/internal/pixel"
)

// View maps a source rectangle of the image to a target grid of terminal
// cells. Target dimensions of zero are coerced to 1 by Normalize.
type View struct {
	SourceX      uint32
	SourceY      uint32
	SourceWidth  uint32
	SourceHeight uint32
	TargetWidth  uint32 // terminal columns
	TargetHeight uint32 // terminal rows
}

// Source returns the source rectangle.
func (v View) Source() pixel.Rect {
	return pixel.Rect{X: v.SourceX, Y: v.SourceY, Width: v.SourceWidth, Height: v.SourceHeight}
}

// Normalize returns v with both target dimensions at least 1.
func (v View) Normalize() View {
	v.TargetWidth = max(v.TargetWidth, 1)
	v.TargetHeight = max(v.TargetHeight, 1)
	return v
}

// Ratios returns the number of source pixels per target cell along each axis.
func (v View) Ratios() (x, y float64) {
	v = v.Normalize()
	return float64(v.SourceWidth) / float64(v.TargetWidth),
		float64(v.SourceHeight) / float64(v.TargetHeight)
}

// FromZoom builds a view whose source rectangle starts at (x, y) and spans
// zoom source pixels per target cell on both axes.
func FromZoom(x, y uint32, zoom float32, targetWidth, targetHeight uint32) View {
	v := View{
		SourceX:      x,
		SourceY:      y,
		TargetWidth:  targetWidth,
		TargetHeight: targetHeight,
	}.Normalize()
	v.SourceWidth = scaled(v.TargetWidth, zoom)
	v.SourceHeight = scaled(v.TargetHeight, zoom)
	return v
}

// FromAreaSize builds a view over a whole imageWidth x imageHeight image where
// every cell covers areaSize source pixels per axis. An areaSize of 0 is
// treated as 1.
func FromAreaSize(imageWidth, imageHeight, areaSize uint32) View {
	areaSize = max(areaSize, 1)
	return FromZoom(0, 0, float32(areaSize), ceilDiv(imageWidth, areaSize), ceilDiv(imageHeight, areaSize))
}

// scaled returns round(n * zoom), at least 1 and saturated at MaxUint32.
func scaled(n uint32, zoom float32) uint32 {
	s := math.Round(float64(n) * float64(zoom))
	switch {
	case !(s >= 1): // also catches NaN
		return 1
	case s >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(s)
}

func ceilDiv(n, d uint32) uint32 {
	return uint32((uint64(n) + uint64(d) - 1) / uint64(d)) //nolint:gosec // result <= n
}
