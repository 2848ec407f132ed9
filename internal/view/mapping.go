package view

import (
	"math"

	"github.com/llehouerou/hdim/internal/pixel"
)

// Mapping holds the per-view constants needed to derive sample rectangles.
// It is a value with no hidden state: the same View always yields the same
// rectangles.
type Mapping struct {
	view        View
	xRatio      float64
	yRatio      float64
	blockWidth  uint32
	blockHeight uint32 // height of one half-block
}

// NewMapping precomputes the sampling ratios and block sizes for v.
//
// The half-block height is round(yRatio/2) for both halves, so a cell covers
// 2*round(yRatio/2) source rows rather than exactly yRatio. Adjacent rows may
// overlap or leave a one-pixel gap when yRatio is odd or fractional; this is
// an accepted rendering approximation.
func NewMapping(v View) Mapping {
	v = v.Normalize()
	xr, yr := v.Ratios()
	return Mapping{
		view:        v,
		xRatio:      xr,
		yRatio:      yr,
		blockWidth:  atLeastOne(math.Round(xr)),
		blockHeight: atLeastOne(math.Round(yr / 2)),
	}
}

// View returns the normalized view the mapping was built from.
func (m Mapping) View() View {
	return m.view
}

// BlockSize returns the width and height of a single half-block sample.
func (m Mapping) BlockSize() (width, height uint32) {
	return m.blockWidth, m.blockHeight
}

// Cell returns the top and bottom sample rectangles for target cell (x, y).
// The bottom rectangle starts directly below the top one.
func (m Mapping) Cell(x, y uint32) (top, bottom pixel.Rect) {
	sx := saturatingAdd(m.view.SourceX, offset(x, m.xRatio))
	sy := saturatingAdd(m.view.SourceY, offset(y, m.yRatio))

	top = pixel.Rect{X: sx, Y: sy, Width: m.blockWidth, Height: m.blockHeight}
	bottom = top
	bottom.Y = saturatingAdd(sy, m.blockHeight)
	return top, bottom
}

// CellRects is a convenience for one-off lookups.
func (v View) CellRects(x, y uint32) (top, bottom pixel.Rect) {
	return NewMapping(v).Cell(x, y)
}

// offset returns floor(i * ratio) saturated to uint32.
func offset(i uint32, ratio float64) uint32 {
	o := math.Floor(float64(i) * ratio)
	if o >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(o)
}

func atLeastOne(f float64) uint32 {
	if !(f >= 1) {
		return 1
	}
	if f >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(f)
}

func saturatingAdd(a, b uint32) uint32 {
	if s := a + b; s >= a {
		return s
	}
	return math.MaxUint32
}
