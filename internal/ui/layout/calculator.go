// Package layout provides pure functions for UI dimension calculations.
package layout

// Fixed bar heights, borders included.
const (
	HeaderHeight = 3
	FooterHeight = 3
)

// Horizontal split of the middle area, in percent.
const (
	LeftPercent  = 20
	RightPercent = 20
)

// borderSize is the number of cells a rounded border takes per axis.
const borderSize = 2

// Layout holds the outer sizes of every panel for a given window.
type Layout struct {
	Width  int
	Height int

	MiddleHeight int // height of the sidebars and image window

	LeftWidth  int
	ImageWidth int
	RightWidth int
}

// Calculate splits the window into header, middle, and footer rows, then
// splits the middle row 20/60/20. Negative sizes are clamped to zero.
func Calculate(width, height int) Layout {
	width = max(width, 0)
	height = max(height, 0)

	l := Layout{
		Width:        width,
		Height:       height,
		MiddleHeight: max(height-HeaderHeight-FooterHeight, 0),
		LeftWidth:    width * LeftPercent / 100,
		RightWidth:   width * RightPercent / 100,
	}
	l.ImageWidth = width - l.LeftWidth - l.RightWidth
	return l
}

// ImageTarget returns the cell grid available for the image inside the
// image window border. Either value may be zero on tiny terminals.
func (l Layout) ImageTarget() (cols, rows int) {
	return inner(l.ImageWidth), inner(l.MiddleHeight)
}

// HasImageArea reports whether at least one cell is available for the image.
func (l Layout) HasImageArea() bool {
	cols, rows := l.ImageTarget()
	return cols > 0 && rows > 0
}

func inner(outer int) int {
	return max(outer-borderSize, 0)
}
