package pixel

import "fmt"

// Rect is a rectangle in source pixel units. It may extend past the image
// and is clamped before sampling.
type Rect struct {
	X, Y          uint32
	Width, Height uint32
}

// Empty reports whether the rectangle covers no pixel.
func (r Rect) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// Area returns the number of pixels covered.
func (r Rect) Area() uint64 {
	return uint64(r.Width) * uint64(r.Height)
}

// Clamp intersects r with [0, width) x [0, height).
func (r Rect) Clamp(width, height uint32) Rect {
	x0, y0 := min(r.X, width), min(r.Y, height)
	x1 := min(uint64(r.X)+uint64(r.Width), uint64(width))
	y1 := min(uint64(r.Y)+uint64(r.Height), uint64(height))
	return Rect{
		X:      x0,
		Y:      y0,
		Width:  uint32(x1 - uint64(x0)), //nolint:gosec // x1 <= width
		Height: uint32(y1 - uint64(y0)), //nolint:gosec // y1 <= height
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
