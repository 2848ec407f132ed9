// Package halfblock renders a view of an image as rows of truecolor
// lower-half-block glyphs. Each glyph carries two vertically stacked samples:
// the background is the top half, the foreground the bottom half.
package halfblock

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/llehouerou/hdim/internal/pixel"
	"github.com/llehouerou/hdim/internal/view"
)

const (
	// Glyph is the lower half block character.
	Glyph = "▄"
	// Reset clears all SGR attributes at the end of each row.
	Reset = "\x1b[0m"

	cellFormat = "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm" + Glyph

	// bytesPerCell is the length of the longest encoded cell.
	bytesPerCell = len("\x1b[48;2;255;255;255m\x1b[38;2;255;255;255m") + len(Glyph)
)

// EncodeCell writes one glyph with top as background and bottom as foreground.
func EncodeCell(w io.Writer, top, bottom pixel.RGB) error {
	_, err := fmt.Fprintf(w, cellFormat, top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
	return err
}

// WriteTo renders v of img into w, row by row top to bottom, cells left to
// right. Every row holds exactly TargetWidth glyphs and ends with Reset and a
// newline; there are exactly TargetHeight rows (after zero targets are
// coerced to 1).
func WriteTo(w io.Writer, img image.Image, v view.View) error {
	m := view.NewMapping(v)
	nv := m.View()

	for y := range nv.TargetHeight {
		for x := range nv.TargetWidth {
			topRect, bottomRect := m.Cell(x, y)
			top := pixel.AverageColor(img, topRect)
			bottom := pixel.AverageColor(img, bottomRect)
			if err := EncodeCell(w, top, bottom); err != nil {
				return fmt.Errorf("encode cell (%d,%d): %w", x, y, err)
			}
		}
		if _, err := io.WriteString(w, Reset+"\n"); err != nil {
			return fmt.Errorf("end row %d: %w", y, err)
		}
	}
	return nil
}

// Render returns the rendered frame for v of img as a single string.
func Render(img image.Image, v view.View) (string, error) {
	nv := v.Normalize()
	var b strings.Builder
	b.Grow(int(nv.TargetHeight) * (int(nv.TargetWidth)*bytesPerCell + len(Reset) + 1))
	if err := WriteTo(&b, img, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Lines splits a rendered frame into its rows, without the trailing newlines.
func Lines(frame string) []string {
	frame = strings.TrimSuffix(frame, "\n")
	if frame == "" {
		return nil
	}
	return strings.Split(frame, "\n")
}
