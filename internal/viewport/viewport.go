// Package viewport holds the zoom and scroll state of the image viewer and
// derives the View rendered on every frame.
package viewport

import (
	"math"

	"github.com/llehouerou/hdim/internal/view"
)

// MinZoom is the smallest allowed zoom factor (source pixels per cell).
const MinZoom float32 = 0.01

// State is the viewport over an image of fixed size. Zoom is the number of
// source pixels per terminal cell; smaller values zoom in. The source
// position is kept within [0, image width] x [0, image height], which still
// allows a viewport that mostly lies past the image edge.
//
// Create one with New.
type State struct {
	imageWidth  uint32
	imageHeight uint32
	sourceX     uint32
	sourceY     uint32
	zoom        float32
}

// New returns a viewport at the image origin with the given zoom, floored
// at MinZoom.
func New(imageWidth, imageHeight uint32, zoom float32) State {
	s := State{imageWidth: imageWidth, imageHeight: imageHeight}
	s.setZoom(zoom)
	return s
}

// Zoom multiplies the zoom factor by factor, floors it at MinZoom and
// re-clamps the source position.
func (s *State) Zoom(factor float32) {
	s.setZoom(s.zoom * factor)
	s.clampSourcePos()
}

// Scroll moves the source position by the signed deltas. Moves saturate at
// zero and are clamped to the image dimensions.
func (s *State) Scroll(dx, dy int32) {
	s.sourceX = saturatingAddSigned(s.sourceX, dx)
	s.sourceY = saturatingAddSigned(s.sourceY, dy)
	s.clampSourcePos()
}

// ScrollTo moves the source position to (x, y), clamped to the image.
func (s *State) ScrollTo(x, y uint32) {
	s.sourceX, s.sourceY = x, y
	s.clampSourcePos()
}

// SetZoom replaces the zoom factor, floored at MinZoom.
func (s *State) SetZoom(zoom float32) {
	s.setZoom(zoom)
	s.clampSourcePos()
}

// Restore applies a previously saved position and zoom with the same clamps
// as interactive changes.
func (s *State) Restore(x, y uint32, zoom float32) {
	s.setZoom(zoom)
	s.ScrollTo(x, y)
}

// SourcePos returns the top-left corner of the viewport on the image.
func (s State) SourcePos() (x, y uint32) {
	return s.sourceX, s.sourceY
}

// ZoomFactor returns the current zoom factor.
func (s State) ZoomFactor() float32 {
	return s.zoom
}

// ImageSize returns the dimensions the viewport clamps against.
func (s State) ImageSize() (width, height uint32) {
	return s.imageWidth, s.imageHeight
}

// View derives the view for a target grid of the given size. The source
// rectangle is target size times zoom.
func (s State) View(targetWidth, targetHeight uint32) view.View {
	return view.FromZoom(s.sourceX, s.sourceY, s.zoom, targetWidth, targetHeight)
}

// FitZoom returns the zoom at which the whole image fits a target grid,
// floored at MinZoom.
func FitZoom(imageWidth, imageHeight, targetWidth, targetHeight uint32) float32 {
	tw, th := max(targetWidth, 1), max(targetHeight, 1)
	z := max(float64(imageWidth)/float64(tw), float64(imageHeight)/float64(th))
	return max(float32(z), MinZoom)
}

func (s *State) setZoom(z float32) {
	if !(z >= MinZoom) { // also catches NaN
		z = MinZoom
	}
	if math.IsInf(float64(z), 1) {
		z = math.MaxFloat32
	}
	s.zoom = z
}

func (s *State) clampSourcePos() {
	s.sourceX = min(s.sourceX, s.imageWidth)
	s.sourceY = min(s.sourceY, s.imageHeight)
}

func saturatingAddSigned(v uint32, d int32) uint32 {
	r := int64(v) + int64(d)
	switch {
	case r < 0:
		return 0
	case r > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(r)
}
