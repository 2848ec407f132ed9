// Package imageio decodes image files for display and optionally downscales
// oversized images once at load time.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

var (
	// ErrEmptyImage is returned when a file decodes to an image with no pixels.
	ErrEmptyImage = errors.New("image has no pixels")
	// ErrUnsupportedFormat is returned for data no registered decoder accepts.
	ErrUnsupportedFormat = fmt.Errorf("unsupported image format: %w", image.ErrFormat)
)

// Options controls decoding.
type Options struct {
	// MaxDimension downscales images whose width or height exceeds it,
	// preserving aspect ratio. 0 disables downscaling.
	MaxDimension int
}

// Image is a decoded image plus the metadata shown by the viewer.
type Image struct {
	image.Image

	Path           string
	Format         string // decoder name: "png", "jpeg", "gif", "bmp", "tiff", "webp"
	FileSize       int64
	OriginalWidth  int
	OriginalHeight int
	Downscaled     bool
}

// Width returns the width of the decoded (possibly downscaled) image.
func (i *Image) Width() uint32 {
	return uint32(i.Bounds().Dx()) //nolint:gosec // bounds are never negative
}

// Height returns the height of the decoded (possibly downscaled) image.
func (i *Image) Height() uint32 {
	return uint32(i.Bounds().Dy()) //nolint:gosec // bounds are never negative
}

// Load opens and decodes the image at path.
func Load(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	img, err := Decode(f, opts)
	if err != nil {
		return nil, err
	}
	img.Path = path
	img.FileSize = info.Size()
	return img, nil
}

// Decode reads an image from r.
func Decode(r io.Reader, opts Options) (*Image, error) {
	decoded, format, err := image.Decode(r)
	if errors.Is(err, image.ErrFormat) {
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	b := decoded.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	img := &Image{
		Image:          decoded,
		Format:         format,
		OriginalWidth:  b.Dx(),
		OriginalHeight: b.Dy(),
	}

	if limit := opts.MaxDimension; limit > 0 && (b.Dx() > limit || b.Dy() > limit) {
		img.Image = resize.Thumbnail(uint(limit), uint(limit), decoded, resize.Lanczos3) //nolint:gosec // limit > 0
		img.Downscaled = true
	}

	return img, nil
}
