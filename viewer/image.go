package viewer

import (
	"errors"
	"fmt"
	"image"
	"math"
)

const (
	// MaxDimension bounds source and target sizes so the 22.10 column
	// accumulator never overflows 32 bits.
	MaxDimension = 1 << 21

	// MaxPixels bounds the pixel count of a source image or a target
	// raster (512 MiB at 4 bytes per pixel).
	MaxPixels = 1 << 27
)

var ErrBadImage = errors.New("viewer: invalid image")

// Image is a decoded source raster: Width*Height pixels of 4 bytes each,
// in the channel order the loader produced (R,G,B,A).
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage validates geometry and wraps pix without copying it.
func NewImage(width, height int, pix []byte) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadImage, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: size %dx%d exceeds %d", ErrBadImage, width, height, MaxDimension)
	}
	if width*height > MaxPixels {
		return nil, fmt.Errorf("%w: size %dx%d exceeds %d pixels", ErrBadImage, width, height, MaxPixels)
	}
	if want := width * height * 4; len(pix) != want {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrBadImage, len(pix), want)
	}
	return &Image{Width: width, Height: height, Pix: pix}, nil
}

// ValidZoom reports whether z is usable as a zoom factor: finite and
// strictly positive.
func ValidZoom(z float64) bool {
	return z > 0 && !math.IsInf(z, 0)
}

func (m *Image) Size() image.Point { return image.Pt(m.Width, m.Height) }

// Raster is the scaled output. Each pixel is B,G,R,X relative to an R,G,B,A
// source; X is never written by the scaler. Rows are Stride bytes apart and
// Stride may exceed Width*4.
type Raster struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

func (r *Raster) Size() image.Point { return image.Pt(r.Width, r.Height) }

// Row returns the pixel bytes of row y, without trailing padding.
func (r *Raster) Row(y int) []byte {
	off := y * r.Stride
	return r.Pix[off : off+r.Width*4]
}
