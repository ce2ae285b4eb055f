package imagefile

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"lel/viewer"
)

// Load sniffs the stream: imagefile data is decoded directly, anything
// else goes through image.Decode and is converted to RGBA byte order.
func Load(r io.Reader) (*viewer.Image, string, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(Magic))
	if err == nil && string(head) == Magic {
		m, err := Decode(br)
		if err != nil {
			return nil, "", err
		}
		return m, "imagefile", nil
	}

	src, format, err := image.Decode(br)
	if err != nil {
		return nil, "", fmt.Errorf("imagefile: decode: %w", err)
	}
	m, err := FromImage(src)
	if err != nil {
		return nil, "", err
	}
	return m, format, nil
}

// FromImage copies any image.Image into a source raster.
func FromImage(src image.Image) (*viewer.Image, error) {
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", viewer.ErrBadImage, b.Dx(), b.Dy())
	}
	if b.Dx() > viewer.MaxDimension || b.Dy() > viewer.MaxDimension {
		return nil, fmt.Errorf("%w: size %dx%d too large", viewer.ErrBadImage, b.Dx(), b.Dy())
	}
	if b.Dx()*b.Dy() > viewer.MaxPixels {
		return nil, fmt.Errorf("%w: size %dx%d exceeds %d pixels", viewer.ErrBadImage, b.Dx(), b.Dy(), viewer.MaxPixels)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return viewer.NewImage(b.Dx(), b.Dy(), dst.Pix)
}
