// Package imagefile reads and writes the "imagefile" raster format: the
// ASCII magic "imagefile", big-endian uint32 width and height, then
// height rows of width*4 bytes (R,G,B,A).
package imagefile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"slices"

	"lel/viewer"
)

const (
	Magic      = "imagefile"
	HeaderSize = len(Magic) + 8
)

var (
	ErrFormat    = errors.New("imagefile: invalid header")
	ErrTruncated = errors.New("imagefile: unexpected EOF or row-skew")
)

// DecodeConfig reads only the header.
func DecodeConfig(r io.Reader) (width, height int, err error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return parseHeader(hdr[:])
}

func parseHeader(hdr []byte) (width, height int, err error) {
	if len(hdr) < HeaderSize || string(hdr[:len(Magic)]) != Magic {
		return 0, 0, ErrFormat
	}
	w := int32(binary.BigEndian.Uint32(hdr[len(Magic):]))
	h := int32(binary.BigEndian.Uint32(hdr[len(Magic)+4:]))
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: size %dx%d", ErrFormat, w, h)
	}
	if w > viewer.MaxDimension || h > viewer.MaxDimension {
		return 0, 0, fmt.Errorf("%w: size %dx%d too large", ErrFormat, w, h)
	}
	if int64(w)*int64(h) > viewer.MaxPixels {
		return 0, 0, fmt.Errorf("%w: size %dx%d exceeds %d pixels", ErrFormat, w, h, viewer.MaxPixels)
	}
	return int(w), int(h), nil
}

// Decode reads a complete image.
func Decode(r io.Reader) (*viewer.Image, error) {
	width, height, err := DecodeConfig(r)
	if err != nil {
		return nil, err
	}
	return decodeRows(r, width, height)
}

// initialAlloc caps the up-front buffer; the rest grows as rows arrive so
// a short stream fails before the header's full size is committed.
const initialAlloc = 1 << 20

func decodeRows(r io.Reader, width, height int) (*viewer.Image, error) {
	rowLen := width * 4
	pix := make([]byte, 0, min(rowLen*height, initialAlloc))
	for y := 0; y < height; y++ {
		n := len(pix)
		pix = slices.Grow(pix, rowLen)[:n+rowLen]
		if _, err := io.ReadFull(r, pix[n:]); err != nil {
			return nil, fmt.Errorf("%w at row %d", ErrTruncated, y)
		}
	}
	return viewer.NewImage(width, height, pix)
}

// Encode writes m as non-premultiplied RGBA.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("imagefile: cannot encode %dx%d image", b.Dx(), b.Dy())
	}

	bw := bufio.NewWriter(w)
	var hdr [HeaderSize]byte
	copy(hdr[:], Magic)
	binary.BigEndian.PutUint32(hdr[len(Magic):], uint32(b.Dx()))
	binary.BigEndian.PutUint32(hdr[len(Magic)+4:], uint32(b.Dy()))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	row := make([]byte, b.Dx()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if n, ok := m.(*image.NRGBA); ok {
			i := n.PixOffset(b.Min.X, y)
			copy(row, n.Pix[i:i+len(row)])
		} else {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				j := (x - b.Min.X) * 4
				row[j+0] = c.R
				row[j+1] = c.G
				row[j+2] = c.B
				row[j+3] = c.A
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ToNRGBA exposes a decoded image to the standard image interfaces.
func ToNRGBA(m *viewer.Image) *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
