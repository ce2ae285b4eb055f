package viewer

import "fmt"

// fixed is an unsigned 22.10 fixed-point value used to step through source
// columns. MaxDimension keeps width<<fracBits at most 2^31, well inside
// uint32.
type fixed uint32

const fracBits = 10

func fixedFromInt(n int) fixed { return fixed(n) << fracBits }

func (f fixed) floor() int { return int(f >> fracBits) }

// Scaler resamples a source image with nearest-neighbour sampling.
type Scaler struct {
	// RowAlign rounds every destination row up to a multiple of this many
	// bytes. Values <= 4 mean tightly packed rows.
	RowAlign int
}

// Stride returns the destination row length for a raster width.
func (s Scaler) Stride(width int) int {
	n := width * 4
	if s.RowAlign > 4 {
		n = (n + s.RowAlign - 1) / s.RowAlign * s.RowAlign
	}
	return n
}

// Resample allocates a width x height raster and fills it from src.
// Non-positive target dimensions are a caller bug and panic.
func (s Scaler) Resample(src *Image, width, height int) *Raster {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		panic(fmt.Sprintf("viewer: resample to %dx%d", width, height))
	}
	stride := s.Stride(width)
	dst := &Raster{
		Width:  width,
		Height: height,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}
	s.ResampleInto(dst, src)
	return dst
}

// ResampleInto fills dst from src. The fourth byte of every destination
// pixel and the padding past Width*4 in each row are left untouched.
func (Scaler) ResampleInto(dst *Raster, src *Image) {
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		panic("viewer: resample from empty image")
	}
	if dst.Width <= 0 || dst.Height <= 0 || dst.Stride < dst.Width*4 || len(dst.Pix) < dst.Stride*dst.Height {
		panic(fmt.Sprintf("viewer: bad raster geometry %dx%d stride %d len %d",
			dst.Width, dst.Height, dst.Stride, len(dst.Pix)))
	}

	srcW, srcH := src.Width, src.Height
	dstW, dstH := dst.Width, dst.Height
	srcRow := srcW * 4
	step := fixedFromInt(srcW) / fixed(dstW)
	skip := dst.Stride - dstW*4

	o := 0
	for y := 0; y < dstH; y++ {
		sy := y * srcH / dstH
		row := src.Pix[sy*srcRow : sy*srcRow+srcRow]
		acc := fixed(srcW / dstW)
		for x := 0; x < dstW; x++ {
			p := row[acc.floor()*4:]
			dst.Pix[o+0] = p[2]
			dst.Pix[o+1] = p[1]
			dst.Pix[o+2] = p[0]
			o += 4
			acc += step
		}
		o += skip
	}
}
