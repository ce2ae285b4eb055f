package hal

import (
	"image"
	"image/png"
	"io"
	"sync"
)

type hostFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	rowAlign int
	buf      []byte
	gen      uint64
}

func newHostFramebuffer(width, height, rowAlign int) *hostFramebuffer {
	f := &hostFramebuffer{rowAlign: rowAlign}
	f.resize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatXRGB8888 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

// Present publishes the buffer to the window's next Draw.
func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	f.gen++
	f.mu.Unlock()
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for y := 0; y < f.height; y++ {
		row := f.buf[y*f.stride : y*f.stride+f.width*4]
		for i := 0; i < len(row); i += 4 {
			putXRGB(row[i:], r, g, b)
		}
	}
}

// resize reallocates the buffer; contents are lost. It reports whether
// the size changed.
func (f *hostFramebuffer) resize(width, height int) bool {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.buf != nil && width == f.width && height == f.height {
		return false
	}
	f.width = width
	f.height = height
	f.stride = alignStride(width, f.rowAlign)
	f.buf = make([]byte, f.stride*height)
	f.gen++
	return true
}

// snapshotRGBA converts the buffer into dst if it changed since gen and
// returns the current generation.
func (f *hostFramebuffer) snapshotRGBA(dst *image.RGBA, gen uint64) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen == f.gen {
		return gen
	}
	xrgbToRGBA(dst.Pix, f.buf, f.width, f.height, f.stride)
	return f.gen
}

func (f *hostFramebuffer) writePNG(w io.Writer) error {
	f.mu.Lock()
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	xrgbToRGBA(img.Pix, f.buf, f.width, f.height, f.stride)
	f.mu.Unlock()
	return png.Encode(w, img)
}
