package app

import (
	"image"

	"lel/hal"
	"lel/viewer"
)

// fbPresenter composites rasters onto a hal framebuffer. Rasters are
// already in the framebuffer's XRGB8888 layout, so the blit is a row copy.
type fbPresenter struct {
	fb         hal.Framebuffer
	bg         [3]uint8
	log        hal.Logger
	presentErr error
}

func (p *fbPresenter) Composite(r *viewer.Raster, pan image.Point, mode viewer.FitMode, win image.Point) {
	p.fb.ClearRGB(p.bg[0], p.bg[1], p.bg[2])

	off := viewer.DrawOffset(r.Size(), pan, mode, win)
	blit(p.fb, r, off)

	if err := p.fb.Present(); err != nil && p.presentErr == nil {
		p.presentErr = err
		if p.log != nil {
			p.log.WriteLineString("lel: present: " + err.Error())
		}
	}
}

// blit copies r to fb with its top-left corner at off, clipped to the
// framebuffer.
func blit(fb hal.Framebuffer, r *viewer.Raster, off image.Point) {
	if fb.Format() != hal.PixelFormatXRGB8888 {
		return
	}
	buf := fb.Buffer()
	stride := fb.StrideBytes()

	dst := image.Rect(0, 0, fb.Width(), fb.Height())
	vis := image.Rectangle{Min: off, Max: off.Add(r.Size())}.Intersect(dst)
	if vis.Empty() {
		return
	}

	n := vis.Dx() * 4
	sx := (vis.Min.X - off.X) * 4
	for y := vis.Min.Y; y < vis.Max.Y; y++ {
		srow := (y-off.Y)*r.Stride + sx
		drow := y*stride + vis.Min.X*4
		if drow+n > len(buf) || srow+n > len(r.Pix) {
			return
		}
		copy(buf[drow:drow+n], r.Pix[srow:srow+n])
	}
}
