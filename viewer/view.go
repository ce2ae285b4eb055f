package viewer

import (
	"errors"
	"image"
	"math"
)

var ErrAlreadyLoaded = errors.New("viewer: image already loaded")

// Presenter puts a raster on screen. It is called at most once per update
// pass, with the raster, the current pan offset, the fit mode and the
// window size.
type Presenter interface {
	Composite(r *Raster, pan image.Point, mode FitMode, win image.Point)
}

// Config is the startup view configuration.
type Config struct {
	Width  int
	Height int
	Mode   FitMode
	Zoom   float64
}

// Outcome reports the work a command caused.
type Outcome struct {
	Rescaled bool
	Redrawn  bool
	Quit     bool
}

func (o Outcome) merge(p Outcome) Outcome {
	return Outcome{
		Rescaled: o.Rescaled || p.Rescaled,
		Redrawn:  o.Redrawn || p.Redrawn,
		Quit:     o.Quit || p.Quit,
	}
}

// Viewer owns the source image, the view state and the cached raster.
// It is not safe for concurrent use; one event is handled to completion
// before the next.
type Viewer struct {
	src     *Image
	scaler  Scaler
	present Presenter

	mode   FitMode
	zoom   float64
	pan    image.Point
	win    image.Point
	status Status

	raster *Raster
}

// New returns a viewer with no image. Non-positive window dimensions fall
// back to 1 and a zoom that is not finite and positive to 1.0.
func New(cfg Config, s Scaler, p Presenter) *Viewer {
	v := &Viewer{
		scaler:  s,
		present: p,
		mode:    cfg.Mode,
		zoom:    cfg.Zoom,
		win:     image.Pt(cfg.Width, cfg.Height),
	}
	if !ValidZoom(v.zoom) {
		v.zoom = 1
	}
	if v.win.X <= 0 {
		v.win.X = 1
	}
	if v.win.Y <= 0 {
		v.win.Y = 1
	}
	return v
}

// Load hands the source image to the viewer. It may be called once.
// Nothing is drawn until the first expose.
func (v *Viewer) Load(src *Image) error {
	if v.status.Has(Loaded) {
		return ErrAlreadyLoaded
	}
	if src == nil || src.Width <= 0 || src.Height <= 0 {
		return ErrBadImage
	}
	v.src = src
	v.status |= Loaded
	return nil
}

func (v *Viewer) Mode() FitMode           { return v.mode }
func (v *Viewer) Zoom() float64           { return v.zoom }
func (v *Viewer) PanOffset() image.Point  { return v.pan }
func (v *Viewer) WindowSize() image.Point { return v.win }
func (v *Viewer) Status() Status          { return v.status }

// Raster returns the cached target raster, or nil before the first scale.
func (v *Viewer) Raster() *Raster { return v.raster }

func (v *Viewer) invalidate(f Status) { v.status &^= f }

func (v *Viewer) SetFitMode(mode FitMode) Outcome {
	if mode == v.mode {
		return Outcome{}
	}
	v.mode = mode
	v.invalidate(Scaled | Drawn)
	return v.Update()
}

// Pan moves the view by (dx, dy); the image moves the opposite way. The
// raster does not depend on the pan offset, so only the draw is redone.
func (v *Viewer) Pan(dx, dy int) Outcome {
	if dx == 0 && dy == 0 {
		return Outcome{}
	}
	v.pan.X -= dx
	v.pan.Y -= dy
	v.invalidate(Drawn)
	return v.Update()
}

// IncrementZoom adds delta to the zoom factor unless the result would not
// be positive or the zoomed image would exceed MaxPixels.
func (v *Viewer) IncrementZoom(delta float64) Outcome {
	z := v.zoom + delta
	if delta == 0 || !ValidZoom(z) || !v.zoomFits(z) {
		return Outcome{}
	}
	v.zoom = z
	v.invalidate(Scaled | Drawn)
	return v.Update()
}

func (v *Viewer) SetZoom(f float64) Outcome {
	if f == v.zoom || !ValidZoom(f) || !v.zoomFits(f) {
		return Outcome{}
	}
	v.zoom = f
	v.invalidate(Scaled | Drawn)
	return v.Update()
}

// Resize records a new window size. The draw is redone by the expose that
// follows, so Update is not run here.
func (v *Viewer) Resize(width, height int) Outcome {
	if width <= 0 || height <= 0 {
		return Outcome{}
	}
	if width == v.win.X && height == v.win.Y {
		return Outcome{}
	}
	v.win = image.Pt(width, height)
	v.invalidate(Scaled)
	return Outcome{}
}

// Reset restores zoom 1, Aspect mode and a centred view.
func (v *Viewer) Reset() Outcome {
	v.zoom = 1
	v.mode = Aspect
	v.pan = image.Point{}
	v.invalidate(Scaled | Drawn)
	return v.Update()
}

// ResetPan re-centres the view without touching zoom or mode.
func (v *Viewer) ResetPan() Outcome {
	v.pan = image.Point{}
	v.invalidate(Drawn)
	return v.Update()
}

// InvalidateDraw forces a composite of the current raster.
func (v *Viewer) InvalidateDraw() Outcome {
	v.invalidate(Drawn)
	return v.Update()
}

// Update rescales and composites whatever is stale, at most once each.
func (v *Viewer) Update() Outcome {
	var out Outcome
	if !v.status.Has(Loaded) {
		return out
	}
	if !v.status.Has(Scaled) {
		size := v.TargetSize()
		v.raster = v.scaler.Resample(v.src, size.X, size.Y)
		v.status |= Scaled
		v.invalidate(Drawn)
		out.Rescaled = true
	}
	if !v.status.Has(Drawn) {
		if v.present != nil {
			v.present.Composite(v.raster, v.pan, v.mode, v.win)
		}
		v.status |= Drawn
		out.Redrawn = true
	}
	return out
}

// zoomFits reports whether the source scaled by z stays within MaxPixels
// and MaxDimension.
func (v *Viewer) zoomFits(z float64) bool {
	if v.src == nil {
		return true
	}
	w, h := float64(v.src.Width)*z, float64(v.src.Height)*z
	return w <= MaxDimension && h <= MaxDimension && w*h <= MaxPixels
}

// TargetSize is the raster size for the current mode, zoom and window.
// Both axes are at least 1.
func (v *Viewer) TargetSize() image.Point {
	if v.src == nil {
		return image.Point{}
	}
	return targetSize(v.mode, v.zoom, v.src.Size(), v.win)
}

func targetSize(mode FitMode, zoom float64, src, win image.Point) image.Point {
	var p image.Point
	switch mode {
	case FullStretch:
		p = win
	case FullAspect:
		if win.X*src.Y > win.Y*src.X {
			p = image.Pt(src.X*win.Y/src.Y, win.Y)
		} else {
			p = image.Pt(win.X, src.Y*win.X/src.X)
		}
	default:
		w, h := float64(src.X)*zoom, float64(src.Y)*zoom
		if a := w * h; a > MaxPixels {
			k := math.Sqrt(MaxPixels / a)
			w, h = w*k, h*k
		}
		p = image.Pt(int(w), int(h))
	}
	p.X = clampDim(p.X)
	p.Y = clampDim(p.Y)
	return p
}

func clampDim(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxDimension {
		return MaxDimension
	}
	return n
}

// DrawOffset is where the top-left corner of a raster lands in the window:
// centred and shifted by -pan, or the origin in FullStretch mode. The
// result may be negative; clipping belongs to the presenter.
func DrawOffset(raster, pan image.Point, mode FitMode, win image.Point) image.Point {
	if mode == FullStretch {
		return image.Point{}
	}
	return win.Sub(raster).Div(2).Sub(pan)
}
