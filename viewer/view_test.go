package viewer

import (
	"errors"
	"image"
	"math"
	"testing"
)

type compositeCall struct {
	size image.Point
	pan  image.Point
	mode FitMode
	win  image.Point
}

type recordingPresenter struct {
	calls []compositeCall
}

func (p *recordingPresenter) Composite(r *Raster, pan image.Point, mode FitMode, win image.Point) {
	p.calls = append(p.calls, compositeCall{size: r.Size(), pan: pan, mode: mode, win: win})
}

func (p *recordingPresenter) last(t *testing.T) compositeCall {
	t.Helper()
	if len(p.calls) == 0 {
		t.Fatal("expected a composite call")
	}
	return p.calls[len(p.calls)-1]
}

func newLoaded(t *testing.T, srcW, srcH int, cfg Config) (*Viewer, *recordingPresenter) {
	t.Helper()
	p := &recordingPresenter{}
	v := New(cfg, Scaler{}, p)
	if err := v.Load(markerImage(t, srcW, srcH)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	v.InvalidateDraw()
	if !v.Status().Has(Loaded | Scaled | Drawn) {
		t.Fatalf("status after first draw = %s", v.Status())
	}
	return v, p
}

func TestUpdateWaitsForLoad(t *testing.T) {
	p := &recordingPresenter{}
	v := New(Config{Width: 10, Height: 10, Zoom: 1}, Scaler{}, p)

	if out := v.InvalidateDraw(); out.Rescaled || out.Redrawn {
		t.Fatalf("unexpected work before load: %+v", out)
	}
	if len(p.calls) != 0 {
		t.Fatalf("composite called %d times before load", len(p.calls))
	}
	if v.Raster() != nil {
		t.Fatal("raster allocated before load")
	}
}

func TestLoadOnce(t *testing.T) {
	v := New(Config{Width: 4, Height: 4}, Scaler{}, nil)
	img := markerImage(t, 2, 2)
	if err := v.Load(img); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := v.Load(img); !errors.Is(err, ErrAlreadyLoaded) {
		t.Fatalf("second Load err=%v, want ErrAlreadyLoaded", err)
	}
	if v.Zoom() != 1 {
		t.Fatalf("default zoom=%g, want 1", v.Zoom())
	}
}

func TestNoOpCommandsLeaveStateUntouched(t *testing.T) {
	v, p := newLoaded(t, 20, 10, Config{Width: 40, Height: 40, Mode: Aspect, Zoom: 1})
	raster := v.Raster()
	calls := len(p.calls)
	status := v.Status()

	for name, op := range map[string]func() Outcome{
		"SetFitMode same": func() Outcome { return v.SetFitMode(Aspect) },
		"SetZoom same":    func() Outcome { return v.SetZoom(1) },
		"Pan zero":        func() Outcome { return v.Pan(0, 0) },
		"Resize same":     func() Outcome { return v.Resize(40, 40) },
		"Resize invalid":  func() Outcome { return v.Resize(0, 12) },
	} {
		if out := op(); out != (Outcome{}) {
			t.Fatalf("%s: outcome %+v, want none", name, out)
		}
		if v.Status() != status {
			t.Fatalf("%s: status %s, want %s", name, v.Status(), status)
		}
		if v.Raster() != raster {
			t.Fatalf("%s: raster replaced", name)
		}
		if len(p.calls) != calls {
			t.Fatalf("%s: composite called", name)
		}
	}
}

func TestInvalidationCoverage(t *testing.T) {
	// Without Loaded, Update does nothing, so the cleared bits stay visible.
	tests := []struct {
		name string
		op   func(v *Viewer) Outcome
		want Status
	}{
		{"SetFitMode", func(v *Viewer) Outcome { return v.SetFitMode(FullStretch) }, 0},
		{"IncrementZoom", func(v *Viewer) Outcome { return v.IncrementZoom(0.25) }, 0},
		{"SetZoom", func(v *Viewer) Outcome { return v.SetZoom(3) }, 0},
		{"Reset", func(v *Viewer) Outcome { return v.Reset() }, 0},
		{"Resize", func(v *Viewer) Outcome { return v.Resize(11, 12) }, Drawn},
		{"InvalidateDraw", func(v *Viewer) Outcome { return v.InvalidateDraw() }, Scaled},
		{"Pan", func(v *Viewer) Outcome { return v.Pan(3, 4) }, Scaled},
		{"ResetPan", func(v *Viewer) Outcome { return v.ResetPan() }, Scaled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New(Config{Width: 10, Height: 10, Zoom: 1}, Scaler{}, nil)
			v.status = Scaled | Drawn
			tc.op(v)
			if v.Status() != tc.want {
				t.Fatalf("status=%s, want %s", v.Status(), tc.want)
			}
		})
	}
}

func TestEffectiveChangesRescaleAndRedrawOnce(t *testing.T) {
	tests := []struct {
		name        string
		op          func(v *Viewer) Outcome
		wantRescale bool
	}{
		{"SetFitMode", func(v *Viewer) Outcome { return v.SetFitMode(FullAspect) }, true},
		{"IncrementZoom", func(v *Viewer) Outcome { return v.IncrementZoom(0.5) }, true},
		{"SetZoom", func(v *Viewer) Outcome { return v.SetZoom(2) }, true},
		{"Reset", func(v *Viewer) Outcome { return v.Reset() }, true},
		{"Pan", func(v *Viewer) Outcome { return v.Pan(1, 1) }, false},
		{"InvalidateDraw", func(v *Viewer) Outcome { return v.InvalidateDraw() }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, p := newLoaded(t, 8, 8, Config{Width: 16, Height: 16, Zoom: 1})
			before := len(p.calls)
			out := tc.op(v)
			if out.Rescaled != tc.wantRescale || !out.Redrawn {
				t.Fatalf("outcome %+v, want rescaled=%v redrawn=true", out, tc.wantRescale)
			}
			if got := len(p.calls) - before; got != 1 {
				t.Fatalf("composite called %d times, want 1", got)
			}
			if !v.Status().Has(Loaded | Scaled | Drawn) {
				t.Fatalf("status=%s after update", v.Status())
			}
		})
	}
}

func TestResizeDefersWorkUntilExpose(t *testing.T) {
	v, p := newLoaded(t, 10, 10, Config{Width: 10, Height: 10, Mode: FullStretch, Zoom: 1})
	calls := len(p.calls)

	v.Resize(30, 20)
	if len(p.calls) != calls {
		t.Fatal("resize composited before expose")
	}
	if v.Status().Has(Scaled) || !v.Status().Has(Drawn) {
		t.Fatalf("status=%s, want drawn without scaled", v.Status())
	}

	out := v.InvalidateDraw()
	if !out.Rescaled || !out.Redrawn {
		t.Fatalf("outcome %+v after expose", out)
	}
	if got := v.Raster().Size(); got != image.Pt(30, 20) {
		t.Fatalf("raster size %v, want 30x20", got)
	}
}

func TestRescaleForcesCompositeEvenIfDrawn(t *testing.T) {
	v, p := newLoaded(t, 10, 10, Config{Width: 10, Height: 10, Mode: FullStretch, Zoom: 1})
	v.Resize(20, 20)
	calls := len(p.calls)

	out := v.Update()
	if !out.Rescaled || !out.Redrawn {
		t.Fatalf("outcome %+v, want rescale and redraw", out)
	}
	if len(p.calls) != calls+1 {
		t.Fatal("new raster was not composited")
	}
	if p.last(t).size != image.Pt(20, 20) {
		t.Fatalf("composited %v, want 20x20", p.last(t).size)
	}
}

func TestZoomFloor(t *testing.T) {
	v, _ := newLoaded(t, 4, 4, Config{Width: 4, Height: 4, Zoom: 1})
	for i := 0; i < 10; i++ {
		v.IncrementZoom(-0.25)
		if v.Zoom() <= 0 {
			t.Fatalf("zoom reached %g", v.Zoom())
		}
	}
	if v.Zoom() != 0.25 {
		t.Fatalf("zoom=%g, want 0.25", v.Zoom())
	}

	status := v.Status()
	if out := v.IncrementZoom(-0.25); out != (Outcome{}) {
		t.Fatalf("rejected zoom did work: %+v", out)
	}
	if v.Status() != status || v.Zoom() != 0.25 {
		t.Fatal("rejected zoom changed state")
	}
	if out := v.SetZoom(0); out != (Outcome{}) || v.Zoom() != 0.25 {
		t.Fatal("SetZoom(0) accepted")
	}
	if out := v.SetZoom(-2); out != (Outcome{}) || v.Zoom() != 0.25 {
		t.Fatal("SetZoom(-2) accepted")
	}
}

func TestNonFiniteZoomRejected(t *testing.T) {
	for _, z := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := New(Config{Width: 4, Height: 4, Zoom: z}, Scaler{}, nil)
		if v.Zoom() != 1 {
			t.Fatalf("New(zoom=%g): zoom=%g, want 1", z, v.Zoom())
		}
		if err := v.Load(markerImage(t, 4, 4)); err != nil {
			t.Fatalf("Load: %v", err)
		}
		if got := v.TargetSize(); got != image.Pt(4, 4) {
			t.Fatalf("New(zoom=%g): target %v, want 4x4", z, got)
		}
		if out := v.SetZoom(z); out != (Outcome{}) || v.Zoom() != 1 {
			t.Fatalf("SetZoom(%g) accepted", z)
		}
		if out := v.IncrementZoom(z); out != (Outcome{}) || v.Zoom() != 1 {
			t.Fatalf("IncrementZoom(%g) accepted", z)
		}
	}
}

func TestZoomRefusedPastPixelCap(t *testing.T) {
	v := New(Config{Width: 100, Height: 100, Zoom: 1}, Scaler{}, nil)
	// Load only checks geometry; the refused zooms below never resample.
	if err := v.Load(&Image{Width: 8192, Height: 8192}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out := v.SetZoom(2); out != (Outcome{}) || v.Zoom() != 1 {
		t.Fatalf("SetZoom(2) accepted: zoom=%g", v.Zoom())
	}
	if out := v.IncrementZoom(1); out != (Outcome{}) || v.Zoom() != 1 {
		t.Fatalf("IncrementZoom(1) accepted: zoom=%g", v.Zoom())
	}
}

func TestStartupZoomCappedByPixelCount(t *testing.T) {
	got := targetSize(Aspect, 100, image.Pt(8192, 4096), image.Pt(10, 10))
	if got.X*got.Y > MaxPixels {
		t.Fatalf("target %v exceeds %d pixels", got, MaxPixels)
	}
	if d := got.X - 2*got.Y; d < -1 || d > 1 {
		t.Fatalf("target %v lost the 2:1 aspect", got)
	}
}

func TestTinyZoomClampsTargetToOnePixel(t *testing.T) {
	v, _ := newLoaded(t, 2, 3, Config{Width: 4, Height: 4, Zoom: 1})
	v.SetZoom(0.1)
	if got := v.Raster().Size(); got != image.Pt(1, 1) {
		t.Fatalf("raster %v, want 1x1", got)
	}
}

func TestFullAspectTargetSize(t *testing.T) {
	tests := []struct {
		name string
		src  image.Point
		win  image.Point
		want image.Point
	}{
		{"wide window constrains height", image.Pt(200, 200), image.Pt(400, 100), image.Pt(100, 100)},
		{"tall window constrains width", image.Pt(200, 200), image.Pt(100, 400), image.Pt(100, 100)},
		{"wide source in square window", image.Pt(300, 100), image.Pt(150, 150), image.Pt(150, 50)},
		{"tall source in square window", image.Pt(100, 300), image.Pt(150, 150), image.Pt(50, 150)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := targetSize(FullAspect, 1, tc.src, tc.win); got != tc.want {
				t.Fatalf("target=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestTargetSizeByMode(t *testing.T) {
	src := image.Pt(100, 50)
	win := image.Pt(320, 240)
	if got := targetSize(FullStretch, 3, src, win); got != win {
		t.Fatalf("stretch=%v, want %v", got, win)
	}
	if got := targetSize(Aspect, 1.5, src, win); got != image.Pt(150, 75) {
		t.Fatalf("aspect=%v, want 150x75", got)
	}
}

func TestZoomAndPanScenario(t *testing.T) {
	v, p := newLoaded(t, 100, 50, Config{Width: 100, Height: 50, Mode: Aspect, Zoom: 1})
	if got := p.last(t); got.size != image.Pt(100, 50) {
		t.Fatalf("initial raster %v", got.size)
	}

	out := v.SetZoom(2)
	if !out.Rescaled || !out.Redrawn {
		t.Fatalf("SetZoom outcome %+v", out)
	}
	if got := v.Raster().Size(); got != image.Pt(200, 100) {
		t.Fatalf("raster %v, want 200x100", got)
	}
	if !v.Status().Has(Scaled | Drawn) {
		t.Fatalf("status=%s", v.Status())
	}
	c := p.last(t)
	centred := DrawOffset(c.size, c.pan, c.mode, c.win)
	if centred != image.Pt(-50, -25) {
		t.Fatalf("centred offset %v, want (-50,-25)", centred)
	}

	raster := v.Raster()
	out = v.Pan(10, 0)
	if out.Rescaled || !out.Redrawn {
		t.Fatalf("Pan outcome %+v", out)
	}
	if v.PanOffset() != image.Pt(-10, 0) {
		t.Fatalf("pan=%v, want (-10,0)", v.PanOffset())
	}
	if v.Raster() != raster {
		t.Fatal("pan replaced the raster")
	}
	c = p.last(t)
	if c.pan != image.Pt(-10, 0) {
		t.Fatalf("composite pan %v", c.pan)
	}
	shifted := DrawOffset(c.size, c.pan, c.mode, c.win)
	if d := shifted.Sub(centred); d != image.Pt(10, 0) {
		t.Fatalf("offset moved by %v, want (10,0)", d)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	v, _ := newLoaded(t, 10, 10, Config{Width: 50, Height: 50, Mode: FullAspect, Zoom: 3})
	v.Pan(5, -5)
	v.Reset()
	if v.Mode() != Aspect || v.Zoom() != 1 || v.PanOffset() != (image.Point{}) {
		t.Fatalf("after reset: mode=%s zoom=%g pan=%v", v.Mode(), v.Zoom(), v.PanOffset())
	}
	if got := v.Raster().Size(); got != image.Pt(10, 10) {
		t.Fatalf("raster %v, want 10x10", got)
	}
}

func TestDrawOffset(t *testing.T) {
	tests := []struct {
		name   string
		raster image.Point
		pan    image.Point
		mode   FitMode
		win    image.Point
		want   image.Point
	}{
		{"centred smaller", image.Pt(50, 20), image.Point{}, Aspect, image.Pt(100, 100), image.Pt(25, 40)},
		{"centred larger", image.Pt(300, 300), image.Point{}, FullAspect, image.Pt(100, 100), image.Pt(-100, -100)},
		{"pan subtracts", image.Pt(50, 50), image.Pt(-10, 5), Aspect, image.Pt(100, 100), image.Pt(35, 20)},
		{"stretch ignores pan", image.Pt(100, 100), image.Pt(7, 7), FullStretch, image.Pt(100, 100), image.Point{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DrawOffset(tc.raster, tc.pan, tc.mode, tc.win); got != tc.want {
				t.Fatalf("offset=%v, want %v", got, tc.want)
			}
		})
	}
}
