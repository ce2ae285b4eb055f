// Package app wires a loaded image, the viewer core and a hal host together.
package app

import (
	"fmt"

	"lel/hal"
	"lel/viewer"
)

type Config struct {
	Bindings
	View       viewer.Config
	Background [3]uint8
	RowAlign   int
}

type app struct {
	v    *viewer.Viewer
	keys Bindings
	log  hal.Logger
	pres *fbPresenter

	disp <-chan hal.DisplayEvent
	kbd  <-chan hal.KeyEvent
	ptr  <-chan hal.PointerEvent
}

// New hands src to a fresh viewer drawing into h's framebuffer and returns
// the step function the host calls once per tick. The step returns
// hal.ErrQuit when the user asks to quit.
func New(h hal.HAL, src *viewer.Image, cfg Config) func() error {
	a, err := newApp(h, src, cfg)
	if err != nil {
		return func() error { return err }
	}
	return guardStep(a.log, a.step)
}

func newApp(h hal.HAL, src *viewer.Image, cfg Config) (*app, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("lel: no framebuffer")
	}
	fb := disp.Framebuffer()

	vc := cfg.View
	if vc.Width <= 0 || vc.Height <= 0 {
		vc.Width, vc.Height = fb.Width(), fb.Height()
	}

	a := &app{
		keys: cfg.Bindings,
		log:  h.Logger(),
		pres: &fbPresenter{fb: fb, bg: cfg.Background, log: h.Logger()},
		disp: disp.Events(),
	}
	if in := h.Input(); in != nil {
		if k := in.Keyboard(); k != nil {
			a.kbd = k.Events()
		}
		if p := in.Pointer(); p != nil {
			a.ptr = p.Events()
		}
	}

	a.v = viewer.New(vc, viewer.Scaler{RowAlign: cfg.RowAlign}, a.pres)
	if err := a.v.Load(src); err != nil {
		return nil, fmt.Errorf("lel: %w", err)
	}
	a.infof("lel: %dx%d image, window %dx%d, mode %s, zoom %g",
		src.Width, src.Height, vc.Width, vc.Height, a.v.Mode(), a.v.Zoom())
	return a, nil
}

// step drains every pending event: display events first so that key
// handlers see the current window size, then keys, then the wheel.
func (a *app) step() error {
	for drained := false; !drained; {
		select {
		case ev := <-a.disp:
			if c, ok := displayCommand(ev); ok {
				a.apply(c)
			}
		default:
			drained = true
		}
	}

	for drained := false; !drained; {
		select {
		case ev := <-a.kbd:
			if c, ok := a.keys.keyCommand(ev, a.v.WindowSize()); ok {
				if a.apply(c).Quit {
					return hal.ErrQuit
				}
			}
		default:
			drained = true
		}
	}

	for drained := false; !drained; {
		select {
		case ev := <-a.ptr:
			if c, ok := a.keys.wheelCommand(ev); ok {
				a.apply(c)
			}
		default:
			drained = true
		}
	}
	return nil
}

func (a *app) apply(c viewer.Command) viewer.Outcome {
	out := a.v.Apply(c)
	if out.Rescaled {
		size := a.v.TargetSize()
		a.debugf("lel: %s: rescaled to %dx%d", c, size.X, size.Y)
	}
	if out.Redrawn {
		a.debugf("lel: %s: composited at pan %v", c, a.v.PanOffset())
	}
	return out
}

func (a *app) infof(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

func (a *app) debugf(format string, args ...any) {
	if d, ok := a.log.(hal.DebugLogger); ok {
		d.Debug(fmt.Sprintf(format, args...))
	}
}
