package app

import (
	"image"

	"lel/hal"
	"lel/viewer"
)

// Bindings holds the tunables of the key map.
type Bindings struct {
	ZoomStep   float64
	PanDivisor int
}

// keyCommand maps a key press to a viewer command. Pan distances are a
// fraction of the current window size.
func (b Bindings) keyCommand(ev hal.KeyEvent, win image.Point) (viewer.Command, bool) {
	if !ev.Press {
		return viewer.Command{}, false
	}
	div := b.PanDivisor
	if div <= 0 {
		div = 20
	}
	stepX, stepY := win.X/div, win.Y/div

	switch ev.Code {
	case hal.KeyEscape:
		return viewer.Command{Kind: viewer.CmdQuit}, true
	case hal.KeyLeft:
		return viewer.Command{Kind: viewer.CmdPan, X: stepX}, true
	case hal.KeyRight:
		return viewer.Command{Kind: viewer.CmdPan, X: -stepX}, true
	case hal.KeyUp:
		return viewer.Command{Kind: viewer.CmdPan, Y: stepY}, true
	case hal.KeyDown:
		return viewer.Command{Kind: viewer.CmdPan, Y: -stepY}, true
	}

	switch ev.Rune {
	case 'q':
		return viewer.Command{Kind: viewer.CmdQuit}, true
	case 'h':
		return viewer.Command{Kind: viewer.CmdPan, X: stepX}, true
	case 'l':
		return viewer.Command{Kind: viewer.CmdPan, X: -stepX}, true
	case 'k':
		return viewer.Command{Kind: viewer.CmdPan, Y: stepY}, true
	case 'j':
		return viewer.Command{Kind: viewer.CmdPan, Y: -stepY}, true
	case 'a':
		return viewer.Command{Kind: viewer.CmdSetFitMode, Mode: viewer.FullAspect}, true
	case 'o':
		return viewer.Command{Kind: viewer.CmdSetFitMode, Mode: viewer.Aspect}, true
	case 'f':
		return viewer.Command{Kind: viewer.CmdSetFitMode, Mode: viewer.FullStretch}, true
	case '+', '=':
		return viewer.Command{Kind: viewer.CmdZoom, Factor: b.ZoomStep}, true
	case '-', '_':
		return viewer.Command{Kind: viewer.CmdZoom, Factor: -b.ZoomStep}, true
	case '1':
		return viewer.Command{Kind: viewer.CmdSetZoom, Factor: 1}, true
	case '2':
		return viewer.Command{Kind: viewer.CmdSetZoom, Factor: 2}, true
	case '3':
		return viewer.Command{Kind: viewer.CmdSetZoom, Factor: 4}, true
	case '0':
		return viewer.Command{Kind: viewer.CmdReset}, true
	case 'r':
		return viewer.Command{Kind: viewer.CmdResetPan}, true
	}
	return viewer.Command{}, false
}

// wheelCommand zooms in on wheel-up and out on wheel-down.
func (b Bindings) wheelCommand(ev hal.PointerEvent) (viewer.Command, bool) {
	switch {
	case ev.WheelY > 0:
		return viewer.Command{Kind: viewer.CmdZoom, Factor: b.ZoomStep}, true
	case ev.WheelY < 0:
		return viewer.Command{Kind: viewer.CmdZoom, Factor: -b.ZoomStep}, true
	}
	return viewer.Command{}, false
}

func displayCommand(ev hal.DisplayEvent) (viewer.Command, bool) {
	switch ev.Kind {
	case hal.DisplayResize:
		return viewer.Command{Kind: viewer.CmdResize, X: ev.Width, Y: ev.Height}, true
	case hal.DisplayExpose:
		return viewer.Command{Kind: viewer.CmdInvalidateDraw}, true
	}
	return viewer.Command{}, false
}
