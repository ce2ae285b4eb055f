package hal

import "os"

type hostHAL struct {
	logger Logger
	fb     *hostFramebuffer
	disp   *hostDisplay
	kbd    *hostKeyboard
	ptr    *hostPointer
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	logger := cfg.Logger
	if logger == nil {
		logger = NewLogger(os.Stderr, "info")
	}
	fb := newHostFramebuffer(cfg.Width, cfg.Height, cfg.RowAlign)
	return &hostHAL{
		logger: logger,
		fb:     fb,
		disp:   &hostDisplay{fb: fb, ch: make(chan DisplayEvent, 16)},
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.disp }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd, ptr: h.ptr} }

type hostDisplay struct {
	fb *hostFramebuffer
	ch chan DisplayEvent
}

func (d *hostDisplay) Framebuffer() Framebuffer    { return d.fb }
func (d *hostDisplay) Events() <-chan DisplayEvent { return d.ch }

func (d *hostDisplay) emit(ev DisplayEvent) {
	select {
	case d.ch <- ev:
	default:
	}
}

// setSize resizes the framebuffer and queues resize and expose, in that
// order, if the size changed.
func (d *hostDisplay) setSize(width, height int) {
	if !d.fb.resize(width, height) {
		return
	}
	d.emit(DisplayEvent{Kind: DisplayResize, Width: d.fb.Width(), Height: d.fb.Height()})
	d.emit(DisplayEvent{Kind: DisplayExpose})
}

func (d *hostDisplay) expose() {
	d.emit(DisplayEvent{Kind: DisplayExpose})
}

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }
