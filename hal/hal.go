package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// DebugLogger is implemented by loggers that can drop verbose lines
// cheaply when debug output is off.
type DebugLogger interface {
	Logger
	Debug(s string)
}

// ErrQuit is returned by an app step to end the run loop cleanly.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatXRGB8888 is 32bpp, bytes B,G,R,X in memory. X is padding
	// and is ignored on output.
	PixelFormatXRGB8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// DisplayEventKind says what happened to the output surface.
type DisplayEventKind uint8

const (
	// DisplayResize reports a new surface size; the framebuffer has
	// already been reallocated.
	DisplayResize DisplayEventKind = iota + 1
	// DisplayExpose asks for the surface contents to be redrawn.
	DisplayExpose
)

// DisplayEvent is a window-system notification.
type DisplayEvent struct {
	Kind   DisplayEventKind
	Width  int
	Height int
}

// Display provides access to the framebuffer and its events.
type Display interface {
	Framebuffer() Framebuffer
	Events() <-chan DisplayEvent
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown
// and the typed Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEvent carries a wheel step. Positive WheelY scrolls up.
type PointerEvent struct {
	WheelX float64
	WheelY float64
}

// Pointer provides mouse events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
