package app

import (
	"image"
	"testing"

	"lel/hal"
	"lel/viewer"
)

func TestKeyCommand(t *testing.T) {
	b := Bindings{ZoomStep: 0.25, PanDivisor: 20}
	win := image.Pt(200, 100)

	tests := []struct {
		name string
		ev   hal.KeyEvent
		want viewer.Command
	}{
		{"escape", hal.KeyEvent{Code: hal.KeyEscape, Press: true}, viewer.Command{Kind: viewer.CmdQuit}},
		{"q", hal.KeyEvent{Rune: 'q', Press: true}, viewer.Command{Kind: viewer.CmdQuit}},
		{"left", hal.KeyEvent{Code: hal.KeyLeft, Press: true}, viewer.Command{Kind: viewer.CmdPan, X: 10}},
		{"h", hal.KeyEvent{Rune: 'h', Press: true}, viewer.Command{Kind: viewer.CmdPan, X: 10}},
		{"right", hal.KeyEvent{Code: hal.KeyRight, Press: true}, viewer.Command{Kind: viewer.CmdPan, X: -10}},
		{"l", hal.KeyEvent{Rune: 'l', Press: true}, viewer.Command{Kind: viewer.CmdPan, X: -10}},
		{"up", hal.KeyEvent{Code: hal.KeyUp, Press: true}, viewer.Command{Kind: viewer.CmdPan, Y: 5}},
		{"k", hal.KeyEvent{Rune: 'k', Press: true}, viewer.Command{Kind: viewer.CmdPan, Y: 5}},
		{"down", hal.KeyEvent{Code: hal.KeyDown, Press: true}, viewer.Command{Kind: viewer.CmdPan, Y: -5}},
		{"j", hal.KeyEvent{Rune: 'j', Press: true}, viewer.Command{Kind: viewer.CmdPan, Y: -5}},
		{"a", hal.KeyEvent{Rune: 'a', Press: true}, viewer.Command{Kind: viewer.CmdSetFitMode, Mode: viewer.FullAspect}},
		{"o", hal.KeyEvent{Rune: 'o', Press: true}, viewer.Command{Kind: viewer.CmdSetFitMode, Mode: viewer.Aspect}},
		{"f", hal.KeyEvent{Rune: 'f', Press: true}, viewer.Command{Kind: viewer.CmdSetFitMode, Mode: viewer.FullStretch}},
		{"plus", hal.KeyEvent{Rune: '+', Press: true}, viewer.Command{Kind: viewer.CmdZoom, Factor: 0.25}},
		{"equal", hal.KeyEvent{Rune: '=', Press: true}, viewer.Command{Kind: viewer.CmdZoom, Factor: 0.25}},
		{"minus", hal.KeyEvent{Rune: '-', Press: true}, viewer.Command{Kind: viewer.CmdZoom, Factor: -0.25}},
		{"underscore", hal.KeyEvent{Rune: '_', Press: true}, viewer.Command{Kind: viewer.CmdZoom, Factor: -0.25}},
		{"1", hal.KeyEvent{Rune: '1', Press: true}, viewer.Command{Kind: viewer.CmdSetZoom, Factor: 1}},
		{"2", hal.KeyEvent{Rune: '2', Press: true}, viewer.Command{Kind: viewer.CmdSetZoom, Factor: 2}},
		{"3", hal.KeyEvent{Rune: '3', Press: true}, viewer.Command{Kind: viewer.CmdSetZoom, Factor: 4}},
		{"0", hal.KeyEvent{Rune: '0', Press: true}, viewer.Command{Kind: viewer.CmdReset}},
		{"r", hal.KeyEvent{Rune: 'r', Press: true}, viewer.Command{Kind: viewer.CmdResetPan}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := b.keyCommand(tc.ev, win)
			if !ok || got != tc.want {
				t.Fatalf("keyCommand=%v,%v, want %v", got, ok, tc.want)
			}
		})
	}
}

func TestKeyCommandIgnores(t *testing.T) {
	b := Bindings{ZoomStep: 0.25, PanDivisor: 20}
	for _, ev := range []hal.KeyEvent{
		{Code: hal.KeyLeft, Press: false},
		{Rune: 'z', Press: true},
		{Code: hal.KeyUnknown, Press: true},
	} {
		if c, ok := b.keyCommand(ev, image.Pt(100, 100)); ok {
			t.Fatalf("%+v mapped to %v", ev, c)
		}
	}
}

func TestWheelCommand(t *testing.T) {
	b := Bindings{ZoomStep: 0.5}
	if c, ok := b.wheelCommand(hal.PointerEvent{WheelY: 1}); !ok || c.Factor != 0.5 {
		t.Fatalf("wheel up=%v,%v", c, ok)
	}
	if c, ok := b.wheelCommand(hal.PointerEvent{WheelY: -2}); !ok || c.Factor != -0.5 {
		t.Fatalf("wheel down=%v,%v", c, ok)
	}
	if _, ok := b.wheelCommand(hal.PointerEvent{WheelX: 3}); ok {
		t.Fatal("horizontal wheel mapped")
	}
}
