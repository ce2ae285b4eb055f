package viewer

import (
	"image"
	"testing"
)

func TestApplyDispatches(t *testing.T) {
	v, _ := newLoaded(t, 10, 10, Config{Width: 20, Height: 20, Zoom: 1})

	v.Apply(Command{Kind: CmdSetFitMode, Mode: FullStretch})
	if v.Mode() != FullStretch {
		t.Fatalf("mode=%s", v.Mode())
	}
	v.Apply(Command{Kind: CmdZoom, Factor: 0.5})
	v.Apply(Command{Kind: CmdSetZoom, Factor: 4})
	if v.Zoom() != 4 {
		t.Fatalf("zoom=%g, want 4", v.Zoom())
	}
	v.Apply(Command{Kind: CmdPan, X: 2, Y: -3})
	if v.PanOffset() != image.Pt(-2, 3) {
		t.Fatalf("pan=%v", v.PanOffset())
	}
	v.Apply(Command{Kind: CmdResetPan})
	if v.PanOffset() != (image.Point{}) {
		t.Fatalf("pan=%v after reset-pan", v.PanOffset())
	}
	v.Apply(Command{Kind: CmdResize, X: 33, Y: 44})
	if v.WindowSize() != image.Pt(33, 44) {
		t.Fatalf("win=%v", v.WindowSize())
	}
	v.Apply(Command{Kind: CmdReset})
	if v.Mode() != Aspect || v.Zoom() != 1 {
		t.Fatalf("reset: mode=%s zoom=%g", v.Mode(), v.Zoom())
	}
}

func TestApplyAllStopsAtQuit(t *testing.T) {
	v, _ := newLoaded(t, 4, 4, Config{Width: 4, Height: 4, Zoom: 1})
	out := v.ApplyAll([]Command{
		{Kind: CmdSetZoom, Factor: 2},
		{Kind: CmdQuit},
		{Kind: CmdSetZoom, Factor: 3},
	})
	if !out.Quit || !out.Rescaled {
		t.Fatalf("outcome %+v", out)
	}
	if v.Zoom() != 2 {
		t.Fatalf("zoom=%g, command after quit was applied", v.Zoom())
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		c    Command
		want string
	}{
		{Command{Kind: CmdPan, X: 1, Y: -2}, "pan(1,-2)"},
		{Command{Kind: CmdZoom, Factor: 0.25}, "zoom(0.25)"},
		{Command{Kind: CmdSetFitMode, Mode: FullAspect}, "set-fit-mode(full-aspect)"},
		{Command{Kind: CmdQuit}, "quit"},
		{Command{Kind: CommandKind(99)}, "CommandKind(99)"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Fatalf("String()=%q, want %q", got, tc.want)
		}
	}
}

func TestParseFitMode(t *testing.T) {
	for _, m := range []FitMode{Aspect, FullAspect, FullStretch} {
		got, ok := ParseFitMode(m.String())
		if !ok || got != m {
			t.Fatalf("ParseFitMode(%q)=%s,%v", m.String(), got, ok)
		}
	}
	if _, ok := ParseFitMode("sideways"); ok {
		t.Fatal("expected unknown mode to fail")
	}
}
