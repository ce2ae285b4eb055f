//go:build cgo

package hal

import (
	"errors"
	"image"

	"lel/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow starts a desktop window that displays the framebuffer and forwards
// keyboard and wheel input. It blocks until the window closes or the app step
// returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	h := newHost(cfg.HostConfig)
	step := newApp(h)

	title := cfg.Title
	if title == "" {
		title = "lel (" + buildinfo.Short() + ")"
	}
	h.disp.expose()

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(h.fb.Width(), h.fb.Height())
	if cfg.SetPosition {
		ebiten.SetWindowPosition(cfg.X, cfg.Y)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	gen   uint64
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.ptr.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.gen = 0
	}

	if gen := fb.snapshotRGBA(g.img, g.gen); gen != g.gen {
		g.gen = gen
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps the framebuffer the same size as the window, so a window
// resize becomes a framebuffer resize plus resize and expose events.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.h.disp.setSize(outsideWidth, outsideHeight)
	return g.h.fb.Width(), g.h.fb.Height()
}
