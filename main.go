// Command lel displays an image in a resizable window with pan, zoom and
// fit modes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"lel/app"
	"lel/hal"
	"lel/internal/buildinfo"
	"lel/internal/config"
	"lel/viewer"
	"lel/viewer/imagefile"
)

const appName = "lel"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin io.Reader) int {
	cfg, flags, fs, err := config.Parse(appName, args, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if flags.ShowVersion {
		fmt.Println(buildinfo.String(appName))
		return 0
	}

	log := hal.NewLogger(os.Stderr, cfg.LogLevel)

	name, img, err := loadImage(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if cfg.Window.Width == 0 {
		cfg.Window.Width = img.Width
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = img.Height
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = name
	}

	r, g, b := cfg.BackgroundRGB()
	acfg := app.Config{
		Bindings: app.Bindings{ZoomStep: cfg.ZoomStep, PanDivisor: cfg.PanDivisor},
		View: viewer.Config{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Mode:   cfg.FitMode(),
			Zoom:   cfg.Zoom,
		},
		Background: [3]uint8{r, g, b},
		RowAlign:   cfg.RowAlign,
	}
	newApp := func(h hal.HAL) func() error {
		return app.New(h, img, acfg)
	}
	host := hal.HostConfig{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		RowAlign: cfg.RowAlign,
		Logger:   log,
	}

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, hal.HeadlessConfig{
			HostConfig: host,
			Hz:         cfg.Headless.Hz,
			Ticks:      cfg.Headless.Ticks,
			Snapshot:   cfg.Headless.Snapshot,
		}, newApp)
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	if err := hal.RunWindow(hal.WindowConfig{
		HostConfig:  host,
		Title:       cfg.Window.Title,
		X:           cfg.Window.X,
		Y:           cfg.Window.Y,
		SetPosition: cfg.PositionSet(),
	}, newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadImage reads the file named by args[0], or stdin when there is none.
func loadImage(args []string, stdin io.Reader) (string, *viewer.Image, error) {
	name := "<stdin>"
	r := stdin
	if len(args) > 0 {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return name, nil, fmt.Errorf("can't read %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	img, _, err := imagefile.Load(r)
	if err != nil {
		return name, nil, fmt.Errorf("can't open image %s: %w", name, err)
	}
	return name, img, nil
}
