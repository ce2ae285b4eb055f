package config

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"lel/viewer"
)

// Flags holds the flag values that are not plain config fields.
type Flags struct {
	ConfigPath  string
	ShowVersion bool
	fullAspect  bool
	fullStretch bool
	mode        string
}

// BindFlags registers the command-line flags on fs, writing straight into
// cfg. Call Apply after fs.Parse.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Read settings from a YAML file (flags override it)")
	fs.BoolVarP(&f.fullAspect, "full-aspect", "a", false, "Full window, keep aspect ratio")
	fs.BoolVarP(&f.fullStretch, "full-stretch", "f", false, "Full window, stretch (no aspect)")
	fs.StringVar(&f.mode, "mode", "", "Fit mode: aspect, full-aspect or full-stretch")
	fs.IntVarP(&cfg.Window.Width, "width", "w", cfg.Window.Width, "Window width (default: image width)")
	fs.IntVarP(&cfg.Window.Height, "height", "h", cfg.Window.Height, "Window height (default: image height)")
	fs.IntVarP(&cfg.Window.X, "x", "x", cfg.Window.X, "Window x position")
	fs.IntVarP(&cfg.Window.Y, "y", "y", cfg.Window.Y, "Window y position")
	fs.StringVarP(&cfg.Window.Title, "title", "t", cfg.Window.Title, "Window title (default: file name)")
	fs.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "Initial zoom factor")
	fs.Float64Var(&cfg.ZoomStep, "zoom-step", cfg.ZoomStep, "Zoom change per key press or wheel step")
	fs.IntVar(&cfg.RowAlign, "row-align", cfg.RowAlign, "Align raster rows to this many bytes")
	fs.StringVar(&cfg.Background, "background", cfg.Background, "Background colour as #rrggbb")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.BoolVar(&cfg.Headless.Enabled, "headless", cfg.Headless.Enabled, "Run without a window")
	fs.IntVar(&cfg.Headless.Hz, "hz", cfg.Headless.Hz, "Tick rate in headless mode")
	fs.Uint64Var(&cfg.Headless.Ticks, "ticks", cfg.Headless.Ticks, "Stop after N ticks in headless mode (0 = run forever)")
	fs.StringVar(&cfg.Headless.Snapshot, "snapshot", cfg.Headless.Snapshot, "Write the final frame as PNG in headless mode")
	fs.BoolVarP(&f.ShowVersion, "version", "v", false, "Print version and exit")
	return f
}

// Apply folds the mode switches into cfg. -f wins over -a, and both win
// over --mode, matching the last-flag-wins behaviour of the old switches.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if f.fullAspect {
		cfg.Mode = viewer.FullAspect.String()
	}
	if f.fullStretch {
		cfg.Mode = viewer.FullStretch.String()
	}
	if fs.Changed("x") || fs.Changed("y") {
		cfg.positionSet = true
	}
}

// Parse builds the final configuration from args: defaults, then the
// --config file if one is named, then the flags themselves. The returned
// FlagSet holds the positional arguments.
func Parse(name string, args []string, output io.Writer) (Config, *Flags, *pflag.FlagSet, error) {
	probe := Default()
	fs := newFlagSet(name, output)
	flags := BindFlags(fs, &probe)
	if err := fs.Parse(args); err != nil {
		return probe, flags, fs, err
	}
	if flags.ConfigPath == "" {
		flags.Apply(fs, &probe)
		return probe, flags, fs, probe.Validate()
	}

	cfg, err := Load(flags.ConfigPath)
	if err != nil {
		return cfg, flags, fs, err
	}
	fs = newFlagSet(name, output)
	flags = BindFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return cfg, flags, fs, err
	}
	flags.Apply(fs, &cfg)
	return cfg, flags, fs, cfg.Validate()
}

func newFlagSet(name string, output io.Writer) *pflag.FlagSet {
	if output == nil {
		output = os.Stderr
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "usage: %s [OPTIONS...] [FILE]\n", name)
		fs.PrintDefaults()
	}
	return fs
}
