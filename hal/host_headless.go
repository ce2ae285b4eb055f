package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// RunHeadless drives the app step from a ticker without opening a window.
// It returns when ctx is done, after cfg.Ticks steps, or when the step
// returns ErrQuit.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(HAL) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(cfg.HostConfig)
	step := newApp(h)
	h.disp.expose()

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	err := runTicks(ctx, t.C, step, cfg.Ticks)
	if errors.Is(err, ErrQuit) {
		err = nil
	}
	if err != nil {
		return err
	}
	if cfg.Snapshot != "" {
		if err := writeSnapshot(h.fb, cfg.Snapshot); err != nil {
			return err
		}
		h.logger.WriteLineString(fmt.Sprintf("headless: wrote %s (%dx%d)", cfg.Snapshot, h.fb.Width(), h.fb.Height()))
	}
	return nil
}

func runTicks(ctx context.Context, tick <-chan time.Time, step func() error, limit uint64) error {
	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			n++
			if limit > 0 && n >= limit {
				return nil
			}
		}
	}
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("headless: snapshot: %w", err)
	}
	if err := fb.writePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("headless: snapshot %s: %w", path, err)
	}
	return f.Close()
}
