package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/pge"
)

// RunHeadless runs app for up to frames ticks without a window.
//
// Each tick calls OnUpdate with the fixed step cfg.Tick() and then presents
// the primary sprite through presenter, which may be nil. A frames value of
// zero or less runs until OnUpdate returns ErrStop or ctx is cancelled.
// Cancellation is checked between frames and returned as ctx.Err().
func RunHeadless(ctx context.Context, app Application, cfg Config, frames int, presenter Presenter) (err error) {
	r, cfg, err := prepare(app, cfg)
	if err != nil {
		return err
	}

	if err := app.OnCreate(r); err != nil {
		return fmt.Errorf("host: create: %w", err)
	}
	defer func() { err = destroy(app, err) }()

	tick := cfg.Tick()
	pge.Logger().Info("host: headless run started",
		"width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS, "frames", frames)

	for n := 0; frames <= 0 || n < frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := app.OnUpdate(r, tick); err != nil {
			if errors.Is(err, ErrStop) {
				pge.Logger().Debug("host: stopped by application", "frame", n)
				return nil
			}
			return fmt.Errorf("host: frame %d: %w", n, err)
		}

		if presenter != nil {
			if err := presenter.Present(r.Primary()); err != nil {
				return fmt.Errorf("host: present frame %d: %w", n, err)
			}
		}
	}
	return nil
}
