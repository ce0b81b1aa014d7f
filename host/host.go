// Package host drives a pge application frame by frame.
//
// An Application receives a Rasterizer once in OnCreate and then once per
// tick in OnUpdate, where it updates its state and draws the frame. After
// each update the host presents the primary sprite. Everything runs on the
// calling goroutine; there is no concurrency between update and present.
//
// RunHeadless runs a fixed number of ticks without a window, which is what
// tests and offline renderers use. Run opens a desktop window backed by
// ebiten when the module is built with the ebiten tag.
package host

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/pge"
)

var (
	// ErrStop may be returned from OnUpdate to end the loop without error.
	ErrStop = errors.New("host: stop")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("host: invalid config")

	// ErrNoWindow is returned by Run in builds without the ebiten tag.
	ErrNoWindow = errors.New("host: built without window support (use -tags ebiten)")

	// ErrNilApplication is returned when no Application is given.
	ErrNilApplication = errors.New("host: nil application")
)

// Application is a frame-driven program.
type Application interface {
	// OnCreate is called once before the first frame.
	OnCreate(r *pge.Rasterizer) error

	// OnUpdate is called once per tick with the time elapsed since the
	// previous tick. Returning ErrStop ends the loop cleanly.
	OnUpdate(r *pge.Rasterizer, elapsed time.Duration) error
}

// Destroyer is implemented by applications that release resources when the
// loop ends. OnDestroy runs whenever OnCreate succeeded.
type Destroyer interface {
	OnDestroy() error
}

// Presenter displays a finished frame.
type Presenter interface {
	Present(frame *pge.Sprite) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(frame *pge.Sprite) error

// Present calls f(frame).
func (f PresenterFunc) Present(frame *pge.Sprite) error {
	return f(frame)
}

// Config describes the screen an application draws on.
type Config struct {
	// Title is the window title.
	Title string `yaml:"title"`

	// Width and Height are the logical screen size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// PixelScale is the window size multiplier for each logical pixel.
	PixelScale int `yaml:"pixel_scale"`

	// TPS is the number of ticks per second.
	TPS int `yaml:"tps"`
}

// DefaultConfig returns a 256x240 screen at scale 2 and 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Title:      "pge",
		Width:      256,
		Height:     240,
		PixelScale: 2,
		TPS:        60,
	}
}

// withDefaults returns c with zero fields replaced by DefaultConfig values.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.PixelScale == 0 {
		c.PixelScale = d.PixelScale
	}
	if c.TPS == 0 {
		c.TPS = d.TPS
	}
	return c
}

// Validate reports whether every field holds a usable value.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.PixelScale < 1:
		return fmt.Errorf("%w: pixel scale %d", ErrInvalidConfig, c.PixelScale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// Tick returns the fixed time step for c.TPS.
func (c Config) Tick() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TPS)
}

// prepare applies defaults, validates cfg and creates the rasterizer.
func prepare(app Application, cfg Config) (*pge.Rasterizer, Config, error) {
	if app == nil {
		return nil, cfg, ErrNilApplication
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, cfg, err
	}
	r, err := pge.NewRasterizer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, cfg, err
	}
	return r, cfg, nil
}

// destroy calls OnDestroy if app implements Destroyer and joins its error
// with err.
func destroy(app Application, err error) error {
	d, ok := app.(Destroyer)
	if !ok {
		return err
	}
	if derr := d.OnDestroy(); derr != nil {
		return errors.Join(err, fmt.Errorf("host: destroy: %w", derr))
	}
	return err
}
