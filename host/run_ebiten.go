//go:build ebiten

package host

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/pge"
	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts an Application to the ebiten.Game interface.
type game struct {
	app    Application
	r      *pge.Rasterizer
	cfg    Config
	pixels []byte
	err    error
}

// Update runs one tick of the application.
func (g *game) Update() error {
	elapsed := time.Second / time.Duration(ebiten.TPS())
	if err := g.app.OnUpdate(g.r, elapsed); err != nil {
		if !errors.Is(err, ErrStop) {
			g.err = err
		}
		return ebiten.Termination
	}
	return nil
}

// Draw uploads the primary sprite to the screen.
func (g *game) Draw(screen *ebiten.Image) {
	g.pixels = premultiply(g.r.Primary().RGBA8(g.pixels))
	screen.WritePixels(g.pixels)
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives app until it returns ErrStop, fails, or the
// window is closed.
func Run(app Application, cfg Config) (err error) {
	r, cfg, err := prepare(app, cfg)
	if err != nil {
		return err
	}
	if err := app.OnCreate(r); err != nil {
		return fmt.Errorf("host: create: %w", err)
	}
	defer func() { err = destroy(app, err) }()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.PixelScale, cfg.Height*cfg.PixelScale)

	pge.Logger().Info("host: window opened", "title", cfg.Title,
		"width", cfg.Width, "height", cfg.Height, "scale", cfg.PixelScale)

	g := &game{app: app, r: r, cfg: cfg}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("host: run: %w", err)
	}
	if g.err != nil {
		return fmt.Errorf("host: update: %w", g.err)
	}
	return nil
}

// premultiply converts straight-alpha RGBA8 to premultiplied alpha in place.
func premultiply(buf []byte) []byte {
	for i := 0; i+3 < len(buf); i += 4 {
		a := uint32(buf[i+3])
		if a == 255 {
			continue
		}
		buf[i+0] = uint8(uint32(buf[i+0]) * a / 255)
		buf[i+1] = uint8(uint32(buf[i+1]) * a / 255)
		buf[i+2] = uint8(uint32(buf[i+2]) * a / 255)
	}
	return buf
}
