// Command pgedemo renders a short pge scene and saves the last frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gogpu/pge"
	"github.com/gogpu/pge/host"
)

func main() {
	var (
		width  = flag.Int("width", 256, "screen width")
		height = flag.Int("height", 240, "screen height")
		frames = flag.Int("frames", 60, "number of frames to simulate")
		output = flag.String("output", "demo.png", "output file")
		window = flag.Bool("window", false, "open a window instead (requires -tags ebiten)")
	)
	flag.Parse()
	log.SetFlags(0)

	cfg := host.Config{Title: "pgedemo", Width: *width, Height: *height, PixelScale: 3, TPS: 60}
	d := &demo{}

	if *window {
		if err := host.Run(d, cfg); err != nil {
			log.Fatalf("Failed to run: %v", err)
		}
		return
	}

	var last *pge.Sprite
	keep := host.PresenterFunc(func(frame *pge.Sprite) error {
		last = frame
		return nil
	})
	if err := host.RunHeadless(context.Background(), d, cfg, *frames, keep); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if last == nil {
		log.Fatal("No frame rendered")
	}
	if err := last.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d frames)\n", *output, *width, *height, d.frame)
}

// demo draws a bouncing ball over a static backdrop.
type demo struct {
	ball   *pge.Sprite
	frame  int
	t      time.Duration
	bx, by float64
	vx, vy float64
}

func (d *demo) OnCreate(r *pge.Rasterizer) error {
	ball, err := pge.NewSprite(16, 16)
	if err != nil {
		return err
	}
	ball.Clear(pge.Blank)

	// Draw the ball into its own sprite by retargeting the rasterizer.
	r.SetDrawTarget(ball)
	r.FillCircle(7, 7, 7, pge.DarkYellow)
	r.FillCircle(6, 6, 5, pge.Yellow)
	r.Draw(4, 4, pge.White)
	r.SetDrawTarget(nil)

	d.ball = ball
	d.bx, d.by = 20, 40
	d.vx, d.vy = 90, 60
	return nil
}

func (d *demo) OnUpdate(r *pge.Rasterizer, elapsed time.Duration) error {
	d.frame++
	d.t += elapsed
	dt := elapsed.Seconds()

	d.bx += d.vx * dt
	d.by += d.vy * dt
	maxX := float64(r.Width() - d.ball.Width())
	maxY := float64(r.Height() - d.ball.Height())
	if d.bx < 0 || d.bx > maxX {
		d.vx = -d.vx
		d.bx = math.Max(0, math.Min(d.bx, maxX))
	}
	if d.by < 0 || d.by > maxY {
		d.vy = -d.vy
		d.by = math.Max(0, math.Min(d.by, maxY))
	}

	drawBackdrop(r)
	drawShapes(r)

	r.SetBlendMode(pge.BlendMask)
	r.DrawSprite(int(d.bx), int(d.by), d.ball, 1)
	r.SetBlendMode(pge.BlendNormal)

	drawOverlay(r)
	r.DrawString(4, 4, "PGE DEMO", pge.White, 2)
	r.DrawString(4, r.Height()-12, fmt.Sprintf("FRAME %d  T=%.2fS", d.frame, d.t.Seconds()), pge.RGBA(255, 255, 255, 160), 1)
	return nil
}

func drawBackdrop(r *pge.Rasterizer) {
	h := r.Height()
	for y := range h {
		t := float64(y) / float64(h)
		r.DrawLine(0, y, r.Width()-1, y, pge.VeryDarkBlue.Lerp(pge.DarkCyan, t))
	}
}

func drawShapes(r *pge.Rasterizer) {
	r.FillRect(20, 60, 40, 30, pge.DarkRed)
	r.DrawRect(20, 60, 40, 30, pge.Red)

	r.DrawCircle(110, 80, 24, pge.Green)
	r.DrawCircleMask(110, 80, 18, pge.Magenta, 0x0F)

	r.FillTriangle(160, 100, 200, 40, 240, 100, pge.DarkMagenta)
	r.DrawTriangle(160, 100, 200, 40, 240, 100, pge.Magenta)

	r.DrawLinePattern(10, 130, 246, 130, pge.Grey, 0xF0F0F0F0)
}

// drawOverlay shades the bottom band with a custom scanline blend.
func drawOverlay(r *pge.Rasterizer) {
	r.SetBlendFunc(func(x, y int, src, dst pge.Pixel) pge.Pixel {
		if y%2 == 0 {
			return dst
		}
		return dst.Lerp(src, 0.5)
	})
	r.FillRect(0, r.Height()-40, r.Width(), 40, pge.Black)
	r.SetBlendFunc(nil)

	r.SetBlendFactor(0.5)
	r.SetBlendMode(pge.BlendAlpha)
	r.FillRect(0, 0, r.Width(), 22, pge.RGBA(0, 0, 0, 255))
	r.SetBlendMode(pge.BlendNormal)
	r.SetBlendFactor(1)
}
