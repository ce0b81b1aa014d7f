// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface uploads a pge sprite to a GPU texture for display.
//
// The rasterizer always draws on the CPU. A Canvas is the bridge to a
// GPU-accelerated window: it keeps one texture per sprite, uploads the
// sprite's pixels when they changed, and draws the texture through a
// gpucontext.TextureDrawer. The data flow is:
//
//	pge.Rasterizer (draw) -> pge.Sprite (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	r, _ := pge.NewRasterizer(320, 240)
//	canvas, err := surface.New(app.GPUContextProvider(), r.Primary())
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    r.Clear(pge.Black)
//	    r.DrawString(8, 8, "READY", pge.White, 1)
//	    canvas.MarkDirty()
//	    _ = canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Texture Lifetime
//
// The texture is created lazily on the first render, reused while the canvas
// lives, and destroyed exactly once by Close.
//
// Canvas is NOT safe for concurrent use.
package surface
