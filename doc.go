// Package pge is a software pixel compositor for retro-style 2D games.
//
// # Overview
//
// pge draws lines, rectangles, circles, triangles, sprites and bitmap text
// into in-memory pixel buffers. Every write goes through a single blend-mode
// aware primitive, so the result is bit-exact and independent of any GPU.
// The finished buffer is handed to a presenter (see the surface and host
// packages) for display.
//
// # Quick Start
//
//	r, err := pge.NewRasterizer(256, 240)
//	if err != nil {
//	    return err
//	}
//
//	r.Clear(pge.VeryDarkBlue)
//	r.FillRect(16, 16, 64, 32, pge.Red)
//	r.DrawLine(0, 0, 255, 239, pge.Yellow)
//	r.DrawString(8, 200, "HELLO", pge.White, 2)
//
//	_ = r.Primary().SavePNG("frame.png")
//
// # Pixels and Sprites
//
// A Pixel is a packed 0xRRGGBBAA word. A Sprite is a fixed-size row-major
// grid of pixels; reads outside it return Blank, or wrap around when the
// sprite is in SampleWrap mode. Writes outside it are ignored.
//
// # Blend Modes
//
//   - BlendNormal: replace the destination
//   - BlendMask: write only fully opaque pixels
//   - BlendAlpha: interpolate by source alpha times the blend factor
//   - BlendCustom: call a user supplied BlendFunc
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
//
// # Assets
//
// Sprites can be decoded from files or from any AssetSource, such as a
// respack.Pack. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
package pge
