package pge

import (
	"strings"
	"sync"

	"github.com/gogpu/pge/internal/font"
)

// GlyphSize is the width and height of a glyph cell at scale 1.
const GlyphSize = font.GlyphSize

// fontSheet is the decoded glyph sheet as a sprite: lit pixels are opaque
// white, the rest Blank.
var fontSheet = sync.OnceValue(func() *Sprite {
	a := font.Default()
	s := MustNewSprite(font.SheetWidth, font.SheetHeight)
	for y := range font.SheetHeight {
		for x := range font.SheetWidth {
			if a.Set(x, y) {
				s.SetPixel(x, y, White)
			} else {
				s.SetPixel(x, y, Blank)
			}
		}
	}
	return s
})

// FontSheet returns a copy of the built-in glyph sheet as a 128x48 sprite.
func FontSheet() *Sprite {
	return fontSheet().Clone()
}

// DrawString draws text with its top-left corner at (x, y). Each glyph lit
// pixel becomes a scale x scale block of p; scale below 1 is treated as 1.
// A newline returns to x and moves down one glyph row.
//
// Text that is not opaque is alpha blended, opaque text is drawn in mask
// mode. The rasterizer's blend mode is restored before returning.
func (r *Rasterizer) DrawString(x, y int, text string, p Pixel, scale int) {
	scale = max(scale, 1)

	prev := r.mode
	defer func() { r.mode = prev }()
	if p.A() != 255 {
		r.mode = BlendAlpha
	} else {
		r.mode = BlendMask
	}

	a := font.Default()
	sx, sy := 0, 0
	for _, c := range font.Fold(text) {
		if c == '\n' {
			sx = 0
			sy += GlyphSize * scale
			continue
		}

		col, row := font.Glyph(c)
		ox, oy := col*GlyphSize, row*GlyphSize
		for j := 0; j < GlyphSize; j++ {
			for i := 0; i < GlyphSize; i++ {
				if !a.Set(ox+i, oy+j) {
					continue
				}
				if scale == 1 {
					r.Draw(x+sx+i, y+sy+j, p)
					continue
				}
				for is := 0; is < scale; is++ {
					for js := 0; js < scale; js++ {
						r.Draw(x+sx+i*scale+is, y+sy+j*scale+js, p)
					}
				}
			}
		}
		sx += GlyphSize * scale
	}
}

// TextSize returns the size in pixels of text drawn at scale 1: the longest
// line times the glyph width, and the line count times the glyph height.
func TextSize(text string) Vi2d {
	if text == "" {
		return Vi2d{}
	}
	lines := strings.Split(font.Fold(text), "\n")
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	return Vi2d{X: longest * GlyphSize, Y: len(lines) * GlyphSize}
}
