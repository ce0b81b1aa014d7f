package pge

// Flip mirrors a sprite while it is drawn. Flags can be combined.
type Flip uint8

const (
	// FlipNone draws the sprite as stored.
	FlipNone Flip = 0
	// FlipHorizontal mirrors the sprite left to right.
	FlipHorizontal Flip = 1 << 0
	// FlipVertical mirrors the sprite top to bottom.
	FlipVertical Flip = 1 << 1
)

// DrawSprite draws the whole of s with its top-left corner at (x, y). Each
// source pixel becomes a scale x scale block; scale below 1 is treated as 1.
func (r *Rasterizer) DrawSprite(x, y int, s *Sprite, scale int) {
	r.DrawSpriteFlip(x, y, s, scale, FlipNone)
}

// DrawSpriteFlip is DrawSprite with mirroring.
func (r *Rasterizer) DrawSpriteFlip(x, y int, s *Sprite, scale int, flip Flip) {
	if s == nil {
		return
	}
	r.DrawPartialSpriteFlip(x, y, s, 0, 0, s.Width(), s.Height(), scale, flip)
}

// DrawPartialSprite draws the w x h region of s starting at (ox, oy) with
// its top-left corner at (x, y). Source reads outside s follow its sample mode.
func (r *Rasterizer) DrawPartialSprite(x, y int, s *Sprite, ox, oy, w, h, scale int) {
	r.DrawPartialSpriteFlip(x, y, s, ox, oy, w, h, scale, FlipNone)
}

// DrawPartialSpriteFlip is DrawPartialSprite with mirroring.
func (r *Rasterizer) DrawPartialSpriteFlip(x, y int, s *Sprite, ox, oy, w, h, scale int, flip Flip) {
	if s == nil || w <= 0 || h <= 0 {
		return
	}
	scale = max(scale, 1)

	fx0, fxs := 0, 1
	if flip&FlipHorizontal != 0 {
		fx0, fxs = w-1, -1
	}
	fy0, fys := 0, 1
	if flip&FlipVertical != 0 {
		fy0, fys = h-1, -1
	}

	if scale == 1 {
		fy := fy0
		for j := 0; j < h; j++ {
			fx := fx0
			for i := 0; i < w; i++ {
				r.Draw(x+i, y+j, s.Pixel(fx+ox, fy+oy))
				fx += fxs
			}
			fy += fys
		}
		return
	}

	fy := fy0
	for j := 0; j < h; j++ {
		fx := fx0
		for i := 0; i < w; i++ {
			p := s.Pixel(fx+ox, fy+oy)
			for is := 0; is < scale; is++ {
				for js := 0; js < scale; js++ {
					r.Draw(x+i*scale+is, y+j*scale+js, p)
				}
			}
			fx += fxs
		}
		fy += fys
	}
}
