package pge

// DefaultPattern is the stipple pattern that draws every pixel of a line.
const DefaultPattern uint32 = 0xFFFFFFFF

// DrawLine draws a solid line from (x1, y1) to (x2, y2), both endpoints included.
func (r *Rasterizer) DrawLine(x1, y1, x2, y2 int, p Pixel) {
	r.DrawLinePattern(x1, y1, x2, y2, p, DefaultPattern)
}

// DrawLinePattern draws a line dashed by a 32-bit stipple pattern. The pattern
// is rotated left by one bit before each pixel and the pixel is drawn only when
// the low bit is set, so the pattern repeats every 32 pixels.
func (r *Rasterizer) DrawLinePattern(x1, y1, x2, y2 int, p Pixel, pattern uint32) {
	rol := func() bool {
		pattern = pattern<<1 | pattern>>31
		return pattern&1 != 0
	}

	dx := x2 - x1
	dy := y2 - y1

	if dx == 0 {
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			if rol() {
				r.Draw(x1, y, p)
			}
		}
		return
	}

	if dy == 0 {
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			if rol() {
				r.Draw(x, y1, p)
			}
		}
		return
	}

	adx, ady := abs(dx), abs(dy)
	// Both deltas share a sign: the minor axis moves forward with the major one.
	sameSign := (dx < 0) == (dy < 0)

	if ady <= adx {
		var x, y, xe int
		if dx >= 0 {
			x, y, xe = x1, y1, x2
		} else {
			x, y, xe = x2, y2, x1
		}
		if rol() {
			r.Draw(x, y, p)
		}
		e := 2*ady - adx
		for x < xe {
			x++
			if e < 0 {
				e += 2 * ady
			} else {
				if sameSign {
					y++
				} else {
					y--
				}
				e += 2 * (ady - adx)
			}
			if rol() {
				r.Draw(x, y, p)
			}
		}
		return
	}

	var x, y, ye int
	if dy >= 0 {
		x, y, ye = x1, y1, y2
	} else {
		x, y, ye = x2, y2, y1
	}
	if rol() {
		r.Draw(x, y, p)
	}
	e := 2*adx - ady
	for y < ye {
		y++
		if e <= 0 {
			e += 2 * adx
		} else {
			if sameSign {
				x++
			} else {
				x--
			}
			e += 2 * (adx - ady)
		}
		if rol() {
			r.Draw(x, y, p)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
