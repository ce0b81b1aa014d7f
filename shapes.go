package pge

// DrawRect outlines the rectangle with corners (x, y) and (x+w, y+h).
// Both corners are included, so the outline spans w+1 by h+1 pixels.
func (r *Rasterizer) DrawRect(x, y, w, h int, p Pixel) {
	r.DrawLine(x, y, x+w, y, p)
	r.DrawLine(x+w, y, x+w, y+h, p)
	r.DrawLine(x+w, y+h, x, y+h, p)
	r.DrawLine(x, y+h, x, y, p)
}

// FillRect fills [x, x+w) x [y, y+h), clipped to the draw target. Each
// pixel goes through Draw, so the blend mode applies.
func (r *Rasterizer) FillRect(x, y, w, h int, p Pixel) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, r.Width()), min(y+h, r.Height())
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			r.Draw(i, j, p)
		}
	}
}

// DrawCircle outlines a circle of the given radius centred at (x, y).
func (r *Rasterizer) DrawCircle(x, y, radius int, p Pixel) {
	r.DrawCircleMask(x, y, radius, p, 0xFF)
}

// DrawCircleMask outlines the octants of a circle selected by mask.
// Bit 0 is the octant just clockwise of twelve o'clock, and the following
// bits continue clockwise.
func (r *Rasterizer) DrawCircleMask(x, y, radius int, p Pixel, mask uint8) {
	if radius < 0 || x < -radius || y < -radius ||
		x-r.Width() > radius || y-r.Height() > radius {
		return
	}
	if radius == 0 {
		r.Draw(x, y, p)
		return
	}

	x0, y0 := 0, radius
	d := 3 - 2*radius
	for y0 >= x0 {
		if mask&0x01 != 0 {
			r.Draw(x+x0, y-y0, p)
		}
		if mask&0x04 != 0 {
			r.Draw(x+y0, y+x0, p)
		}
		if mask&0x10 != 0 {
			r.Draw(x-x0, y+y0, p)
		}
		if mask&0x40 != 0 {
			r.Draw(x-y0, y-x0, p)
		}
		if x0 != 0 && x0 != y0 {
			if mask&0x02 != 0 {
				r.Draw(x+y0, y-x0, p)
			}
			if mask&0x08 != 0 {
				r.Draw(x+x0, y+y0, p)
			}
			if mask&0x20 != 0 {
				r.Draw(x-y0, y+x0, p)
			}
			if mask&0x80 != 0 {
				r.Draw(x-x0, y-y0, p)
			}
		}
		if d < 0 {
			d += 4*x0 + 6
			x0++
		} else {
			d += 4*(x0-y0) + 10
			x0++
			y0--
		}
	}
}

// FillCircle fills a circle of the given radius centred at (x, y).
func (r *Rasterizer) FillCircle(x, y, radius int, p Pixel) {
	if radius < 0 || x < -radius || y < -radius ||
		x-r.Width() > radius || y-r.Height() > radius {
		return
	}
	if radius == 0 {
		r.Draw(x, y, p)
		return
	}

	span := func(sx, ex, ny int) {
		for i := sx; i <= ex; i++ {
			r.Draw(i, ny, p)
		}
	}

	x0, y0 := 0, radius
	d := 3 - 2*radius
	for y0 >= x0 {
		span(x-y0, x+y0, y-x0)
		if x0 > 0 {
			span(x-y0, x+y0, y+x0)
		}
		if d < 0 {
			d += 4*x0 + 6
			x0++
			continue
		}
		if x0 != y0 {
			span(x-x0, x+x0, y-y0)
			span(x-x0, x+x0, y+y0)
		}
		d += 4*(x0-y0) + 10
		x0++
		y0--
	}
}

// DrawTriangle outlines the triangle through three points.
func (r *Rasterizer) DrawTriangle(x1, y1, x2, y2, x3, y3 int, p Pixel) {
	r.DrawLine(x1, y1, x2, y2, p)
	r.DrawLine(x2, y2, x3, y3, p)
	r.DrawLine(x3, y3, x1, y1, p)
}

// FillTriangle fills the triangle through three points with horizontal
// spans, one per scanline between the top and bottom vertex.
func (r *Rasterizer) FillTriangle(x1, y1, x2, y2, x3, y3 int, p Pixel) {
	// Sort vertices by y so (x1, y1) is the top and (x3, y3) the bottom.
	if y2 < y1 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y3 < y1 {
		x1, y1, x3, y3 = x3, y3, x1, y1
	}
	if y3 < y2 {
		x2, y2, x3, y3 = x3, y3, x2, y2
	}

	// edgeX returns the x of edge (ax, ay)-(bx, by) at scanline y.
	edgeX := func(ax, ay, bx, by, y int) int {
		if by == ay {
			return ax
		}
		return ax + (bx-ax)*(y-ay)/(by-ay)
	}

	if y1 == y3 {
		lo := min(x1, x2, x3)
		hi := max(x1, x2, x3)
		r.DrawLine(lo, y1, hi, y1, p)
		return
	}

	yStart := max(y1, 0)
	yEnd := min(y3, r.Height()-1)
	for y := yStart; y <= yEnd; y++ {
		a := edgeX(x1, y1, x3, y3, y)
		var b int
		if y < y2 {
			b = edgeX(x1, y1, x2, y2, y)
		} else {
			b = edgeX(x2, y2, x3, y3, y)
		}
		if a > b {
			a, b = b, a
		}
		a = max(a, 0)
		b = min(b, r.Width()-1)
		for x := a; x <= b; x++ {
			r.Draw(x, y, p)
		}
	}
}
