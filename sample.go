package pge

import "math"

// SampleNearest returns the pixel nearest to normalized coordinates (u, v).
// u and v are in the range [0.0, 1.0] where (0,0) is top-left and (1,1) is
// bottom-right. The lookup never goes past the last row or column.
func (s *Sprite) SampleNearest(u, v float64) Pixel {
	x := int(math.Floor(u * float64(s.width)))
	y := int(math.Floor(v * float64(s.height)))

	x = clamp(x, 0, s.width-1)
	y = clamp(y, 0, s.height-1)

	return s.pixels[y*s.width+x]
}

// SampleBilinear interpolates the four pixels surrounding normalized
// coordinates (u, v). Each tap is clamped to the sprite edges independently.
func (s *Sprite) SampleBilinear(u, v float64) Pixel {
	// Shift by half a texel so pixel centers land on integer coordinates.
	fx := u*float64(s.width) - 0.5
	fy := v*float64(s.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clamp(x0+1, 0, s.width-1)
	y1 := clamp(y0+1, 0, s.height-1)
	x0 = clamp(x0, 0, s.width-1)
	y0 = clamp(y0, 0, s.height-1)

	p00 := s.pixels[y0*s.width+x0]
	p10 := s.pixels[y0*s.width+x1]
	p01 := s.pixels[y1*s.width+x0]
	p11 := s.pixels[y1*s.width+x1]

	channel := func(c00, c10, c01, c11 uint8) uint8 {
		v := lerp2D(float64(c00), float64(c10), float64(c01), float64(c11), tx, ty)
		return uint8(clampFloat(v, 0, 255))
	}

	return RGBA(
		channel(p00.R(), p10.R(), p01.R(), p11.R()),
		channel(p00.G(), p10.G(), p01.G(), p11.G()),
		channel(p00.B(), p10.B(), p01.B(), p11.B()),
		channel(p00.A(), p10.A(), p01.A(), p11.A()),
	)
}

// clamp clamps an integer value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampFloat clamps a float64 value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
