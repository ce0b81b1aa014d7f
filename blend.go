package pge

// BlendMode decides how Rasterizer.Draw combines a source pixel with the
// pixel already in the draw target.
type BlendMode int

const (
	// BlendNormal replaces the destination with the source.
	BlendNormal BlendMode = iota
	// BlendMask writes only fully opaque source pixels and drops the rest.
	BlendMask
	// BlendAlpha interpolates from the destination towards the source by the
	// source alpha scaled by the blend factor.
	BlendAlpha
	// BlendCustom defers to the registered BlendFunc.
	BlendCustom
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMask:
		return "Mask"
	case BlendAlpha:
		return "Alpha"
	case BlendCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// BlendFunc computes the pixel written at (x, y) from the source pixel and
// the current destination pixel.
type BlendFunc func(x, y int, src, dst Pixel) Pixel

// blendAlpha mixes src over dst on every channel with weight src.a/255*factor.
func blendAlpha(src, dst Pixel, factor float64) Pixel {
	a := float64(src.A()) / 255 * factor
	c := 1 - a
	mix := func(s, d uint8) uint8 {
		return uint8(clampFloat(a*float64(s)+c*float64(d), 0, 255))
	}
	return RGBA(
		mix(src.R(), dst.R()),
		mix(src.G(), dst.G()),
		mix(src.B(), dst.B()),
		mix(src.A(), dst.A()),
	)
}
