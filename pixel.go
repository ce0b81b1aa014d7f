package pge

import (
	"fmt"
	"image/color"
)

// Pixel is a packed 8-bit-per-channel RGBA color.
// Channels are stored big-endian: red in the highest byte, alpha in the lowest.
// The zero value is Blank (fully transparent black).
type Pixel uint32

// RGBA creates a pixel from its four channels.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB creates an opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return RGBA(r, g, b, 0xFF)
}

// FromPacked creates a pixel from a packed 0xRRGGBBAA word.
func FromPacked(n uint32) Pixel {
	return Pixel(n)
}

// Packed returns the packed 0xRRGGBBAA word.
func (p Pixel) Packed() uint32 {
	return uint32(p)
}

// R returns the red channel.
func (p Pixel) R() uint8 { return uint8(p >> 24) }

// G returns the green channel.
func (p Pixel) G() uint8 { return uint8(p >> 16) }

// B returns the blue channel.
func (p Pixel) B() uint8 { return uint8(p >> 8) }

// A returns the alpha channel.
func (p Pixel) A() uint8 { return uint8(p) }

// SetR replaces the red channel, leaving the others untouched.
func (p *Pixel) SetR(v uint8) { *p = *p&0x00FFFFFF | Pixel(v)<<24 }

// SetG replaces the green channel, leaving the others untouched.
func (p *Pixel) SetG(v uint8) { *p = *p&0xFF00FFFF | Pixel(v)<<16 }

// SetB replaces the blue channel, leaving the others untouched.
func (p *Pixel) SetB(v uint8) { *p = *p&0xFFFF00FF | Pixel(v)<<8 }

// SetA replaces the alpha channel, leaving the others untouched.
func (p *Pixel) SetA(v uint8) { *p = *p&0xFFFFFF00 | Pixel(v) }

// RGBA implements color.Color. Pixel channels are not premultiplied,
// so the result is premultiplied here like color.NRGBA does.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

// NRGBA converts the pixel to the standard library's non-premultiplied color.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// FromColor converts any color.Color to a Pixel.
func FromColor(c color.Color) Pixel {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Lerp linearly interpolates every channel from p towards q.
// t is clamped to [0, 1].
func (p Pixel) Lerp(q Pixel, t float64) Pixel {
	t = clampUnit(t)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return RGBA(mix(p.R(), q.R()), mix(p.G(), q.G()), mix(p.B(), q.B()), mix(p.A(), q.A()))
}

// String returns the pixel as #rrggbbaa.
func (p Pixel) String() string {
	return fmt.Sprintf("#%08x", uint32(p))
}

// Hex creates a pixel from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional '#'.
// Unrecognised input yields opaque black.
func Hex(hex string) Pixel {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return RGBA(uint8(r), uint8(g), uint8(b), uint8(a))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// clampUnit restricts a value to [0, 1].
func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Palette
var (
	Grey         = RGB(192, 192, 192)
	DarkGrey     = RGB(128, 128, 128)
	VeryDarkGrey = RGB(64, 64, 64)

	Red         = RGB(255, 0, 0)
	DarkRed     = RGB(128, 0, 0)
	VeryDarkRed = RGB(64, 0, 0)

	Yellow         = RGB(255, 255, 0)
	DarkYellow     = RGB(128, 128, 0)
	VeryDarkYellow = RGB(64, 64, 0)

	Green         = RGB(0, 255, 0)
	DarkGreen     = RGB(0, 128, 0)
	VeryDarkGreen = RGB(0, 64, 0)

	Cyan         = RGB(0, 255, 255)
	DarkCyan     = RGB(0, 128, 128)
	VeryDarkCyan = RGB(0, 64, 64)

	Blue         = RGB(0, 0, 255)
	DarkBlue     = RGB(0, 0, 128)
	VeryDarkBlue = RGB(0, 0, 64)

	Magenta         = RGB(255, 0, 255)
	DarkMagenta     = RGB(128, 0, 128)
	VeryDarkMagenta = RGB(64, 0, 64)

	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
	Blank = RGBA(0, 0, 0, 0)
)
