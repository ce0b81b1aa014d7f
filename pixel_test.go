package pge

import (
	"image/color"
	"testing"
)

func TestPixelPacking(t *testing.T) {
	p := RGBA(0x12, 0x34, 0x56, 0x78)
	if p.Packed() != 0x12345678 {
		t.Fatalf("Packed() = %#08x, want 0x12345678", p.Packed())
	}
	if p.R() != 0x12 || p.G() != 0x34 || p.B() != 0x56 || p.A() != 0x78 {
		t.Errorf("channels = %d,%d,%d,%d", p.R(), p.G(), p.B(), p.A())
	}
	if FromPacked(0x12345678) != p {
		t.Error("FromPacked does not match RGBA")
	}

	p.SetR(0xFF)
	if p.Packed() != 0xFF345678 {
		t.Errorf("after SetR(0xFF) = %#08x, want 0xff345678", p.Packed())
	}
}

func TestPixelSetters(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Pixel)
		want Pixel
	}{
		{"R", func(p *Pixel) { p.SetR(0) }, 0x00223344},
		{"G", func(p *Pixel) { p.SetG(0) }, 0x11003344},
		{"B", func(p *Pixel) { p.SetB(0) }, 0x11220044},
		{"A", func(p *Pixel) { p.SetA(0) }, 0x11223300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RGBA(0x11, 0x22, 0x33, 0x44)
			tt.set(&p)
			if p != tt.want {
				t.Errorf("got %v, want %v", p, tt.want)
			}
		})
	}
}

func TestPixelRoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, 127, 128, 254, 255} {
		p := RGBA(v, 255-v, v/2, 255-v/3)
		if p.R() != v || p.G() != 255-v || p.B() != v/2 || p.A() != 255-v/3 {
			t.Errorf("round trip of %d failed: %v", v, p)
		}
	}
	var zero Pixel
	if zero != Blank {
		t.Errorf("zero Pixel = %v, want Blank", zero)
	}
	if RGB(1, 2, 3).A() != 255 {
		t.Error("RGB should be opaque")
	}
}

func TestPalette(t *testing.T) {
	tests := []struct {
		name string
		got  Pixel
		want Pixel
	}{
		{"Grey", Grey, RGB(192, 192, 192)},
		{"VeryDarkGrey", VeryDarkGrey, RGB(64, 64, 64)},
		{"DarkRed", DarkRed, RGB(128, 0, 0)},
		{"VeryDarkYellow", VeryDarkYellow, RGB(64, 64, 0)},
		{"Cyan", Cyan, RGB(0, 255, 255)},
		{"DarkBlue", DarkBlue, RGB(0, 0, 128)},
		{"VeryDarkMagenta", VeryDarkMagenta, RGB(64, 0, 64)},
		{"White", White, 0xFFFFFFFF},
		{"Black", Black, 0x000000FF},
		{"Blank", Blank, 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestPixelColor(t *testing.T) {
	p := RGBA(200, 100, 50, 128)
	if got := p.NRGBA(); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("NRGBA() = %v", got)
	}
	if got := FromColor(p); got != p {
		t.Errorf("FromColor(p) = %v, want %v", got, p)
	}
	if got := FromColor(color.RGBA{R: 10, G: 20, B: 30, A: 255}); got != RGB(10, 20, 30) {
		t.Errorf("FromColor(RGBA) = %v", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Pixel
	}{
		{"#f00", RGB(255, 0, 0)},
		{"0f08", RGBA(0, 255, 0, 136)},
		{"#123456", RGB(0x12, 0x34, 0x56)},
		{"12345678", 0x12345678},
		{"xyz12", Black},
		{"", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := RGBA(0xAB, 0xCD, 0xEF, 0x01).String(); s != "#abcdef01" {
		t.Errorf("String() = %q", s)
	}
}

func TestPixelLerp(t *testing.T) {
	a, b := RGBA(0, 0, 0, 0), RGBA(200, 100, 50, 255)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := a.Lerp(b, 0.5); got != RGBA(100, 50, 25, 127) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := a.Lerp(b, 7); got != b {
		t.Errorf("Lerp clamps t: got %v", got)
	}
}
