package pge

import (
	"errors"
	"testing"
)

func newTestRasterizer(t *testing.T, w, h int, opts ...Option) *Rasterizer {
	t.Helper()
	r, err := NewRasterizer(w, h, opts...)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	return r
}

func TestNewRasterizer(t *testing.T) {
	r := newTestRasterizer(t, 8, 6)
	if r.Width() != 8 || r.Height() != 6 {
		t.Errorf("size = %dx%d, want 8x6", r.Width(), r.Height())
	}
	if r.DrawTarget() != r.Primary() {
		t.Error("draw target should start as the primary sprite")
	}
	if r.BlendMode() != BlendNormal || r.BlendFactor() != 1 {
		t.Errorf("mode %v factor %v, want Normal 1", r.BlendMode(), r.BlendFactor())
	}

	if _, err := NewRasterizer(0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewRasterizer(0, 5): err = %v, want ErrInvalidDimensions", err)
	}
}

func TestRasterizerOptions(t *testing.T) {
	screen := MustNewSprite(3, 3)
	fn := func(x, y int, src, dst Pixel) Pixel { return src }

	tests := []struct {
		name   string
		opts   []Option
		mode   BlendMode
		factor float64
	}{
		{"defaults", nil, BlendNormal, 1},
		{"alpha", []Option{WithBlendMode(BlendAlpha), WithBlendFactor(0.25)}, BlendAlpha, 0.25},
		{"factor clamped", []Option{WithBlendFactor(3)}, BlendNormal, 1},
		{"custom without func", []Option{WithBlendMode(BlendCustom)}, BlendNormal, 1},
		{"custom func", []Option{WithBlendFunc(fn)}, BlendCustom, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRasterizer(t, 4, 4, tt.opts...)
			if r.BlendMode() != tt.mode || r.BlendFactor() != tt.factor {
				t.Errorf("mode %v factor %v, want %v %v", r.BlendMode(), r.BlendFactor(), tt.mode, tt.factor)
			}
		})
	}

	r := newTestRasterizer(t, 0, 0, WithPrimary(screen))
	if r.Primary() != screen {
		t.Error("WithPrimary ignored")
	}
}

func TestDrawTarget(t *testing.T) {
	r := newTestRasterizer(t, 4, 4)
	off := MustNewSprite(2, 2)

	r.SetDrawTarget(off)
	if r.DrawTarget() != off || r.Width() != 2 {
		t.Fatal("SetDrawTarget did not switch target")
	}
	r.Draw(1, 1, Red)
	if off.Pixel(1, 1) != Red || r.Primary().Pixel(1, 1) != Black {
		t.Error("Draw did not go to the off-screen target")
	}

	r.SetDrawTarget(nil)
	if r.DrawTarget() != r.Primary() {
		t.Error("SetDrawTarget(nil) did not restore the primary")
	}
}

func TestDrawNormal(t *testing.T) {
	r := newTestRasterizer(t, 4, 4)
	if !r.Draw(2, 2, RGBA(1, 2, 3, 0)) {
		t.Error("Draw in bounds returned false")
	}
	if got := r.Primary().Pixel(2, 2); got != RGBA(1, 2, 3, 0) {
		t.Errorf("Normal wrote %v", got)
	}
	if r.Draw(4, 0, Red) || r.Draw(-1, 0, Red) {
		t.Error("Draw out of bounds returned true")
	}
}

func TestDrawMask(t *testing.T) {
	r := newTestRasterizer(t, 4, 4, WithBlendMode(BlendMask))

	if r.Draw(0, 0, RGBA(255, 0, 0, 200)) {
		t.Error("Mask wrote a translucent pixel")
	}
	if got := r.Primary().Pixel(0, 0); got != Black {
		t.Errorf("pixel = %v, want unchanged Black", got)
	}
	if !r.Draw(0, 0, RGBA(255, 0, 0, 255)) {
		t.Error("Mask refused an opaque pixel")
	}
	if got := r.Primary().Pixel(0, 0); got != Red {
		t.Errorf("pixel = %v, want Red", got)
	}
}

func TestDrawAlpha(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		src    Pixel
		dst    Pixel
		want   Pixel
	}{
		{"opaque source", 1, Red, Black, Red},
		{"transparent source", 1, RGBA(255, 0, 0, 0), Black, Black},
		{"half factor", 0.5, Red, Black, RGBA(127, 0, 0, 255)},
		{"zero factor", 0, White, Blue, Blue},
		{"blends alpha channel", 0.5, RGBA(0, 0, 0, 255), Blank, RGBA(0, 0, 0, 127)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRasterizer(t, 1, 1, WithBlendMode(BlendAlpha), WithBlendFactor(tt.factor))
			r.Clear(tt.dst)
			r.Draw(0, 0, tt.src)
			if got := r.Primary().Pixel(0, 0); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawCustom(t *testing.T) {
	r := newTestRasterizer(t, 4, 4)

	r.SetBlendMode(BlendCustom)
	if r.BlendMode() != BlendNormal {
		t.Fatalf("Custom without a func selected: %v", r.BlendMode())
	}

	type call struct {
		x, y     int
		src, dst Pixel
	}
	var calls []call
	r.Primary().SetPixel(1, 2, Green)
	r.SetBlendFunc(func(x, y int, src, dst Pixel) Pixel {
		calls = append(calls, call{x, y, src, dst})
		return Magenta
	})
	if r.BlendMode() != BlendCustom {
		t.Fatalf("SetBlendFunc did not select Custom: %v", r.BlendMode())
	}

	r.Draw(1, 2, Red)
	r.Draw(9, 9, Red)
	if len(calls) != 1 || calls[0] != (call{1, 2, Red, Green}) {
		t.Errorf("calls = %+v", calls)
	}
	if got := r.Primary().Pixel(1, 2); got != Magenta {
		t.Errorf("pixel = %v, want Magenta", got)
	}

	r.SetBlendMode(BlendAlpha)
	r.SetBlendMode(BlendCustom)
	if r.BlendMode() != BlendCustom {
		t.Error("Custom not reselectable while a func is registered")
	}

	r.SetBlendFunc(nil)
	if r.BlendMode() != BlendNormal {
		t.Errorf("SetBlendFunc(nil) left mode %v", r.BlendMode())
	}
	r.SetBlendMode(BlendCustom)
	if r.BlendMode() != BlendNormal {
		t.Error("Custom selectable after the func was cleared")
	}
}

func TestBlendFactorClamp(t *testing.T) {
	r := newTestRasterizer(t, 1, 1)
	for _, tt := range []struct{ in, want float64 }{{2, 1}, {-1, 0}, {0.3, 0.3}} {
		r.SetBlendFactor(tt.in)
		if r.BlendFactor() != tt.want {
			t.Errorf("SetBlendFactor(%v) -> %v, want %v", tt.in, r.BlendFactor(), tt.want)
		}
	}
}

func TestClearIgnoresBlend(t *testing.T) {
	r := newTestRasterizer(t, 3, 3, WithBlendMode(BlendMask))
	r.Clear(RGBA(1, 1, 1, 10))
	for i, p := range r.Primary().Pixels() {
		if p != RGBA(1, 1, 1, 10) {
			t.Fatalf("pixel %d = %v", i, p)
		}
	}
}

func TestBlendModeString(t *testing.T) {
	for m, want := range map[BlendMode]string{
		BlendNormal: "Normal", BlendMask: "Mask", BlendAlpha: "Alpha", BlendCustom: "Custom", 42: "Unknown",
	} {
		if got := m.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(m), got, want)
		}
	}
}
