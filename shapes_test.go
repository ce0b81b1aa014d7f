package pge

import "testing"

func TestDrawRect(t *testing.T) {
	r := newTestRasterizer(t, 8, 8)
	r.DrawRect(1, 1, 3, 2, White)

	got := lit(r.Primary())
	if len(got) != 10 {
		t.Fatalf("lit %d pixels, want 10: %v", len(got), got)
	}
	for _, p := range got {
		x, y := p[0], p[1]
		onEdge := x == 1 || x == 4 || y == 1 || y == 3
		if x < 1 || x > 4 || y < 1 || y > 3 || !onEdge {
			t.Errorf("unexpected pixel %v", p)
		}
	}
}

func TestFillRect(t *testing.T) {
	r := newTestRasterizer(t, 8, 8)
	r.FillRect(1, 1, 3, 2, White)

	got := lit(r.Primary())
	if len(got) != 6 {
		t.Fatalf("lit %d pixels, want 6: %v", len(got), got)
	}
	for _, p := range got {
		if p[0] < 1 || p[0] > 3 || p[1] < 1 || p[1] > 2 {
			t.Errorf("pixel %v outside [1,4)x[1,3)", p)
		}
	}

	r.Clear(Black)
	r.FillRect(6, 6, 10, 10, White)
	if n := len(lit(r.Primary())); n != 4 {
		t.Errorf("clipped fill lit %d pixels, want 4", n)
	}
}

func TestFillRectBlends(t *testing.T) {
	r := newTestRasterizer(t, 2, 2, WithBlendMode(BlendMask))
	r.FillRect(0, 0, 2, 2, RGBA(255, 0, 0, 100))
	if n := len(lit(r.Primary())); n != 0 {
		t.Errorf("mask fill of translucent color lit %d pixels", n)
	}
}

func TestDrawCircle(t *testing.T) {
	r := newTestRasterizer(t, 11, 11)
	r.DrawCircle(5, 5, 3, White)
	s := r.Primary()

	for _, p := range [][2]int{{5, 2}, {8, 5}, {5, 8}, {2, 5}} {
		if s.Pixel(p[0], p[1]) != White {
			t.Errorf("compass point %v not drawn", p)
		}
	}
	if s.Pixel(5, 5) != Black {
		t.Error("outline filled the center")
	}
	// Symmetric under both mirrors.
	for _, p := range lit(s) {
		if s.Pixel(10-p[0], p[1]) != White || s.Pixel(p[0], 10-p[1]) != White {
			t.Errorf("pixel %v has no mirror", p)
		}
	}
}

func TestDrawCircleMask(t *testing.T) {
	r := newTestRasterizer(t, 11, 11)
	r.DrawCircleMask(5, 5, 3, White, 0x01)
	s := r.Primary()

	if s.Pixel(5, 2) != White {
		t.Error("top of the first octant not drawn")
	}
	for _, p := range lit(s) {
		if p[0] < 5 || p[1] > 5 {
			t.Errorf("pixel %v outside the upper right quadrant", p)
		}
	}

	r.Clear(Black)
	r.DrawCircleMask(5, 5, 3, White, 0)
	if n := len(lit(s)); n != 0 {
		t.Errorf("empty mask lit %d pixels", n)
	}
}

func TestFillCircle(t *testing.T) {
	r := newTestRasterizer(t, 11, 11)
	r.FillCircle(5, 5, 3, White)
	s := r.Primary()

	for y := range 11 {
		for x := range 11 {
			dx, dy := x-5, y-5
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= 4 && s.Pixel(x, y) != White:
				t.Errorf("interior pixel (%d, %d) not filled", x, y)
			case d2 > 16 && s.Pixel(x, y) == White:
				t.Errorf("pixel (%d, %d) outside radius filled", x, y)
			}
		}
	}

	r.Clear(Black)
	r.FillCircle(1, 1, 0, White)
	if got := lit(s); len(got) != 1 || got[0] != [2]int{1, 1} {
		t.Errorf("radius 0 lit %v, want [(1,1)]", got)
	}

	r.Clear(Black)
	r.FillCircle(1, 1, -2, White)
	r.FillCircle(100, 100, 3, White)
	if n := len(lit(s)); n != 0 {
		t.Errorf("rejected circles lit %d pixels", n)
	}
}

func TestDrawTriangle(t *testing.T) {
	r := newTestRasterizer(t, 8, 8)
	r.DrawTriangle(0, 0, 4, 0, 0, 4, White)
	s := r.Primary()
	for _, p := range [][2]int{{0, 0}, {4, 0}, {0, 4}, {2, 0}, {0, 2}, {2, 2}} {
		if s.Pixel(p[0], p[1]) != White {
			t.Errorf("edge pixel %v not drawn", p)
		}
	}
	if s.Pixel(1, 1) != Black {
		t.Error("outline filled the interior")
	}
}

func TestFillTriangle(t *testing.T) {
	r := newTestRasterizer(t, 8, 8)
	// Vertex order must not matter.
	r.FillTriangle(0, 4, 4, 0, 0, 0, White)
	s := r.Primary()

	for y := range 8 {
		for x := range 8 {
			want := x+y <= 4
			if got := s.Pixel(x, y) == White; got != want {
				t.Errorf("pixel (%d, %d) filled = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFillTriangleFlat(t *testing.T) {
	r := newTestRasterizer(t, 8, 4)
	r.FillTriangle(0, 2, 3, 2, 6, 2, White)
	got := lit(r.Primary())
	if len(got) != 7 {
		t.Fatalf("lit %d pixels, want 7", len(got))
	}
	for _, p := range got {
		if p[1] != 2 {
			t.Errorf("pixel %v off the flat row", p)
		}
	}
}
