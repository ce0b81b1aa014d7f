package pge

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a sprite is created with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("pge: invalid dimensions")

// SampleMode controls how out-of-range coordinates are resolved by Pixel.
type SampleMode uint8

const (
	// SampleClamp returns Blank for coordinates outside the sprite.
	SampleClamp SampleMode = iota
	// SampleWrap folds coordinates back into the sprite with a Euclidean modulo.
	SampleWrap
)

// String returns a string representation of the sample mode.
func (m SampleMode) String() string {
	switch m {
	case SampleClamp:
		return "Clamp"
	case SampleWrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// Sprite is a fixed-size rectangular buffer of pixels, stored row-major.
//
// Sprite is not safe for concurrent use.
type Sprite struct {
	width  int
	height int
	mode   SampleMode
	pixels []Pixel
}

// NewSprite creates a sprite with every pixel set to opaque black.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewSprite(width, height int) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s := &Sprite{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
	s.Clear(Black)
	return s, nil
}

// MustNewSprite is like NewSprite but panics on error.
// Use only when the dimensions are constants.
func MustNewSprite(width, height int) *Sprite {
	s, err := NewSprite(width, height)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the width of the sprite.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the height of the sprite.
func (s *Sprite) Height() int {
	return s.height
}

// Size returns the sprite dimensions as a vector.
func (s *Sprite) Size() Vi2d {
	return Vi2d{X: s.width, Y: s.height}
}

// SampleMode returns the current sample mode.
func (s *Sprite) SampleMode() SampleMode {
	return s.mode
}

// SetSampleMode changes how out-of-range reads are resolved.
func (s *Sprite) SetSampleMode(m SampleMode) {
	s.mode = m
}

// Pixels returns the backing pixel slice, index y*Width()+x.
// The slice is shared with the sprite.
func (s *Sprite) Pixels() []Pixel {
	return s.pixels
}

// Pixel returns the pixel at (x, y). Out-of-range coordinates return Blank
// in SampleClamp mode and wrap around in SampleWrap mode.
func (s *Sprite) Pixel(x, y int) Pixel {
	if s.mode == SampleWrap {
		x = ((x % s.width) + s.width) % s.width
		y = ((y % s.height) + s.height) % s.height
		return s.pixels[y*s.width+x]
	}
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Blank
	}
	return s.pixels[y*s.width+x]
}

// SetPixel writes p at (x, y). It reports false and leaves the sprite
// untouched when the coordinates are out of range.
func (s *Sprite) SetPixel(x, y int, p Pixel) bool {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return false
	}
	s.pixels[y*s.width+x] = p
	return true
}

// FillRect sets every pixel of the rectangle [x, x+w) x [y, y+h), clipped
// to the sprite, to p.
func (s *Sprite) FillRect(x, y, w, h int, p Pixel) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.width), min(y+h, s.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for row := y0; row < y1; row++ {
		line := s.pixels[row*s.width+x0 : row*s.width+x1]
		for i := range line {
			line[i] = p
		}
	}
}

// Clear sets every pixel to p.
func (s *Sprite) Clear(p Pixel) {
	for i := range s.pixels {
		s.pixels[i] = p
	}
}

// Clone creates a deep copy of the sprite.
func (s *Sprite) Clone() *Sprite {
	pixels := make([]Pixel, len(s.pixels))
	copy(pixels, s.pixels)
	return &Sprite{
		width:  s.width,
		height: s.height,
		mode:   s.mode,
		pixels: pixels,
	}
}

// RGBA8 writes the sprite as channel-interleaved RGBA8 bytes into dst,
// growing it if needed, and returns the filled slice. Passing the previous
// result back in avoids reallocating on every upload.
func (s *Sprite) RGBA8(dst []byte) []byte {
	n := len(s.pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range s.pixels {
		j := i * 4
		dst[j+0] = p.R()
		dst[j+1] = p.G()
		dst[j+2] = p.B()
		dst[j+3] = p.A()
	}
	return dst
}
