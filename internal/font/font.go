// Package font decodes the built-in 8x8 bitmap font used for text drawing.
//
// The font is stored as a 128x48 one-bit sheet holding ASCII 32..127 in
// row-major order, 16 glyphs per row. The sheet is packed into a string of
// 1024 printable characters: every 4 characters carry 24 bits, which fill
// consecutive pixels of a column-major sweep (48 pixels down one column,
// then the next column), least significant bit first.
package font

import (
	"errors"
	"fmt"
	"sync"
)

// Sheet geometry.
const (
	GlyphSize  = 8
	Columns    = 16
	Rows       = 6
	SheetWidth = Columns * GlyphSize
	// SheetHeight is the height of the glyph sheet in pixels.
	SheetHeight = Rows * GlyphSize

	// First and Last are the first and last characters in the sheet.
	First = 32
	Last  = First + Columns*Rows - 1

	// PackedLen is the length of a packed sheet string.
	PackedLen = SheetWidth * SheetHeight / 6
)

// ErrMalformed is returned when a packed sheet has the wrong length or
// contains characters outside '0'..'o'.
var ErrMalformed = errors.New("font: malformed packed sheet")

// Atlas is a decoded one-bit glyph sheet.
type Atlas struct {
	bits [SheetWidth * SheetHeight / 64]uint64
}

// Decode unpacks a packed sheet string.
func Decode(s string) (*Atlas, error) {
	if len(s) != PackedLen {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrMalformed, len(s), PackedLen)
	}

	a := &Atlas{}
	px, py := 0, 0
	for b := 0; b < len(s); b += 4 {
		var r uint32
		for k := 0; k < 4; k++ {
			c := s[b+k]
			if c < '0' || c > 'o' {
				return nil, fmt.Errorf("%w: byte %q at %d", ErrMalformed, c, b+k)
			}
			r = r<<6 | uint32(c-'0')
		}
		for i := 0; i < 24; i++ {
			if r&(1<<i) != 0 {
				a.set(px, py)
			}
			py++
			if py == SheetHeight {
				px++
				py = 0
			}
		}
	}
	return a, nil
}

// Default returns the built-in font, decoded once on first use.
var Default = sync.OnceValue(func() *Atlas {
	a, err := Decode(packed)
	if err != nil {
		panic(err)
	}
	return a
})

func (a *Atlas) set(x, y int) {
	i := y*SheetWidth + x
	a.bits[i/64] |= 1 << (i % 64)
}

// Set reports whether the sheet pixel at (x, y) is lit.
// Coordinates outside the sheet report false.
func (a *Atlas) Set(x, y int) bool {
	if x < 0 || x >= SheetWidth || y < 0 || y >= SheetHeight {
		return false
	}
	i := y*SheetWidth + x
	return a.bits[i/64]&(1<<(i%64)) != 0
}

// Glyph returns the cell (column, row) of c in the sheet.
// Characters outside First..Last map to '?'.
func Glyph(c rune) (col, row int) {
	if c < First || c > Last {
		c = '?'
	}
	idx := int(c - First)
	return idx % Columns, idx / Columns
}
