package pge

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("pge: empty image data")

// AssetSource supplies named byte payloads, for example a respack.Pack.
type AssetSource interface {
	Bytes(name string) ([]byte, error)
}

// Ensure Sprite implements image.Image
var _ image.Image = (*Sprite)(nil)

// At implements the image.Image interface. It follows the sample mode.
func (s *Sprite) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (s *Sprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Sprite) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the sprite to an image.NRGBA.
func (s *Sprite) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	s.RGBA8(img.Pix)
	return img
}

// FromImage creates a sprite from an image.
// Returns ErrInvalidDimensions for an empty image.
func FromImage(img image.Image) (*Sprite, error) {
	bounds := img.Bounds()
	s, err := NewSprite(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range s.height {
			row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+s.width*4]
			for x := range s.width {
				i := x * 4
				s.pixels[y*s.width+x] = RGBA(row[i], row[i+1], row[i+2], row[i+3])
			}
		}
		return s, nil
	}

	for y := range s.height {
		for x := range s.width {
			s.pixels[y*s.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return s, nil
}

// DecodeSprite decodes an image from r, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func DecodeSprite(r io.Reader) (*Sprite, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pge: decode: %w", err)
	}
	return FromImage(img)
}

// LoadSprite loads an image file into a sprite.
func LoadSprite(path string) (*Sprite, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pge: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeSprite(f)
}

// LoadSpriteAsset decodes the payload called name from src.
// A missing payload is reported with the error returned by src.
func LoadSpriteAsset(src AssetSource, name string) (*Sprite, error) {
	data, err := src.Bytes(name)
	if err != nil {
		return nil, fmt.Errorf("pge: load %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("pge: load %s: %w", name, ErrEmptyData)
	}
	Logger().Debug("pge: decoding sprite asset", "name", name, "bytes", len(data))
	return DecodeSprite(bytes.NewReader(data))
}

// EncodePNG encodes the sprite as PNG to w.
func (s *Sprite) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.ToImage()); err != nil {
		return fmt.Errorf("pge: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the sprite to a PNG file.
func (s *Sprite) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pge: create file: %w", err)
	}

	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
