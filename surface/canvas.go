// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/pge"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("surface: canvas is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("surface: nil DeviceProvider")

	// ErrNilSprite is returned when New is given no sprite to present.
	ErrNilSprite = errors.New("surface: nil sprite")
)

// textureDestroyer is implemented by textures that hold GPU memory.
type textureDestroyer interface {
	Destroy()
}

// Canvas presents a pge.Sprite through a GPU texture.
type Canvas struct {
	sprite   *pge.Sprite
	provider gpucontext.DeviceProvider
	format   gputypes.TextureFormat
	texture  any    // *pendingTexture until the first render, then the GPU texture
	staging  []byte // RGBA8 upload buffer, reused across flushes
	dirty    bool
	closed   bool
}

// New creates a Canvas that presents sprite through provider's device.
// The canvas starts dirty so the first Flush uploads the sprite.
func New(provider gpucontext.DeviceProvider, sprite *pge.Sprite) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if sprite == nil {
		return nil, ErrNilSprite
	}

	format := provider.SurfaceFormat()
	pge.Logger().Debug("surface: canvas created",
		"width", sprite.Width(), "height", sprite.Height(), "format", format.String())

	return &Canvas{
		sprite:   sprite,
		provider: provider,
		format:   format,
		dirty:    true,
	}, nil
}

// Sprite returns the sprite this canvas presents.
func (c *Canvas) Sprite() *pge.Sprite {
	return c.sprite
}

// SurfaceFormat returns the provider's preferred surface format, or
// gputypes.TextureFormatUndefined when the provider is headless.
func (c *Canvas) SurfaceFormat() gputypes.TextureFormat {
	return c.format
}

// MarkDirty flags the sprite for upload on the next Flush.
// Call it after every frame drawn into the sprite.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether the sprite has changes not yet uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Flush uploads the sprite to the texture if dirty and returns the texture.
//
// Before the first render the returned value is a pending placeholder holding
// the pixel data; the GPU texture is created by RenderTo, which has access to
// a texture creator. Later flushes update the existing texture in place when
// it implements gpucontext.TextureUpdater.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	c.staging = c.sprite.RGBA8(c.staging)

	switch tex := c.texture.(type) {
	case nil:
		c.texture = &pendingTexture{
			width:  c.sprite.Width(),
			height: c.sprite.Height(),
			data:   c.staging,
		}
	case *pendingTexture:
		tex.data = c.staging
	case gpucontext.TextureUpdater:
		if err := tex.UpdateData(c.staging); err != nil {
			return nil, err
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current texture without flushing, or nil before the
// first Flush.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close destroys the texture. It is idempotent; the texture is destroyed
// exactly once.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if d, ok := c.texture.(textureDestroyer); ok {
		d.Destroy()
		pge.Logger().Debug("surface: texture destroyed")
	}
	c.texture = nil
	c.staging = nil
	c.provider = nil
	return nil
}

// Provider returns the DeviceProvider, or nil once the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// pendingTexture holds pixel data until a TextureCreator is available.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
