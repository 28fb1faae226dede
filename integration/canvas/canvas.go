// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/shapeplay"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrNoTextureCreator is returned when the drawer has no texture creator.
	ErrNoTextureCreator = errors.New("canvas: drawer has no texture creator")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// Canvas owns a frame pixmap and the window texture it is presented
// through. Frames are rendered into Pixmap by a shapeplay.Surface and
// uploaded on the next RenderTo.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	pixmap      *shapeplay.Pixmap
	texture     gpucontext.Texture
	oldTexture  gpucontext.Texture // replaced on resize, destroyed after the next upload
	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		pixmap: shapeplay.NewPixmap(width, height),
		width:  width,
		height: height,
		dirty:  true,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Pixmap returns the frame pixmap, or nil if the canvas is closed.
// Call MarkDirty after writing to it.
func (c *Canvas) Pixmap() *shapeplay.Pixmap {
	if c.closed {
		return nil
	}
	return c.pixmap
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// MarkDirty flags the canvas for upload on the next RenderTo.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether the pixmap changed since the last upload.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Draw calls fn with the pixmap and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*shapeplay.Pixmap) error) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := fn(c.pixmap); err != nil {
		return err
	}
	c.dirty = true
	return nil
}

// Resize changes the canvas dimensions. The texture is recreated on the
// next RenderTo.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	c.pixmap.Resize(width, height)
	c.width, c.height = width, height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Texture returns the current window texture without uploading.
// Returns nil before the first RenderTo.
func (c *Canvas) Texture() gpucontext.Texture {
	return c.texture
}

// RenderTo uploads the pixmap if it changed and draws it at the origin.
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToPosition(dc, 0, 0)
}

// RenderToPosition uploads the pixmap if it changed and draws it at x, y.
//
// The texture is created lazily from dc's TextureCreator and updated in
// place afterwards when it supports gpucontext.TextureUpdater. Textures
// without an updater are recreated on every change.
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}

	if c.sizeChanged {
		if c.texture != nil {
			if c.oldTexture != nil {
				destroy(c.oldTexture)
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if c.dirty || c.texture == nil {
		if err := c.upload(dc); err != nil {
			return err
		}
		c.dirty = false
	}
	return dc.DrawTexture(c.texture, x, y)
}

func (c *Canvas) upload(dc gpucontext.TextureDrawer) error {
	data := c.pixmap.Data()
	if c.texture != nil {
		if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(data); err != nil {
				return fmt.Errorf("canvas: texture update failed: %w", err)
			}
			return nil
		}
		c.oldTexture, c.texture = c.texture, nil
	}

	creator := dc.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(c.width, c.height, data)
	if err != nil {
		return fmt.Errorf("canvas: NewTextureFromRGBA failed: %w", err)
	}
	c.texture = tex

	// The creator waits for the upload, so nothing in flight still reads
	// the previous texture.
	if c.oldTexture != nil {
		destroy(c.oldTexture)
		c.oldTexture = nil
	}
	shapeplay.Logger().Debug("canvas: texture created", "width", c.width, "height", c.height)
	return nil
}

// Close releases the textures. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.oldTexture != nil {
		destroy(c.oldTexture)
		c.oldTexture = nil
	}
	if c.texture != nil {
		destroy(c.texture)
		c.texture = nil
	}
	c.pixmap = nil
	return nil
}
