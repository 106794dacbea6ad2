// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pickercanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gradpick"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("pickercanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("pickercanvas: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("pickercanvas: nil DeviceProvider")
)

// PaintFunc draws the canvas content. Picker.Paint has this signature.
type PaintFunc func(dst *gradpick.Pixmap) error

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas keeps a CPU pixmap and the GPU texture it is uploaded to.
//
// Canvas implements gradpick.Host: pass it to gradpick.WithHost and every
// repaint request from the picker marks the canvas dirty. The next Flush
// or RenderTo repaints through the PaintFunc and uploads the pixels.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	pixmap   *gradpick.Pixmap
	provider gpucontext.DeviceProvider
	paint    PaintFunc

	texture     any // *pendingTexture until RenderTo creates the real one
	oldTexture  any // previous texture awaiting deferred destruction
	dirty       bool
	sizeChanged bool
	closed      bool
}

// New creates a canvas of the given size.
// The provider should come from gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, width, height int) (*Canvas, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	pm, err := gradpick.NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		pixmap:   pm,
		provider: provider,
		dirty:    true,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(provider gpucontext.DeviceProvider, width, height int) *Canvas {
	c, err := New(provider, width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// ForPicker creates a canvas sized to p and painted by p.Paint. The picker
// should have been created with gradpick.WithHost(canvas) or another host
// that forwards repaint requests to MarkDirty.
func ForPicker(provider gpucontext.DeviceProvider, p *gradpick.Picker) (*Canvas, error) {
	size := p.Size()
	c, err := New(provider, size.X, size.Y)
	if err != nil {
		return nil, err
	}
	c.SetPaintFunc(p.Paint)
	return c, nil
}

// SetPaintFunc sets the function that redraws the pixmap on flush and
// marks the canvas dirty.
func (c *Canvas) SetPaintFunc(fn PaintFunc) {
	c.paint = fn
	c.dirty = true
}

// Pixmap returns the CPU pixel buffer, or nil if the canvas is closed.
func (c *Canvas) Pixmap() *gradpick.Pixmap {
	if c.closed {
		return nil
	}
	return c.pixmap
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pixmap.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pixmap.Height()
}

// Size returns width and height.
func (c *Canvas) Size() (width, height int) {
	return c.pixmap.Width(), c.pixmap.Height()
}

// MarkDirty flags the canvas for repaint and upload on the next Flush.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// RequestRepaint implements gradpick.Host.
func (c *Canvas) RequestRepaint() {
	c.MarkDirty()
}

// IsDirty reports whether the canvas has pending changes.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Draw calls fn with the pixmap and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*gradpick.Pixmap)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.pixmap)
	c.dirty = true
	return nil
}

// Resize replaces the pixmap with a cleared one of the new size. The
// texture is recreated on the next RenderTo.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.pixmap.Width() == width && c.pixmap.Height() == height {
		return nil
	}
	pm, err := gradpick.NewPixmap(width, height)
	if err != nil {
		return fmt.Errorf("pickercanvas: resize failed: %w", err)
	}
	c.pixmap = pm
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush repaints and uploads the pixmap if dirty, and returns the texture.
//
// The texture is created lazily: the first Flush returns a placeholder
// that RenderTo turns into a GPU texture.
func (c *Canvas) Flush() (any, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	// The old texture may still be used by in-flight command buffers. It
	// is destroyed in RenderToEx once the replacement has been written.
	if c.sizeChanged {
		if c.texture != nil {
			destroy(c.oldTexture)
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return c.texture, nil
	}

	if c.paint != nil {
		if err := c.paint(c.pixmap); err != nil {
			return nil, fmt.Errorf("pickercanvas: paint failed: %w", err)
		}
	}
	data := c.pixmap.Data()

	if c.texture == nil {
		c.texture = &pendingTexture{
			width:  c.pixmap.Width(),
			height: c.pixmap.Height(),
			data:   data,
		}
		c.dirty = false
		return c.texture, nil
	}

	switch tex := c.texture.(type) {
	case *pendingTexture:
		tex.data = data
	case gpucontext.TextureUpdater:
		if err := tex.UpdateData(data); err != nil {
			return nil, fmt.Errorf("pickercanvas: texture update failed: %w", err)
		}
	}

	c.dirty = false
	return c.texture, nil
}

// Texture returns the current texture without flushing, or nil.
func (c *Canvas) Texture() any {
	return c.texture
}

// Provider returns the DeviceProvider, or nil if the canvas is closed.
func (c *Canvas) Provider() gpucontext.DeviceProvider {
	if c.closed {
		return nil
	}
	return c.provider
}

// Close releases the textures. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	destroy(c.oldTexture)
	c.oldTexture = nil
	destroy(c.texture)
	c.texture = nil

	c.paint = nil
	c.provider = nil
	return nil
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

// pendingTexture holds pixel data until RenderTo has a TextureCreator.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
