// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pickercanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the texture cannot be drawn by
	// the drawer.
	ErrInvalidDrawContext = errors.New("pickercanvas: texture is not a gpucontext.Texture")

	// ErrInvalidRenderer is returned when the drawer has no TextureCreator.
	ErrInvalidRenderer = errors.New("pickercanvas: drawer has no texture creator")
)

// RenderOptions controls where the canvas is drawn.
type RenderOptions struct {
	// X, Y is the top-left corner in the target, in pixels.
	X, Y float32
}

// DefaultRenderOptions draws at the origin.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{}
}

// RenderTo draws the canvas at (0, 0).
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToEx(dc, DefaultRenderOptions())
}

// RenderToPosition draws the canvas with its top-left corner at (x, y).
func (c *Canvas) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	return c.RenderToEx(dc, RenderOptions{X: x, Y: y})
}

// RenderToEx flushes the canvas, creating the GPU texture on first use,
// and draws it.
func (c *Canvas) RenderToEx(dc gpucontext.TextureDrawer, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}

	tex, err := c.Flush()
	if err != nil {
		return err
	}

	if pending, ok := tex.(*pendingTexture); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("pickercanvas: NewTextureFromRGBA failed: %w", err)
		}

		// Pixmap data is straight alpha.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}

		c.texture = realTex
		tex = realTex

		// The write above waited for the GPU, so the old texture is idle.
		destroy(c.oldTexture)
		c.oldTexture = nil
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, opts.X, opts.Y)
}
