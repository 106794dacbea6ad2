// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pickercanvas shows a gradpick.Picker in a gogpu GPU window.
//
// The picker paints into a CPU pixmap which is uploaded to a GPU texture
// and drawn through gpucontext interfaces:
//
//	Picker.Paint -> Pixmap (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	canvas, _ := pickercanvas.New(app.GPUContextProvider(), 175, 28)
//	defer canvas.Close()
//
//	p := gradpick.NewPicker(gradpick.WithHost(canvas))
//	canvas.SetPaintFunc(p.Paint)
//
//	app.OnResize(func(w, h int) {
//	    p.Resize(w, h)
//	    canvas.Resize(w, h)
//	})
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// The picker's repaint requests mark the canvas dirty; clean frames reuse
// the uploaded texture.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Drive it from the window's event
// loop together with the picker.
package pickercanvas
