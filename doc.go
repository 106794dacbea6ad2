// Package gradpick provides the model and input handling of a gradient
// color-stop picker.
//
// # Overview
//
// A Picker edits an ordered set of color stops placed along a normalized
// [0, 1] axis. The host UI feeds it pointer, wheel and key events and a
// client size; the Picker keeps the stops, the selection and the layout,
// and paints itself into a Pixmap on request. The current gradient is
// exported as an interpolation Table that any Renderer can draw.
//
// # Quick Start
//
//	import "github.com/gogpu/gradpick"
//
//	p := gradpick.NewPicker(gradpick.WithHost(gradpick.HostFunc(redraw)))
//	p.Resize(320, 40)
//	p.AddColor(gradpick.Black, 0)
//	p.AddColor(gradpick.RGB(255, 128, 0), 1)
//
//	// Draw the gradient into an image
//	pm, _ := gradpick.NewPixmap(512, 64)
//	p.DrawLinearGradient(pm, pm.Bounds(), 0)
//	pm.Save("gradient.png")
//
// # Architecture
//
// The library is organized into:
//   - Model: Stop, Collection, Table
//   - Editor: Picker, Config, Layout, input handling
//   - Output: Renderer, SoftwareRenderer, Pixmap
//   - Collaborators: Host, ColorDialog, Clipboard
//
// Sub-packages:
//   - preset: YAML preset files and live reload
//   - integration/pickercanvas: GPU texture upload through gpucontext
//   - integration/sysclip: system clipboard
//
// # Coordinate System
//
// Pointer events are in host coordinates with the origin at the top-left of
// the client area. Stop pixel positions (Stop.X) are local to the stop
// strip. Linear gradient angles are in degrees, 0 pointing right and
// increasing clockwise.
//
// # Position Mapping
//
// A stop at position p is drawn at x = round((W-w)*p) where W is the strip
// width and w the stop width, clamped to [0, W-w-1]. The inverse divides by
// W-w, so positions near 1 do not round-trip exactly. See PositionToPixel.
package gradpick

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
