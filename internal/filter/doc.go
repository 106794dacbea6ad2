// Package filter provides in-place pixel filters over straight-alpha RGBA
// buffers.
//
// The picker uses the color matrix to render its disabled state in
// grayscale.
package filter
