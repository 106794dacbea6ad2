package gradpick

import (
	"math/rand/v2"

	"golang.org/x/text/language"
)

// Option configures a Picker during creation.
// Use functional options to customize Picker behavior.
//
// Example:
//
//	// Defaults: software renderer, in-memory clipboard, no dialog
//	p := gradpick.NewPicker()
//
//	// Host-integrated picker with a deterministic random source
//	p := gradpick.NewPicker(
//	    gradpick.WithHost(host),
//	    gradpick.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
type Option func(*options)

// options holds optional configuration for Picker creation.
type options struct {
	config    Config
	rng       *rand.Rand
	host      Host
	clipboard Clipboard
	dialog    ColorDialog
	renderer  Renderer
	locale    language.Tag
}

// defaultOptions returns the default picker options.
func defaultOptions() options {
	return options{
		config:    DefaultConfig(),
		rng:       nil, // Seeded from runtime entropy by NewCollection
		clipboard: nil, // Will be created if nil
		renderer:  nil, // Will be set to SoftwareRenderer if nil
		locale:    language.English,
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithRand sets the random source used by Randomize, random backfill and
// the A key. Tests pass a seeded source for reproducible results.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithHost connects the picker to its UI container.
func WithHost(h Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithClipboard sets the clipboard used by Copy, Cut and Paste.
//
// Example:
//
//	import "github.com/gogpu/gradpick/integration/sysclip"
//
//	p := gradpick.NewPicker(gradpick.WithClipboard(sysclip.New()))
func WithClipboard(c Clipboard) Option {
	return func(o *options) {
		o.clipboard = c
	}
}

// WithColorDialog sets the dialog opened by double click, Space and Enter.
func WithColorDialog(d ColorDialog) Option {
	return func(o *options) {
		o.dialog = d
	}
}

// WithRenderer sets a custom gradient renderer.
// Use this for dependency injection of GPU or custom renderers.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithLocale sets the language used to format percentages.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}
