// Package preset reads and writes gradient picker presets as YAML.
//
// A preset file holds optional picker settings, the stops, and optional
// render parameters for exporting the gradient as an image:
//
//	config:
//	  layout: fixed
//	  layout_size: 10
//	  maximum_count: 8
//	stops:
//	  - color: "#000000"
//	    position: 0
//	  - color: orange
//	    position: 35%
//	  - color: "#ffffff80"
//	    position: 1
//	render:
//	  shape: radial
//	  center: [0.5, 0.5]
//	  width: 512
//	  height: 512
//
// Colors are hex strings or SVG color names. Positions are fractions in
// [0, 1] or percentages ("35%" or 35).
package preset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/gogpu/gradpick"
)

// File is the on-disk preset format.
type File struct {
	Config *Config `yaml:"config,omitempty"`
	Stops  []Stop  `yaml:"stops"`
	Render *Render `yaml:"render,omitempty"`
}

// Config overrides picker settings. Unset fields keep the value of the
// configuration the preset is applied to.
type Config struct {
	StopWidth    *int     `yaml:"stop_width,omitempty"`
	StopHeight   *int     `yaml:"stop_height,omitempty"`
	MinimumCount *int     `yaml:"minimum_count,omitempty"`
	MaximumCount *int     `yaml:"maximum_count,omitempty"`
	Layout       string   `yaml:"layout,omitempty"`
	LayoutSize   *int     `yaml:"layout_size,omitempty"`
	Padding      []int    `yaml:"padding,omitempty,flow"`
	ArrowSize    *float64 `yaml:"arrow_size,omitempty"`
	BlockSize    *float64 `yaml:"block_size,omitempty"`
	Border       string   `yaml:"border,omitempty"`

	GammaCorrection           *bool `yaml:"gamma_correction,omitempty"`
	ShowTransparentBackground *bool `yaml:"show_transparent_background,omitempty"`
	AlwaysShowAddBox          *bool `yaml:"always_show_add_box,omitempty"`
}

// Stop is one color stop.
type Stop struct {
	Color    string   `yaml:"color"`
	Position Position `yaml:"position"`
}

// Position is a normalized stop position that also accepts percentages.
type Position float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Position) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: position must be a scalar", value.Line)
	}
	v, err := gradpick.ParsePercent(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = Position(v)
	return nil
}

// Render holds image export parameters.
type Render struct {
	// Shape is "linear" (default) or "radial".
	Shape string `yaml:"shape,omitempty"`
	// Angle is the linear direction in degrees, clockwise from +x.
	Angle float64 `yaml:"angle,omitempty"`
	// Center is the radial focus relative to the image.
	Center []float64 `yaml:"center,omitempty,flow"`
	Width  int       `yaml:"width,omitempty"`
	Height int       `yaml:"height,omitempty"`
}

// Default export size.
const (
	DefaultWidth  = 512
	DefaultHeight = 64
)

// Parse parses preset YAML and validates every stop. Errors wrap
// gradpick.ErrInvalidFormat.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: parsing preset: %w", gradpick.ErrInvalidFormat, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Marshal serializes a preset to YAML.
func Marshal(f File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Load reads and parses a preset file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return File{}, fmt.Errorf("reading preset: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Save writes a preset file, creating the parent directory.
func Save(path string, f File) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling preset: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating preset directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // presets are not secret
		return fmt.Errorf("writing preset: %w", err)
	}
	return nil
}

// Validate checks colors, positions and enumerated settings.
func (f File) Validate() error {
	for i, s := range f.Stops {
		if _, err := gradpick.ParseColor(s.Color); err != nil {
			return fmt.Errorf("stop %d: %w", i, err)
		}
		if p := float64(s.Position); p < 0 || p > 1 {
			return fmt.Errorf("%w: stop %d: position %v", gradpick.ErrInvalidFormat, i, p)
		}
	}
	if f.Config != nil {
		if _, err := f.Config.Apply(gradpick.DefaultConfig()); err != nil {
			return err
		}
	}
	if f.Render != nil {
		if _, err := f.Render.Orientation(); err != nil {
			return err
		}
	}
	return nil
}

// Apply returns base with the preset overrides applied.
func (c *Config) Apply(base gradpick.Config) (gradpick.Config, error) {
	if c == nil {
		return base, nil
	}
	cfg := base
	setInt(&cfg.StopWidth, c.StopWidth)
	setInt(&cfg.StopHeight, c.StopHeight)
	setInt(&cfg.MinimumCount, c.MinimumCount)
	setInt(&cfg.MaximumCount, c.MaximumCount)
	setInt(&cfg.LayoutSize, c.LayoutSize)

	if c.Layout != "" {
		m, ok := gradpick.ParseLayoutMode(c.Layout)
		if !ok {
			return base, fmt.Errorf("%w: layout %q", gradpick.ErrInvalidFormat, c.Layout)
		}
		cfg.Layout = m
	}
	if c.Border != "" {
		b, ok := gradpick.ParseBorderStyle(c.Border)
		if !ok {
			return base, fmt.Errorf("%w: border %q", gradpick.ErrInvalidFormat, c.Border)
		}
		cfg.BorderStyle = b
	}
	if c.Padding != nil {
		p, err := parsePadding(c.Padding)
		if err != nil {
			return base, err
		}
		cfg.Padding = p
	}
	if c.ArrowSize != nil {
		cfg.SetArrowSize(*c.ArrowSize)
	}
	if c.BlockSize != nil {
		cfg.SetBlockSize(*c.BlockSize)
	}
	setBool(&cfg.GammaCorrection, c.GammaCorrection)
	setBool(&cfg.ShowTransparentBackground, c.ShowTransparentBackground)
	setBool(&cfg.AlwaysShowAddBox, c.AlwaysShowAddBox)
	return cfg, nil
}

// parsePadding accepts one value for all sides, two for horizontal and
// vertical, or four in left, top, right, bottom order.
func parsePadding(v []int) (gradpick.Padding, error) {
	switch len(v) {
	case 1:
		return gradpick.Padding{Left: v[0], Top: v[0], Right: v[0], Bottom: v[0]}, nil
	case 2:
		return gradpick.Padding{Left: v[0], Top: v[1], Right: v[0], Bottom: v[1]}, nil
	case 4:
		return gradpick.Padding{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
	default:
		return gradpick.Padding{}, fmt.Errorf("%w: padding needs 1, 2 or 4 values, got %d",
			gradpick.ErrInvalidFormat, len(v))
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Orientation converts the render shape to a gradpick orientation.
func (r *Render) Orientation() (gradpick.Orientation, error) {
	if r == nil {
		return gradpick.Linear(0), nil
	}
	switch r.Shape {
	case "", "linear":
		return gradpick.Linear(r.Angle), nil
	case "radial":
		cx, cy := 0.5, 0.5
		switch len(r.Center) {
		case 0:
		case 2:
			cx, cy = r.Center[0], r.Center[1]
		default:
			return gradpick.Orientation{}, fmt.Errorf("%w: center needs 2 values", gradpick.ErrInvalidFormat)
		}
		return gradpick.Radial(cx, cy), nil
	default:
		return gradpick.Orientation{}, fmt.Errorf("%w: shape %q", gradpick.ErrInvalidFormat, r.Shape)
	}
}

// Size returns the export size, falling back to the defaults.
func (r *Render) Size() (width, height int) {
	width, height = DefaultWidth, DefaultHeight
	if r == nil {
		return width, height
	}
	if r.Width > 0 {
		width = r.Width
	}
	if r.Height > 0 {
		height = r.Height
	}
	return width, height
}

// Apply replaces the picker's configuration and stops with the preset.
// The picker is left unchanged when the preset is invalid or has more
// stops than its maximum count.
func (f File) Apply(p *gradpick.Picker) error {
	if err := f.Validate(); err != nil {
		return err
	}
	cfg, err := f.Config.Apply(p.Config())
	if err != nil {
		return err
	}
	if cfg.MaximumCount > 0 && len(f.Stops) > cfg.MaximumCount {
		return fmt.Errorf("%w: preset has %d stops", gradpick.ErrLimitExceeded, len(f.Stops))
	}

	colors := make([]gradpick.Color, len(f.Stops))
	for i, s := range f.Stops {
		colors[i], _ = gradpick.ParseColor(s.Color)
	}

	// Lift the minimum while stops are swapped so that nothing is
	// backfilled in between.
	minimum := cfg.MinimumCount
	cfg.MinimumCount = 0
	p.SetConfig(cfg)

	p.Select(nil)
	for _, s := range p.Collection().Stops() {
		p.RemoveStop(s)
	}
	for i, s := range f.Stops {
		if _, err := p.AddColor(colors[i], float64(s.Position)); err != nil {
			return fmt.Errorf("stop %d: %w", i, err)
		}
	}
	p.SetMinimumCount(minimum)

	gradpick.Logger().Debug("preset: applied", "stops", len(f.Stops))
	return nil
}

// FromPicker captures the picker's configuration and stops, in display
// order.
func FromPicker(p *gradpick.Picker) File {
	cfg := p.Config()
	colors := p.Collection().Colors()
	positions := p.Collection().Positions()

	f := File{
		Config: fromConfig(cfg),
		Stops:  make([]Stop, len(colors)),
	}
	for i := range colors {
		f.Stops[i] = Stop{Color: colors[i].Hex(), Position: Position(roundPosition(positions[i]))}
	}
	return f
}

// roundPosition drops float noise from pixel-derived positions.
func roundPosition(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func fromConfig(cfg gradpick.Config) *Config {
	return &Config{
		StopWidth:    &cfg.StopWidth,
		StopHeight:   &cfg.StopHeight,
		MinimumCount: &cfg.MinimumCount,
		MaximumCount: &cfg.MaximumCount,
		Layout:       cfg.Layout.String(),
		LayoutSize:   &cfg.LayoutSize,
		Padding: []int{
			cfg.Padding.Left, cfg.Padding.Top, cfg.Padding.Right, cfg.Padding.Bottom,
		},
		ArrowSize:                 &cfg.ArrowSize,
		BlockSize:                 &cfg.BlockSize,
		Border:                    cfg.BorderStyle.String(),
		GammaCorrection:           &cfg.GammaCorrection,
		ShowTransparentBackground: &cfg.ShowTransparentBackground,
		AlwaysShowAddBox:          &cfg.AlwaysShowAddBox,
	}
}

// IsNotExist reports whether err means the preset file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
