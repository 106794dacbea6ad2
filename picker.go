package gradpick

import (
	"fmt"
	"image"

	"golang.org/x/text/language"
)

// Picker is the gradient stop editor: a Collection plus selection, layout,
// input handling and painting.
//
// A Picker is not safe for concurrent use. All methods must be called
// from the host's event loop.
type Picker struct {
	cfg    Config
	stops  *Collection
	client image.Point
	layout Layout

	selected    *Stop
	lastColor   Color
	lastPointer image.Point
	dragging    bool
	dragStartY  int // -1 outside a drag
	enabled     bool

	host        Host
	clipboard   Clipboard
	dialog      ColorDialog
	renderer    Renderer
	ownRenderer bool
	locale      language.Tag
}

// NewPicker creates a picker sized to DefaultClientSize.
func NewPicker(opts ...Option) *Picker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := o.config.normalized()
	p := &Picker{
		cfg:        cfg,
		client:     DefaultClientSize,
		lastColor:  Black,
		dragStartY: -1,
		enabled:    true,
		host:       o.host,
		clipboard:  o.clipboard,
		dialog:     o.dialog,
		renderer:   o.renderer,
		locale:     o.locale,
	}
	if p.clipboard == nil {
		p.clipboard = NewMemoryClipboard()
	}
	if p.renderer == nil {
		p.renderer = &SoftwareRenderer{GammaCorrection: cfg.GammaCorrection}
		p.ownRenderer = true
	}

	p.layout = computeLayout(cfg, p.client)
	p.stops = NewCollection(p.layout.geometry(cfg), o.rng)
	p.stops.OnRepaint(p.requestRepaint)
	p.stops.Subscribe(p.onCollectionEvent)
	p.stops.SetMaximumCount(cfg.MaximumCount)
	p.stops.SetMinimumCount(cfg.MinimumCount)
	return p
}

// onCollectionEvent keeps picker state in step with the collection.
func (p *Picker) onCollectionEvent(e Event) {
	switch e.Kind {
	case EventRemoved:
		if e.Stop != nil && e.Stop == p.selected {
			p.selected = nil
		}
	case EventColorChanged:
		if e.Stop != nil {
			p.lastColor = e.Stop.color
		}
	case EventLimitExceeded:
		if !p.cfg.NotifyOfExceedingLimit {
			return
		}
		if n, ok := p.host.(LimitNotifier); ok {
			n.NotifyLimitExceeded(p.stops.MaximumCount())
		}
	}
}

func (p *Picker) requestRepaint() {
	if p.host != nil {
		p.host.RequestRepaint()
	}
}

// Collection returns the underlying stop collection.
func (p *Picker) Collection() *Collection {
	return p.stops
}

// Config returns the current configuration.
func (p *Picker) Config() Config {
	return p.cfg
}

// SetConfig replaces the configuration, applying count limits and layout.
func (p *Picker) SetConfig(cfg Config) {
	p.cfg = cfg.normalized()
	if sw, ok := p.renderer.(*SoftwareRenderer); ok && p.ownRenderer {
		sw.GammaCorrection = p.cfg.GammaCorrection
	}
	p.stops.SetMaximumCount(p.cfg.MaximumCount)
	p.stops.SetMinimumCount(p.cfg.MinimumCount)
	p.relayout()
}

// Resize sets the client area size and lays the stops out again.
func (p *Picker) Resize(width, height int) {
	p.client = image.Pt(max(width, 0), max(height, 0))
	p.relayout()
}

// Size returns the client area size.
func (p *Picker) Size() image.Point {
	return p.client
}

// Layout returns the current split of the client area.
func (p *Picker) Layout() Layout {
	return p.layout
}

func (p *Picker) relayout() {
	p.layout = computeLayout(p.cfg, p.client)
	p.stops.SetGeometry(p.layout.geometry(p.cfg))
	Logger().Debug("gradpick: layout",
		"client", p.client, "gradient", p.layout.Gradient, "stops", p.layout.Stops)
}

// Enabled reports whether the picker accepts input.
func (p *Picker) Enabled() bool {
	return p.enabled
}

// SetEnabled enables or disables input. A disabled picker paints in
// grayscale when Config.GrayscaleWhenDisabled is set.
func (p *Picker) SetEnabled(enabled bool) {
	if p.enabled == enabled {
		return
	}
	p.enabled = enabled
	if !enabled {
		p.dragging = false
		p.dragStartY = -1
	}
	p.requestRepaint()
}

// Subscribe registers a listener for picker events and returns a function
// that removes it.
func (p *Picker) Subscribe(fn Listener) func() {
	return p.stops.Subscribe(fn)
}

// LastColor returns the color used for stops added by click, by the A key
// and when dragging a removed stop back in.
func (p *Picker) LastColor() Color {
	return p.lastColor
}

// SetLastColor sets the color returned by LastColor.
func (p *Picker) SetLastColor(c Color) {
	p.lastColor = c
}

// Table returns the interpolation table of the current stops.
func (p *Picker) Table() Table {
	return p.stops.Table()
}

// Selected returns the selected stop, or nil.
func (p *Picker) Selected() *Stop {
	return p.selected
}

// Select makes s the selected and only active stop. A stop that does not
// belong to the picker clears the selection.
func (p *Picker) Select(s *Stop) {
	if !p.stops.Contains(s) {
		s = nil
	}
	p.selected = s
	p.stops.Activate(s)
}

// SelectNext moves the selection by position like Tab does. Going forward
// it picks the nearest stop at or after the selected one and wraps to the
// first; backward mirrors that. With no selection the first stop by
// position is selected.
func (p *Picker) SelectNext(backward bool) {
	if p.stops.Len() == 0 {
		return
	}
	ordered := p.stops.byPosition(backward)
	sel := p.selected
	if sel == nil {
		p.Select(p.stops.byPosition(false)[0])
		return
	}
	for _, s := range ordered {
		if s != sel && inDirection(s.position, sel.position, backward) {
			p.Select(s)
			return
		}
	}
	p.Select(ordered[0])
}

// AddColor appends a stop at position p without selecting it.
func (p *Picker) AddColor(c Color, position float64) (*Stop, error) {
	return p.stops.Add(c, position)
}

// AddColorAtPixel appends a stop whose origin is at local x in the stop
// strip and selects it.
func (p *Picker) AddColorAtPixel(c Color, x int) (*Stop, error) {
	s, err := p.stops.AddAtPixel(c, x)
	if err != nil {
		return nil, err
	}
	p.Select(s)
	return s, nil
}

// RemoveStop removes s, then tops the stops back up to the minimum count.
// It reports false when s is not in the picker.
func (p *Picker) RemoveStop(s *Stop) bool {
	if !p.stops.Remove(s) {
		return false
	}
	p.backfill()
	return true
}

// backfill adds random stops until the minimum count is met again.
func (p *Picker) backfill() {
	if n := p.stops.MinimumCount() - p.stops.Len(); n > 0 {
		p.stops.addRandom(n)
	}
}

// RemoveSelected removes the selected stop and clears the selection.
func (p *Picker) RemoveSelected() error {
	if p.selected == nil {
		return ErrNoSelection
	}
	p.stops.Remove(p.selected)
	p.selected = nil
	p.backfill()
	return nil
}

// removeAndAdvance removes the selected stop and selects its successor,
// falling back to the first stop.
func (p *Picker) removeAndAdvance() {
	sel := p.selected
	next := p.stops.Next(sel)
	if next == sel {
		next = nil
	}
	p.stops.Remove(sel)
	p.backfill()
	if next == nil && p.stops.Len() > 0 {
		next = p.stops.At(0)
	}
	p.Select(next)
}

// Clear removes every stop, restoring the minimum count.
func (p *Picker) Clear() {
	p.selected = nil
	p.stops.Clear()
}

// EvenlyAlign spaces the stops evenly in insertion order.
func (p *Picker) EvenlyAlign() {
	p.stops.EvenlyAlign()
}

// Reverse mirrors the stops along the axis.
func (p *Picker) Reverse() {
	p.stops.Reverse()
}

// Randomize draws new positions and/or colors for every stop.
func (p *Picker) Randomize(changePosition, changeColor bool) {
	p.stops.Randomize(changePosition, changeColor)
}

// InvertColors replaces every color with its RGB complement.
func (p *Picker) InvertColors() {
	p.stops.InvertColors()
}

// SetMinimumCount changes the lower stop limit.
func (p *Picker) SetMinimumCount(n int) {
	p.stops.SetMinimumCount(n)
	p.cfg.MinimumCount = p.stops.MinimumCount()
	p.cfg.MaximumCount = p.stops.MaximumCount()
}

// SetMaximumCount changes the upper stop limit; 0 means unbounded.
func (p *Picker) SetMaximumCount(n int) {
	p.stops.SetMaximumCount(n)
	p.cfg.MinimumCount = p.stops.MinimumCount()
	p.cfg.MaximumCount = p.stops.MaximumCount()
}

// HasStopBetween reports whether either local x lies on a stop.
func (p *Picker) HasStopBetween(x1, x2 int) bool {
	return p.stops.HasStopBetween(x1, x2)
}

// ShowColorDialog opens the color dialog for the selected stop and applies
// the result. Without a dialog, or with AllowColorDialog off, it does
// nothing.
func (p *Picker) ShowColorDialog() error {
	sel := p.selected
	if sel == nil {
		return ErrNoSelection
	}
	if p.dialog == nil || !p.cfg.AllowColorDialog {
		return nil
	}
	c, ok, err := p.dialog.PickColor(sel.color)
	if err != nil {
		return fmt.Errorf("color dialog: %w", err)
	}
	if ok {
		sel.SetColor(c)
	}
	return nil
}

// Copy puts the selected color on the clipboard.
func (p *Picker) Copy() error {
	if p.selected == nil {
		return ErrNoSelection
	}
	return p.clipboard.SetText(ClipboardTag, EncodeClipboardColor(p.selected.color))
}

// Cut copies the selected color and removes its stop, selecting the next.
func (p *Picker) Cut() error {
	if err := p.Copy(); err != nil {
		return err
	}
	p.removeAndAdvance()
	return nil
}

// Paste adds a stop with the clipboard color under the last pointer
// location and selects it. The collection is unchanged on error.
func (p *Picker) Paste() (*Stop, error) {
	text, err := p.clipboard.Text(ClipboardTag)
	if err != nil {
		return nil, err
	}
	c, err := DecodeClipboardColor(text)
	if err != nil {
		Logger().Warn("gradpick: paste rejected", "err", err)
		return nil, err
	}
	return p.AddColorAtPixel(c, p.lastPointer.X-p.layout.Stops.Min.X)
}

// PositionLabel describes the selected stop as "12.5% / 40px", or the
// pointer location when nothing is selected.
func (p *Picker) PositionLabel() string {
	if s := p.selected; s != nil {
		return fmt.Sprintf("%s / %dpx", FormatPercent(s.position, p.locale), s.x)
	}
	x := p.lastPointer.X - p.layout.Stops.Min.X
	pos := 0.0
	if w := p.layout.Stops.Dx(); w > 0 {
		pos = clamp01(float64(x) / float64(w))
	}
	return fmt.Sprintf("%s / %dpx", FormatPercent(pos, p.locale), x)
}

// Locale returns the language used for position labels.
func (p *Picker) Locale() language.Tag {
	return p.locale
}

// Glyphs returns the stop glyphs in paint order: insertion order with the
// selected stop last.
func (p *Picker) Glyphs() []Glyph {
	glyphs := make([]Glyph, 0, p.stops.Len())
	var top *Glyph
	for _, s := range p.stops.stops {
		arrow, block := p.layout.glyphAt(p.cfg, s.x, s.y)
		g := Glyph{Stop: s, Arrow: arrow, Block: block, Color: s.color, Active: s.active}
		if s == p.selected {
			top = &g
			continue
		}
		glyphs = append(glyphs, g)
	}
	if top != nil {
		glyphs = append(glyphs, *top)
	}
	return glyphs
}
