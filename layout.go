package gradpick

import "image"

// DefaultClientSize is the client area a picker assumes until Resize.
var DefaultClientSize = image.Pt(175, 28)

// Layout is the split of the client area into the gradient preview and
// the stop strip, in host coordinates.
type Layout struct {
	// Gradient is empty for LayoutNone. For LayoutBackground it equals
	// Stops.
	Gradient image.Rectangle
	Stops    image.Rectangle
}

// computeLayout splits a client area of the given size.
func computeLayout(cfg Config, client image.Point) Layout {
	pad := cfg.Padding
	width := max(client.X-pad.Horizontal(), 0)
	height := max(client.Y-pad.Vertical(), 0)
	origin := image.Pt(pad.Left, pad.Top)

	var gradientHeight int
	switch cfg.Layout {
	case LayoutPercent:
		gradientHeight = height * cfg.LayoutSize / 100
	case LayoutFixedSize:
		gradientHeight = min(cfg.LayoutSize, height)
	case LayoutBackground:
		r := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, height))}
		return Layout{Gradient: r, Stops: r}
	default:
		return Layout{Stops: image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, height))}}
	}

	gradient := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(width, gradientHeight))}
	// One pixel gap between the gradient and the stops.
	top := gradient.Max.Y + 1
	stopsHeight := max(height-gradientHeight-1, 0)
	return Layout{
		Gradient: gradient,
		Stops:    image.Rect(origin.X, top, origin.X+width, top+stopsHeight),
	}
}

// geometry returns the collection geometry for this layout.
func (l Layout) geometry(cfg Config) Geometry {
	h := l.Stops.Dy()
	if h == 0 {
		h = cfg.StopHeight
	}
	return Geometry{
		Origin:     l.Stops.Min,
		Width:      l.Stops.Dx(),
		StopWidth:  cfg.StopWidth,
		StopHeight: h,
	}
}

// Glyph is the drawn shape of one stop: an arrow pointing at the gradient
// above a color block. Coordinates are in host space.
type Glyph struct {
	Stop   *Stop
	Arrow  image.Rectangle
	Block  image.Rectangle
	Color  Color
	Active bool
}

// ArrowPoints returns the triangle apex and base corners.
func (g Glyph) ArrowPoints() [3]image.Point {
	a := g.Arrow
	return [3]image.Point{
		{X: a.Min.X + a.Dx()/2, Y: a.Min.Y},
		{X: a.Min.X, Y: a.Max.Y},
		{X: a.Max.X, Y: a.Max.Y},
	}
}

// glyphAt computes the glyph rectangles for a stop whose origin is at
// local x inside the stop strip.
func (l Layout) glyphAt(cfg Config, x, y int) (arrow, block image.Rectangle) {
	h := l.Stops.Dy()
	w := cfg.StopWidth
	arrowHeight := int(float64(h) * cfg.ArrowSize)
	blockHeight := int(float64(h) * cfg.BlockSize)
	if cfg.Layout.hasGradientStrip() {
		blockHeight -= 2
	}
	blockHeight = max(blockHeight, 0)

	o := l.Stops.Min.Add(image.Pt(x, y))
	arrow = image.Rect(o.X, o.Y, o.X+w, o.Y+arrowHeight)
	block = image.Rect(o.X, arrow.Max.Y, o.X+w, arrow.Max.Y+blockHeight)
	return arrow, block
}

// AddBox returns the placeholder glyph centered in the stop strip, drawn
// when the collection is empty or AlwaysShowAddBox is set.
func (l Layout) AddBox(cfg Config) Glyph {
	x := (l.Stops.Dx() - cfg.StopWidth) / 2
	arrow, block := l.glyphAt(cfg, x, 0)
	block.Max.Y = block.Min.Y + max(int(float64(l.Stops.Dy())*cfg.BlockSize)-2, 0)
	return Glyph{Arrow: arrow, Block: block, Color: DarkGray}
}
