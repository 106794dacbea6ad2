package gradpick

import (
	"fmt"
	"image"

	"github.com/gogpu/gradpick/internal/filter"
)

// Paint draws the whole picker into dst, which should match the client
// size: the transparency checkerboard and gradient preview, the add box
// and the stop glyphs with the selected stop on top.
func (p *Picker) Paint(dst *Pixmap) error {
	if dst == nil {
		return fmt.Errorf("%w: nil pixmap", ErrInvalidDimensions)
	}
	dst.Clear(Transparent)

	if err := p.paintGradient(dst); err != nil {
		return err
	}
	if p.stops.Len() == 0 || p.cfg.AlwaysShowAddBox {
		paintAddBox(dst, p.layout.AddBox(p.cfg))
	}
	for _, g := range p.Glyphs() {
		paintGlyph(dst, g, p.cfg.BorderStyle)
	}

	if !p.enabled && p.cfg.GrayscaleWhenDisabled {
		filter.NewGrayscaleFilter().Apply(dst.Data(), dst.Width(), dst.Bounds())
	}
	return nil
}

func (p *Picker) paintGradient(dst *Pixmap) error {
	r := p.layout.Gradient
	if p.cfg.Layout == LayoutNone || r.Empty() {
		return nil
	}
	if p.cfg.ShowTransparentBackground {
		DrawCheckerboard(dst, r, p.cfg.TransparentCellSize,
			p.cfg.TransparentColor1, p.cfg.TransparentColor2)
	}
	if p.stops.Len() == 0 {
		return nil
	}
	return p.renderer.Render(dst, p.stops.Table(), r, Linear(0))
}

// sampleColor paints the picker off-screen and stores the pixel under pt
// as LastColor.
func (p *Picker) sampleColor(pt image.Point) {
	pm, err := NewPixmap(p.client.X, p.client.Y)
	if err != nil {
		return
	}
	if err := p.Paint(pm); err != nil {
		Logger().Warn("gradpick: sample color", "err", err)
		return
	}
	p.lastColor = pm.GetPixel(pt.X, pt.Y)
}

// DrawLinearGradient fills rect with the current gradient at angle
// degrees. It does nothing for an empty picker.
func (p *Picker) DrawLinearGradient(dst *Pixmap, rect image.Rectangle, angle float64) error {
	return p.drawGradient(dst, rect, Linear(angle))
}

// DrawRadialGradient fills the ellipse inscribed in rect with the current
// gradient, focused at center relative to rect. It does nothing for an
// empty picker.
func (p *Picker) DrawRadialGradient(dst *Pixmap, rect image.Rectangle, center Point) error {
	return p.drawGradient(dst, rect, Radial(center.X, center.Y))
}

func (p *Picker) drawGradient(dst *Pixmap, rect image.Rectangle, o Orientation) error {
	if dst == nil {
		return fmt.Errorf("%w: nil pixmap", ErrInvalidDimensions)
	}
	if rect.Empty() {
		rect = dst.Bounds()
	}
	if p.stops.Len() == 0 {
		return nil
	}
	return p.renderer.Render(dst, p.stops.Table(), rect, o)
}

func paintAddBox(dst *Pixmap, g Glyph) {
	strokeTriangle(dst, g.Arrow, g.Color)
	dst.StrokeRect(g.Block, g.Color)
}

func paintGlyph(dst *Pixmap, g Glyph, border BorderStyle) {
	arrowFill := White
	if g.Active {
		arrowFill = Black
	}
	fillTriangle(dst, g.Arrow, arrowFill)
	strokeTriangle(dst, g.Arrow, Black)

	if g.Block.Empty() {
		return
	}
	dst.FillRect(g.Block, g.Color.Opaque())
	inner := g.Block.Inset(1)
	switch border {
	case BorderFixed3D:
		// Raised: light top-left, dark bottom-right.
		hline(dst, inner.Min.X, inner.Max.X, inner.Min.Y, White)
		vline(dst, inner.Min.X, inner.Min.Y, inner.Max.Y, White)
		hline(dst, inner.Min.X, inner.Max.X, inner.Max.Y-1, DarkGray)
		vline(dst, inner.Max.X-1, inner.Min.Y, inner.Max.Y, DarkGray)
	case BorderFixedSingle:
		dst.StrokeRect(inner, DarkGray)
	}
	dst.StrokeRect(g.Block, Black)
}

// triangleSpan returns the horizontal extent of the upward arrow in r at
// row y.
func triangleSpan(r image.Rectangle, y int) (x0, x1 int) {
	h := r.Dy()
	frac := (float64(y-r.Min.Y) + 0.5) / float64(h)
	half := frac * float64(r.Dx()) / 2
	cx := float64(r.Min.X) + float64(r.Dx())/2
	return int(cx - half), int(cx + half + 0.5)
}

func fillTriangle(dst *Pixmap, r image.Rectangle, c Color) {
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		x0, x1 := triangleSpan(r, y)
		hline(dst, x0, x1, y, c)
	}
}

func strokeTriangle(dst *Pixmap, r image.Rectangle, c Color) {
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		x0, x1 := triangleSpan(r, y)
		dst.BlendPixel(x0, y, c)
		dst.BlendPixel(x1-1, y, c)
	}
	hline(dst, r.Min.X, r.Max.X, r.Max.Y-1, c)
}

func hline(dst *Pixmap, x0, x1, y int, c Color) {
	for x := x0; x < x1; x++ {
		dst.BlendPixel(x, y, c)
	}
}

func vline(dst *Pixmap, x, y0, y1 int, c Color) {
	for y := y0; y < y1; y++ {
		dst.BlendPixel(x, y, c)
	}
}
