package gradpick

import (
	"fmt"
	"image"
	"math"
)

// Shape selects how table positions map onto the target rectangle.
type Shape int

const (
	// ShapeLinear runs the table along a direction across the rectangle.
	ShapeLinear Shape = iota
	// ShapeRadial fills the ellipse inscribed in the rectangle.
	ShapeRadial
)

// Point is a point with float coordinates.
type Point struct {
	X, Y float64
}

// Orientation describes the gradient geometry for a Renderer.
type Orientation struct {
	Shape Shape

	// Angle is the linear direction in degrees, clockwise from the +x axis
	// (y grows downward).
	Angle float64

	// Center is the radial focus relative to the rectangle: (0.5, 0.5) is
	// the middle, (0, 0) the top-left corner.
	Center Point
}

// Linear returns a linear orientation at angle degrees.
func Linear(angle float64) Orientation {
	return Orientation{Shape: ShapeLinear, Angle: angle}
}

// Radial returns a radial orientation focused at (cx, cy), relative to the
// target rectangle.
func Radial(cx, cy float64) Orientation {
	return Orientation{Shape: ShapeRadial, Center: Point{X: cx, Y: cy}}
}

// Renderer fills a gradient described by an interpolation table into a
// pixmap. Implementations must not retain the table.
type Renderer interface {
	Render(dst *Pixmap, t Table, rect image.Rectangle, o Orientation) error
}

// SoftwareRenderer is a CPU Renderer.
type SoftwareRenderer struct {
	// GammaCorrection interpolates in linear light instead of sRGB.
	GammaCorrection bool
}

// NewSoftwareRenderer returns a renderer with gamma correction enabled.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{GammaCorrection: true}
}

// Render implements Renderer. Pixels are sampled at their centers and
// composited over dst. Radial gradients leave pixels outside the inscribed
// ellipse untouched.
func (r *SoftwareRenderer) Render(dst *Pixmap, t Table, rect image.Rectangle, o Orientation) error {
	if dst == nil {
		return fmt.Errorf("%w: nil pixmap", ErrInvalidDimensions)
	}
	if t.IsEmpty() {
		return ErrEmptyTable
	}
	if rect.Empty() {
		return fmt.Errorf("%w: empty target %v", ErrInvalidDimensions, rect)
	}

	var param func(x, y float64) (float64, bool)
	switch o.Shape {
	case ShapeRadial:
		param = radialParam(rect, o.Center)
	default:
		param = linearParam(rect, o.Angle)
	}

	clip := rect.Intersect(dst.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			p, ok := param(float64(x)+0.5, float64(y)+0.5)
			if !ok {
				continue
			}
			dst.BlendPixel(x, y, t.colorAt(p, r.GammaCorrection))
		}
	}
	return nil
}

// linearParam projects points onto the gradient direction so that the
// rectangle corner first met maps to 0 and the opposite corner to 1.
func linearParam(rect image.Rectangle, angle float64) func(x, y float64) (float64, bool) {
	rad := angle * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)

	corners := [4]Point{
		{float64(rect.Min.X), float64(rect.Min.Y)},
		{float64(rect.Max.X), float64(rect.Min.Y)},
		{float64(rect.Min.X), float64(rect.Max.Y)},
		{float64(rect.Max.X), float64(rect.Max.Y)},
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		d := c.X*dx + c.Y*dy
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	span := hi - lo

	return func(x, y float64) (float64, bool) {
		if span == 0 {
			return 0, true
		}
		return (x*dx + y*dy - lo) / span, true
	}
}

// radialParam maps the inscribed ellipse to the unit circle. Table
// position 0 lies on the ellipse boundary and 1 at the focus.
func radialParam(rect image.Rectangle, center Point) func(x, y float64) (float64, bool) {
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2

	// Focus in unit-circle space; a focus outside the circle falls back to
	// the center.
	fx, fy := 2*center.X-1, 2*center.Y-1
	if fx*fx+fy*fy >= 1 {
		fx, fy = 0, 0
	}

	return func(x, y float64) (float64, bool) {
		u := (x - cx) / rx
		v := (y - cy) / ry
		if u*u+v*v > 1 {
			return 0, false
		}
		return 1 - focalT(u, v, fx, fy), true
	}
}

// focalT returns how far (u, v) lies from the focus toward the unit circle
// along the ray through it: 0 at the focus, 1 on the circle.
func focalT(u, v, fx, fy float64) float64 {
	dx, dy := u-fx, v-fy
	a := dx*dx + dy*dy
	if a == 0 {
		return 0
	}
	// Solve |f + s*d| = 1 for the positive root s.
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}
	s := (-b + math.Sqrt(disc)) / (2 * a)
	if s <= 0 {
		return 1
	}
	return clamp01(1 / s)
}

// DrawCheckerboard fills r with alternating square cells of size cell,
// the transparency backdrop drawn behind gradients.
func DrawCheckerboard(dst *Pixmap, r image.Rectangle, cell int, c1, c2 Color) {
	if cell <= 0 {
		cell = 1
	}
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			col := c1
			if ((x-r.Min.X)/cell+(y-r.Min.Y)/cell)%2 == 1 {
				col = c2
			}
			dst.SetPixel(x, y, col)
		}
	}
}
