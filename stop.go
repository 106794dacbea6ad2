package gradpick

import (
	"image"
)

// Default stop footprint in pixels.
const (
	DefaultStopWidth  = 12
	DefaultStopHeight = 18
)

// Stop is a single color at a normalized position on the gradient axis.
//
// The pixel origin (X, Y) is derived from the position and the geometry of
// the owning Collection and is recomputed on every position change.
type Stop struct {
	// Tag holds arbitrary user data.
	Tag any

	color    Color
	position float64

	x, y          int
	width, height int
	active        bool

	// offsetX and offsetY record where inside the stop the pointer grabbed
	// it, so dragging keeps the grab point under the pointer.
	offsetX, offsetY int

	owner *Collection
}

// NewStop creates a detached stop. Its geometry is assigned when it is
// added to a Collection.
func NewStop(c Color, position float64) *Stop {
	return &Stop{
		color:    c,
		position: clamp01(position),
		width:    DefaultStopWidth,
		height:   DefaultStopHeight,
	}
}

// Color returns the stop color.
func (s *Stop) Color() Color {
	return s.color
}

// SetColor changes the stop color and notifies the owner when it differs.
func (s *Stop) SetColor(c Color) {
	if s.color == c {
		return
	}
	s.color = c
	if s.owner != nil {
		s.owner.emit(Event{Kind: EventColorChanged, Stop: s})
	}
}

// Position returns the normalized position in [0, 1].
func (s *Stop) Position() float64 {
	return s.position
}

// SetPosition clamps p to [0, 1], stores it and recomputes the pixel origin.
func (s *Stop) SetPosition(p float64) {
	s.position = clamp01(p)
	s.relayout()
}

// MoveTo positions the stop so that the grab point lands on the local
// pixel x. The drag offset recorded by Grab is subtracted first.
func (s *Stop) MoveTo(x int) {
	s.setPixel(x - s.offsetX)
}

// setPixel converts an origin x into a position through the owner geometry.
func (s *Stop) setPixel(x int) {
	if s.owner == nil {
		return
	}
	g := s.owner.geom
	s.SetPosition(PixelToPosition(x, g.Width, s.width))
}

// Grab records the offset between a local pointer location and the stop
// origin. Subsequent MoveTo calls keep that offset stable.
func (s *Stop) Grab(pt image.Point) {
	s.offsetX = abs(s.x - pt.X)
	s.offsetY = abs(s.y - pt.Y)
}

// Offset returns the grab offset recorded by Grab.
func (s *Stop) Offset() image.Point {
	return image.Pt(s.offsetX, s.offsetY)
}

// X returns the local pixel x of the stop origin.
func (s *Stop) X() int { return s.x }

// Y returns the local pixel y of the stop origin.
func (s *Stop) Y() int { return s.y }

// Size returns the pixel footprint of the stop.
func (s *Stop) Size() image.Point {
	return image.Pt(s.width, s.height)
}

// Bounds returns the hit rectangle in collection-local coordinates.
// Hit testing treats the right and bottom edges as inclusive.
func (s *Stop) Bounds() image.Rectangle {
	return image.Rect(s.x, s.y, s.x+s.width, s.y+s.height)
}

// Active reports whether the stop is the one under pointer focus.
func (s *Stop) Active() bool {
	return s.active
}

// Owner returns the collection the stop belongs to, or nil.
func (s *Stop) Owner() *Collection {
	return s.owner
}

// contains reports whether a local point falls inside the stop, edges
// included.
func (s *Stop) contains(x, y int) bool {
	return x >= s.x && x <= s.x+s.width && y >= s.y && y <= s.y+s.height
}

// attach assigns the stop to c and resets its geometry.
func (s *Stop) attach(c *Collection) {
	s.owner = c
	if c != nil {
		s.width = c.geom.StopWidth
		s.height = c.geom.StopHeight
	}
	s.relayout()
}

// relayout recomputes the pixel origin from the position.
func (s *Stop) relayout() {
	if s.owner == nil {
		return
	}
	s.x = PositionToPixel(s.position, s.owner.geom.Width, s.width)
	s.owner.requestRepaint()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
