package gradpick

import (
	"fmt"
	"image"
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"sort"
)

// DefaultMaximumCount is the stop limit of a new collection.
const DefaultMaximumCount = 32

// Geometry describes the pixel strip that stops travel along.
type Geometry struct {
	// Origin is the top-left corner of the strip in host coordinates.
	// Hit testing subtracts it from pointer locations.
	Origin image.Point

	// Width is the number of pixels available for stop travel.
	Width int

	// StopWidth and StopHeight are the footprint of one stop.
	StopWidth  int
	StopHeight int
}

// TravelRange returns Width - StopWidth, the span a stop origin can occupy.
func (g Geometry) TravelRange() int {
	return g.Width - g.StopWidth
}

func (g Geometry) normalized() Geometry {
	if g.StopWidth <= 0 {
		g.StopWidth = 1
	}
	if g.StopHeight < 0 {
		g.StopHeight = 0
	}
	if g.Width < 0 {
		g.Width = 0
	}
	return g
}

// Collection is an ordered set of stops.
//
// Insertion order is preserved; display and interpolation order is by
// ascending pixel x. The collection enforces its count limits on add.
//
// A Collection is not safe for concurrent use. It is meant to be owned by
// a single Picker and mutated from the host's event loop.
type Collection struct {
	geom     Geometry
	min, max int
	stops    []*Stop
	rng      *rand.Rand
	events   dispatcher
	repaint  func()
}

// NewCollection creates an empty collection over the given strip geometry.
// A nil rng is replaced with a source seeded from runtime entropy.
func NewCollection(g Geometry, rng *rand.Rand) *Collection {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Collection{
		geom: g.normalized(),
		max:  DefaultMaximumCount,
		rng:  rng,
	}
}

// Geometry returns the current strip geometry.
func (c *Collection) Geometry() Geometry {
	return c.geom
}

// SetGeometry changes the strip geometry and recomputes every stop.
func (c *Collection) SetGeometry(g Geometry) {
	c.geom = g.normalized()
	for _, s := range c.stops {
		s.width = c.geom.StopWidth
		s.height = c.geom.StopHeight
		s.relayout()
	}
	c.requestRepaint()
}

// Subscribe registers a listener for collection events and returns a
// function that removes it.
func (c *Collection) Subscribe(fn Listener) func() {
	return c.events.subscribe(fn)
}

// OnRepaint sets the callback invoked after visible state changes.
func (c *Collection) OnRepaint(fn func()) {
	c.repaint = fn
}

func (c *Collection) emit(e Event) {
	c.events.emit(e)
}

func (c *Collection) requestRepaint() {
	if c.repaint != nil {
		c.repaint()
	}
}

// Len returns the number of stops.
func (c *Collection) Len() int {
	return len(c.stops)
}

// At returns the stop at insertion index i.
func (c *Collection) At(i int) *Stop {
	return c.stops[i]
}

// Stops returns a copy of the stops in insertion order.
func (c *Collection) Stops() []*Stop {
	return slices.Clone(c.stops)
}

// All iterates over the stops in insertion order.
func (c *Collection) All() iter.Seq2[int, *Stop] {
	return func(yield func(int, *Stop) bool) {
		for i, s := range c.stops {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Index returns the insertion index of s, or -1.
func (c *Collection) Index(s *Stop) int {
	return slices.Index(c.stops, s)
}

// Contains reports whether s belongs to the collection.
func (c *Collection) Contains(s *Stop) bool {
	return s != nil && c.Index(s) >= 0
}

// MinimumCount returns the lower count limit.
func (c *Collection) MinimumCount() int {
	return c.min
}

// MaximumCount returns the upper count limit; 0 means unbounded.
func (c *Collection) MaximumCount() int {
	return c.max
}

// CanAdd reports whether another stop fits under the maximum count.
func (c *Collection) CanAdd() bool {
	return c.max == 0 || len(c.stops) < c.max
}

// Add appends a stop with the given color at position p.
//
// Unlike Stop.SetPosition, p is not clamped: a value outside [0, 1]
// returns ErrPositionOutOfRange. A full collection returns
// ErrLimitExceeded and raises EventLimitExceeded.
func (c *Collection) Add(col Color, p float64) (*Stop, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: %v", ErrPositionOutOfRange, p)
	}
	if err := c.checkLimit(); err != nil {
		return nil, err
	}
	s := &Stop{color: col, position: p}
	c.insert(s)
	return s, nil
}

// AddAtPixel appends a stop whose origin is at local pixel x.
func (c *Collection) AddAtPixel(col Color, x int) (*Stop, error) {
	if err := c.checkLimit(); err != nil {
		return nil, err
	}
	s := &Stop{color: col}
	s.attach(c)
	s.setPixel(x)
	c.insert(s)
	return s, nil
}

// AddStop appends an existing stop. A stop owned by another collection is
// removed from it first; a stop already in c is left alone.
func (c *Collection) AddStop(s *Stop) error {
	if s == nil || s.owner == c {
		return nil
	}
	if err := c.checkLimit(); err != nil {
		return err
	}
	if s.owner != nil {
		s.owner.Remove(s)
	}
	c.insert(s)
	return nil
}

func (c *Collection) checkLimit() error {
	if c.CanAdd() {
		return nil
	}
	Logger().Warn("gradpick: stop limit exceeded", "max", c.max)
	c.emit(Event{Kind: EventLimitExceeded})
	return fmt.Errorf("%w: no more than %d stops", ErrLimitExceeded, c.max)
}

func (c *Collection) insert(s *Stop) {
	s.attach(c)
	c.stops = append(c.stops, s)
	Logger().Debug("gradpick: stop added",
		"position", s.position, "x", s.x, "count", len(c.stops))
	c.emit(Event{Kind: EventAdded, Stop: s})
	c.requestRepaint()
}

// Remove deletes s from the collection. It reports false when s is absent.
// Remove never backfills below the minimum count.
func (c *Collection) Remove(s *Stop) bool {
	i := c.Index(s)
	if s == nil || i < 0 {
		return false
	}
	c.removeAt(i)
	return true
}

func (c *Collection) removeAt(i int) {
	s := c.stops[i]
	c.stops = slices.Delete(c.stops, i, i+1)
	s.owner = nil
	s.active = false
	Logger().Debug("gradpick: stop removed", "position", s.position, "count", len(c.stops))
	c.emit(Event{Kind: EventRemoved, Stop: s})
	c.requestRepaint()
}

// Clear removes every stop and then restores the minimum count: a black
// stop at 0 and a white stop at 1 when the minimum is two, otherwise
// minimum-count random stops.
func (c *Collection) Clear() {
	for len(c.stops) > 0 {
		c.removeAt(0)
	}
	switch {
	case c.min == 2:
		if _, err := c.Add(Black, 0); err == nil {
			_, _ = c.Add(White, 1)
		}
	case c.min > 0:
		c.addRandom(c.min)
	}
	c.requestRepaint()
}

// addRandom appends n stops with random colors at random pixels, stopping
// early if the limit is reached.
func (c *Collection) addRandom(n int) {
	width := max(c.geom.Width, 1)
	for range n {
		if _, err := c.AddAtPixel(randomColor(c.rng), c.rng.IntN(width)); err != nil {
			return
		}
	}
}

// SetMaximumCount changes the upper limit. A positive limit below the
// current count removes stops from the end of the insertion order; a limit
// below the minimum lowers the minimum too. Zero means unbounded.
func (c *Collection) SetMaximumCount(n int) {
	n = max(n, 0)
	if n > 0 {
		if n < c.min {
			c.min = n
		}
		for len(c.stops) > n {
			c.removeAt(len(c.stops) - 1)
		}
	}
	c.max = n
	Logger().Debug("gradpick: limits changed", "min", c.min, "max", c.max)
	c.requestRepaint()
}

// SetMinimumCount changes the lower limit, raising the maximum when needed
// and backfilling random stops up to the new minimum.
func (c *Collection) SetMinimumCount(n int) {
	n = max(n, 0)
	if c.max > 0 && n > c.max {
		c.max = n
	}
	c.min = n
	if n > len(c.stops) {
		c.addRandom(n - len(c.stops))
	}
	Logger().Debug("gradpick: limits changed", "min", c.min, "max", c.max)
	c.requestRepaint()
}

// Sort reorders the stops by ascending pixel x. Ties keep insertion order.
func (c *Collection) Sort() {
	sort.SliceStable(c.stops, func(i, j int) bool {
		return c.stops[i].x < c.stops[j].x
	})
}

// sortedByX returns a stable copy ordered by pixel x.
func (c *Collection) sortedByX() []*Stop {
	sorted := slices.Clone(c.stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].x < sorted[j].x
	})
	return sorted
}

// byPosition returns a stable copy ordered by position.
func (c *Collection) byPosition(descending bool) []*Stop {
	sorted := slices.Clone(c.stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		if descending {
			return sorted[i].position > sorted[j].position
		}
		return sorted[i].position < sorted[j].position
	})
	return sorted
}

// EvenlyAlign spaces the stops at 0, 1/(n-1), ..., 1 in insertion order,
// not in position order, so colors may swap places visually.
func (c *Collection) EvenlyAlign() {
	n := len(c.stops)
	if n == 0 {
		return
	}
	for i, s := range c.stops {
		if n == 1 {
			s.SetPosition(0)
			continue
		}
		s.SetPosition(float64(i) / float64(n-1))
	}
	c.emit(Event{Kind: EventMoved})
}

// Reverse mirrors the stops: after sorting by x, stop i takes the pixel of
// stop n-1-i. Positions are recomputed from the swapped pixels and the
// collection is left sorted.
func (c *Collection) Reverse() {
	c.Sort()
	n := len(c.stops)
	for i := 0; i < n/2; i++ {
		lo, hi := c.stops[i], c.stops[n-1-i]
		x := hi.x
		hi.setPixel(lo.x)
		lo.setPixel(x)
	}
	c.Sort()
	c.emit(Event{Kind: EventMoved})
	c.requestRepaint()
}

// Randomize assigns each stop an independent uniform position and/or an
// opaque color drawn from the collection's random source.
func (c *Collection) Randomize(changePosition, changeColor bool) {
	for _, s := range c.stops {
		if changePosition {
			s.SetPosition(c.rng.Float64())
		}
		if changeColor {
			s.color = randomColor(c.rng)
		}
	}
	if changePosition {
		c.emit(Event{Kind: EventMoved})
	}
	if changeColor {
		c.emit(Event{Kind: EventColorChanged})
	}
	c.requestRepaint()
}

// InvertColors replaces every color with its RGB complement.
func (c *Collection) InvertColors() {
	for _, s := range c.stops {
		s.color = s.color.Invert()
	}
	c.emit(Event{Kind: EventColorChanged})
	c.requestRepaint()
}

// StopAt hit-tests a host-space point. Stops are scanned from the last
// added, which is drawn topmost; the first match becomes the only active
// stop. With no match every stop is deactivated and ok is false.
func (c *Collection) StopAt(pt image.Point) (s *Stop, ok bool) {
	if len(c.stops) == 0 {
		return nil, false
	}
	x := pt.X - c.geom.Origin.X
	y := pt.Y - c.geom.Origin.Y
	for i := len(c.stops) - 1; i >= 0; i-- {
		st := c.stops[i]
		if s == nil && st.contains(x, y) {
			st.active = true
			s = st
			continue
		}
		st.active = false
	}
	c.requestRepaint()
	return s, s != nil
}

// Activate makes s the only active stop; nil deactivates all.
func (c *Collection) Activate(s *Stop) {
	for _, st := range c.stops {
		st.active = s != nil && st == s
	}
	c.requestRepaint()
}

// HasStopBetween reports whether either local x lies within the horizontal
// extent of any stop.
func (c *Collection) HasStopBetween(x1, x2 int) bool {
	for _, s := range c.stops {
		if (x1 >= s.x && x1 <= s.x+s.width) || (x2 >= s.x && x2 <= s.x+s.width) {
			return true
		}
	}
	return false
}

// Next returns the stop following s by position: the nearest stop at or
// after s (ties resolved by insertion order), otherwise the nearest stop at
// or before s. A single stop is its own successor. A nil or foreign s
// yields the stop with the smallest position.
func (c *Collection) Next(s *Stop) *Stop {
	return c.neighbor(s, false)
}

// Previous mirrors Next with the inequalities reversed.
func (c *Collection) Previous(s *Stop) *Stop {
	return c.neighbor(s, true)
}

func (c *Collection) neighbor(s *Stop, backward bool) *Stop {
	if len(c.stops) == 0 {
		return nil
	}
	asc := c.byPosition(false)
	if !c.Contains(s) {
		return asc[0]
	}
	if len(c.stops) == 1 {
		return s
	}
	desc := c.byPosition(true)

	ahead, behind := asc, desc
	if backward {
		ahead, behind = desc, asc
	}
	for _, t := range ahead {
		if t != s && inDirection(t.position, s.position, backward) {
			return t
		}
	}
	for _, t := range behind {
		if t != s && inDirection(t.position, s.position, !backward) {
			return t
		}
	}
	return s
}

// inDirection reports p >= ref going forward, p <= ref going backward.
func inDirection(p, ref float64, backward bool) bool {
	if backward {
		return p <= ref
	}
	return p >= ref
}
