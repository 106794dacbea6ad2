package gradpick

import (
	"errors"
	"image"
	"math"
	"math/rand/v2"
	"testing"
)

// newTestCollection returns a collection over a strip of the given width
// with default stop size and a fixed random seed.
func newTestCollection(width int) *Collection {
	return NewCollection(Geometry{
		Width:      width,
		StopWidth:  DefaultStopWidth,
		StopHeight: DefaultStopHeight,
	}, rand.New(rand.NewPCG(1, 2)))
}

func mustAdd(t *testing.T, c *Collection, col Color, p float64) *Stop {
	t.Helper()
	s, err := c.Add(col, p)
	if err != nil {
		t.Fatalf("Add(%v, %v) = %v", col, p, err)
	}
	return s
}

func recordEvents(c *Collection) *[]Event {
	var events []Event
	c.Subscribe(func(e Event) { events = append(events, e) })
	return &events
}

func TestNewCollectionDefaults(t *testing.T) {
	c := NewCollection(Geometry{Width: 100, StopWidth: 0}, nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if c.MaximumCount() != DefaultMaximumCount || c.MinimumCount() != 0 {
		t.Errorf("limits = [%d, %d], want [0, %d]", c.MinimumCount(), c.MaximumCount(), DefaultMaximumCount)
	}
	if got := c.Geometry().StopWidth; got != 1 {
		t.Errorf("non-positive stop width normalized to %d, want 1", got)
	}
}

func TestCollectionAdd(t *testing.T) {
	c := newTestCollection(112)
	events := recordEvents(c)

	s := mustAdd(t, c, Black, 0.5)

	if s.Owner() != c {
		t.Error("added stop not owned by collection")
	}
	if s.X() != 50 {
		t.Errorf("X() = %d, want 50", s.X())
	}
	if s.Size() != image.Pt(DefaultStopWidth, DefaultStopHeight) {
		t.Errorf("Size() = %v", s.Size())
	}
	if len(*events) != 1 || (*events)[0].Kind != EventAdded || (*events)[0].Stop != s {
		t.Errorf("events = %v, want one added event for the stop", *events)
	}
}

func TestCollectionAddRejectsOutOfRange(t *testing.T) {
	c := newTestCollection(112)
	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if _, err := c.Add(Black, p); !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("Add(%v) error = %v, want ErrPositionOutOfRange", p, err)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after rejected adds, want 0", c.Len())
	}
}

func TestCollectionLimit(t *testing.T) {
	c := newTestCollection(112)
	c.SetMaximumCount(2)
	events := recordEvents(c)

	mustAdd(t, c, Black, 0)
	mustAdd(t, c, White, 1)

	if c.CanAdd() {
		t.Error("CanAdd() = true at the limit")
	}
	if _, err := c.Add(Silver, 0.5); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("Add() error = %v, want ErrLimitExceeded", err)
	}
	if _, err := c.AddAtPixel(Silver, 10); !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("AddAtPixel() error = %v, want ErrLimitExceeded", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	var limitEvents int
	for _, e := range *events {
		if e.Kind == EventLimitExceeded {
			limitEvents++
		}
	}
	if limitEvents != 2 {
		t.Errorf("limit-exceeded events = %d, want 2", limitEvents)
	}
}

func TestCollectionUnboundedMaximum(t *testing.T) {
	c := newTestCollection(112)
	c.SetMaximumCount(0)
	for i := range DefaultMaximumCount + 5 {
		mustAdd(t, c, Black, float64(i)/100)
	}
	if c.Len() != DefaultMaximumCount+5 {
		t.Errorf("Len() = %d", c.Len())
	}
}

func TestCollectionAddAtPixel(t *testing.T) {
	c := newTestCollection(112)
	s, err := c.AddAtPixel(Black, 25)
	if err != nil {
		t.Fatal(err)
	}
	if s.Position() != 0.25 || s.X() != 25 {
		t.Errorf("position, x = %v, %d, want 0.25, 25", s.Position(), s.X())
	}

	s, _ = c.AddAtPixel(Black, -40)
	if s.Position() != 0 {
		t.Errorf("left of strip: position = %v, want 0", s.Position())
	}
	s, _ = c.AddAtPixel(Black, 400)
	if s.Position() != 1 {
		t.Errorf("right of strip: position = %v, want 1", s.Position())
	}
}

func TestCollectionAddStopTransfersOwnership(t *testing.T) {
	a := newTestCollection(112)
	b := NewCollection(Geometry{Width: 212, StopWidth: 20, StopHeight: 30}, nil)

	s := mustAdd(t, a, Black, 0.5)
	if err := b.AddStop(s); err != nil {
		t.Fatal(err)
	}

	if a.Contains(s) || a.Len() != 0 {
		t.Error("stop still in the old collection")
	}
	if s.Owner() != b {
		t.Error("owner not updated")
	}
	if s.Size() != image.Pt(20, 30) {
		t.Errorf("geometry not reset from new owner: %v", s.Size())
	}
	if s.X() != 96 {
		t.Errorf("X() = %d, want 96", s.X())
	}
}

func TestCollectionRemove(t *testing.T) {
	c := newTestCollection(112)
	c.SetMinimumCount(0)
	a := mustAdd(t, c, Black, 0)
	b := mustAdd(t, c, White, 1)
	c.SetMinimumCount(2)
	events := recordEvents(c)

	if !c.Remove(a) {
		t.Fatal("Remove() = false for a member")
	}
	if c.Remove(a) {
		t.Error("Remove() = true for a removed stop")
	}
	if c.Remove(nil) {
		t.Error("Remove(nil) = true")
	}
	if c.Len() != 1 || c.At(0) != b {
		t.Errorf("remaining stops wrong, Len() = %d", c.Len())
	}
	if a.Owner() != nil {
		t.Error("removed stop keeps its owner")
	}
	if len(*events) != 1 || (*events)[0].Kind != EventRemoved {
		t.Errorf("events = %v, want one removed event", *events)
	}
}

func TestCollectionTable(t *testing.T) {
	c := newTestCollection(112)

	tbl := c.Table()
	if !tbl.IsEmpty() {
		t.Errorf("empty collection table has %d entries", tbl.Len())
	}

	red := RGB(255, 0, 0)
	mustAdd(t, c, red, 0.5)
	tbl = c.Table()
	wantPos := []float64{0, 0.5, 1}
	if tbl.Len() != 3 {
		t.Fatalf("single stop table Len() = %d, want 3", tbl.Len())
	}
	for i, p := range wantPos {
		if tbl.Positions[i] != p || tbl.Colors[i] != red {
			t.Errorf("entry %d = (%v, %v), want (%v, %v)", i, tbl.Colors[i], tbl.Positions[i], red, p)
		}
	}
}

func TestCollectionTableSortsByPixel(t *testing.T) {
	c := newTestCollection(112)
	mustAdd(t, c, White, 1)
	mustAdd(t, c, Black, 0)
	mustAdd(t, c, Silver, 0.5)

	tbl := c.Table()
	wantColors := []Color{Black, Black, Silver, White, White}
	wantPos := []float64{0, 0, 0.5, 1, 1}
	if tbl.Len() != len(wantPos) || len(tbl.Colors) != len(wantColors) {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), len(wantPos))
	}
	for i := range wantPos {
		if tbl.Colors[i] != wantColors[i] || tbl.Positions[i] != wantPos[i] {
			t.Errorf("entry %d = (%v, %v), want (%v, %v)",
				i, tbl.Colors[i], tbl.Positions[i], wantColors[i], wantPos[i])
		}
	}

	for i := 1; i < tbl.Len(); i++ {
		if tbl.Positions[i] < tbl.Positions[i-1] {
			t.Errorf("positions decrease at %d: %v", i, tbl.Positions)
		}
	}

	// Insertion order is untouched.
	if c.At(0).Color() != White {
		t.Error("Table() reordered the collection")
	}
}

func TestCollectionColorsAndPositions(t *testing.T) {
	c := newTestCollection(112)
	mustAdd(t, c, White, 0.75)
	mustAdd(t, c, Black, 0.25)

	colors := c.Colors()
	positions := c.Positions()
	if len(colors) != 2 || colors[0] != Black || colors[1] != White {
		t.Errorf("Colors() = %v", colors)
	}
	if len(positions) != 2 || positions[0] != 0.25 || positions[1] != 0.75 {
		t.Errorf("Positions() = %v", positions)
	}
}

func TestCollectionClear(t *testing.T) {
	tests := []struct {
		name    string
		min     int
		wantLen int
	}{
		{"no minimum", 0, 0},
		{"minimum one", 1, 1},
		{"minimum three", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCollection(112)
			for i := range 5 {
				mustAdd(t, c, Black, float64(i)/4)
			}
			c.SetMinimumCount(tt.min)
			c.Clear()

			if c.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
			for _, s := range c.Stops() {
				if p := s.Position(); p < 0 || p > 1 {
					t.Errorf("position %v outside [0, 1]", p)
				}
			}
		})
	}
}

func TestCollectionClearMinimumTwo(t *testing.T) {
	c := newTestCollection(112)
	c.SetMaximumCount(2)
	c.SetMinimumCount(2)
	c.Clear()

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	first, second := c.At(0), c.At(1)
	if first.Color() != Black || first.Position() != 0 {
		t.Errorf("first stop = (%v, %v), want (black, 0)", first.Color(), first.Position())
	}
	if second.Color() != White || second.Position() != 1 {
		t.Errorf("second stop = (%v, %v), want (white, 1)", second.Color(), second.Position())
	}
}

func TestCollectionSetMaximumCount(t *testing.T) {
	c := newTestCollection(112)
	stops := []*Stop{
		mustAdd(t, c, Black, 0.1),
		mustAdd(t, c, Black, 0.9),
		mustAdd(t, c, Black, 0.2),
		mustAdd(t, c, Black, 0.8),
	}
	c.SetMinimumCount(3)

	c.SetMaximumCount(2)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.At(0) != stops[0] || c.At(1) != stops[1] {
		t.Error("truncation did not keep the first two stops in insertion order")
	}
	if c.MinimumCount() != 2 {
		t.Errorf("MinimumCount() = %d, want 2 (dragged down)", c.MinimumCount())
	}
}

func TestCollectionSetMinimumCount(t *testing.T) {
	c := newTestCollection(112)
	mustAdd(t, c, Black, 0)
	mustAdd(t, c, White, 1)

	c.SetMinimumCount(5)

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
	for i, s := range c.All() {
		if p := s.Position(); p < 0 || p > 1 {
			t.Errorf("stop %d position %v outside [0, 1]", i, p)
		}
		if s.Color().A != 255 {
			t.Errorf("stop %d random color not opaque: %v", i, s.Color())
		}
	}
}

func TestCollectionSetMinimumAboveMaximum(t *testing.T) {
	c := newTestCollection(112)
	c.SetMaximumCount(3)
	c.SetMinimumCount(6)

	if c.MaximumCount() != 6 {
		t.Errorf("MaximumCount() = %d, want 6 (dragged up)", c.MaximumCount())
	}
	if c.Len() != 6 {
		t.Errorf("Len() = %d, want 6", c.Len())
	}

	c.SetMaximumCount(0)
	c.SetMinimumCount(40)
	if c.MaximumCount() != 0 {
		t.Errorf("unbounded maximum changed to %d", c.MaximumCount())
	}
}

func TestCollectionEvenlyAlign(t *testing.T) {
	c := newTestCollection(112)
	for _, p := range []float64{0.9, 0.1, 0.5, 0.3} {
		mustAdd(t, c, Black, p)
	}
	events := recordEvents(c)

	c.EvenlyAlign()

	want := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	for i, s := range c.All() {
		if math.Abs(s.Position()-want[i]) > 1e-9 {
			t.Errorf("stop %d position = %v, want %v", i, s.Position(), want[i])
		}
	}
	if len(*events) != 1 || (*events)[0].Kind != EventMoved {
		t.Errorf("events = %v, want one moved event", *events)
	}

	single := newTestCollection(112)
	mustAdd(t, single, Black, 0.7)
	single.EvenlyAlign()
	if single.At(0).Position() != 0 {
		t.Errorf("single stop aligned to %v, want 0", single.At(0).Position())
	}
}

func TestCollectionReverse(t *testing.T) {
	c := newTestCollection(112)
	a := mustAdd(t, c, Black, 0.1)
	b := mustAdd(t, c, Silver, 0.4)
	d := mustAdd(t, c, White, 0.8)

	c.Reverse()

	if a.X() != 80 || d.X() != 10 || b.X() != 40 {
		t.Errorf("x after reverse = %d, %d, %d, want 80, 40, 10", a.X(), b.X(), d.X())
	}
	if c.At(0) != d || c.At(2) != a {
		t.Error("collection not left sorted by x")
	}
}

func TestCollectionReverseTwice(t *testing.T) {
	c := newTestCollection(175)
	want := map[*Stop]int{}
	for i, p := range []float64{0.05, 0.13, 0.27, 0.42, 0.58, 0.71, 0.9, 1} {
		s := mustAdd(t, c, RGB(uint8(i*30), 0, 0), p)
		want[s] = s.X()
	}

	c.Reverse()
	c.Reverse()

	for s, x := range want {
		if d := s.X() - x; d < -1 || d > 1 {
			t.Errorf("x = %d after reversing twice, want %d ±1", s.X(), x)
		}
	}
}

func TestCollectionInvertColors(t *testing.T) {
	c := newTestCollection(112)
	s := mustAdd(t, c, Color{R: 255, G: 10, B: 0, A: 128}, 0)
	orig := []Color{s.Color(), mustAdd(t, c, Silver, 1).Color()}

	c.InvertColors()
	if got := c.At(0).Color(); got != (Color{R: 0, G: 245, B: 255, A: 128}) {
		t.Errorf("inverted = %v", got)
	}

	c.InvertColors()
	for i, want := range orig {
		if got := c.At(i).Color(); got != want {
			t.Errorf("stop %d color = %v after double invert, want %v", i, got, want)
		}
	}
}

func TestCollectionRandomize(t *testing.T) {
	c := newTestCollection(112)
	mustAdd(t, c, Black, 0.25)
	mustAdd(t, c, White, 0.75)

	c.Randomize(false, true)
	if c.At(0).Position() != 0.25 || c.At(1).Position() != 0.75 {
		t.Error("Randomize(false, true) moved stops")
	}

	colors := c.Colors()
	c.Randomize(true, false)
	for i, s := range c.All() {
		if p := s.Position(); p < 0 || p > 1 {
			t.Errorf("stop %d position %v outside [0, 1]", i, p)
		}
	}
	for _, col := range c.Colors() {
		if col != colors[0] && col != colors[1] {
			t.Error("Randomize(true, false) changed colors")
		}
	}
}

func TestCollectionRandomizeDeterministic(t *testing.T) {
	build := func() *Collection {
		c := newTestCollection(112)
		mustAdd(t, c, Black, 0)
		mustAdd(t, c, White, 1)
		c.Randomize(true, true)
		return c
	}
	a, b := build(), build()
	for i := range a.Len() {
		if a.At(i).Position() != b.At(i).Position() || a.At(i).Color() != b.At(i).Color() {
			t.Errorf("stop %d differs between identically seeded runs", i)
		}
	}
}

func TestCollectionStopAt(t *testing.T) {
	c := NewCollection(Geometry{
		Origin:     image.Pt(5, 20),
		Width:      112,
		StopWidth:  12,
		StopHeight: 18,
	}, nil)

	if s, ok := c.StopAt(image.Pt(10, 25)); ok || s != nil {
		t.Error("empty collection reported a hit")
	}

	under := mustAdd(t, c, Black, 0.5) // local x 50
	over := mustAdd(t, c, White, 0.5)

	tests := []struct {
		name string
		pt   image.Point
		want *Stop
	}{
		{"top-left corner", image.Pt(55, 20), over},
		{"bottom-right edge inclusive", image.Pt(67, 38), over},
		{"right of stop", image.Pt(68, 20), nil},
		{"below stop", image.Pt(60, 39), nil},
		{"left of origin", image.Pt(0, 25), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := c.StopAt(tt.pt)
			if s != tt.want || ok != (tt.want != nil) {
				t.Fatalf("StopAt(%v) = %p, %v, want %p", tt.pt, s, ok, tt.want)
			}
			if tt.want != nil && !tt.want.Active() {
				t.Error("hit stop not active")
			}
			if under.Active() {
				t.Error("covered stop active")
			}
			if tt.want == nil && over.Active() {
				t.Error("miss left a stop active")
			}
		})
	}
}

func TestCollectionStopAtRequestsRepaint(t *testing.T) {
	c := newTestCollection(112)
	mustAdd(t, c, Black, 0)

	var repaints int
	c.OnRepaint(func() { repaints++ })
	c.StopAt(image.Pt(500, 500))
	if repaints == 0 {
		t.Error("StopAt did not request a repaint")
	}
}

func TestCollectionNavigation(t *testing.T) {
	c := newTestCollection(112)
	if c.Next(nil) != nil || c.Previous(nil) != nil {
		t.Error("empty collection navigation not nil")
	}

	b := mustAdd(t, c, Black, 0.5)
	if c.Next(b) != b || c.Previous(b) != b {
		t.Error("single stop is not its own neighbor")
	}

	a := mustAdd(t, c, Black, 0.2)
	d := mustAdd(t, c, Black, 0.8)

	tests := []struct {
		name string
		got  *Stop
		want *Stop
	}{
		{"next of first", c.Next(a), b},
		{"next of middle", c.Next(b), d},
		{"next of last falls back", c.Next(d), b},
		{"previous of last", c.Previous(d), b},
		{"previous of middle", c.Previous(b), a},
		{"previous of first falls back", c.Previous(a), b},
		{"next of nil", c.Next(nil), a},
		{"previous of nil", c.Previous(nil), a},
		{"next of foreign stop", c.Next(NewStop(Black, 0.9)), a},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got position %v, want %v", tt.name, positionOf(tt.got), positionOf(tt.want))
		}
	}
}

func TestCollectionNavigationTies(t *testing.T) {
	c := newTestCollection(112)
	a := mustAdd(t, c, Black, 0.5)
	b := mustAdd(t, c, White, 0.5)

	if c.Next(a) != b || c.Next(b) != a {
		t.Error("tied stops do not alternate")
	}
}

func TestCollectionHasStopBetween(t *testing.T) {
	c := newTestCollection(112)
	mustAdd(t, c, Black, 0.5) // x 50..62

	tests := []struct {
		x1, x2 int
		want   bool
	}{
		{50, 0, true},
		{0, 62, true},
		{10, 20, false},
		{63, 100, false},
	}
	for _, tt := range tests {
		if got := c.HasStopBetween(tt.x1, tt.x2); got != tt.want {
			t.Errorf("HasStopBetween(%d, %d) = %v, want %v", tt.x1, tt.x2, got, tt.want)
		}
	}
}

func TestCollectionSetGeometry(t *testing.T) {
	c := newTestCollection(112)
	s := mustAdd(t, c, Black, 0.5)

	c.SetGeometry(Geometry{Width: 212, StopWidth: 12, StopHeight: 10})

	if s.X() != 100 {
		t.Errorf("X() = %d after resize, want 100", s.X())
	}
	if s.Position() != 0.5 {
		t.Errorf("resize changed position to %v", s.Position())
	}
	if s.Size().Y != 10 {
		t.Errorf("height = %d, want 10", s.Size().Y)
	}
}

func TestCollectionUnsubscribe(t *testing.T) {
	c := newTestCollection(112)
	var n int
	unsubscribe := c.Subscribe(func(Event) { n++ })
	mustAdd(t, c, Black, 0)
	unsubscribe()
	mustAdd(t, c, Black, 1)
	if n != 1 {
		t.Errorf("listener called %d times, want 1", n)
	}
}

func positionOf(s *Stop) any {
	if s == nil {
		return nil
	}
	return s.Position()
}
