package gradpick

// Table is the interpolation table handed to a Renderer: parallel color
// and position slices, positions non-decreasing from 0 to 1.
type Table struct {
	Colors    []Color
	Positions []float64
}

// Len returns the number of entries.
func (t Table) Len() int {
	return len(t.Positions)
}

// IsEmpty reports whether there is nothing to draw.
func (t Table) IsEmpty() bool {
	return len(t.Positions) == 0
}

// Table builds the interpolation table from the stops sorted by pixel x.
//
// The first and last colors are duplicated at positions 0 and 1 so the
// gradient always spans the whole axis: a single stop at 0.5 yields a
// three-entry table of one color. An empty collection yields an empty table.
func (c *Collection) Table() Table {
	if len(c.stops) == 0 {
		return Table{}
	}
	sorted := c.sortedByX()
	n := len(sorted)

	t := Table{
		Colors:    make([]Color, 0, n+2),
		Positions: make([]float64, 0, n+2),
	}
	t.Colors = append(t.Colors, sorted[0].color)
	t.Positions = append(t.Positions, 0)
	for _, s := range sorted {
		t.Colors = append(t.Colors, s.color)
		t.Positions = append(t.Positions, s.position)
	}
	t.Colors = append(t.Colors, sorted[n-1].color)
	t.Positions = append(t.Positions, 1)
	return t
}

// Colors returns the stop colors in display order.
func (c *Collection) Colors() []Color {
	colors := make([]Color, 0, len(c.stops))
	for _, s := range c.sortedByX() {
		colors = append(colors, s.color)
	}
	return colors
}

// Positions returns the stop positions in display order.
func (c *Collection) Positions() []float64 {
	positions := make([]float64, 0, len(c.stops))
	for _, s := range c.sortedByX() {
		positions = append(positions, s.position)
	}
	return positions
}
