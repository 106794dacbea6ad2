package gradpick

import (
	"testing"
)

func blackToWhite() Table {
	return Table{
		Colors:    []Color{Black, Black, White, White},
		Positions: []float64{0, 0, 1, 1},
	}
}

func TestTableColorAt(t *testing.T) {
	tbl := blackToWhite()

	tests := []struct {
		name string
		p    float64
		want uint8
	}{
		{"start", 0, 0},
		{"end", 1, 255},
		{"middle in linear light", 0.5, 188},
		{"below range pads", -3, 0},
		{"above range pads", 4, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.ColorAt(tt.p)
			if got.R != tt.want || got.G != tt.want || got.B != tt.want || got.A != 255 {
				t.Errorf("ColorAt(%v) = %+v, want gray %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestTableColorAtSRGB(t *testing.T) {
	got := blackToWhite().colorAt(0.5, false)
	if got != RGB(128, 128, 128) {
		t.Errorf("colorAt(0.5, false) = %+v, want gray 128", got)
	}
}

func TestTableColorAtMonotonic(t *testing.T) {
	tbl := blackToWhite()
	prev := uint8(0)
	for i := 0; i <= 100; i++ {
		c := tbl.ColorAt(float64(i) / 100)
		if c.R < prev {
			t.Fatalf("ColorAt(%v).R = %d decreased from %d", float64(i)/100, c.R, prev)
		}
		prev = c.R
	}
}

func TestTableColorAtHardEdge(t *testing.T) {
	tbl := Table{
		Colors:    []Color{Black, Black, White, White},
		Positions: []float64{0, 0.5, 0.5, 1},
	}
	if got := tbl.ColorAt(0.25); got != Black {
		t.Errorf("ColorAt(0.25) = %+v, want black", got)
	}
	if got := tbl.ColorAt(0.75); got != White {
		t.Errorf("ColorAt(0.75) = %+v, want white", got)
	}
}

func TestTableColorAtAlpha(t *testing.T) {
	tbl := Table{
		Colors:    []Color{Transparent, White},
		Positions: []float64{0, 1},
	}
	if got := tbl.ColorAt(0.5); got.A != 128 {
		t.Errorf("alpha at 0.5 = %d, want 128", got.A)
	}
}

func TestTableColorAtDegenerate(t *testing.T) {
	if got := (Table{}).ColorAt(0.5); got != Transparent {
		t.Errorf("empty table = %+v, want transparent", got)
	}

	single := Table{Colors: []Color{Silver}, Positions: []float64{0.3}}
	if got := single.ColorAt(0.9); got != Silver {
		t.Errorf("single entry = %+v, want silver", got)
	}

	mismatched := Table{Colors: []Color{Black}, Positions: []float64{0, 1}}
	if got := mismatched.ColorAt(0.5); got != Transparent {
		t.Errorf("mismatched table = %+v, want transparent", got)
	}
}

func TestCollectionTableColorAt(t *testing.T) {
	c := newTestCollection(112)
	red := RGB(255, 0, 0)
	mustAdd(t, c, red, 0.5)

	tbl := c.Table()
	for _, p := range []float64{0, 0.2, 0.5, 0.8, 1} {
		if got := tbl.ColorAt(p); got != red {
			t.Errorf("single stop ColorAt(%v) = %+v, want red", p, got)
		}
	}
}
