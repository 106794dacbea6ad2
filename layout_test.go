package gradpick

import (
	"image"
	"testing"
)

func TestComputeLayout(t *testing.T) {
	withLayout := func(m LayoutMode, size int, pad Padding) Config {
		cfg := DefaultConfig()
		cfg.Layout = m
		cfg.LayoutSize = size
		cfg.Padding = pad
		return cfg
	}

	tests := []struct {
		name         string
		cfg          Config
		client       image.Point
		wantGradient image.Rectangle
		wantStops    image.Rectangle
	}{
		{
			name:         "default fixed size",
			cfg:          DefaultConfig(),
			client:       DefaultClientSize,
			wantGradient: image.Rect(0, 0, 175, 10),
			wantStops:    image.Rect(0, 11, 175, 28),
		},
		{
			name:         "percent",
			cfg:          withLayout(LayoutPercent, 50, Padding{}),
			client:       image.Pt(100, 28),
			wantGradient: image.Rect(0, 0, 100, 14),
			wantStops:    image.Rect(0, 15, 100, 28),
		},
		{
			name:         "background",
			cfg:          withLayout(LayoutBackground, 10, Padding{}),
			client:       image.Pt(100, 30),
			wantGradient: image.Rect(0, 0, 100, 30),
			wantStops:    image.Rect(0, 0, 100, 30),
		},
		{
			name:      "none",
			cfg:       withLayout(LayoutNone, 10, Padding{}),
			client:    image.Pt(100, 30),
			wantStops: image.Rect(0, 0, 100, 30),
		},
		{
			name:         "padded",
			cfg:          withLayout(LayoutFixedSize, 10, Padding{Left: 2, Top: 3, Right: 4, Bottom: 5}),
			client:       DefaultClientSize,
			wantGradient: image.Rect(2, 3, 171, 13),
			wantStops:    image.Rect(2, 14, 171, 23),
		},
		{
			name:         "fixed size taller than client",
			cfg:          withLayout(LayoutFixedSize, 40, Padding{}),
			client:       image.Pt(50, 8),
			wantGradient: image.Rect(0, 0, 50, 8),
			wantStops:    image.Rect(0, 9, 50, 9),
		},
		{
			name:         "zero client",
			cfg:          DefaultConfig(),
			client:       image.Point{},
			wantGradient: image.Rect(0, 0, 0, 0),
			wantStops:    image.Rect(0, 1, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.cfg, tt.client)
			if l.Gradient != tt.wantGradient {
				t.Errorf("Gradient = %v, want %v", l.Gradient, tt.wantGradient)
			}
			if l.Stops != tt.wantStops {
				t.Errorf("Stops = %v, want %v", l.Stops, tt.wantStops)
			}
		})
	}
}

func TestLayoutGeometry(t *testing.T) {
	cfg := DefaultConfig()
	g := computeLayout(cfg, DefaultClientSize).geometry(cfg)

	want := Geometry{Origin: image.Pt(0, 11), Width: 175, StopWidth: 12, StopHeight: 17}
	if g != want {
		t.Errorf("geometry = %+v, want %+v", g, want)
	}
	if g.TravelRange() != 163 {
		t.Errorf("TravelRange() = %d, want 163", g.TravelRange())
	}

	// A collapsed strip falls back to the configured stop height.
	g = computeLayout(cfg, image.Pt(50, 8)).geometry(cfg)
	if g.StopHeight != cfg.StopHeight {
		t.Errorf("collapsed StopHeight = %d, want %d", g.StopHeight, cfg.StopHeight)
	}
}

func TestLayoutGlyphAt(t *testing.T) {
	cfg := DefaultConfig()
	l := computeLayout(cfg, DefaultClientSize)

	arrow, block := l.glyphAt(cfg, 0, 0)
	if arrow != image.Rect(0, 11, 12, 16) {
		t.Errorf("arrow = %v", arrow)
	}
	if block != image.Rect(0, 16, 12, 25) {
		t.Errorf("block = %v", block)
	}

	// Without a gradient strip the block keeps its full share.
	cfg.Layout = LayoutNone
	l = computeLayout(cfg, DefaultClientSize)
	arrow, block = l.glyphAt(cfg, 10, 0)
	if arrow != image.Rect(10, 0, 22, 9) || block != image.Rect(10, 9, 22, 27) {
		t.Errorf("no-strip glyph = %v, %v", arrow, block)
	}
}

func TestLayoutAddBox(t *testing.T) {
	cfg := DefaultConfig()
	g := computeLayout(cfg, DefaultClientSize).AddBox(cfg)

	if g.Stop != nil || g.Color != DarkGray {
		t.Errorf("add box = %+v", g)
	}
	if g.Arrow != image.Rect(81, 11, 93, 16) || g.Block != image.Rect(81, 16, 93, 25) {
		t.Errorf("add box rects = %v, %v", g.Arrow, g.Block)
	}

	pts := g.ArrowPoints()
	want := [3]image.Point{{87, 11}, {81, 16}, {93, 16}}
	if pts != want {
		t.Errorf("ArrowPoints() = %v, want %v", pts, want)
	}
}
