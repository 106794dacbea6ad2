package gradpick

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := White.RGBA()
	if r != 65535 || g != 65535 || b != 65535 || a != 65535 {
		t.Errorf("White.RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
	r, _, _, a = Color{R: 255, A: 128}.RGBA()
	if a != 128*257 || r != 128*257 {
		t.Errorf("RGBA() not premultiplied: r=%d a=%d", r, a)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"nrgba", color.NRGBA{R: 1, G: 2, B: 3, A: 4}, Color{R: 1, G: 2, B: 3, A: 4}},
		{"premultiplied", color.RGBA{R: 128, A: 128}, Color{R: 255, A: 128}},
		{"gray", color.Gray{Y: 200}, RGB(200, 200, 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_ARGB(t *testing.T) {
	c := FromARGB(0x80112233)
	if c != (Color{R: 0x11, G: 0x22, B: 0x33, A: 0x80}) {
		t.Errorf("FromARGB = %+v", c)
	}
	if c.ARGB() != 0x80112233 {
		t.Errorf("ARGB() = %#x", c.ARGB())
	}
}

func TestColor_Invert(t *testing.T) {
	got := Color{R: 255, G: 10, B: 0, A: 128}.Invert()
	want := Color{R: 0, G: 245, B: 255, A: 128}
	if got != want {
		t.Errorf("Invert() = %+v, want %+v", got, want)
	}
	if Black.Invert() != White {
		t.Error("Black.Invert() != White")
	}
}

func TestColor_Hex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Black, "#000000"},
		{RGB(255, 128, 0), "#ff8000"},
		{Color{R: 1, G: 2, B: 3, A: 4}, "#01020304"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.c, got, tt.want)
		}
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ff8000", RGB(255, 128, 0)},
		{"  #FF8000 ", RGB(255, 128, 0)},
		{"#abc", RGB(0xaa, 0xbb, 0xcc)},
		{"#ff000080", Color{R: 255, A: 0x80}},
		{"red", RGB(255, 0, 0)},
		{"SteelBlue", RGB(70, 130, 180)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "#12", "#gggggg", "notacolor", "#ff0000zz", "ff8000", "bad", "fed", "cab"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidFormat", in, err)
		}
	}
}

func TestColor_HexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		c := Color{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: uint8(rng.IntN(256)),
		}
		got, err := ParseColor(c.Hex())
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.Hex(), err)
		}
		if got != c {
			t.Fatalf("round trip %+v -> %q -> %+v", c, c.Hex(), got)
		}
	}
}

func TestRandomColorOpaque(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 50 {
		if c := randomColor(rng); c.A != 255 {
			t.Fatalf("randomColor alpha = %d", c.A)
		}
	}
}
