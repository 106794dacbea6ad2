package gradpick

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	icolor "github.com/gogpu/gradpick/internal/color"
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromARGB creates a color from a packed 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ARGB packs the color as 0xAARRGGBB.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Invert returns the bitwise RGB complement; alpha is preserved.
func (c Color) Invert() Color {
	return FromARGB(c.ARGB() ^ 0xffffff)
}

// Opaque returns c with full alpha.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	h := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
	if c.A == 255 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG color name.
// Hex values must carry the leading '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty color", ErrInvalidFormat)
	}
	if !strings.HasPrefix(s, "#") {
		if named, ok := colornames.Map[strings.ToLower(s)]; ok {
			return FromColor(named), nil
		}
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidFormat, s)
	}

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: color %q", ErrInvalidFormat, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q", ErrInvalidFormat, s)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// f32 converts to the internal float color used by the renderer.
func (c Color) f32() icolor.ColorF32 {
	return icolor.U8ToF32(icolor.ColorU8{R: c.R, G: c.G, B: c.B, A: c.A})
}

func fromF32(c icolor.ColorF32) Color {
	u := icolor.F32ToU8(c)
	return Color{R: u.R, G: u.G, B: u.B, A: u.A}
}

// randomColor draws an opaque color with uniform RGB components.
func randomColor(rng *rand.Rand) Color {
	return RGB(uint8(rng.IntN(256)), uint8(rng.IntN(256)), uint8(rng.IntN(256)))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Silver      = RGB(192, 192, 192)
	DarkGray    = RGB(169, 169, 169)
	Transparent = Color{}
)
