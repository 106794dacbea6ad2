package gradpick

import (
	"sort"

	"github.com/gogpu/gradpick/internal/color"
)

// ColorAt returns the table color at position p, interpolating between the
// bracketing entries in linear light. Positions outside [0, 1] are padded
// with the edge colors. An empty table yields Transparent.
func (t Table) ColorAt(p float64) Color {
	return t.colorAt(p, true)
}

// colorAt looks up the segment containing p. With linearLight false the
// interpolation runs directly on the sRGB components.
func (t Table) colorAt(p float64, linearLight bool) Color {
	n := len(t.Positions)
	if n == 0 || len(t.Colors) != n {
		return Transparent
	}
	if n == 1 {
		return t.Colors[0]
	}
	p = clamp01(p)

	idx := sort.Search(n, func(i int) bool {
		return t.Positions[i] >= p
	})
	if idx == 0 {
		return t.Colors[0]
	}
	if idx >= n {
		return t.Colors[n-1]
	}

	p0, p1 := t.Positions[idx-1], t.Positions[idx]
	c0, c1 := t.Colors[idx-1], t.Colors[idx]

	// Coincident entries make a hard edge.
	if p1 == p0 {
		return c0
	}
	local := (p - p0) / (p1 - p0)
	if linearLight {
		return interpolateLinearLight(c0, c1, local)
	}
	return interpolateSRGB(c0, c1, local)
}

// interpolateLinearLight blends two colors in linear sRGB space, which keeps
// midtones from darkening the way naive sRGB blending does.
func interpolateLinearLight(c0, c1 Color, t float64) Color {
	t32 := float32(t)
	mix := func(a, b uint8) uint8 {
		la, lb := color.SRGBToLinearFast(a), color.SRGBToLinearFast(b)
		return color.LinearToSRGBFast(la + t32*(lb-la))
	}
	// Alpha is never gamma encoded.
	a0, a1 := float32(c0.A), float32(c1.A)
	return Color{
		R: mix(c0.R, c1.R),
		G: mix(c0.G, c1.G),
		B: mix(c0.B, c1.B),
		A: uint8(a0 + t32*(a1-a0) + 0.5),
	}
}

func interpolateSRGB(c0, c1 Color, t float64) Color {
	a, b := c0.f32(), c1.f32()
	t32 := float32(t)
	return fromF32(color.ColorF32{
		R: a.R + t32*(b.R-a.R),
		G: a.G + t32*(b.G-a.G),
		B: a.B + t32*(b.B-a.B),
		A: a.A + t32*(b.A-a.A),
	})
}
