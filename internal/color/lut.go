package color

import "math"

// sRGBToLinearLUT maps an sRGB byte to linear light, 256 entries.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT maps 12-bit linear light back to an sRGB byte.
// 4096 entries are enough to round-trip every 8-bit value.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = float32(srgbToLinear(float64(i) / 255.0))
	}
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = toByte(linearToSRGB(float64(i) / 4095.0))
	}
}

// srgbToLinear is the sRGB EOTF.
func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSRGB is the sRGB OETF.
func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

func toByte(s float64) uint8 {
	v := int(s*255.0 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	//nolint:gosec // G115: v is clamped to [0,255]
	return uint8(v)
}

// SRGBToLinearFast converts an sRGB byte to linear light via lookup.
//
//	l := SRGBToLinearFast(128) // ~0.2159
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts linear light to an sRGB byte via lookup.
// The input is clamped to [0, 1].
//
//	s := LinearToSRGBFast(0.5) // 188
func LinearToSRGBFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	index := int(l*4095.0 + 0.5)
	if index > 4095 {
		index = 4095
	}
	return linearToSRGBLUT[index]
}
