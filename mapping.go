package gradpick

import "math"

// PositionToPixel maps a normalized position to the x coordinate of a
// stop's origin inside a strip of availableWidth pixels.
//
// The result is round-half-even((availableWidth-stopWidth)*p) clamped to
// [0, availableWidth-stopWidth-1]. The upper clamp is one pixel short of
// the travel range used by PixelToPosition, so positions very close to 1
// share a pixel with 1 itself and the round trip is not exact at the ends.
func PositionToPixel(p float64, availableWidth, stopWidth int) int {
	travel := availableWidth - stopWidth
	if travel <= 0 {
		return 0
	}
	x := int(math.RoundToEven(float64(travel) * clamp01(p)))
	if x >= travel-1 {
		x = travel - 1
	}
	if x < 0 {
		x = 0
	}
	return x
}

// PixelToPosition maps a stop origin x (already adjusted by the drag
// offset) back to a normalized position.
//
// Note the divisor is the full travel range, not travel-1. See
// PositionToPixel.
func PixelToPosition(x, availableWidth, stopWidth int) float64 {
	travel := availableWidth - stopWidth
	switch {
	case x < 0:
		return 0
	case x > travel-1:
		return 1
	default:
		return float64(x) / float64(travel)
	}
}

// clamp01 clamps a value to [0, 1] range. NaN becomes 0.
func clamp01(x float64) float64 {
	if x > 0 {
		if x > 1 {
			return 1
		}
		return x
	}
	return 0
}
