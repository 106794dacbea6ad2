package filter

import "image"

// ColorMatrixFilter applies a 4x5 color transformation matrix to an image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values.
// Color values are in [0, 255] range during transformation,
// then clamped back to valid range.
type ColorMatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float32
}

// NewColorMatrixFilter creates a color matrix filter with the given matrix.
func NewColorMatrixFilter(matrix [20]float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: matrix}
}

// NewIdentityColorMatrix creates a color matrix filter that passes through unchanged.
func NewIdentityColorMatrix() *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			1, 0, 0, 0, 0, // R
			0, 1, 0, 0, 0, // G
			0, 0, 1, 0, 0, // B
			0, 0, 0, 1, 0, // A
		},
	}
}

// NewGrayscaleFilter creates a filter that replaces each color channel
// with 0.3R + 0.59G + 0.11B. Alpha is kept.
func NewGrayscaleFilter() *ColorMatrixFilter {
	const (
		wR = 0.3
		wG = 0.59
		wB = 0.11
	)
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			wR, wG, wB, 0, 0,
			wR, wG, wB, 0, 0,
			wR, wG, wB, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// Apply transforms the pixels of data inside bounds in place. data holds
// straight-alpha RGBA rows of the given stride in pixels; bounds is clipped
// to the buffer.
func (f *ColorMatrixFilter) Apply(data []uint8, stride int, bounds image.Rectangle) {
	if stride <= 0 || len(data) < 4 {
		return
	}
	rows := len(data) / (stride * 4)
	bounds = bounds.Intersect(image.Rect(0, 0, stride, rows))
	if bounds.Empty() {
		return
	}

	m := &f.Matrix

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := (y*stride + x) * 4

			r := float32(data[i+0])
			g := float32(data[i+1])
			b := float32(data[i+2])
			a := float32(data[i+3])

			newR := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
			newG := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
			newB := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
			newA := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

			data[i+0] = clampUint8(newR)
			data[i+1] = clampUint8(newG)
			data[i+2] = clampUint8(newB)
			data[i+3] = clampUint8(newA)
		}
	}
}

// Multiply returns a new filter that is the product of this filter and another.
// The result applies this filter first, then the other.
func (f *ColorMatrixFilter) Multiply(other *ColorMatrixFilter) *ColorMatrixFilter {
	a := &other.Matrix
	b := &f.Matrix

	result := &ColorMatrixFilter{}
	r := &result.Matrix

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[row*5+k] * b[k*5+col]
			}
			r[row*5+col] = sum
		}
		// Offset column (5th)
		r[row*5+4] = a[row*5+0]*b[4] + a[row*5+1]*b[9] +
			a[row*5+2]*b[14] + a[row*5+3]*b[19] + a[row*5+4]
	}

	return result
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
