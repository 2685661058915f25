// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToPCM scales a sample in [-1, 1] to a signed integer of bitDepth bits.
// Out of range input is clamped.
func FloatToPCM(x float32, bitDepth int) int {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use the positive max on both sides to keep the scale symmetric
	maxVal := float64(int64(1)<<(bitDepth-1) - 1)
	return int(float64(x) * maxVal)
}

// AppendPCM converts src with FloatToPCM and appends the result to dst.
func AppendPCM(dst []int, src []float32, bitDepth int) []int {
	for _, x := range src {
		dst = append(dst, FloatToPCM(x, bitDepth))
	}
	return dst
}
