// Package output provides PCM output conversion.
package output

import "math"

// Int16Scale maps normalized [-1.0, 1.0] samples onto the 16-bit range.
const Int16Scale = float32(32768.0)

// clip16 clips and rounds a float32 to int16 range.
// Rounding is to nearest, ties to even. NaN maps to 0.
func clip16(sample float32) int16 {
	if math.IsNaN(float64(sample)) {
		return 0
	}
	if sample >= 32767.0 {
		return 32767
	}
	if sample <= -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(float64(sample)))
}

// ToPCM16Bit converts normalized float32 samples to 16-bit PCM.
// output must hold at least len(input) samples. Samples outside
// [-1.0, 1.0] are clipped.
func ToPCM16Bit(input []float32, output []int16) {
	for i, s := range input {
		output[i] = clip16(s * Int16Scale)
	}
}

// ToInt converts normalized float32 samples to 16-bit values widened to int,
// the sample type of integer audio buffers.
func ToInt(input []float32) []int {
	out := make([]int, len(input))
	for i, s := range input {
		out[i] = int(clip16(s * Int16Scale))
	}
	return out
}
