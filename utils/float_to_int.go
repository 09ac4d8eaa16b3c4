// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Use 32767 for positive max to avoid overflow
	return int16(ClipUnit(x) * 32767.0)
}

// Float32ToInt scales a clamped sample to a signed integer of bitDepth bits.
func Float32ToInt(x float32, bitDepth int) int {
	peak := float64(PCMScale(bitDepth)) - 1
	return int(float64(ClipUnit(x)) * peak)
}

// IntToFloat32 normalizes a signed PCM sample of bitDepth bits to [-1, 1).
func IntToFloat32(v int, bitDepth int) float32 {
	return float32(v) / PCMScale(bitDepth)
}

// PCMScale is the magnitude of the most negative value of a signed PCM sample
// of bitDepth bits. Unknown depths fall back to 16-bit.
func PCMScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
