// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp32 limits x to [lo, hi].
func Clamp32(x, lo, hi float32) float32 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}

// ClipUnit hard clips x to [-1, 1].
func ClipUnit(x float32) float32 {
	return Clamp32(x, -1, 1)
}

// ClipSlice hard clips every sample of s to [-1, 1] in place.
func ClipSlice(s []float32) {
	for i, v := range s {
		s[i] = ClipUnit(v)
	}
}
