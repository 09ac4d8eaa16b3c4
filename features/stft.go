// SPDX-License-Identifier: EPL-2.0

package features

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// powerSpectrogram slides a window of len(window) samples over x in steps of
// hop, with x zero padded by half a window on both sides so the first column
// is centered on sample 0. It returns one column of len(window)/2+1 power
// values per step.
func powerSpectrogram(x []float32, window []float64, hop int) [][]float64 {
	size := len(window)
	pad := size / 2
	cols := 1 + len(x)/hop

	buf := make([]float64, size)
	out := make([][]float64, cols)
	for c := range out {
		start := c*hop - pad
		for i := range buf {
			j := start + i
			if j < 0 || j >= len(x) {
				buf[i] = 0
				continue
			}
			buf[i] = float64(x[j]) * window[i]
		}

		spectrum := fft.FFTReal(buf)
		col := make([]float64, size/2+1)
		for k := range col {
			mag := cmplx.Abs(spectrum[k])
			col[k] = mag * mag
		}
		out[c] = col
	}
	return out
}
