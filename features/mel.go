// SPDX-License-Identifier: EPL-2.0

package features

import "math"

// Slaney mel scale: linear up to 1 kHz, logarithmic above.
const (
	melLinearStep = 200.0 / 3
	melLogHz      = 1000.0
	melLogStart   = melLogHz / melLinearStep
)

var melLogStep = math.Log(6.4) / 27

// hzToMel converts frequency in Hz to the Slaney mel scale.
func hzToMel(hz float64) float64 {
	if hz < melLogHz {
		return hz / melLinearStep
	}
	return melLogStart + math.Log(hz/melLogHz)/melLogStep
}

// melToHz converts a Slaney mel value back to Hz.
func melToHz(mel float64) float64 {
	if mel < melLogStart {
		return mel * melLinearStep
	}
	return melLogHz * math.Exp((mel-melLogStart)*melLogStep)
}

// melFilterBank returns numMels triangular filters spread evenly on the mel
// scale between 0 Hz and rate/2, each of fftSize/2+1 weights. Weights follow
// the exact bin frequencies rather than rounding edges to bins. Every filter
// is scaled by 2/(right-left) so it has unit area in Hz.
func melFilterBank(numMels, fftSize, rate int) [][]float64 {
	bins := fftSize/2 + 1
	edges := melEdges(numMels, rate)

	bank := make([][]float64, numMels)
	for m := range bank {
		left, center, right := edges[m], edges[m+1], edges[m+2]
		norm := 2 / (right - left)
		filter := make([]float64, bins)
		for k := range filter {
			f := float64(k) * float64(rate) / float64(fftSize)
			up := (f - left) / (center - left)
			down := (right - f) / (right - center)
			filter[k] = norm * math.Max(0, math.Min(up, down))
		}
		bank[m] = filter
	}
	return bank
}

// melEdges returns the numMels+2 filter edge frequencies in Hz, evenly spaced
// in mel from 0 to rate/2.
func melEdges(numMels, rate int) []float64 {
	high := hzToMel(float64(rate) / 2)
	edges := make([]float64, numMels+2)
	for i := range edges {
		edges[i] = melToHz(high * float64(i) / float64(numMels+1))
	}
	return edges
}

// Power to decibel conversion constants, matching the usual MFCC front end.
const (
	powerFloor = 1e-10
	topDB      = 80.0
)

// powerToDB converts a power spectrogram to dB relative to 1 in place. Values
// are floored at powerFloor and at topDB below the loudest cell.
func powerToDB(spec [][]float64) {
	peak := math.Inf(-1)
	for _, col := range spec {
		for i, v := range col {
			db := 10 * math.Log10(math.Max(powerFloor, v))
			col[i] = db
			peak = math.Max(peak, db)
		}
	}
	for _, col := range spec {
		for i, v := range col {
			col[i] = math.Max(v, peak-topDB)
		}
	}
}

// dctOrtho returns the first n coefficients of the orthonormal DCT-II of x.
func dctOrtho(x []float64, n int) []float64 {
	size := float64(len(x))
	out := make([]float64, n)
	for k := range out {
		var sum float64
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*size))
		}
		scale := math.Sqrt(2 / size)
		if k == 0 {
			scale = math.Sqrt(1 / size)
		}
		out[k] = sum * scale
	}
	return out
}
