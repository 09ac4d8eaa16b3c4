// SPDX-License-Identifier: EPL-2.0

package features

import (
	"math"
	"testing"
)

func TestMelScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hz, mel float64
	}{
		{0, 0},
		{200, 3},
		{1000, 15},
		{6400, 42},
	}
	for _, tt := range tests {
		if got := hzToMel(tt.hz); math.Abs(got-tt.mel) > 1e-9 {
			t.Errorf("hzToMel(%v) = %v, want %v", tt.hz, got, tt.mel)
		}
	}

	for _, hz := range []float64{0, 100, 700, 999, 1000, 4000, 11025} {
		if got := melToHz(hzToMel(hz)); math.Abs(got-hz) > 1e-9*math.Max(1, hz) {
			t.Errorf("melToHz(hzToMel(%v)) = %v", hz, got)
		}
	}
}

func TestMelFilterBank_Shape(t *testing.T) {
	t.Parallel()

	const (
		numMels = 40
		fftSize = 512
		rate    = 16000
	)
	bank := melFilterBank(numMels, fftSize, rate)
	edges := melEdges(numMels, rate)
	if len(bank) != numMels {
		t.Fatalf("len = %d, want %d", len(bank), numMels)
	}

	for m, filter := range bank {
		if len(filter) != fftSize/2+1 {
			t.Fatalf("filter %d has %d weights, want %d", m, len(filter), fftSize/2+1)
		}

		height := 2 / (edges[m+2] - edges[m])
		peak := 0
		for k, w := range filter {
			if w < 0 || w > height+1e-12 {
				t.Fatalf("filter %d weight %d = %v, outside [0, %v]", m, k, w, height)
			}
			if w > filter[peak] {
				peak = k
			}
		}
		if filter[peak] == 0 {
			t.Errorf("filter %d is all zero", m)
		}

		// Triangular: rising up to the peak, falling after it.
		for k := 1; k <= peak; k++ {
			if filter[k] < filter[k-1] {
				t.Fatalf("filter %d not rising at %d", m, k)
			}
		}
		for k := peak + 1; k < len(filter); k++ {
			if filter[k] > filter[k-1] {
				t.Fatalf("filter %d not falling at %d", m, k)
			}
		}
	}
}

func TestMelFilterBank_UnitArea(t *testing.T) {
	t.Parallel()

	// With bins far narrower than the filters, the summed weights times the
	// bin width approach the unit area of each triangle.
	const (
		fftSize = 16384
		rate    = 8000
	)
	binHz := float64(rate) / fftSize
	for m, filter := range melFilterBank(20, fftSize, rate) {
		var area float64
		for _, w := range filter {
			area += w * binHz
		}
		if math.Abs(area-1) > 0.02 {
			t.Errorf("filter %d area = %v, want 1", m, area)
		}
	}
}

func TestPeriodicHann(t *testing.T) {
	t.Parallel()

	w := periodicHann(8)
	want := []float64{0, 0.1464466, 0.5, 0.8535534, 1, 0.8535534, 0.5, 0.1464466}
	if len(w) != len(want) {
		t.Fatalf("len = %d, want %d", len(w), len(want))
	}
	for i := range want {
		if math.Abs(w[i]-want[i]) > 1e-6 {
			t.Errorf("w[%d] = %v, want %v", i, w[i], want[i])
		}
	}
}

func TestPowerToDB(t *testing.T) {
	t.Parallel()

	spec := [][]float64{{1, 0.1, 0}, {1e-12, 10, 1e-20}}
	powerToDB(spec)

	want := [][]float64{{0, -10, -70}, {-70, 10, -70}}
	for c := range want {
		for i := range want[c] {
			if math.Abs(spec[c][i]-want[c][i]) > 1e-9 {
				t.Errorf("spec[%d][%d] = %v, want %v", c, i, spec[c][i], want[c][i])
			}
		}
	}
}

func TestDCTOrtho(t *testing.T) {
	t.Parallel()

	// A constant vector has all of its energy in the first coefficient.
	x := []float64{2, 2, 2, 2}
	got := dctOrtho(x, 4)
	if math.Abs(got[0]-4) > 1e-12 {
		t.Errorf("coefficient 0 = %v, want 4", got[0])
	}
	for k := 1; k < 4; k++ {
		if math.Abs(got[k]) > 1e-12 {
			t.Errorf("coefficient %d = %v, want 0", k, got[k])
		}
	}

	// Orthonormal: energy is preserved.
	y := []float64{1, -3, 0.5, 2, 7}
	var in, out float64
	for _, v := range y {
		in += v * v
	}
	for _, v := range dctOrtho(y, len(y)) {
		out += v * v
	}
	if math.Abs(in-out) > 1e-9 {
		t.Errorf("energy %v after DCT, want %v", out, in)
	}
}

func TestPowerSpectrogram(t *testing.T) {
	t.Parallel()

	win := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	x := make([]float32, 20)
	for i := range x {
		x[i] = 1
	}

	spec := powerSpectrogram(x, win, 4)
	if len(spec) != 1+20/4 {
		t.Fatalf("columns = %d, want %d", len(spec), 1+20/4)
	}
	if len(spec[0]) != 5 {
		t.Fatalf("bins = %d, want 5", len(spec[0]))
	}
	// Column 2 covers samples 4..11, all ones: DC power 64.
	if math.Abs(spec[2][0]-64) > 1e-9 {
		t.Errorf("DC power = %v, want 64", spec[2][0])
	}
	// Column 0 is half padding: DC power 16.
	if math.Abs(spec[0][0]-16) > 1e-9 {
		t.Errorf("padded DC power = %v, want 16", spec[0][0])
	}
}
