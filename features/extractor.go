// SPDX-License-Identifier: EPL-2.0

package features

import (
	"fmt"

	"github.com/mjibson/go-dsp/window"

	"github.com/ik5/audnoise"
)

// Extractor turns an audio file into a per-frame feature table. Column order
// is fixed for an extractor so tables from different files line up.
type Extractor interface {
	ExtractFeatures(path string) (*Table, error)
}

// MelExtractor cuts a signal into frames of FrameSeconds and describes each
// one by its mean MFCCs followed by its mean mel band powers. Within a frame
// the spectrum is computed over FFTSize sample windows every HopSize samples.
type MelExtractor struct {
	FrameSeconds float64
	NumMFCC      int
	NumMels      int
	FFTSize      int
	HopSize      int
}

// NewMelExtractor returns an extractor with half second frames, 20 MFCCs,
// 128 mel bands, 2048 point FFTs and a hop of 512 samples.
func NewMelExtractor() *MelExtractor {
	return &MelExtractor{
		FrameSeconds: 0.5,
		NumMFCC:      20,
		NumMels:      128,
		FFTSize:      2048,
		HopSize:      512,
	}
}

// Validate reports an unusable configuration as ErrInvalidConfig.
func (e *MelExtractor) Validate() error {
	switch {
	case e.FrameSeconds <= 0:
		return fmt.Errorf("%w: frame duration %v", ErrInvalidConfig, e.FrameSeconds)
	case e.NumMels <= 0:
		return fmt.Errorf("%w: %d mel bands", ErrInvalidConfig, e.NumMels)
	case e.NumMFCC <= 0 || e.NumMFCC > e.NumMels:
		return fmt.Errorf("%w: %d MFCCs for %d mel bands", ErrInvalidConfig, e.NumMFCC, e.NumMels)
	case e.FFTSize < 2:
		return fmt.Errorf("%w: FFT size %d", ErrInvalidConfig, e.FFTSize)
	case e.HopSize <= 0:
		return fmt.Errorf("%w: hop size %d", ErrInvalidConfig, e.HopSize)
	}
	return nil
}

// Columns returns the column names: mfcc_0.. then mel_0...
func (e *MelExtractor) Columns() []string {
	cols := make([]string, 0, e.NumMFCC+e.NumMels)
	for i := range e.NumMFCC {
		cols = append(cols, fmt.Sprintf("mfcc_%d", i))
	}
	for i := range e.NumMels {
		cols = append(cols, fmt.Sprintf("mel_%d", i))
	}
	return cols
}

// ExtractFeatures decodes the file at path, folds it to mono and extracts.
func (e *MelExtractor) ExtractFeatures(path string) (*Table, error) {
	clip, err := audnoise.LoadClip(audnoise.NewRegistry(), path)
	if err != nil {
		return nil, err
	}
	return e.Extract(clip.Mono().Data[0], clip.SampleRate)
}

// Extract computes one row per frame of samples at rate. The last frame may
// be shorter than the others.
func (e *MelExtractor) Extract(samples []float32, rate int) (*Table, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, rate)
	}
	frameLen := int(float64(rate) * e.FrameSeconds)
	if frameLen <= 0 {
		return nil, ErrFrameTooShort
	}

	win := periodicHann(e.FFTSize)
	bank := melFilterBank(e.NumMels, e.FFTSize, rate)

	table := &Table{Columns: e.Columns()}
	for start := 0; start < len(samples); start += frameLen {
		frame := samples[start:min(start+frameLen, len(samples))]
		table.Rows = append(table.Rows, e.frameRow(frame, win, bank))
	}
	return table, nil
}

// periodicHann is the DFT-even Hann window of n points: the first n points of
// a symmetric window of n+1.
func periodicHann(n int) []float64 {
	return window.Hann(n + 1)[:n]
}

func (e *MelExtractor) frameRow(frame []float32, win []float64, bank [][]float64) []float64 {
	spec := powerSpectrogram(frame, win, e.HopSize)

	mel := make([][]float64, len(spec))
	for c, col := range spec {
		bands := make([]float64, len(bank))
		for m, filter := range bank {
			var sum float64
			for k, w := range filter {
				sum += w * col[k]
			}
			bands[m] = sum
		}
		mel[c] = bands
	}

	row := make([]float64, e.NumMFCC+e.NumMels)
	melMean := row[e.NumMFCC:]
	for _, bands := range mel {
		for m, v := range bands {
			melMean[m] += v
		}
	}

	powerToDB(mel)
	mfccMean := row[:e.NumMFCC]
	for _, bands := range mel {
		for i, v := range dctOrtho(bands, e.NumMFCC) {
			mfccMean[i] += v
		}
	}

	n := float64(len(mel))
	for i := range row {
		row[i] /= n
	}
	return row
}
