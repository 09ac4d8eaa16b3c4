// SPDX-License-Identifier: EPL-2.0

// Package fixture writes small audio files for tests.
package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/formats/flac"
	"github.com/ik5/audnoise/formats/wav"
	"github.com/ik5/audnoise/utils"
)

// WriteWAV writes interleaved samples as a 16-bit PCM WAV file, creating
// parent directories as needed.
func WriteWAV(tb testing.TB, path string, sampleRate, channels int, samples []float32) {
	tb.Helper()

	f := create(tb, path)
	defer f.Close()

	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = utils.Float32ToInt16(v)
	}
	if err := wav.WriteWAV16(f, sampleRate, channels, pcm); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
}

// WriteFLAC writes clip as a 16-bit FLAC file, creating parent directories as
// needed.
func WriteFLAC(tb testing.TB, path string, clip *audio.Clip) {
	tb.Helper()

	f := create(tb, path)
	defer f.Close()

	if err := (flac.Encoder{}).Encode(f, clip); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
}

// Constant returns n samples all equal to v.
func Constant(n int, v float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func create(tb testing.TB, path string) *os.File {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("creating %s: %v", path, err)
	}
	return f
}
