// SPDX-License-Identifier: EPL-2.0

// Package features computes per-frame spectral features of speech for a
// downstream classifier.
//
// A signal is cut into consecutive frames (half a second by default). For
// each frame a short-time power spectrum is taken with a periodic Hann window,
// mapped onto a Slaney mel filterbank with unit-area filters and summarized as
//
//	mean MFCC (orthonormal DCT-II of the mel power in dB) ++ mean mel power
//
// giving one Table row per frame:
//
//	table, err := features.NewMelExtractor().ExtractFeatures("speech.wav")
//	err = table.WriteCSV(os.Stdout)
//
// Samples are taken as decoded, normalized to [-1, 1].
package features
