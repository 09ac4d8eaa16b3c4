// SPDX-License-Identifier: EPL-2.0

// Package audnoise holds the glue between the codec packages and the
// augmentation pipeline: a registry preloaded with every supported format and
// helpers to load and save whole clips by file name.
//
// Supported formats:
//   - WAV (integer PCM, read and write) via formats/wav
//   - FLAC (read and write) via formats/flac
//   - MP3 (read only) via formats/mp3
//   - Ogg Vorbis (read only) via formats/vorbis
//   - AIFF (read only) via formats/aiff
//
// Loading a file picks the decoder from its extension:
//
//	registry := audnoise.NewRegistry()
//	clip, err := audnoise.LoadClip(registry, "speech/a.flac")
//
// Noise material is flattened to mono at the speech sample rate:
//
//	src, _ := flac.Decoder{}.Decode(f)
//	music, err := audnoise.ResampleToMono(src, 16000)
//
// The mixing itself lives in the mixer package, noise libraries in noise and
// the batch driver in augment.
package audnoise
