// SPDX-License-Identifier: EPL-2.0

// Package flac decodes and encodes FLAC files with github.com/mewkiz/flac.
//
// FLAC is the multichannel target format of the augmenter: stereo FLAC
// speech keeps both channels through noise mixing and is written back as
// 16-bit FLAC at the original sample rate.
//
//	src, err := flac.Decoder{}.Decode(f)
//	clip, err := audio.ReadClip(src)
//	...
//	err = flac.Encoder{}.Encode(out, clip)
package flac
