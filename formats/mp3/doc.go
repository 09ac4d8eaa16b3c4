// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// The decoder always reports two channels because go-mp3 expands mono
// streams to stereo. Noise libraries downmix it again on load:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	clip, err := audio.ReadClip(src)
//	mono := clip.Mono()
//
// There is no encoder; MP3 is accepted as noise material only.
package mp3
