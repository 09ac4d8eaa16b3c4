// SPDX-License-Identifier: EPL-2.0

// Package mixer adds background noise to speech buffers in place.
//
// Two primitives do the work. AddMusic loops a music clip over the whole
// buffer starting at sample 0 (no random phase) and AddBeep adds a short
// burst at one offset. Both hard clip what they touch to [-1, 1].
//
// A Mixer combines them the way the augmenter needs it:
//
//	m := mixer.New(mixer.Params{MusicAlpha: 0.5, BeepAlpha: 0.3, BeepFrequency: 1}, mixer.NewRand(42))
//	err := m.MixMono(samples, lib.Music, lib.Beeps, 16000)
//
// Random draws happen in a fixed order (music clip, then beep clip and offset
// per burst) so a seeded Rand reproduces the exact same augmentation.
// MixStereo makes the draws once and applies them to both channels.
//
// A Mixer is not safe for concurrent use unless its Rand is; wrap a shared
// generator in LockedRand.
package mixer
