// SPDX-License-Identifier: EPL-2.0

// Package augment turns a directory of clean speech into noisy training data.
//
// Every .wav and .flac file of the source directory is decoded at its own
// sample rate, gets music and beeps from the noise library for that rate and
// is written to the target directory under the same name:
//
//   - .wav is folded to mono and written as mono 16-bit PCM WAV
//   - .flac keeps mono or stereo and is written as 16-bit FLAC
//
// Other files are skipped. Usage:
//
//	cache := noise.NewCache(noise.NewDirLoader("noise", audnoise.NewRegistry(), log))
//	aug := augment.New(augment.Options{
//	    Source: "speech",
//	    Target: "speech_noisy",
//	    Params: mixer.Params{MusicAlpha: 0.5, BeepAlpha: 0.3, BeepFrequency: 1},
//	}, cache, mixer.NewRand(seed), log)
//	stats, err := aug.Run(ctx)
package augment
