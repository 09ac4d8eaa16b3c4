// SPDX-License-Identifier: EPL-2.0

// Package noise loads the music and beep clips mixed into speech.
//
// A noise root holds two directories:
//
//	noise/
//	  music/  looping background tracks
//	  beep/   short bursts
//
// DirLoader decodes every file in them that has a registered codec, flattens
// it to mono and resamples it to the rate of the speech being augmented.
// Cache keeps one Library per rate so a directory of 16 kHz files decodes
// the noise only once.
package noise
