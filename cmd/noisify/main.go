// SPDX-License-Identifier: EPL-2.0

// Command noisify augments speech recordings with background music and beep
// bursts, and extracts per-frame MFCC and mel features from audio files.
//
// Usage:
//
//	noisify augment <src> <dst> <noise> <music_alpha> <beep_alpha> <beep_frequency>
//	noisify features <file.wav>
//
// The noise directory holds a music/ and a beep/ subdirectory of clips in any
// supported format.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audnoise/cmd/noisify/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
