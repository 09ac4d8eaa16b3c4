// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"github.com/pkg/errors"

	"github.com/ik5/audnoise/mixer"
)

// Library holds the decoded noise material for one sample rate. Every clip is
// mono at Rate. A Library is never modified after it is built, so it can be
// shared between goroutines.
type Library struct {
	Rate  int
	Music [][]float32
	Beeps [][]float32
}

// Validate reports mixer.ErrEmptyNoiseSet when either set is empty.
func (l *Library) Validate() error {
	if len(l.Music) == 0 || len(l.Beeps) == 0 {
		return errors.Wrapf(mixer.ErrEmptyNoiseSet, "noise library at %d Hz has %d music and %d beep clips",
			l.Rate, len(l.Music), len(l.Beeps))
	}
	return nil
}

// Samples counts the samples held across both sets.
func (l *Library) Samples() int {
	total := 0
	for _, set := range [][][]float32{l.Music, l.Beeps} {
		for _, clip := range set {
			total += len(clip)
		}
	}
	return total
}
