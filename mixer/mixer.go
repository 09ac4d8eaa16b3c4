// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"fmt"
	"math"
)

// Params are the gains and burst rate applied to every file of a run.
type Params struct {
	MusicAlpha    float64 `yaml:"music_alpha"`
	BeepAlpha     float64 `yaml:"beep_alpha"`
	BeepFrequency float64 `yaml:"beep_frequency"`
}

// Validate rejects non-finite gains and negative or non-finite burst rates.
// Negative gains are allowed.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"music_alpha", p.MusicAlpha},
		{"beep_alpha", p.BeepAlpha},
		{"beep_frequency", p.BeepFrequency},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParams, f.name, f.value)
		}
	}
	if p.BeepFrequency < 0 {
		return fmt.Errorf("%w: beep_frequency %v is negative", ErrInvalidParams, p.BeepFrequency)
	}
	return nil
}

// Mixer overlays music and beeps onto speech buffers. All random choices go
// through Rand so a fixed sequence reproduces a run exactly.
type Mixer struct {
	Params Params
	Rand   Rand
}

func New(p Params, rng Rand) *Mixer {
	return &Mixer{Params: p, Rand: rng}
}

// burst is one beep placement.
type burst struct {
	beep   []float32
	offset int
}

// draw makes every random choice for a buffer of n samples: first the music
// clip, then for each burst the beep clip followed by its offset.
func (m *Mixer) draw(n int, music, beeps [][]float32, rate int) ([]float32, []burst, error) {
	if rate <= 0 {
		return nil, nil, ErrInvalidRate
	}
	if len(music) == 0 || len(beeps) == 0 {
		return nil, nil, fmt.Errorf("%w: %d music, %d beep clips", ErrEmptyNoiseSet, len(music), len(beeps))
	}

	track := music[m.Rand.IntN(len(music))]

	bursts := make([]burst, BeepCount(n, rate, m.Params.BeepFrequency))
	for i := range bursts {
		bursts[i].beep = beeps[m.Rand.IntN(len(beeps))]
		bursts[i].offset = m.Rand.IntN(n)
	}
	return track, bursts, nil
}

// MixMono adds one randomly chosen music clip across buf and then the beep
// bursts BeepCount asks for, each a random beep at a random offset.
func (m *Mixer) MixMono(buf []float32, music, beeps [][]float32, rate int) error {
	track, bursts, err := m.draw(len(buf), music, beeps, rate)
	if err != nil {
		return err
	}

	if err := AddMusic(buf, track, m.Params.MusicAlpha); err != nil {
		return err
	}
	for _, b := range bursts {
		if err := AddBeep(buf, b.beep, b.offset, m.Params.BeepAlpha); err != nil {
			return err
		}
	}
	return nil
}

// MixStereo is MixMono for two channels sharing every random choice, so the
// noise lands on left and right identically.
func (m *Mixer) MixStereo(left, right []float32, music, beeps [][]float32, rate int) error {
	if len(left) != len(right) {
		return ErrChannelLength
	}

	track, bursts, err := m.draw(len(left), music, beeps, rate)
	if err != nil {
		return err
	}

	for _, ch := range [][]float32{left, right} {
		if err := AddMusic(ch, track, m.Params.MusicAlpha); err != nil {
			return err
		}
	}
	for _, b := range bursts {
		for _, ch := range [][]float32{left, right} {
			if err := AddBeep(ch, b.beep, b.offset, m.Params.BeepAlpha); err != nil {
				return err
			}
		}
	}
	return nil
}
