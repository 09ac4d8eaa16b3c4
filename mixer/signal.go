// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"

	"github.com/ik5/audnoise/utils"
)

// AddMusic loops music over buf from the first sample, adding alpha*music to
// every tile, then hard clips all of buf to [-1, 1]. The last tile is a
// truncated prefix of music when the lengths do not divide.
func AddMusic(buf, music []float32, alpha float64) error {
	if len(music) == 0 {
		return ErrEmptyWaveform
	}

	a := float32(alpha)
	for p := 0; p < len(buf); p += len(music) {
		tile := buf[p:min(p+len(music), len(buf))]
		for i := range tile {
			tile[i] += a * music[i]
		}
	}

	utils.ClipSlice(buf)
	return nil
}

// AddBeep adds alpha*beep into buf starting at offset. A beep running past the
// end of buf is truncated and an offset at or past the end writes nothing.
// Only the samples written are clipped.
func AddBeep(buf, beep []float32, offset int, alpha float64) error {
	if offset < 0 {
		return ErrNegativeOffset
	}
	if offset >= len(buf) {
		return nil
	}

	a := float32(alpha)
	span := buf[offset:min(offset+len(beep), len(buf))]
	for i := range span {
		span[i] += a * beep[i]
	}

	utils.ClipSlice(span)
	return nil
}

// BeepCount is how many bursts a buffer of n samples at rate receives:
// its duration in seconds times frequency, rounded up.
func BeepCount(n, rate int, frequency float64) int {
	if rate <= 0 || n <= 0 {
		return 0
	}
	count := math.Ceil(float64(n) / float64(rate) * frequency)
	if count <= 0 || math.IsNaN(count) {
		return 0
	}
	return int(count)
}
