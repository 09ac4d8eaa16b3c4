// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audnoise/utils"

// Resample converts every channel of c to dstRate using cubic interpolation.
// A one-pole low-pass filter runs over the input first when downsampling.
// The clip is returned unchanged when the rates already match.
func Resample(c *Clip, dstRate int) (*Clip, error) {
	if dstRate <= 0 || c.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if c.SampleRate == dstRate {
		return c, nil
	}

	n := c.Len()
	outLen := int(int64(n) * int64(dstRate) / int64(c.SampleRate))
	if n > 0 && outLen == 0 {
		outLen = 1
	}
	// ratio is how many source samples advance per output sample.
	ratio := float64(c.SampleRate) / float64(dstRate)

	out := &Clip{SampleRate: dstRate, Data: make([][]float32, len(c.Data))}
	for ch, samples := range c.Data {
		if ratio > 1.0 {
			samples = lowPass(samples, 0.5)
		}
		out.Data[ch] = resampleChannel(samples, outLen, ratio)
	}
	return out, nil
}

func resampleChannel(src []float32, outLen int, ratio float64) []float32 {
	dst := make([]float32, outLen)
	if len(src) == 0 {
		return dst
	}

	last := len(src) - 1
	at := func(i int) float32 {
		// Duplicate edge samples when the 4-point window runs off either end.
		if i < 0 {
			return src[0]
		}
		if i > last {
			return src[last]
		}
		return src[i]
	}

	for i := range outLen {
		pos := float64(i) * ratio
		idx := int(pos)
		x := float32(pos - float64(idx))
		dst[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), x)
	}
	return dst
}

// lowPass applies y[n] = alpha*x[n] + (1-alpha)*y[n-1], seeded with x[0] to
// avoid a warm-up transient.
func lowPass(src []float32, alpha float32) []float32 {
	out := make([]float32, len(src))
	if len(src) == 0 {
		return out
	}
	state := src[0]
	for i, v := range src {
		state = alpha*v + (1-alpha)*state
		out[i] = state
	}
	return out
}
