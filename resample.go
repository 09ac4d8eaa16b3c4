// SPDX-License-Identifier: EPL-2.0

package audnoise

import (
	"fmt"

	"github.com/ik5/audnoise/audio"
)

// ResampleToMono drains src, averages its channels and converts the result to
// targetRate. The source is closed. Matching rates skip interpolation, so a
// mono source at the target rate comes back sample for sample.
func ResampleToMono(src audio.Source, targetRate int) ([]float32, error) {
	if targetRate <= 0 {
		src.Close()
		return nil, audio.ErrInvalidSampleRate
	}

	clip, err := audio.ReadClip(audio.NewMonoMixer(src))
	if err != nil {
		return nil, fmt.Errorf("downmixing: %w", err)
	}

	out, err := audio.Resample(clip, targetRate)
	if err != nil {
		return nil, fmt.Errorf("resampling %d Hz to %d Hz: %w", clip.SampleRate, targetRate, err)
	}
	return out.Data[0], nil
}
