// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/ik5/audnoise/internal/audiotest"
)

func TestMixer_MixMono_Draws(t *testing.T) {
	t.Parallel()

	music := [][]float32{{0.1}, {0.2}}
	beeps := [][]float32{{0.5, 0.5}, {-0.5}}
	// 8 samples at 4 Hz with 1 burst/s: ceil(2 * 1) = 2 bursts.
	rng := audiotest.NewScriptedRand(1, 0, 6, 1, 2)
	m := New(Params{MusicAlpha: 1, BeepAlpha: 1, BeepFrequency: 1}, rng)

	buf := make([]float32, 8)
	if err := m.MixMono(buf, music, beeps, 4); err != nil {
		t.Fatalf("MixMono() error = %v", err)
	}

	wantDraws := []audiotest.Draw{
		{N: 2, Result: 1}, // music
		{N: 2, Result: 0}, // first beep
		{N: 8, Result: 6}, // first offset
		{N: 2, Result: 1}, // second beep
		{N: 8, Result: 2}, // second offset
	}
	draws := rng.Draws()
	if len(draws) != len(wantDraws) {
		t.Fatalf("draws = %v, want %v", draws, wantDraws)
	}
	for i := range wantDraws {
		if draws[i] != wantDraws[i] {
			t.Errorf("draw %d = %+v, want %+v", i, draws[i], wantDraws[i])
		}
	}

	want := []float32{0.2, 0.2, -0.3, 0.2, 0.2, 0.2, 0.7, 0.7}
	for i := range want {
		if math.Abs(float64(buf[i]-want[i])) > 1e-6 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestMixer_MixMono_InRange(t *testing.T) {
	t.Parallel()

	music := [][]float32{{0.9, -0.9, 0.9}, {1, 1}}
	beeps := [][]float32{{1, 1, 1, 1}, {-1, -1}}
	m := New(Params{MusicAlpha: 0.8, BeepAlpha: 1.5, BeepFrequency: 50}, NewRand(7))

	buf := make([]float32, 1000)
	for i := range buf {
		buf[i] = float32(math.Sin(float64(i) / 10))
	}
	if err := m.MixMono(buf, music, beeps, 1000); err != nil {
		t.Fatalf("MixMono() error = %v", err)
	}
	for i, v := range buf {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d = %v, outside [-1, 1]", i, v)
		}
	}
}

func TestMixer_MixStereo_SharesDraws(t *testing.T) {
	t.Parallel()

	music := [][]float32{{0.1, 0.2, 0.3}, {-0.2, 0.4}, {0.05}}
	beeps := [][]float32{{0.6, 0.6, 0.6}, {-0.3}, {0.2, -0.2}}
	params := Params{MusicAlpha: 0.5, BeepAlpha: 0.7, BeepFrequency: 3}

	left := make([]float32, 400)
	right := make([]float32, 400)
	for i := range left {
		left[i] = float32(i%7) / 10
		right[i] = -float32(i%5) / 10
	}
	monoLeft := append([]float32(nil), left...)
	monoRight := append([]float32(nil), right...)

	rng := audiotest.NewScriptedRand(2, 1, 17, 0, 399, 2, 150, 1, 0, 0, 250, 2, 3, 1, 42)
	if err := New(params, rng).MixStereo(left, right, music, beeps, 100); err != nil {
		t.Fatalf("MixStereo() error = %v", err)
	}

	// 4 s at 3 bursts/s: one music draw plus 12 (beep, offset) pairs, never per channel.
	if got := len(rng.Draws()); got != 1+2*12 {
		t.Errorf("draws = %d, want %d", got, 1+2*12)
	}

	// Replaying the same sequence on each channel alone must give the same result.
	replay := func(buf []float32) {
		seq := audiotest.NewScriptedRand(2, 1, 17, 0, 399, 2, 150, 1, 0, 0, 250, 2, 3, 1, 42)
		if err := New(params, seq).MixMono(buf, music, beeps, 100); err != nil {
			t.Fatalf("MixMono() error = %v", err)
		}
	}
	replay(monoLeft)
	replay(monoRight)

	for i := range left {
		if left[i] != monoLeft[i] {
			t.Fatalf("left[%d] = %v, mono replay %v", i, left[i], monoLeft[i])
		}
		if right[i] != monoRight[i] {
			t.Fatalf("right[%d] = %v, mono replay %v", i, right[i], monoRight[i])
		}
	}
}

func TestMixer_MixStereo_IdenticalChannelsStayIdentical(t *testing.T) {
	t.Parallel()

	left := make([]float32, 3000)
	for i := range left {
		left[i] = float32(math.Cos(float64(i) / 30))
	}
	right := append([]float32(nil), left...)

	m := New(Params{MusicAlpha: 0.4, BeepAlpha: 0.9, BeepFrequency: 5}, NewRand(99))
	err := m.MixStereo(left, right, [][]float32{{0.3, -0.1}}, [][]float32{{0.5, 0.5, 0.5}, {-0.8}}, 1000)
	if err != nil {
		t.Fatalf("MixStereo() error = %v", err)
	}
	for i := range left {
		if left[i] != right[i] {
			t.Fatalf("sample %d: left %v, right %v", i, left[i], right[i])
		}
	}
}

func TestMixer_Errors(t *testing.T) {
	t.Parallel()

	music := [][]float32{{0.1}}
	beeps := [][]float32{{0.1}}
	m := New(Params{MusicAlpha: 1, BeepAlpha: 1, BeepFrequency: 1}, audiotest.NewScriptedRand())

	tests := []struct {
		name string
		mix  func() error
		want error
	}{
		{"mono no music", func() error { return m.MixMono(make([]float32, 4), nil, beeps, 8000) }, ErrEmptyNoiseSet},
		{"mono no beeps", func() error { return m.MixMono(make([]float32, 4), music, [][]float32{}, 8000) }, ErrEmptyNoiseSet},
		{"mono zero rate", func() error { return m.MixMono(make([]float32, 4), music, beeps, 0) }, ErrInvalidRate},
		{"stereo length mismatch", func() error { return m.MixStereo(make([]float32, 4), make([]float32, 5), music, beeps, 8000) }, ErrChannelLength},
		{"stereo no music", func() error { return m.MixStereo(make([]float32, 4), make([]float32, 4), nil, beeps, 8000) }, ErrEmptyNoiseSet},
		{"empty music clip", func() error { return m.MixMono(make([]float32, 4), [][]float32{{}}, beeps, 8000) }, ErrEmptyWaveform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.mix(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMixer_EmptyBuffer(t *testing.T) {
	t.Parallel()

	rng := audiotest.NewScriptedRand()
	m := New(Params{MusicAlpha: 1, BeepAlpha: 1, BeepFrequency: 10}, rng)
	if err := m.MixMono(nil, [][]float32{{0.1}}, [][]float32{{0.1}}, 8000); err != nil {
		t.Fatalf("MixMono() error = %v", err)
	}
	if got := len(rng.Draws()); got != 1 {
		t.Errorf("draws = %d, want only the music draw", got)
	}
}

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"typical", Params{MusicAlpha: 0.5, BeepAlpha: 0.3, BeepFrequency: 1}, false},
		{"negative gains", Params{MusicAlpha: -0.5, BeepAlpha: -1, BeepFrequency: 0}, false},
		{"negative frequency", Params{BeepFrequency: -1}, true},
		{"NaN music", Params{MusicAlpha: math.NaN()}, true},
		{"infinite beep", Params{BeepAlpha: math.Inf(1)}, true},
		{"infinite frequency", Params{BeepFrequency: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Validate() error = %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestNewRand_Reproducible(t *testing.T) {
	t.Parallel()

	a, b := NewRand(123), NewRand(123)
	for range 100 {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("same seed diverged: %d != %d", x, y)
		}
	}
}

func TestLockedRand_Concurrent(t *testing.T) {
	t.Parallel()

	r := NewLockedRand(NewRand(5))

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 1000 {
				if v := r.IntN(10); v < 0 || v >= 10 {
					t.Errorf("IntN(10) = %d", v)
				}
			}
		})
	}
	wg.Wait()
}
