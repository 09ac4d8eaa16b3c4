// SPDX-License-Identifier: EPL-2.0

package mixer_test

import (
	"fmt"

	"github.com/ik5/audnoise/mixer"
)

func ExampleAddMusic() {
	buf := make([]float32, 5)
	_ = mixer.AddMusic(buf, []float32{0.5, 1}, 0.8)
	fmt.Println(buf)
	// Output: [0.4 0.8 0.4 0.8 0.4]
}

func ExampleAddBeep() {
	buf := []float32{0.5, 0.5, 0.5, 0.5}
	_ = mixer.AddBeep(buf, []float32{1, 1, 1}, 2, 1)
	fmt.Println(buf)
	// Output: [0.5 0.5 1 1]
}

func ExampleBeepCount() {
	fmt.Println(mixer.BeepCount(32000, 16000, 2.0))
	// Output: 4
}

func ExampleMixer_MixStereo() {
	left := make([]float32, 8000)
	right := make([]float32, 8000)

	m := mixer.New(mixer.Params{MusicAlpha: 0.5, BeepAlpha: 0.3, BeepFrequency: 1}, mixer.NewRand(1))
	err := m.MixStereo(left, right, [][]float32{{0.2, -0.2}}, [][]float32{{1, 1, 1}}, 8000)

	same := true
	for i := range left {
		same = same && left[i] == right[i]
	}
	fmt.Println(err, same)
	// Output: <nil> true
}
