// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"slices"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/formats/flac"
	"github.com/ik5/audnoise/formats/wav"
)

// policy says how files of one extension are read, mixed and written back.
type policy struct {
	decoder audio.Decoder
	encoder audio.Encoder
	// mono folds every input down to one channel before mixing.
	mono bool
}

// policies keyed by audio.FormatKey of the extension. WAV speech is mixed and
// written as mono 16-bit PCM; FLAC keeps its one or two channels.
var policies = map[string]policy{
	"wav":  {decoder: wav.Decoder{}, encoder: wav.Encoder{BitDepth: 16}, mono: true},
	"flac": {decoder: flac.Decoder{}, encoder: flac.Encoder{}},
}

// targets carries the encoders of every policy for audnoise.SaveClip.
var targets = func() *audio.Registry {
	r := audio.NewRegistry()
	for ext, p := range policies {
		r.Register(ext, p.decoder)
		r.RegisterEncoder(ext, p.encoder)
	}
	return r
}()

func lookupPolicy(ext string) (policy, bool) {
	p, ok := policies[audio.FormatKey(ext)]
	return p, ok
}

// Supported lists the extensions Run processes.
func Supported() []string {
	exts := make([]string, 0, len(policies))
	for ext := range policies {
		exts = append(exts, "."+ext)
	}
	slices.Sort(exts)
	return exts
}
