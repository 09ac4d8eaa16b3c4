// SPDX-License-Identifier: EPL-2.0

package audnoise

import (
	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/formats/aiff"
	"github.com/ik5/audnoise/formats/flac"
	"github.com/ik5/audnoise/formats/mp3"
	"github.com/ik5/audnoise/formats/vorbis"
	"github.com/ik5/audnoise/formats/wav"
)

// NewRegistry returns a registry with every built-in codec registered under
// its usual file extensions.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	for _, ext := range []string{"wav", "wave"} {
		r.Register(ext, wav.Decoder{})
		r.RegisterEncoder(ext, wav.Encoder{})
	}
	r.Register("flac", flac.Decoder{})
	r.RegisterEncoder("flac", flac.Encoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})

	return r
}
