// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives the rest of audnoise is
// built on.
//
// This package contains:
//   - Source interface for streaming decoded PCM
//   - Decoder and Encoder interfaces implemented by the formats subpackages
//   - Registry for looking codecs up by format name or file extension
//   - Clip, a fully decoded buffer with one slice per channel
//   - Resample for sample rate conversion of a Clip
//   - MonoMixer for streaming channel downmix
//
// # Source Interface
//
// Every decoder returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// ReadSamples yields interleaved float32 samples and io.EOF at the end of the
// stream.
//
// # Clips
//
// Augmentation and feature extraction work on whole files, so sources are
// usually drained into a Clip:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	clip, err := audio.ReadClip(src) // closes src
//
// clip.Data[0] is the left (or only) channel, clip.Data[1] the right one.
// Mono downmixes by averaging and Interleave converts back to frames for
// encoders.
//
// # Resampling
//
// Resample converts a Clip to another sample rate using cubic (Catmull-Rom)
// interpolation, with a one-pole low-pass filter in front when downsampling:
//
//	clip8k, err := audio.Resample(clip, 8000)
//
// Matching rates return the input untouched.
//
// # Format Registry
//
// The registry maps format keys to codecs. Keys are normalized with FormatKey,
// so a file extension can be used directly:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.RegisterEncoder("wav", wav.Encoder{})
//	decoder, ok := registry.Get(filepath.Ext(name)) // ".WAV" works too
//
// # Sample Format
//
// Samples are float32 nominally in [-1.0, 1.0]. Intermediate processing may go
// past that range; encoders clip on the way out.
package audio
