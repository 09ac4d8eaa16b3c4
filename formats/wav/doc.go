// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE files on top of github.com/go-audio/wav.
//
// Decoder accepts integer PCM at 8, 16, 24 or 32 bits with any channel count
// and sample rate. Chunks such as LIST that sit in front of the data chunk are
// skipped. Samples come out as float32 in [-1.0, 1.0]:
//
//	f, _ := os.Open("speech.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	clip, err := audio.ReadClip(src)
//
// Encoder writes a Clip back as integer PCM (16 bits unless BitDepth says
// otherwise). It needs an io.WriteSeeker because the RIFF sizes are patched
// once the data is written:
//
//	out, _ := os.Create("speech_noisy.wav")
//	err := wav.Encoder{}.Encode(out, clip)
//
// WriteWAV16 produces the canonical 44 byte header variant for plain writers
// such as a bytes.Buffer.
package wav
