// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	outputChannels = 2
	bytesPerSample = 2
)

// pcmReader is the part of gomp3.Decoder the source needs, split out for tests.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        pcmReader
	sampleRate int
	buf        []byte
	// odd holds a trailing byte when a read splits a sample in half.
	odd    []byte
	closer io.Closer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return outputChannels }
func (s *source) BufSize() int    { return cap(s.buf) / bytesPerSample }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst)*bytesPerSample - len(s.odd)
	if cap(s.buf) < len(dst)*bytesPerSample {
		s.buf = make([]byte, len(dst)*bytesPerSample)
	}
	buf := s.buf[:len(dst)*bytesPerSample]
	copy(buf, s.odd)

	n, err := s.dec.Read(buf[len(s.odd) : len(s.odd)+need])
	n += len(s.odd)
	s.odd = s.odd[:0]

	samples := n / bytesPerSample
	if rem := n % bytesPerSample; rem != 0 {
		s.odd = append(s.odd, buf[n-rem:n]...)
	}

	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[i*bytesPerSample:]))
		dst[i] = utils.IntToFloat32(int(v), 16)
	}

	if err != nil && err != io.EOF {
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}
	return samples, err
}

// Decoder reads MPEG-1/2 Layer III streams. Output is always stereo; mono
// files come back with both channels equal.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
		odd:        make([]byte, 0, bytesPerSample),
	}, nil
}
