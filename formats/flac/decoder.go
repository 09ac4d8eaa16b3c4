// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/utils"
)

// frameParser is the part of goflac.Stream the source needs, split out for tests.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	bitDepth   int
	// pending holds interleaved samples of the last parsed frame not yet handed out.
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }
func (s *source) Close() error    { return s.stream.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.next(); err != nil {
				return n, err
			}
			continue
		}
		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && s.eof {
		return 0, io.EOF
	}
	return n, nil
}

func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err == io.EOF {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing flac frame: %w", err)
	}
	if len(f.Subframes) != s.channels {
		return audio.ErrUnsupportedChannels
	}

	frames := len(f.Subframes[0].Samples)
	out := make([]float32, frames*s.channels)
	for ch, sub := range f.Subframes {
		if len(sub.Samples) != frames {
			return audio.ErrChannelLengthMismatch
		}
		for i, v := range sub.Samples {
			out[i*s.channels+ch] = utils.IntToFloat32(int(v), s.bitDepth)
		}
	}
	s.pending = out
	return nil
}

// Decoder reads FLAC streams of any channel count at 8, 16, 24 or 32 bits.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac stream: %w", err)
	}

	info := stream.Info
	switch info.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		stream.Close()
		return nil, ErrUnsupportedBitDepth
	}
	if info.NChannels == 0 {
		stream.Close()
		return nil, audio.ErrUnsupportedChannels
	}
	if info.SampleRate == 0 {
		stream.Close()
		return nil, audio.ErrInvalidSampleRate
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
