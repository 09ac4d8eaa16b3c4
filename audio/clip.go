// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadClip tolerates
// before giving up on a source.
const maxEmptyReads = 100

// Clip is a fully decoded PCM stream held in memory, one slice per channel.
// All channels have the same length.
type Clip struct {
	SampleRate int
	Data       [][]float32
}

// NewClip allocates a silent clip of frames samples per channel.
func NewClip(sampleRate, channels, frames int) *Clip {
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}
	return &Clip{SampleRate: sampleRate, Data: data}
}

// Channels returns the number of channels in the clip.
func (c *Clip) Channels() int { return len(c.Data) }

// Len returns the number of samples per channel.
func (c *Clip) Len() int {
	if len(c.Data) == 0 {
		return 0
	}
	return len(c.Data[0])
}

// Duration of the clip at its sample rate.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(c.Len()) * time.Second / time.Duration(c.SampleRate)
}

// Validate checks the clip has a usable rate and equally sized channels.
func (c *Clip) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if len(c.Data) == 0 {
		return ErrUnsupportedChannels
	}
	n := len(c.Data[0])
	for _, ch := range c.Data[1:] {
		if len(ch) != n {
			return ErrChannelLengthMismatch
		}
	}
	return nil
}

// Mono returns a single channel clip averaging all channels.
// A mono clip is returned as is.
func (c *Clip) Mono() *Clip {
	if len(c.Data) <= 1 {
		return c
	}

	n := c.Len()
	out := make([]float32, n)
	inv := float32(1.0) / float32(len(c.Data))
	for i := range n {
		var sum float32
		for _, ch := range c.Data {
			sum += ch[i]
		}
		out[i] = sum * inv
	}
	return &Clip{SampleRate: c.SampleRate, Data: [][]float32{out}}
}

// Interleave returns the samples as frames of interleaved channels.
func (c *Clip) Interleave() []float32 {
	channels := len(c.Data)
	n := c.Len()
	out := make([]float32, n*channels)
	for ch, samples := range c.Data {
		for i, v := range samples {
			out[i*channels+ch] = v
		}
	}
	return out
}

// ReadClip drains src into memory and closes it.
func ReadClip(src Source) (*Clip, error) {
	defer src.Close()

	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrUnsupportedChannels
	}
	if src.SampleRate() <= 0 {
		return nil, ErrInvalidSampleRate
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	// Keep reads frame aligned.
	bufSize -= bufSize % channels
	buf := make([]float32, bufSize)

	data := make([][]float32, channels)
	pending := make([]float32, 0, channels)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			empty = 0
			samples := buf[:n]
			// Sources may hand back a partial frame; carry it to the next read.
			if len(pending) > 0 {
				need := channels - len(pending)
				if need > len(samples) {
					need = len(samples)
				}
				pending = append(pending, samples[:need]...)
				samples = samples[need:]
				if len(pending) == channels {
					for ch, v := range pending {
						data[ch] = append(data[ch], v)
					}
					pending = pending[:0]
				}
			}
			frames := len(samples) / channels
			for f := range frames {
				base := f * channels
				for ch := range channels {
					data[ch] = append(data[ch], samples[base+ch])
				}
			}
			pending = append(pending, samples[frames*channels:]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, io.ErrNoProgress
			}
		}
	}

	for ch := range data {
		if data[ch] == nil {
			data[ch] = []float32{}
		}
	}

	return &Clip{SampleRate: src.SampleRate(), Data: data}, nil
}
