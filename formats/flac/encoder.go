// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"crypto/md5"
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/utils"
)

const (
	blockSize    = 4096
	minBlockSize = 16
	maxChannels  = 8
)

// Encoder writes a Clip as 16-bit verbatim FLAC frames of up to 4096 samples.
// Samples outside [-1, 1] are clipped. The stream info block is written once
// up front with the final sample count and MD5 sum, so an empty clip still
// yields a decodable stream. The caller keeps ownership of w.
type Encoder struct{}

// streamWriter exposes only Write, so the goflac encoder neither closes the
// destination nor seeks back to rewrite the stream info.
type streamWriter struct {
	w io.Writer
}

func (s streamWriter) Write(p []byte) (int, error) { return s.w.Write(p) }

func (Encoder) Encode(w io.WriteSeeker, c *audio.Clip) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("encoding flac: %w", err)
	}
	if c.Channels() > maxChannels {
		return ErrTooManyChannels
	}

	const bitDepth = 16
	n := c.Len()

	var frames []*frame.Frame
	sum := md5.New()
	for start := 0; start < n; start += blockSize {
		end := min(start+blockSize, n)
		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: false,
				BlockSize:         uint16(end - start),
				SampleRate:        uint32(c.SampleRate),
				Channels:          channelLayout(c.Channels()),
				BitsPerSample:     bitDepth,
				Num:               uint64(start),
			},
			Subframes: make([]*frame.Subframe, c.Channels()),
		}
		for ch, data := range c.Data {
			samples := make([]int32, end-start)
			for i, v := range data[start:end] {
				samples[i] = int32(utils.Float32ToInt(v, bitDepth))
			}
			f.Subframes[ch] = &frame.Subframe{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   samples,
				NSamples:  len(samples),
			}
		}
		f.Hash(sum)
		frames = append(frames, f)
	}

	info := &meta.StreamInfo{
		BlockSizeMin:  minBlockSize,
		BlockSizeMax:  blockSize,
		SampleRate:    uint32(c.SampleRate),
		NChannels:     uint8(c.Channels()),
		BitsPerSample: bitDepth,
		NSamples:      uint64(n),
	}
	copy(info.MD5sum[:], sum.Sum(nil))

	enc, err := goflac.NewEncoder(streamWriter{w: w}, info)
	if err != nil {
		return fmt.Errorf("creating flac encoder: %w", err)
	}
	for _, f := range frames {
		if err := enc.WriteFrame(f); err != nil {
			enc.Close()
			return fmt.Errorf("writing flac frame at sample %d: %w", f.Num, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing flac: %w", err)
	}
	return nil
}

// channelLayout maps a channel count to the independent-channel assignment.
func channelLayout(channels int) frame.Channels {
	switch channels {
	case 1:
		return frame.ChannelsMono
	case 2:
		return frame.ChannelsLR
	case 3:
		return frame.ChannelsLRC
	case 4:
		return frame.ChannelsLRLsRs
	case 5:
		return frame.ChannelsLRCLsRs
	case 6:
		return frame.ChannelsLRCLfeLsRs
	case 7:
		return frame.ChannelsLRCLfeCsSlSr
	default:
		return frame.ChannelsLRCLfeLsRsSlSr
	}
}
