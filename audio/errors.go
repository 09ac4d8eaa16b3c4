// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize        = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrUnsupportedChannels   = errors.New("unsupported channel count")
	ErrChannelLengthMismatch = errors.New("channels have different lengths")
)
