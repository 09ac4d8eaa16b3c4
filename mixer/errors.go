// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	ErrEmptyWaveform  = errors.New("music waveform is empty")
	ErrNegativeOffset = errors.New("beep offset must not be negative")
	ErrEmptyNoiseSet  = errors.New("no music or beep samples available")
	ErrInvalidRate    = errors.New("sample rate must be positive")
	ErrChannelLength  = errors.New("stereo channels differ in length")
	ErrInvalidParams  = errors.New("invalid augmentation parameters")
)
