// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
	ErrTooManyChannels     = errors.New("FLAC supports at most 8 channels")
)
