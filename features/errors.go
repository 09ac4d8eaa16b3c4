// SPDX-License-Identifier: EPL-2.0

package features

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid feature extractor configuration")
	ErrFrameTooShort = errors.New("frame duration is shorter than one sample")
)
