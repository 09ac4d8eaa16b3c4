// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"errors"
	"fmt"
)

var (
	ErrFilesFailed = errors.New("some files could not be augmented")
)

// DecodeError reports a source file that is not valid audio in the format
// its extension promises.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
