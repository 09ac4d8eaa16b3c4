// SPDX-License-Identifier: EPL-2.0

package audnoise

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audnoise/audio"
)

var (
	ErrUnknownFormat = errors.New("no codec registered for file extension")
)

// LoadClip decodes the whole file at path with the decoder registered for its
// extension.
func LoadClip(registry *audio.Registry, path string) (*audio.Clip, error) {
	dec, ok := registry.Get(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	clip, err := audio.ReadClip(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return clip, nil
}

// SaveClip encodes clip to path with the encoder registered for its extension.
// The file is created or truncated; a failed encode removes it again.
func SaveClip(registry *audio.Registry, path string, clip *audio.Clip) error {
	enc, ok := registry.GetEncoder(filepath.Ext(path))
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := enc.Encode(f, clip); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
