// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/audio"
)

const (
	MusicDir = "music"
	BeepDir  = "beep"
)

// Loader builds the noise library for a sample rate.
type Loader interface {
	Load(ctx context.Context, rate int) (*Library, error)
}

// DirLoader reads noise from <Root>/music and <Root>/beep. Files whose
// extension has a decoder in Registry are decoded, downmixed and resampled to
// the requested rate; anything else is ignored.
type DirLoader struct {
	Root     string
	Registry *audio.Registry
	Log      *logrus.Entry
}

func NewDirLoader(root string, registry *audio.Registry, log *logrus.Entry) *DirLoader {
	return &DirLoader{Root: root, Registry: registry, Log: log}
}

func (d *DirLoader) Load(ctx context.Context, rate int) (*Library, error) {
	if rate <= 0 {
		return nil, errors.WithStack(audio.ErrInvalidSampleRate)
	}

	base := d.Log
	if base == nil {
		base = logrus.NewEntry(logrus.StandardLogger())
	}
	log := base.WithFields(logrus.Fields{
		"noise_root": d.Root,
		"rate":       rate,
	})
	log.Info("Loading noise library")

	music, err := d.loadSet(ctx, log, filepath.Join(d.Root, MusicDir), rate)
	if err != nil {
		return nil, err
	}
	beeps, err := d.loadSet(ctx, log, filepath.Join(d.Root, BeepDir), rate)
	if err != nil {
		return nil, err
	}

	lib := &Library{Rate: rate, Music: music, Beeps: beeps}
	log.WithFields(logrus.Fields{
		"music":  len(music),
		"beeps":  len(beeps),
		"memory": humanize.Bytes(uint64(lib.Samples()) * 4),
	}).Info("Noise library ready")

	return lib, nil
}

func (d *DirLoader) loadSet(ctx context.Context, log *logrus.Entry, dir string, rate int) ([][]float32, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing noise directory %s", dir)
	}

	var set [][]float32
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		dec, ok := d.Registry.Get(filepath.Ext(path))
		if !ok {
			log.Debugf("Skipping %s: not an audio file", path)
			continue
		}

		samples, err := d.loadFile(dec, path, rate)
		if err != nil {
			return nil, err
		}
		if len(samples) == 0 {
			log.Warnf("Dropping %s: no samples", path)
			continue
		}

		set = append(set, samples)
	}
	return set, nil
}

func (d *DirLoader) loadFile(dec audio.Decoder, path string, rate int) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening noise file %s", path)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding noise file %s", path)
	}

	samples, err := audnoise.ResampleToMono(src, rate)
	if err != nil {
		return nil, errors.Wrapf(err, "converting noise file %s", path)
	}
	return samples, nil
}
