// SPDX-License-Identifier: EPL-2.0

package augment

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/mixer"
	"github.com/ik5/audnoise/noise"
)

// Options configure one batch run.
type Options struct {
	// Source is the directory of speech files. Subdirectories are ignored.
	Source string
	// Target receives the augmented files under their original names.
	Target string
	Params mixer.Params
	// Workers is how many files are processed at once. Values below 2 keep the
	// run sequential, which makes a seeded run reproducible.
	Workers int
	// KeepGoing logs failing files and carries on instead of aborting.
	KeepGoing bool
}

// Stats summarize a run.
type Stats struct {
	Processed    int
	Skipped      int
	Failed       int
	BytesWritten uint64
}

// Augmenter mixes noise into every supported file of a directory.
type Augmenter struct {
	opts  Options
	cache *noise.Cache
	mix   *mixer.Mixer
	log   *logrus.Entry
}

func New(opts Options, cache *noise.Cache, rng mixer.Rand, log *logrus.Entry) *Augmenter {
	if opts.Workers > 1 {
		rng = mixer.NewLockedRand(rng)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Augmenter{
		opts:  opts,
		cache: cache,
		mix:   mixer.New(opts.Params, rng),
		log:   log,
	}
}

// Run augments every file of Source into Target. Unless KeepGoing is set the
// first failing file stops the run and its error is returned. With KeepGoing
// a run with failures still ends in an error wrapping ErrFilesFailed.
func (a *Augmenter) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	if err := a.opts.Params.Validate(); err != nil {
		return stats, err
	}
	if err := os.MkdirAll(a.opts.Target, 0o755); err != nil {
		return stats, errors.Wrapf(err, "creating target directory %s", a.opts.Target)
	}
	entries, err := os.ReadDir(a.opts.Source)
	if err != nil {
		return stats, errors.Wrapf(err, "listing source directory %s", a.opts.Source)
	}

	log := a.log.WithFields(logrus.Fields{
		"source": a.opts.Source,
		"target": a.opts.Target,
	})

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.opts.Workers, 1))

	for _, entry := range entries {
		if gctx.Err() != nil {
			break
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		pol, ok := lookupPolicy(filepath.Ext(name))
		if !ok {
			log.Debugf("Skipping %s: unsupported extension", name)
			mu.Lock()
			stats.Skipped++
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			written, err := a.processFile(gctx, log, name, pol)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				stats.Failed++
				if !a.opts.KeepGoing {
					return err
				}
				log.WithError(err).Errorf("Failed to augment %s", name)
				return nil
			}
			stats.Processed++
			stats.BytesWritten += written
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err == nil && stats.Failed > 0 {
		err = errors.Wrapf(ErrFilesFailed, "%d of %d files", stats.Failed, stats.Failed+stats.Processed)
	}

	log.WithFields(logrus.Fields{
		"processed": stats.Processed,
		"skipped":   stats.Skipped,
		"failed":    stats.Failed,
		"written":   humanize.Bytes(stats.BytesWritten),
	}).Info("Augmentation finished")

	return stats, err
}

// processFile decodes, mixes and writes one file, returning the bytes written.
func (a *Augmenter) processFile(ctx context.Context, log *logrus.Entry, name string, pol policy) (uint64, error) {
	srcPath := filepath.Join(a.opts.Source, name)
	dstPath := filepath.Join(a.opts.Target, name)

	clip, err := decodeFile(srcPath, pol.decoder)
	if err != nil {
		return 0, err
	}
	if pol.mono {
		clip = clip.Mono()
	}

	lib, err := a.cache.Get(ctx, clip.SampleRate)
	if err != nil {
		return 0, errors.Wrapf(err, "loading noise for %s", srcPath)
	}
	if err := lib.Validate(); err != nil {
		return 0, errors.Wrapf(err, "mixing %s", srcPath)
	}

	switch clip.Channels() {
	case 1:
		err = a.mix.MixMono(clip.Data[0], lib.Music, lib.Beeps, clip.SampleRate)
	case 2:
		err = a.mix.MixStereo(clip.Data[0], clip.Data[1], lib.Music, lib.Beeps, clip.SampleRate)
	default:
		err = errors.Wrapf(audio.ErrUnsupportedChannels, "%d channels", clip.Channels())
	}
	if err != nil {
		return 0, errors.Wrapf(err, "mixing %s", srcPath)
	}

	if err := audnoise.SaveClip(targets, dstPath, clip); err != nil {
		return 0, errors.Wrap(err, "writing augmented file")
	}
	info, err := os.Stat(dstPath)
	if err != nil {
		return 0, errors.Wrapf(err, "inspecting %s", dstPath)
	}
	written := uint64(info.Size())

	log.WithFields(logrus.Fields{
		"file":     name,
		"rate":     clip.SampleRate,
		"channels": clip.Channels(),
		"duration": clip.Duration(),
		"size":     humanize.Bytes(written),
	}).Info("Augmented file")

	return written, nil
}

func decodeFile(path string, dec audio.Decoder) (*audio.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	clip, err := audio.ReadClip(src)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return clip, nil
}
