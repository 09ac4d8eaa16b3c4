// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/audio"
	"github.com/ik5/audnoise/internal/fixture"
	"github.com/ik5/audnoise/mixer"
)

// run executes the command tree with fresh flag values. Flags are package
// state, so these tests do not run in parallel.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configFile, verbose = "", false
	augmentSeed, augmentWorkers, augmentKeepGoing = 0, 1, false
	featuresFrame, featuresOutput = 0.5, ""
	convertRate = 8000
	for _, f := range []string{"seed", "workers", "keep-going"} {
		augmentCmd.Flags().Lookup(f).Changed = false
	}
	for _, f := range []string{"frame", "output"} {
		featuresCmd.Flags().Lookup(f).Changed = false
	}

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func tone(n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = 0.2
		if i%2 == 1 {
			s[i] = -0.2
		}
	}
	return s
}

func TestFeatures(t *testing.T) {
	dir := t.TempDir()
	wavPath := filepath.Join(dir, "speech.wav")
	fixture.WriteWAV(t, wavPath, 8000, 1, tone(12000))

	out, err := run(t, "features", wavPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "mfcc_0,mfcc_1,"))
	assert.Len(t, strings.Split(lines[1], ","), 148)

	csvPath := filepath.Join(dir, "speech.csv")
	out, err = run(t, "features", wavPath, "--frame", "0.25", "-o", csvPath)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 7)
}

func TestFeatures_Errors(t *testing.T) {
	_, err := run(t, "features")
	assert.Error(t, err)

	_, err = run(t, "features", filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)

	_, err = run(t, "features", "x.wav", "--frame", "0")
	assert.Error(t, err)
}

func TestAugment(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	dst := filepath.Join(root, "dst")
	noiseDir := filepath.Join(root, "noise")

	fixture.WriteWAV(t, filepath.Join(src, "a.wav"), 8000, 1, tone(8000))
	fixture.WriteWAV(t, filepath.Join(noiseDir, "music", "m.wav"), 8000, 1, fixture.Constant(4000, 0.1))
	fixture.WriteWAV(t, filepath.Join(noiseDir, "beep", "b.wav"), 8000, 1, fixture.Constant(100, 0.1))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte("hi"), 0o644))

	cfgPath := filepath.Join(root, "noisify.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed: 3\nlog_level: error\n"), 0o644))

	out, err := run(t, "augment", src, dst, noiseDir, "0.5", "0.3", "2", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1 processed, 1 skipped, 0 failed")

	first, err := os.ReadFile(filepath.Join(dst, "a.wav"))
	require.NoError(t, err)

	_, err = run(t, "augment", src, dst, noiseDir, "0.5", "0.3", "2", "--seed", "3", "-w", "1")
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dst, "a.wav"))
	require.NoError(t, err)
	assert.Equal(t, first, second, "same seed must give the same output")
}

func TestAugment_Errors(t *testing.T) {
	root := t.TempDir()

	_, err := run(t, "augment", root, root, root, "0.5", "0.3")
	assert.Error(t, err, "missing argument")

	_, err = run(t, "augment", root, root, root, "loud", "0.3", "1")
	assert.ErrorContains(t, err, "music_alpha")

	_, err = run(t, "augment", "--", root, root, root, "0.5", "0.3", "-1")
	assert.ErrorIs(t, err, mixer.ErrInvalidParams)

	_, err = run(t, "augment", root, root, root, "0.5", "0.3", "1", "--workers", "0")
	assert.ErrorContains(t, err, "workers")

	_, err = run(t, "augment", root, root, root, "0.5", "0.3", "1", "--config", filepath.Join(root, "none.yaml"))
	assert.Error(t, err)

	cfgPath := filepath.Join(root, "gains.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mixer:\n  music_alpha: 0.9\n"), 0o644))
	_, err = run(t, "augment", root, root, root, "0.5", "0.3", "1", "--config", cfgPath)
	assert.ErrorContains(t, err, "mixer")
}

func TestParseParams(t *testing.T) {
	p, err := parseParams([]string{"0.25", "-0.5", "3"})
	require.NoError(t, err)
	assert.Equal(t, mixer.Params{MusicAlpha: 0.25, BeepAlpha: -0.5, BeepFrequency: 3}, p)

	_, err = parseParams([]string{"0.25", "x", "3"})
	assert.ErrorContains(t, err, "beep_alpha")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "stereo.wav")
	fixture.WriteWAV(t, in, 16000, 2, tone(32000))

	out, err := run(t, "convert", in, filepath.Join(dir, "mono.flac"))
	require.NoError(t, err)
	assert.Contains(t, out, "mono.flac (1s)")

	clip, err := audnoise.LoadClip(audnoise.NewRegistry(), filepath.Join(dir, "mono.flac"))
	require.NoError(t, err)
	assert.Equal(t, 8000, clip.SampleRate)
	assert.Equal(t, 1, clip.Channels())
	assert.Equal(t, 8000, clip.Len())

	_, err = run(t, "convert", filepath.Join(dir, "x.txt"), filepath.Join(dir, "y.wav"))
	assert.ErrorIs(t, err, audnoise.ErrUnknownFormat)

	_, err = run(t, "convert", in, filepath.Join(dir, "y.mp3"))
	assert.ErrorIs(t, err, audnoise.ErrUnknownFormat)

	_, err = run(t, "convert", in, filepath.Join(dir, "y.wav"), "--rate", "0")
	assert.ErrorIs(t, err, audio.ErrInvalidSampleRate)
}
