// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/audio"
)

var convertRate int

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Fold an audio file to mono at a fixed sample rate",
	Long: `Decode any supported file, average its channels, resample it and write
it as WAV or FLAC depending on the output extension. Handy for preparing a
noise library ahead of time.

Examples:
  noisify convert jingle.mp3 noise/music/jingle.wav
  noisify convert beep.ogg noise/beep/beep.flac --rate 16000`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().IntVarP(&convertRate, "rate", "r", 8000, "output sample rate in Hz")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]

	registry := audnoise.NewRegistry()
	dec, ok := registry.Get(filepath.Ext(inPath))
	if !ok {
		return errors.Wrap(audnoise.ErrUnknownFormat, inPath)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return errors.Wrapf(err, "decoding %s", inPath)
	}

	samples, err := audnoise.ResampleToMono(src, convertRate)
	if err != nil {
		return errors.Wrapf(err, "converting %s", inPath)
	}

	clip := &audio.Clip{SampleRate: convertRate, Data: [][]float32{samples}}
	if err := audnoise.SaveClip(registry, outPath, clip); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s (%s)\n", outPath, clip.Duration())
	return nil
}
