// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ik5/audnoise"
	"github.com/ik5/audnoise/augment"
	"github.com/ik5/audnoise/mixer"
	"github.com/ik5/audnoise/noise"
)

var (
	augmentSeed      uint64
	augmentWorkers   int
	augmentKeepGoing bool
)

var augmentCmd = &cobra.Command{
	Use:   "augment <src> <dst> <noise> <music_alpha> <beep_alpha> <beep_frequency>",
	Short: "Mix music and beeps into every speech file of a directory",
	Long: fmt.Sprintf(`Mix background music and beep bursts into every file of <src> and
write the results under the same names to <dst>.

<noise> must contain a music/ and a beep/ directory. Music is scaled by
<music_alpha>, beeps by <beep_alpha>, and <beep_frequency> bursts are added
per second of speech.

Supported speech formats: %s. WAV output is mono 16-bit, FLAC
output keeps the channel layout. Other files are skipped.

Examples:
  noisify augment speech/ out/ noise/ 0.3 0.2 0.5
  noisify augment speech/ out/ noise/ 0.3 0.2 0.5 --seed 7
  noisify augment speech/ out/ noise/ 0.3 0.2 0.5 --workers 8 --keep-going
  noisify augment -- speech/ out/ noise/ -0.3 0.2 0.5`,
		strings.Join(augment.Supported(), ", ")),
	Args: cobra.ExactArgs(6),
	RunE: runAugment,
}

func init() {
	augmentCmd.Flags().Uint64Var(&augmentSeed, "seed", 0, "random seed (random when unset)")
	augmentCmd.Flags().IntVarP(&augmentWorkers, "workers", "w", 1, "files processed at once; more than 1 is not reproducible")
	augmentCmd.Flags().BoolVarP(&augmentKeepGoing, "keep-going", "k", false, "log failing files and continue")
}

func runAugment(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = &augmentSeed
	}
	if flags.Changed("workers") {
		cfg.Workers = augmentWorkers
	}
	if flags.Changed("keep-going") {
		cfg.KeepGoing = augmentKeepGoing
	}

	params, err := parseParams(args[3:6])
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := rand.Uint64()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	log := newLogger(cfg)
	log.WithField("seed", seed).Info("Starting augmentation")

	loader := noise.NewDirLoader(args[2], audnoise.NewRegistry(), log)
	a := augment.New(augment.Options{
		Source:    args[0],
		Target:    args[1],
		Params:    params,
		Workers:   cfg.Workers,
		KeepGoing: cfg.KeepGoing,
	}, noise.NewCache(loader), mixer.NewRand(seed), log)

	stats, err := a.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d processed, %d skipped, %d failed, %s written\n",
		stats.Processed, stats.Skipped, stats.Failed, humanize.Bytes(stats.BytesWritten))
	return nil
}

func parseParams(args []string) (mixer.Params, error) {
	names := []string{"music_alpha", "beep_alpha", "beep_frequency"}
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return mixer.Params{}, errors.Wrapf(err, "parsing %s", names[i])
		}
		values[i] = v
	}
	p := mixer.Params{MusicAlpha: values[0], BeepAlpha: values[1], BeepFrequency: values[2]}
	return p, p.Validate()
}
