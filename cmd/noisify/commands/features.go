// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	featuresFrame  float64
	featuresOutput string
)

var featuresCmd = &cobra.Command{
	Use:   "features <file>",
	Short: "Write per-frame MFCC and mel features as CSV",
	Long: `Decode an audio file, fold it to mono and print one CSV row per frame:
the mean MFCCs (mfcc_0..) followed by the mean mel band powers (mel_0..).

Examples:
  noisify features speech.wav
  noisify features speech.wav --frame 0.25 -o speech.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runFeatures,
}

func init() {
	featuresCmd.Flags().Float64Var(&featuresFrame, "frame", 0.5, "frame duration in seconds")
	featuresCmd.Flags().StringVarP(&featuresOutput, "output", "o", "", "output CSV file (default stdout)")
}

func runFeatures(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("frame") {
		cfg.Features.FrameSeconds = featuresFrame
	}

	e := cfg.Extractor()
	if err := e.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg).WithField("file", args[0])
	table, err := e.ExtractFeatures(args[0])
	if err != nil {
		return err
	}
	log.WithField("frames", table.Len()).Debug("Extracted features")

	if featuresOutput == "" {
		return table.WriteCSV(cmd.OutOrStdout())
	}

	f, err := os.Create(featuresOutput)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := table.WriteCSV(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", featuresOutput)
	}
	return f.Close()
}
