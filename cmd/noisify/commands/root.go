// SPDX-License-Identifier: EPL-2.0

// Package commands implements the noisify command tree.
package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audnoise/internal/config"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "noisify",
	Short: "Speech augmentation and feature extraction",
	Long: `noisify mixes background music and short beep bursts into speech
recordings and extracts per-frame MFCC and mel band features.

Settings may come from a YAML file given with --config:
  seed: 42
  workers: 4
  keep_going: false
  log_level: info
  features:
    frame_seconds: 0.5
    num_mfcc: 20
    num_mels: 128
    fft_size: 2048
    hop_size: 512

Flags override the file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(augmentCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(convertCmd)
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig returns the --config file over the defaults, or the defaults
// alone.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

func newLogger(cfg *config.Config) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(cfg.Level())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return logrus.NewEntry(log).WithField("cmd", "noisify")
}
