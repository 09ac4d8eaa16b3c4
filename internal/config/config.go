// SPDX-License-Identifier: EPL-2.0

// Package config holds the noisify run settings and loads them from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audnoise/features"
)

// Config is the file form of a noisify run. Command line flags override it.
// Mixer gains come from the augment arguments only.
type Config struct {
	// Seed makes a sequential run reproducible. Nil picks a random seed.
	Seed      *uint64        `yaml:"seed,omitempty"`
	Workers   int            `yaml:"workers"`
	KeepGoing bool           `yaml:"keep_going"`
	LogLevel  string         `yaml:"log_level"`
	Features  FeaturesConfig `yaml:"features"`
}

// FeaturesConfig mirrors features.MelExtractor.
type FeaturesConfig struct {
	FrameSeconds float64 `yaml:"frame_seconds"`
	NumMFCC      int     `yaml:"num_mfcc"`
	NumMels      int     `yaml:"num_mels"`
	FFTSize      int     `yaml:"fft_size"`
	HopSize      int     `yaml:"hop_size"`
}

// Default returns a sequential run at info level with the standard feature
// front end.
func Default() *Config {
	e := features.NewMelExtractor()
	return &Config{
		Workers:  1,
		LogLevel: logrus.InfoLevel.String(),
		Features: FeaturesConfig{
			FrameSeconds: e.FrameSeconds,
			NumMFCC:      e.NumMFCC,
			NumMels:      e.NumMels,
			FFTSize:      e.FFTSize,
			HopSize:      e.HopSize,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if err := c.Extractor().Validate(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Extractor builds the feature extractor the config describes.
func (c *Config) Extractor() *features.MelExtractor {
	return &features.MelExtractor{
		FrameSeconds: c.Features.FrameSeconds,
		NumMFCC:      c.Features.NumMFCC,
		NumMels:      c.Features.NumMels,
		FFTSize:      c.Features.FFTSize,
		HopSize:      c.Features.HopSize,
	}
}
