/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides project configuration for spineseq.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalidConfig indicates a config file with out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// Viper keys. They match the CLI flag names so flags, config and
// SPINESEQ_* environment variables share one namespace.
const (
	KeyOutput     = "output"
	KeyImages     = "images"
	KeyImagesRoot = "images_root"
	KeyMerge      = "merge"
	KeyBone       = "bone"
	KeyFramerate  = "framerate"
	KeyAnimation  = "animation"
	KeyColor      = "color"
	KeyQuiet      = "quiet"
)

// EnvPrefix is prepended to environment variable names.
const EnvPrefix = "SPINESEQ"

// Config holds per-project defaults for sequence merging.
// Zero values mean "not set".
type Config struct {
	// ImagesRoot is the directory image patterns and attachment names are relative to.
	ImagesRoot string `yaml:"imagesRoot" json:"imagesRoot" toml:"imagesRoot"`

	// Bone is the bone new slots attach to.
	Bone string `yaml:"bone" json:"bone" toml:"bone"`

	// Framerate is the number of images per second.
	Framerate float64 `yaml:"framerate" json:"framerate" toml:"framerate"`

	// Animation is the animation that receives new timelines.
	Animation string `yaml:"animation" json:"animation" toml:"animation"`

	// Color tints new slots (any CSS color).
	Color string `yaml:"color" json:"color" toml:"color"`
}

// Default returns a config with nothing set.
func Default() *Config {
	return &Config{}
}

// Validate checks that set values are in range.
func (c *Config) Validate() error {
	if c.Framerate < 0 {
		return fmt.Errorf("%w: framerate must not be negative, got %v", ErrInvalidConfig, c.Framerate)
	}
	return nil
}

// Apply installs the set values of c as defaults on v. Changed flags and
// environment variables still take precedence over them.
func (c *Config) Apply(v *viper.Viper) {
	if c.ImagesRoot != "" {
		v.SetDefault(KeyImagesRoot, c.ImagesRoot)
	}
	if c.Bone != "" {
		v.SetDefault(KeyBone, c.Bone)
	}
	if c.Framerate > 0 {
		v.SetDefault(KeyFramerate, c.Framerate)
	}
	if c.Animation != "" {
		v.SetDefault(KeyAnimation, c.Animation)
	}
	if c.Color != "" {
		v.SetDefault(KeyColor, c.Color)
	}
}
