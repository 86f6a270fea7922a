/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for spineseq.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/spineseq/cmd/size"
	"bennypowers.dev/spineseq/cmd/validate"
	"bennypowers.dev/spineseq/cmd/version"
	"bennypowers.dev/spineseq/config"
	"bennypowers.dev/spineseq/fs"
	"bennypowers.dev/spineseq/images"
	"bennypowers.dev/spineseq/imagesize"
	"bennypowers.dev/spineseq/internal/logger"
	"bennypowers.dev/spineseq/sequence"
	"bennypowers.dev/spineseq/skeleton"
	"bennypowers.dev/spineseq/validator"
)

var rootCmd = &cobra.Command{
	Use:   "spineseq",
	Short: "Create a Spine skeleton from an image sequence",
	Long: `spineseq creates a Spine .json file from an image sequence.

Each image becomes a region attachment on a new slot, and an attachment
timeline steps through the images at a fixed framerate.

Examples:
  # New skeleton from a folder of frames
  spineseq --output explosion.json --images "fx/explosion_*.png"

  # Several patterns, one per --images
  spineseq -o fx.json -i "fx/{spark,smoke}_*.png" -i "fx/flash.png"

  # Add the sequence to an existing skeleton, on the "hand" bone
  spineseq --merge hero.json --bone hand --output hero.json \
    --images_root assets/images --images "sparkle/*.png"

Defaults for --images_root, --bone, --framerate, --animation and --color can
be set in .config/spineseq.{yaml,yml,json,toml} or with SPINESEQ_* environment
variables.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addMergeFlags(rootCmd.Flags())
	_ = rootCmd.MarkFlagRequired(config.KeyOutput)
	_ = rootCmd.MarkFlagRequired(config.KeyImages)

	rootCmd.PersistentFlags().BoolP(config.KeyQuiet, "q", false, "Only output errors")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print debug output")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool(config.KeyQuiet); quiet {
			logger.SetOutput(io.Discard)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	}

	rootCmd.AddCommand(size.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// addMergeFlags defines the flags of a merge run.
func addMergeFlags(flags *pflag.FlagSet) {
	defaults := sequence.DefaultOptions()

	flags.StringP(config.KeyOutput, "o", "", `Output .json file, e.g. "my_image_sequence.json"`)
	flags.StringArrayP(config.KeyImages, "i", nil, `Wildcard path to the image sequence, relative to --images_root, e.g. "my_images/*.png" (repeatable)`)
	flags.String(config.KeyImagesRoot, ".", "Root path used in Spine for images")
	flags.String(config.KeyMerge, "", "Existing Spine skeleton to add the sequence to (default: new skeleton)")
	flags.String(config.KeyBone, defaults.Bone, "Bone to attach the new slot to")
	flags.Float64(config.KeyFramerate, defaults.Framerate, "Images per second")
	flags.String(config.KeyAnimation, defaults.Animation, "Animation that receives the attachment timeline")
	flags.String(config.KeyColor, "", "Slot tint, any CSS color (default: untinted)")
}

// mergeOptions is the resolved input of one merge run.
type mergeOptions struct {
	Output     string
	Images     []string
	ImagesRoot string
	Merge      string
	Sequence   sequence.Options
}

// newViper layers flags over SPINESEQ_* environment variables over the
// project config found in dir. --images is read from the flags directly so
// brace patterns keep their commas.
func newViper(cmd *cobra.Command, filesystem fs.FileSystem, dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{
		config.KeyOutput,
		config.KeyImagesRoot,
		config.KeyMerge,
		config.KeyBone,
		config.KeyFramerate,
		config.KeyAnimation,
		config.KeyColor,
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", key, err)
		}
	}

	cfg, err := config.Load(filesystem, dir)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		logger.Debug("loaded project config from %s", dir)
		cfg.Apply(v)
	}
	return v, nil
}

func optionsFromViper(v *viper.Viper, flags *pflag.FlagSet) mergeOptions {
	patterns, _ := flags.GetStringArray(config.KeyImages)
	return mergeOptions{
		Output:     v.GetString(config.KeyOutput),
		Images:     patterns,
		ImagesRoot: v.GetString(config.KeyImagesRoot),
		Merge:      v.GetString(config.KeyMerge),
		Sequence: sequence.Options{
			Bone:      v.GetString(config.KeyBone),
			Framerate: v.GetFloat64(config.KeyFramerate),
			Animation: v.GetString(config.KeyAnimation),
			Color:     v.GetString(config.KeyColor),
		},
	}
}

func run(cmd *cobra.Command, args []string) error {
	start := time.Now()
	filesystem := fs.NewOSFileSystem()

	v, err := newViper(cmd, filesystem, ".")
	if err != nil {
		return err
	}

	err = mergeSequence(filesystem, optionsFromViper(v, cmd.Flags()))
	if errors.Is(err, sequence.ErrNoImages) {
		// The diagnostic is already printed; only the exit status remains.
		cmd.SilenceErrors = true
		return err
	}
	if err != nil {
		return err
	}

	logger.Info("--- %.5f seconds ---", time.Since(start).Seconds())
	return nil
}

// mergeSequence expands the image patterns, sniffs the frame size and writes
// the merged skeleton to opts.Output. Nothing is written on error.
func mergeSequence(filesystem fs.FileSystem, opts mergeOptions) error {
	logger.Info("")

	imgs, err := images.Expand(filesystem, opts.ImagesRoot, opts.Images)
	if err != nil {
		return fmt.Errorf("error expanding images: %w", err)
	}
	if len(imgs) == 0 {
		logger.Info(" - No images to process!")
		logger.Info("No images found in supplied path.")
		logger.Info("Please verify --images and --images_root arguments are correct.")
		logger.Info("")
		return sequence.ErrNoImages
	}
	logger.Info(" - %d images found.", len(imgs))

	frame, err := imagesize.File(filesystem, imgs[0].Path)
	if err != nil {
		return fmt.Errorf("error reading size of %s: %w", imgs[0].Path, err)
	}
	logger.Debug("frame size %s (%s) from %s", frame, frame.Format, imgs[0].Path)

	var doc *skeleton.Document
	if opts.Merge != "" {
		doc, err = loadMergeTarget(filesystem, opts.Merge)
		if err != nil {
			return err
		}
	}

	doc, err = sequence.Merge(doc, images.Names(imgs), frame.Width, frame.Height, opts.Sequence)
	if err != nil {
		return err
	}

	if err := skeleton.Save(filesystem, opts.Output, doc); err != nil {
		return fmt.Errorf("error writing %s: %w", opts.Output, err)
	}
	logger.Info(" - Saved new json file: %s", opts.Output)
	logger.Info("")
	return nil
}

// loadMergeTarget reads an existing skeleton, warning about structural
// problems and top-level keys that will not be written back.
func loadMergeTarget(filesystem fs.FileSystem, path string) (*skeleton.Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	for _, problem := range validator.Validate(data, path) {
		logger.Warn("%s", problem.Error())
	}

	doc, err := skeleton.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path

	for _, key := range doc.Dropped() {
		logger.Warn("%s: top-level key %q is not written to the output", path, key)
	}
	return doc, nil
}
