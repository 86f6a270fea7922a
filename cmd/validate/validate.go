/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for spineseq.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/spineseq/fs"
	"bennypowers.dev/spineseq/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Validate Spine skeleton files",
	Long: `Validate Spine skeleton .json files for structural correctness.

Checks that the skeleton and bones are present, that slots, skins and
animations have the expected shape, and that slot and bone names resolve.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return validateFiles(cmd.OutOrStdout(), cmd.ErrOrStderr(), fs.NewOSFileSystem(), args, quiet)
}

func validateFiles(stdout, stderr io.Writer, filesystem fs.FileSystem, files []string, quiet bool) error {
	hasErrors := false

	for _, file := range files {
		if !quiet {
			fmt.Fprintf(stdout, "Validating %s...\n", file)
		}

		data, err := filesystem.ReadFile(file)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading %s: %v\n", file, err)
			hasErrors = true
			continue
		}

		problems := validator.Validate(data, file)
		for _, problem := range problems {
			fmt.Fprintf(stderr, "  %s\n", problem.Error())
		}
		if len(problems) > 0 {
			hasErrors = true
			continue
		}

		if !quiet {
			fmt.Fprintln(stdout, "  ok")
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Fprintln(stdout, "All files valid.")
	}
	return nil
}
