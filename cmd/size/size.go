/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package size provides the size command for spineseq.
package size

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/spineseq/fs"
	"bennypowers.dev/spineseq/imagesize"
	"bennypowers.dev/spineseq/internal/logger"
)

// Cmd is the size cobra command.
var Cmd = &cobra.Command{
	Use:   "size <images...>",
	Short: "Print image dimensions",
	Long: `Print the pixel size of PNG, GIF and JPEG images by reading their headers.

Examples:
  spineseq size frames/explosion_000.png
  spineseq size --format json frames/*.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

// entry is one line of json output.
type entry struct {
	Path   string `json:"path"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Format string `json:"format,omitempty"`
	Error  string `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q: expected text or json", format)
	}
	return printSizes(cmd.OutOrStdout(), fs.NewOSFileSystem(), args, format)
}

// printSizes writes the size of each path. Unreadable images are reported
// and make the command fail after every path has been tried.
func printSizes(w io.Writer, filesystem fs.FileSystem, paths []string, format string) error {
	entries := make([]entry, 0, len(paths))
	failed := 0

	for _, p := range paths {
		size, err := imagesize.File(filesystem, p)
		if err != nil {
			failed++
			entries = append(entries, entry{Path: p, Error: err.Error()})
			if format == "text" {
				logger.Warn("%s: %v", p, err)
			}
			continue
		}
		entries = append(entries, entry{Path: p, Width: size.Width, Height: size.Height, Format: size.Format})
		if format == "text" {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p, size, size.Format)
		}
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("error encoding sizes: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images could not be read", failed, len(paths))
	}
	return nil
}
