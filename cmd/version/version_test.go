/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newCmd(out *bytes.Buffer, format string) *cobra.Command {
	cmd := &cobra.Command{RunE: run}
	cmd.Flags().StringP("format", "f", "text", "")
	_ = cmd.Flags().Set("format", format)
	cmd.SetOut(out)
	return cmd
}

func TestRun(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		if err := run(newCmd(&out, "text"), nil); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		if !strings.HasPrefix(out.String(), "spineseq ") {
			t.Errorf("output = %q", out.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		if err := run(newCmd(&out, "json"), nil); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		var info map[string]string
		if err := json.Unmarshal(out.Bytes(), &info); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if info["version"] == "" {
			t.Errorf("missing version in %v", info)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		var out bytes.Buffer
		if err := run(newCmd(&out, "xml"), nil); err == nil {
			t.Error("run() expected error")
		}
	})
}
