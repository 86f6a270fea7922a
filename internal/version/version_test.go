/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func TestGet_Ldflags(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "v1.2.0"
	if got := Get(); got != "v1.2.0" {
		t.Errorf("Get() = %q, want %q", got, "v1.2.0")
	}
	if got := Info()["version"]; got != "v1.2.0" {
		t.Errorf("Info()[version] = %q, want %q", got, "v1.2.0")
	}
}

func TestShortCommit(t *testing.T) {
	tests := map[string]string{
		"0123456789abcdef": "0123456",
		"abc":              "abc",
		"":                 "",
	}
	for commit, want := range tests {
		if got := shortCommit(commit); got != want {
			t.Errorf("shortCommit(%q) = %q, want %q", commit, got, want)
		}
	}
}
