/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package sequence

import "testing"

func TestAttachmentName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"walk_000.png", "walk_000"},
		{"fx/explosion/frame_01.png", "fx/explosion/frame_01"},
		{`fx\explosion\frame_01.png`, "fx/explosion/frame_01"},
		{"frame.final.png", "frame.final"},
		{"noext", "noext"},
		{".hidden", ".hidden"},
		{"..hidden.png", "..hidden"},
		{"dir.v2/frame", "dir.v2/frame"},
		{"dir/", "dir/"},
		{"trailing.", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := AttachmentName(tt.path); got != tt.want {
				t.Errorf("AttachmentName(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestUniqueSlotName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{name: "foo", existing: nil, want: "foo"},
		{name: "foo", existing: []string{"bar"}, want: "foo"},
		{name: "foo", existing: []string{"foo"}, want: "foo (1)"},
		{name: "foo", existing: []string{"foo", "foo (1)"}, want: "foo (2)"},
		{name: "foo", existing: []string{"foo", "foo (2)"}, want: "foo (1)"},
		{name: "foo (1)", existing: []string{"foo (1)"}, want: "foo (1) (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := UniqueSlotName(tt.name, tt.existing); got != tt.want {
				t.Errorf("UniqueSlotName(%q, %v) = %q, want %q", tt.name, tt.existing, got, tt.want)
			}
		})
	}
}

func TestRoundTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0"},
		{1.0 / 30, "0.0333"},
		{2.0 / 30, "0.0666"},
		{3.0 / 30, "0.1"},
		{29.0 / 30, "0.9666"},
		{1, "1"},
		{2.5, "2.5"},
		{0.99999, "0.9999"},
		{12, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := RoundTime(tt.seconds); got.String() != tt.want {
				t.Errorf("RoundTime(%v) = %s, want %s", tt.seconds, got, tt.want)
			}
		})
	}
}
