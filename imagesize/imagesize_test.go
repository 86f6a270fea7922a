/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package imagesize_test

import (
	"errors"
	"testing"

	"bennypowers.dev/spineseq/imagesize"
	"bennypowers.dev/spineseq/internal/mapfs"
	"bennypowers.dev/spineseq/testutil"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		width  int
		height int
		format string
	}{
		{name: "png", data: testutil.PNG(t, 64, 32), width: 64, height: 32, format: "png"},
		{name: "gif", data: testutil.GIF(t, 7, 5), width: 7, height: 5, format: "gif"},
		{name: "jpeg", data: testutil.JPEG(t, 40, 30), width: 40, height: 30, format: "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := imagesize.Of(tt.data)
			if err != nil {
				t.Fatalf("Of() error = %v", err)
			}
			if size.Width != tt.width || size.Height != tt.height {
				t.Errorf("Of() = %s, want %dx%d", size, tt.width, tt.height)
			}
			if size.Format != tt.format {
				t.Errorf("Of() format = %q, want %q", size.Format, tt.format)
			}
		})
	}
}

func TestOf_Errors(t *testing.T) {
	png := testutil.PNG(t, 4, 4)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: imagesize.ErrTruncated},
		{name: "short", data: png[:imagesize.MinHeaderSize-1], want: imagesize.ErrTruncated},
		{name: "text", data: []byte("this is not an image, it is plain text"), want: imagesize.ErrUnsupported},
		{name: "bmp", data: append([]byte("BM"), make([]byte, 60)...), want: imagesize.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imagesize.Of(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Of() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSize_String(t *testing.T) {
	if got := (imagesize.Size{Width: 64, Height: 32}).String(); got != "64x32" {
		t.Errorf("String() = %q, want %q", got, "64x32")
	}
}

func TestFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddBytes("/frames/a.png", testutil.PNG(t, 12, 9), 0644)
	mfs.AddFile("/frames/notes.txt", "frame notes, not an image at all", 0644)

	size, err := imagesize.File(mfs, "/frames/a.png")
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if size.String() != "12x9" {
		t.Errorf("File() = %s, want 12x9", size)
	}

	if _, err := imagesize.File(mfs, "/frames/notes.txt"); !errors.Is(err, imagesize.ErrUnsupported) {
		t.Errorf("File() error = %v, want %v", err, imagesize.ErrUnsupported)
	}
	if _, err := imagesize.File(mfs, "/frames/missing.png"); err == nil {
		t.Error("File() expected error for missing file")
	}
}
