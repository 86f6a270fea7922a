/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package imagesize reads image dimensions from PNG, GIF and JPEG headers
// without decoding pixel data.
package imagesize

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF header decoding
	_ "image/jpeg" // register JPEG header decoding
	_ "image/png"  // register PNG header decoding
	"io"

	"bennypowers.dev/spineseq/fs"
)

// MinHeaderSize is the shortest input that can hold a supported header.
const MinHeaderSize = 24

var (
	// ErrTruncated indicates fewer than MinHeaderSize bytes of input.
	ErrTruncated = errors.New("image header truncated")

	// ErrUnsupported indicates an unrecognized or undecodable image.
	ErrUnsupported = errors.New("unsupported image format")
)

// Size is the pixel size of an image.
type Size struct {
	Width  int
	Height int

	// Format is "png", "gif" or "jpeg".
	Format string
}

// String returns the size as WIDTHxHEIGHT.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Decode reads the image header from r.
func Decode(r io.Reader) (Size, error) {
	head := make([]byte, MinHeaderSize)
	n, err := io.ReadFull(r, head)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Size{}, fmt.Errorf("%w: %d bytes", ErrTruncated, n)
		}
		return Size{}, err
	}

	cfg, format, err := image.DecodeConfig(io.MultiReader(bytes.NewReader(head), r))
	if err != nil {
		return Size{}, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	return Size{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Of reads the image header from data.
func Of(data []byte) (Size, error) {
	return Decode(bytes.NewReader(data))
}

// File reads the header of the image at path.
func File(filesystem fs.FileSystem, path string) (Size, error) {
	f, err := filesystem.Open(path)
	if err != nil {
		return Size{}, err
	}
	defer f.Close()

	size, err := Decode(f)
	if err != nil {
		return Size{}, fmt.Errorf("%s: %w", path, err)
	}
	return size, nil
}
