/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package images expands image sequence patterns into ordered file lists.
package images

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/unicode/norm"

	spinefs "bennypowers.dev/spineseq/fs"
)

// Image is one frame of a sequence.
type Image struct {
	// Path is the filesystem path used to read the image.
	Path string

	// Name is the path relative to the images root, slash separated and
	// NFC normalized. Attachment names are derived from it.
	Name string
}

// Names returns the root-relative names of imgs in order, or nil if there
// are none.
func Names(imgs []Image) []string {
	if len(imgs) == 0 {
		return nil
	}
	names := make([]string, len(imgs))
	for i, img := range imgs {
		names[i] = img.Name
	}
	return names
}

// Expand resolves patterns against root. Patterns are expanded in the order
// given; matches of one pattern are in lexical walk order. Patterns support
// ** via doublestar. Hidden files and directories only match patterns whose
// last segment starts with a dot.
func Expand(filesystem spinefs.FileSystem, root string, patterns []string) ([]Image, error) {
	if root == "" {
		root = "."
	}

	var result []Image
	for _, pattern := range patterns {
		paths, err := expandPattern(filesystem, root, pattern)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			result = append(result, Image{Path: p, Name: relativeName(root, p)})
		}
	}
	return result, nil
}

// expandPattern expands a single pattern, which may or may not contain globs.
func expandPattern(filesystem spinefs.FileSystem, root, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(root, pattern)
	}

	if !containsGlob(pattern) {
		info, err := filesystem.Stat(pattern)
		if err != nil || info.IsDir() {
			return nil, nil
		}
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and collects matching files.
func expandGlob(filesystem spinefs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern, err := filepath.Rel(baseDir, pattern)
	if err != nil {
		return nil, err
	}
	relPattern = filepath.ToSlash(relPattern)
	matchHidden := strings.HasPrefix(filepath.Base(relPattern), ".")

	var matches []string

	err = fs.WalkDir(filesystem, baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if p != baseDir && !matchHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(baseDir, p)
		if err != nil {
			return nil
		}

		if matched, _ := doublestar.Match(relPattern, filepath.ToSlash(relPath)); matched {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// relativeName returns p relative to root in slash-separated NFC form.
// A relative root is resolved against the working directory when p is
// absolute.
func relativeName(root, p string) string {
	if filepath.IsAbs(p) && !filepath.IsAbs(root) {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		rel = p
	}
	return norm.NFC.String(filepath.ToSlash(rel))
}
