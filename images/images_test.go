/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package images_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/spineseq/fs"
	"bennypowers.dev/spineseq/images"
	"bennypowers.dev/spineseq/internal/mapfs"
)

func newFS() *mapfs.MapFileSystem {
	mfs := mapfs.New()
	for _, p := range []string{
		"/assets/fx/a_002.png",
		"/assets/fx/a_000.png",
		"/assets/fx/a_001.png",
		"/assets/fx/b_000.png",
		"/assets/fx/.a_003.png",
		"/assets/fx/notes.txt",
		"/assets/fx/nested/c_000.png",
		"/assets/.cache/d_000.png",
		"/assets/hero.png",
	} {
		mfs.AddFile(p, "", 0644)
	}
	return mfs
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		patterns []string
		want     []string
	}{
		{
			name:     "star sorts lexically",
			root:     "/assets",
			patterns: []string{"fx/a_*.png"},
			want:     []string{"fx/a_000.png", "fx/a_001.png", "fx/a_002.png"},
		},
		{
			name:     "pattern order wins over name order",
			root:     "/assets",
			patterns: []string{"fx/b_*.png", "fx/a_*.png"},
			want:     []string{"fx/b_000.png", "fx/a_000.png", "fx/a_001.png", "fx/a_002.png"},
		},
		{
			name:     "doublestar skips hidden",
			root:     "/assets",
			patterns: []string{"**/*_000.png"},
			want:     []string{"fx/a_000.png", "fx/b_000.png", "fx/nested/c_000.png"},
		},
		{
			name:     "hidden pattern matches hidden files",
			root:     "/assets",
			patterns: []string{"fx/.*.png"},
			want:     []string{"fx/.a_003.png"},
		},
		{
			name:     "literal paths",
			root:     "/assets",
			patterns: []string{"hero.png", "missing.png", "fx"},
			want:     []string{"hero.png"},
		},
		{
			name:     "character class",
			root:     "/assets",
			patterns: []string{"fx/a_00[02].png"},
			want:     []string{"fx/a_000.png", "fx/a_002.png"},
		},
		{
			name:     "brace alternatives",
			root:     "/assets",
			patterns: []string{"fx/{a,b}_000.png"},
			want:     []string{"fx/a_000.png", "fx/b_000.png"},
		},
		{
			name:     "no matches",
			root:     "/assets",
			patterns: []string{"fx/*.jpg"},
			want:     nil,
		},
		{
			name:     "missing base directory",
			root:     "/assets",
			patterns: []string{"nope/*.png"},
			want:     nil,
		},
		{
			name:     "default root",
			root:     "",
			patterns: []string{"assets/*.png"},
			want:     []string{"assets/hero.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := images.Expand(newFS(), tt.root, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, images.Names(got))
		})
	}
}

func TestExpand_Paths(t *testing.T) {
	got, err := images.Expand(newFS(), "/assets", []string{"fx/a_00[01].png"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, images.Image{Path: "/assets/fx/a_000.png", Name: "fx/a_000.png"}, got[0])
	assert.Equal(t, images.Image{Path: "/assets/fx/a_001.png", Name: "fx/a_001.png"}, got[1])
}

func TestExpand_NormalizesNames(t *testing.T) {
	decomposed := "/assets/cafe\u0301/frame.png"
	mfs := mapfs.New()
	mfs.AddFile(decomposed, "", 0644)

	got, err := images.Expand(mfs, "/assets", []string{"*/*.png"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, decomposed, got[0].Path, "paths stay as found on disk")
	assert.Equal(t, "caf\u00e9/frame.png", got[0].Name)
}

func TestExpand_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "frames"), 0755))
	for _, name := range []string{"f_1.png", "f_0.png", "f_2.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, "frames", name), nil, 0644))
	}

	got, err := images.Expand(fs.NewOSFileSystem(), root, []string{"frames/*.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"frames/f_0.png", "frames/f_1.png"}, images.Names(got))
	assert.Equal(t, filepath.Join(root, "frames", "f_0.png"), got[0].Path)
}

func TestExpand_AbsolutePatternRelativeRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "frames"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "frames", "f_0.png"), nil, 0644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, err := images.Expand(fs.NewOSFileSystem(), ".", []string{filepath.Join(root, "frames", "*.png")})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "frames/f_0.png", got[0].Name)
	assert.Equal(t, filepath.Join(root, "frames", "f_0.png"), got[0].Path)
}

func TestNames_Empty(t *testing.T) {
	assert.Nil(t, images.Names(nil))
	assert.Nil(t, images.Names([]images.Image{}))
}
