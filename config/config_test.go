/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/spineseq/config"
	"bennypowers.dev/spineseq/internal/mapfs"
	"bennypowers.dev/spineseq/testutil"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		fixture string
		want    config.Config
	}{
		{
			fixture: "yaml",
			want: config.Config{
				ImagesRoot: "assets/images",
				Bone:       "hand",
				Framerate:  24,
				Animation:  "attack",
				Color:      "#ff8000",
			},
		},
		{
			fixture: "json",
			want:    config.Config{ImagesRoot: "art", Bone: "weapon", Framerate: 12.5},
		},
		{
			fixture: "toml",
			want:    config.Config{ImagesRoot: "sprites", Animation: "idle", Framerate: 60},
		},
		{
			fixture: "priority",
			want:    config.Config{Bone: "from-yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, "fixtures/config/"+tt.fixture, "/project")
			cfg, err := config.Load(mfs, "/project")
			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), "/project")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	assert.Equal(t, config.Default(), config.LoadOrDefault(mapfs.New(), "/project"))
}

func TestLoad_Invalid(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/invalid", "/project")
	_, err := config.Load(mfs, "/project")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want %v", err, config.ErrInvalidConfig)
	}

	assert.Equal(t, config.Default(), config.LoadOrDefault(mfs, "/project"))
}

func TestLoad_Malformed(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/spineseq.toml", "bone = ", 0644)
	_, err := config.Load(mfs, "/project")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	cfg := &config.Config{Bone: "hand", Framerate: 24}

	v := viper.New()
	v.SetDefault(config.KeyBone, "root")
	v.SetDefault(config.KeyAnimation, "animation")
	cfg.Apply(v)

	assert.Equal(t, "hand", v.GetString(config.KeyBone))
	assert.Equal(t, 24.0, v.GetFloat64(config.KeyFramerate))
	assert.Equal(t, "animation", v.GetString(config.KeyAnimation), "unset values leave defaults alone")
	assert.False(t, v.IsSet(config.KeyColor))

	v.Set(config.KeyBone, "flag")
	assert.Equal(t, "flag", v.GetString(config.KeyBone), "explicit values win over config")
}

func TestApply_Environment(t *testing.T) {
	t.Setenv("SPINESEQ_BONE", "from-env")

	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	(&config.Config{Bone: "from-config", Animation: "walk"}).Apply(v)

	assert.Equal(t, "from-env", v.GetString(config.KeyBone))
	assert.Equal(t, "walk", v.GetString(config.KeyAnimation))
}
