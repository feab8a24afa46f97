// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_OverWins(t *testing.T) {
	base := Config{DataDir: "base", Listen: ":1", Cache: CacheConfig{Kind: CacheMemory, RedisDB: 1}}
	over := Config{DataDir: "over", Cache: CacheConfig{RedisDB: 4}}

	got := Merge(base, over)
	assert.Equal(t, "over", got.DataDir)
	assert.Equal(t, ":1", got.Listen)
	assert.Equal(t, CacheMemory, got.Cache.Kind)
	assert.Equal(t, 4, got.Cache.RedisDB)
}

func TestMerge_ZeroOverKeepsBase(t *testing.T) {
	base := Defaults()
	assert.Equal(t, base, Merge(base, Config{}))
}

func TestResolve_Precedence(t *testing.T) {
	file := &Config{DataDir: "file-data", Listen: ":9000", Geocoder: GeocoderConfig{UserAgent: "file-agent"}}
	cli := Config{DataDir: "cli-data"}

	got := Resolve(file, cli)
	assert.Equal(t, "cli-data", got.DataDir)
	assert.Equal(t, ":9000", got.Listen)
	assert.Equal(t, "file-agent", got.Geocoder.UserAgent)
	assert.Equal(t, Defaults().Geocoder.BaseURL, got.Geocoder.BaseURL)
	assert.Equal(t, CacheMemory, got.Cache.Kind)
}

func TestResolve_NilFile(t *testing.T) {
	assert.Equal(t, Defaults(), Resolve(nil, Config{}))
}
