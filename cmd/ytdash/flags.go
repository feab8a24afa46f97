// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/pflag"

	"github.com/DJBartoli/YouTube-Science-Project/internal/config"
)

// appFlags holds the flags shared by every command that loads the data
// directory. Zero values defer to the config file and then the defaults.
type appFlags struct {
	ConfigDir   string
	DataDir     string
	Listen      string
	GeocoderURL string
	CacheKind   string
	RedisAddr   string
	RedisDB     int
}

// app is the shared flag state. Commands add appFlagSet to their own flags.
var app appFlags

// appFlagSet builds the shared flag set bound to f.
func appFlagSet(f *appFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("app", pflag.ContinueOnError)
	fs.StringVar(&f.ConfigDir, "config-dir", ".", "directory holding .ytdash.yaml or .ytdash.toml")
	fs.StringVarP(&f.DataDir, "data-dir", "d", "", "directory holding the precomputed data files")
	fs.StringVar(&f.GeocoderURL, "geocoder-url", "", "base URL of the Nominatim-compatible geocoder")
	fs.StringVar(&f.CacheKind, "cache", "", "geocode cache: memory, redis, or none")
	fs.StringVar(&f.RedisAddr, "redis-addr", "", "redis address when --cache=redis")
	fs.IntVar(&f.RedisDB, "redis-db", 0, "redis database number when --cache=redis")
	return fs
}

// config returns the flag values as a config overlay.
func (f appFlags) config() config.Config {
	return config.Config{
		DataDir: f.DataDir,
		Listen:  f.Listen,
		Geocoder: config.GeocoderConfig{
			BaseURL: f.GeocoderURL,
		},
		Cache: config.CacheConfig{
			Kind:      f.CacheKind,
			RedisAddr: f.RedisAddr,
			RedisDB:   f.RedisDB,
		},
	}
}
