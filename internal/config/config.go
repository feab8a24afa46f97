// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package config handles .ytdash.yaml and .ytdash.toml configuration files.
package config

import (
	"time"

	"github.com/DJBartoli/YouTube-Science-Project/internal/geo"
)

// Config represents the contents of a ytdash config file.
type Config struct {
	DataDir  string         `yaml:"data_dir,omitempty" toml:"data_dir,omitempty"`
	Listen   string         `yaml:"listen,omitempty" toml:"listen,omitempty"`
	LogLevel string         `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	Geocoder GeocoderConfig `yaml:"geocoder,omitempty" toml:"geocoder,omitempty"`
	Cache    CacheConfig    `yaml:"cache,omitempty" toml:"cache,omitempty"`
}

// GeocoderConfig configures the Nominatim client used by the country map.
type GeocoderConfig struct {
	BaseURL   string `yaml:"base_url,omitempty" toml:"base_url,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty" toml:"user_agent,omitempty"`
	// Timeout is a Go duration string such as "5s".
	Timeout string `yaml:"timeout,omitempty" toml:"timeout,omitempty"`
}

// CacheConfig selects where geocode results are kept.
type CacheConfig struct {
	Kind      string `yaml:"kind,omitempty" toml:"kind,omitempty"`
	TTL       string `yaml:"ttl,omitempty" toml:"ttl,omitempty"`
	RedisAddr string `yaml:"redis_addr,omitempty" toml:"redis_addr,omitempty"`
	RedisDB   int    `yaml:"redis_db,omitempty" toml:"redis_db,omitempty"`
}

// Cache kinds.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Config file names, in lookup order.
const (
	FileName     = ".ytdash.yaml"
	TOMLFileName = ".ytdash.toml"
)

// Defaults returns the configuration used when neither file nor flags set a
// value.
func Defaults() Config {
	return Config{
		DataDir:  "data",
		Listen:   ":8050",
		LogLevel: "info",
		Geocoder: GeocoderConfig{
			BaseURL:   geo.DefaultBaseURL,
			UserAgent: geo.DefaultUserAgent,
			Timeout:   geo.DefaultTimeout.String(),
		},
		Cache: CacheConfig{
			Kind:      CacheMemory,
			TTL:       "24h",
			RedisAddr: "localhost:6379",
		},
	}
}

// GeocoderTimeout returns the parsed geocoder timeout, or the default when
// unset or malformed.
func (c Config) GeocoderTimeout() time.Duration {
	return parseDuration(c.Geocoder.Timeout, geo.DefaultTimeout)
}

// CacheTTL returns the parsed cache TTL. Zero means entries never expire.
func (c Config) CacheTTL() time.Duration {
	return parseDuration(c.Cache.TTL, 0)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
