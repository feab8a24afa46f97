// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package config

// Merge overlays over on base. Non-zero fields of over win; zero-value
// fields fall through to base.
func Merge(base, over Config) Config {
	result := base

	pick(&result.DataDir, over.DataDir)
	pick(&result.Listen, over.Listen)
	pick(&result.LogLevel, over.LogLevel)

	pick(&result.Geocoder.BaseURL, over.Geocoder.BaseURL)
	pick(&result.Geocoder.UserAgent, over.Geocoder.UserAgent)
	pick(&result.Geocoder.Timeout, over.Geocoder.Timeout)

	pick(&result.Cache.Kind, over.Cache.Kind)
	pick(&result.Cache.TTL, over.Cache.TTL)
	pick(&result.Cache.RedisAddr, over.Cache.RedisAddr)
	if over.Cache.RedisDB != 0 {
		result.Cache.RedisDB = over.Cache.RedisDB
	}

	return result
}

// Resolve layers the defaults, the file config and the CLI flags, in
// increasing precedence.
func Resolve(file *Config, cli Config) Config {
	cfg := Defaults()
	if file != nil {
		cfg = Merge(cfg, *file)
	}
	return Merge(cfg, cli)
}

func pick(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
