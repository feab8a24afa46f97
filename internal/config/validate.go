// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.LogLevel != "" && !logLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, fmt.Sprintf("log_level: invalid value %q (must be debug, info, warn, or error)", cfg.LogLevel))
	}

	if cfg.Listen != "" {
		if _, _, err := net.SplitHostPort(cfg.Listen); err != nil {
			errs = append(errs, fmt.Sprintf("listen: %v", err))
		}
	}

	if cfg.Geocoder.BaseURL != "" {
		u, err := url.Parse(cfg.Geocoder.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("geocoder.base_url: must be an http(s) URL, got %q", cfg.Geocoder.BaseURL))
		}
	}
	if msg := checkDuration(cfg.Geocoder.Timeout, false); msg != "" {
		errs = append(errs, "geocoder.timeout: "+msg)
	}

	switch cfg.Cache.Kind {
	case "", CacheMemory, CacheNone:
	case CacheRedis:
		if cfg.Cache.RedisAddr == "" {
			errs = append(errs, "cache.redis_addr: required when cache.kind is redis")
		}
	default:
		errs = append(errs, fmt.Sprintf("cache.kind: invalid value %q (must be memory, redis, or none)", cfg.Cache.Kind))
	}
	if msg := checkDuration(cfg.Cache.TTL, true); msg != "" {
		errs = append(errs, "cache.ttl: "+msg)
	}
	if cfg.Cache.RedisDB < 0 {
		errs = append(errs, fmt.Sprintf("cache.redis_db: must be non-negative, got %d", cfg.Cache.RedisDB))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func checkDuration(value string, allowZero bool) string {
	if value == "" {
		return ""
	}
	d, err := time.ParseDuration(value)
	switch {
	case err != nil:
		return fmt.Sprintf("invalid duration %q", value)
	case d < 0, d == 0 && !allowZero:
		return fmt.Sprintf("must be positive, got %s", value)
	}
	return ""
}
