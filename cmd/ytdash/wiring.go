// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets"
	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
	"github.com/DJBartoli/YouTube-Science-Project/internal/config"
	"github.com/DJBartoli/YouTube-Science-Project/internal/geo"
	ytlog "github.com/DJBartoli/YouTube-Science-Project/internal/log"
)

// loadConfig resolves defaults, the config file and the flags, then
// validates the result.
func loadConfig(f appFlags) (config.Config, error) {
	file, path, err := config.Load(f.ConfigDir)
	if err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "ytdash: %v", err)
	}
	if path != "" {
		slog.Debug("loaded config", "path", path)
	}

	cfg := config.Resolve(file, f.config())
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, exitError(ExitInvalidArgs, "ytdash: %v", err)
	}

	// The verbosity flags win over the file's log level.
	if !verbose && !quiet && file.LogLevel != "" {
		ytlog.SetupWriter(os.Stderr, ytlog.ParseLevel(file.LogLevel))
	}
	return cfg, nil
}

// loadStore reads the data directory named by cfg.
func loadStore(ctx context.Context, cfg config.Config) (*assets.Store, error) {
	store, err := assets.Load(ctx, cfg.DataDir, assets.WithFileSystem(cmdFS))
	if err != nil {
		return nil, exitError(ExitAssetFailure, "ytdash: %v", err)
	}
	return store, nil
}

// buildGeocoder assembles the Nominatim client behind the configured cache.
// The returned cleanup releases the cache connection.
func buildGeocoder(ctx context.Context, cfg config.Config) (geo.Geocoder, func()) {
	client := geo.NewClient(
		geo.WithBaseURL(cfg.Geocoder.BaseURL),
		geo.WithUserAgent(cfg.Geocoder.UserAgent),
	)

	cache, cleanup := buildCache(ctx, cfg)
	return geo.NewCachingGeocoder(client, cache, cfg.GeocoderTimeout()), cleanup
}

func buildCache(ctx context.Context, cfg config.Config) (geo.Cache, func()) {
	nop := func() {}
	switch cfg.Cache.Kind {
	case config.CacheNone:
		return geo.NopCache{}, nop
	case config.CacheRedis:
		rdb, err := geo.ConnectRedis(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisDB)
		if err != nil {
			slog.Warn("redis unavailable, using in-memory geocode cache", "addr", cfg.Cache.RedisAddr, "error", err)
			return geo.NewMemoryCache(cfg.CacheTTL()), nop
		}
		rc := geo.NewRedisCache(rdb, cfg.CacheTTL())
		return rc, func() {
			if err := rc.Close(); err != nil {
				slog.Warn("close redis", "error", err)
			}
		}
	default:
		return geo.NewMemoryCache(cfg.CacheTTL()), nop
	}
}

// buildEnv loads the store and wires the binder environment. Static charts
// are computed up front; a failure there is logged and left to the binder.
func buildEnv(ctx context.Context, cfg config.Config) (*binder.Env, func(), error) {
	store, err := loadStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	geocoder, cleanup := buildGeocoder(ctx, cfg)

	env := binder.NewEnv(store, geocoder)
	if err := env.Warm(); err != nil {
		slog.Warn("precompute charts", "error", err)
	}
	slog.Info("data loaded", "dir", cfg.DataDir, "problems", countProblems(store))
	return env, cleanup, nil
}

func countProblems(store *assets.Store) int {
	n := 0
	for _, e := range store.Inventory() {
		if e.Status() != assets.StatusOK {
			n++
		}
	}
	return n
}

// describe formats cfg for log lines.
func describe(cfg config.Config) string {
	return fmt.Sprintf("data=%s listen=%s cache=%s", cfg.DataDir, cfg.Listen, cfg.Cache.Kind)
}
