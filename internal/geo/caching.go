// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package geo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTimeout bounds a single remote lookup.
const DefaultTimeout = 5 * time.Second

// CachingGeocoder adds caching and a per-lookup timeout to another
// Geocoder. Concurrent lookups of the same name share one remote
// call. Only successful lookups are cached.
type CachingGeocoder struct {
	next    Geocoder
	cache   Cache
	timeout time.Duration
	group   singleflight.Group
}

// NewCachingGeocoder wraps next. A nil cache disables caching and a
// non-positive timeout selects DefaultTimeout.
func NewCachingGeocoder(next Geocoder, cache Cache, timeout time.Duration) *CachingGeocoder {
	if cache == nil {
		cache = NopCache{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CachingGeocoder{next: next, cache: cache, timeout: timeout}
}

// Locate resolves query, consulting the cache first. Cache failures are
// logged and treated as misses.
func (g *CachingGeocoder) Locate(ctx context.Context, query string) (Coordinates, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return Coordinates{}, fmt.Errorf("%w: empty query", ErrNotFound)
	}

	if c, ok, err := g.cache.Get(ctx, key); err != nil {
		slog.Warn("geocode cache read failed", "query", key, "error", err)
	} else if ok {
		return c, nil
	}

	v, err, shared := g.group.Do(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
		defer cancel()

		c, err := g.next.Locate(lookupCtx, query)
		if err != nil {
			return Coordinates{}, err
		}
		if err := g.cache.Set(lookupCtx, key, c); err != nil {
			slog.Warn("geocode cache write failed", "query", key, "error", err)
		}
		return c, nil
	})
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	slog.Debug("geocoded", "query", key, "shared", shared)
	return v.(Coordinates), nil
}
