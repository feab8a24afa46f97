// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package geo resolves place names to map coordinates. The dashboard uses it
// to centre the country map; lookups go through a Geocoder so the remote
// service, its cache, and its timeout can all be swapped out.
package geo

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the service knows no location for a query.
var ErrNotFound = errors.New("location not found")

// Coordinates is a point on the map in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text place name.
type Geocoder interface {
	Locate(ctx context.Context, query string) (Coordinates, error)
}

// GeocoderFunc adapts a function to the Geocoder interface.
type GeocoderFunc func(ctx context.Context, query string) (Coordinates, error)

// Locate calls f.
func (f GeocoderFunc) Locate(ctx context.Context, query string) (Coordinates, error) {
	return f(ctx, query)
}
