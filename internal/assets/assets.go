// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package assets loads the static tables the dashboard draws from. Every
// table is read once by Load and kept in an immutable Store that is safe to
// share between request goroutines.
package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/DJBartoli/YouTube-Science-Project/internal/testable"
)

// ErrMissingAsset is returned when a table or file a chart needs is not
// present in the data directory, or was never part of the asset mapping.
var ErrMissingAsset = errors.New("missing asset")

// ErrInvalidAsset is returned when a file exists but does not match its
// expected schema.
var ErrInvalidAsset = errors.New("invalid asset")

// Table keys, as reported by Inventory.
const (
	KeyWeekly          = "weekly"
	KeyCategories      = "categories"
	KeyDurationSummary = "duration/summary"
	KeyDurationBoxplot = "duration/boxplot"
	KeyGeoJSON         = "geojson"

	distributionPrefix = "distribution/"
	videoLengthPrefix  = "video-length/"
	commentsPrefix     = "comments/"
)

// DistributionKey returns the inventory key of a country's distribution table.
func DistributionKey(country string) string { return distributionPrefix + country }

// VideoLengthKey returns the inventory key of a video-length dataset.
func VideoLengthKey(dataset string) string { return videoLengthPrefix + dataset }

// CommentsKey returns the inventory key of a channel's comment table.
func CommentsKey(channel string) string { return commentsPrefix + channel }

// Store holds every loaded table. The zero value is not usable; call Load.
type Store struct {
	root string
	fs   testable.FileSystem

	tables     map[string]dataframe.DataFrame
	paths      map[string]string
	failures   map[string]error
	categories []string
	geojson    json.RawMessage
	keywords   KeywordIndex
}

// Root returns the data directory the store was loaded from.
func (s *Store) Root() string { return s.root }

// table returns a copy of the named table, or the error recorded for it at
// load time.
func (s *Store) table(key string) (dataframe.DataFrame, error) {
	if err, ok := s.failures[key]; ok {
		return dataframe.DataFrame{}, err
	}
	df, ok := s.tables[key]
	if !ok {
		return dataframe.DataFrame{}, fmt.Errorf("%w: table %q", ErrMissingAsset, key)
	}
	return df.Copy(), nil
}

// Distribution returns the category-distribution table of one country.
func (s *Store) Distribution(country string) (dataframe.DataFrame, error) {
	return s.table(DistributionKey(country))
}

// DistributionCountries returns the country codes that have a distribution
// table, sorted.
func (s *Store) DistributionCountries() []string {
	var out []string
	for key := range s.tables {
		if strings.HasPrefix(key, distributionPrefix) {
			out = append(out, strings.TrimPrefix(key, distributionPrefix))
		}
	}
	sort.Strings(out)
	return out
}

// Weekly returns every country's distribution rows concatenated, with an
// added Country column.
func (s *Store) Weekly() (dataframe.DataFrame, error) {
	return s.table(KeyWeekly)
}

// VideoLength returns the original or filtered video-length table.
func (s *Store) VideoLength(dataset string) (dataframe.DataFrame, error) {
	return s.table(VideoLengthKey(dataset))
}

// Comments returns a channel's comment-development table.
func (s *Store) Comments(channel string) (dataframe.DataFrame, error) {
	return s.table(CommentsKey(channel))
}

// DurationSummary returns the per-video interaction table keyed by bucket.
func (s *Store) DurationSummary() (dataframe.DataFrame, error) {
	return s.table(KeyDurationSummary)
}

// DurationBoxplot returns the outlier-filtered interaction table keyed by
// length bucket.
func (s *Store) DurationBoxplot() (dataframe.DataFrame, error) {
	return s.table(KeyDurationBoxplot)
}

// Categories returns the selectable category titles in file order.
func (s *Store) Categories() ([]string, error) {
	if err, ok := s.failures[KeyCategories]; ok {
		return nil, err
	}
	return append([]string(nil), s.categories...), nil
}

// GeoJSON returns the region boundaries, verbatim.
func (s *Store) GeoJSON() (json.RawMessage, error) {
	if err, ok := s.failures[KeyGeoJSON]; ok {
		return nil, err
	}
	return append(json.RawMessage(nil), s.geojson...), nil
}

// Keywords returns the keyword asset mapping.
func (s *Store) Keywords() KeywordIndex { return s.keywords }
