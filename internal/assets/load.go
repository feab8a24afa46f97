// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/sync/errgroup"

	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/testable"
)

// Directory and file names below the data root.
const (
	DistributionDir = "Trends100vRegions"
	VideoLengthDir  = "videoLength"
	CommentsDir     = "commentDevelopment"
	DurationDir     = "duration"
	CategoriesFile  = "Categories.csv"
	GeoJSONFile     = "europe.geojson"

	distributionSuffix = "_category_distribution.csv"
	commentsSuffix     = "_comment_development.csv"
)

const defaultConcurrency = 8

type options struct {
	fs          testable.FileSystem
	concurrency int
}

// Option configures Load.
type Option func(*options)

// WithFileSystem replaces the file system the store reads from.
func WithFileSystem(fs testable.FileSystem) Option {
	return func(o *options) { o.fs = fs }
}

// WithConcurrency bounds how many files are parsed at once. Values below 1
// are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// tableSpec describes one CSV table: where it lives, its column types, and
// which numeric columns must be non-negative.
type tableSpec struct {
	key         string
	path        string
	types       map[string]series.Type
	nonNegative []string
}

var (
	distributionTypes = map[string]series.Type{
		dataset.ColExecutionDate: series.String,
		dataset.ColCategoryTitle: series.String,
		dataset.ColQuantity:      series.Float,
	}
	videoLengthTypes = map[string]series.Type{
		dataset.ColYear:          series.Int,
		dataset.ColCategoryTitle: series.String,
		dataset.ColDuration:      series.Float,
	}
	commentTypes = map[string]series.Type{
		dataset.ColDay:                 series.Int,
		dataset.ColRelativeProbability: series.Float,
		dataset.ColAveragePerVideo:     series.Float,
	}
	summaryTypes = map[string]series.Type{
		dataset.ColBucket:         series.String,
		dataset.ColLikePerView:    series.Float,
		dataset.ColCommentPerView: series.Float,
	}
	boxplotTypes = map[string]series.Type{
		dataset.ColLength:         series.String,
		dataset.ColLikePerView:    series.Float,
		dataset.ColCommentPerView: series.Float,
	}
	categoryTypes = map[string]series.Type{
		dataset.ColCategoryTitle: series.String,
	}
	frequencyTypes = map[string]series.Type{
		dataset.ColWords:   series.String,
		dataset.ColNumbers: series.Float,
	}
)

// Load reads every table below root. A table that is missing or malformed is
// recorded and surfaces as an error only from the accessors that need it, so
// one bad file never takes the whole dashboard down. Load itself fails only
// when root is unusable or ctx is cancelled.
func Load(ctx context.Context, root string, opts ...Option) (*Store, error) {
	o := options{fs: testable.DefaultFS, concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&o)
	}

	info, err := o.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("data directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s: not a directory", root)
	}

	s := &Store{
		root:     root,
		fs:       o.fs,
		tables:   make(map[string]dataframe.DataFrame),
		paths:    make(map[string]string),
		failures: make(map[string]error),
		keywords: NewKeywordIndex(),
	}

	countries, specs, err := s.plan()
	if err != nil {
		s.failures[KeyWeekly] = err
	}

	results := make([]dataframe.DataFrame, len(specs))
	errs := make([]error, len(specs))
	var geojson json.RawMessage
	var geoErr error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = readTable(o.fs, filepath.Join(root, spec.path), spec)
			return nil
		})
	}
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		geojson, geoErr = readGeoJSON(o.fs, filepath.Join(root, GeoJSONFile))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	for i, spec := range specs {
		s.paths[spec.key] = spec.path
		if errs[i] != nil {
			s.failures[spec.key] = errs[i]
			slog.Warn("asset unavailable", "key", spec.key, "error", errs[i])
			continue
		}
		df := results[i]
		if strings.HasPrefix(spec.key, distributionPrefix) {
			df = normalizeDates(df)
		}
		s.tables[spec.key] = df
	}

	s.paths[KeyGeoJSON] = GeoJSONFile
	if geoErr != nil {
		s.failures[KeyGeoJSON] = geoErr
		slog.Warn("asset unavailable", "key", KeyGeoJSON, "error", geoErr)
	} else {
		s.geojson = geojson
	}

	if cats, ok := s.tables[KeyCategories]; ok {
		s.categories = cats.Col(dataset.ColCategoryTitle).Records()
		delete(s.tables, KeyCategories)
	}

	s.paths[KeyWeekly] = DistributionDir
	if _, failed := s.failures[KeyWeekly]; !failed {
		weekly, err := buildWeekly(countries, s.tables)
		if err != nil {
			s.failures[KeyWeekly] = err
		} else {
			s.tables[KeyWeekly] = weekly
		}
	}

	slog.Debug("assets loaded", "root", root, "tables", len(s.tables), "failures", len(s.failures))
	return s, nil
}

// plan lists the tables to read. Distribution tables are discovered from
// the directory listing; everything else comes from fixed names.
func (s *Store) plan() ([]string, []tableSpec, error) {
	var specs []tableSpec
	files, listErr := s.listCountries()
	countries := make([]string, 0, len(files))
	for _, f := range files {
		countries = append(countries, f.code)
		specs = append(specs, tableSpec{
			key:         DistributionKey(f.code),
			path:        filepath.Join(DistributionDir, f.name),
			types:       distributionTypes,
			nonNegative: []string{dataset.ColQuantity},
		})
	}

	for _, ds := range dataset.Datasets {
		specs = append(specs, tableSpec{
			key:         VideoLengthKey(ds),
			path:        filepath.Join(VideoLengthDir, ds+"_length_by_category.csv"),
			types:       videoLengthTypes,
			nonNegative: []string{dataset.ColYear, dataset.ColDuration},
		})
	}

	for _, ch := range dataset.Channels {
		specs = append(specs, tableSpec{
			key:         CommentsKey(ch),
			path:        filepath.Join(CommentsDir, ch+commentsSuffix),
			types:       commentTypes,
			nonNegative: []string{dataset.ColDay, dataset.ColRelativeProbability, dataset.ColAveragePerVideo},
		})
	}

	specs = append(specs,
		tableSpec{
			key:         KeyDurationSummary,
			path:        filepath.Join(DurationDir, "Markiplier_Formatted.csv"),
			types:       summaryTypes,
			nonNegative: []string{dataset.ColLikePerView, dataset.ColCommentPerView},
		},
		tableSpec{
			key:         KeyDurationBoxplot,
			path:        filepath.Join(DurationDir, "Boxplot_Data.csv"),
			types:       boxplotTypes,
			nonNegative: []string{dataset.ColLikePerView, dataset.ColCommentPerView},
		},
		tableSpec{
			key:   KeyCategories,
			path:  CategoriesFile,
			types: categoryTypes,
		},
	)
	return countries, specs, listErr
}

// countryFile is a discovered distribution file and its country code.
type countryFile struct {
	code string
	name string
}

// listCountries returns the distribution files sorted by country code. The
// code is the upper-cased first two characters of the file name; the file
// name itself is kept as listed so case-sensitive file systems resolve it.
func (s *Store) listCountries() ([]countryFile, error) {
	dir := filepath.Join(s.root, DistributionDir)
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, dir)
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	seen := make(map[string]bool)
	var out []countryFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, distributionSuffix) || len(name) < 2 {
			continue
		}
		cc := strings.ToUpper(name[:2])
		if seen[cc] {
			slog.Debug("duplicate distribution file ignored", "file", name)
			continue
		}
		seen[cc] = true
		out = append(out, countryFile{code: cc, name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].code < out[j].code })
	return out, nil
}

func readTable(fsys testable.FileSystem, path string, spec tableSpec) (dataframe.DataFrame, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return dataframe.DataFrame{}, fmt.Errorf("read %s: %w", path, err)
	}
	return parseTable(data, path, spec)
}

func parseTable(data []byte, path string, spec tableSpec) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(bytes.NewReader(data), dataframe.WithTypes(spec.types))
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s: %v", ErrInvalidAsset, path, df.Err)
	}

	names := df.Names()
	for col := range spec.types {
		if !slices.Contains(names, col) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s: missing column %q", ErrInvalidAsset, path, col)
		}
	}
	for _, col := range spec.nonNegative {
		for row, v := range df.Col(col).Float() {
			if v < 0 {
				return dataframe.DataFrame{}, fmt.Errorf("%w: %s: negative %s in row %d", ErrInvalidAsset, path, col, row+1)
			}
		}
	}
	return df, nil
}

func readGeoJSON(fsys testable.FileSystem, path string) (json.RawMessage, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: %s: not valid JSON", ErrInvalidAsset, path)
	}
	return json.RawMessage(data), nil
}

// normalizeDates cuts execution dates to YYYY-MM-DD so timestamps written by
// the collector compare equal to picker dates.
func normalizeDates(df dataframe.DataFrame) dataframe.DataFrame {
	dates := df.Col(dataset.ColExecutionDate).Records()
	for i, d := range dates {
		if t, ok := dataset.ParseDate(d); ok {
			dates[i] = t.Format(dataset.DateLayout)
		}
	}
	return df.Mutate(series.New(dates, series.String, dataset.ColExecutionDate))
}

// buildWeekly concatenates the per-country tables, tagging each row with its
// country code.
func buildWeekly(countries []string, tables map[string]dataframe.DataFrame) (dataframe.DataFrame, error) {
	var weekly dataframe.DataFrame
	loaded := 0
	for _, cc := range countries {
		df, ok := tables[DistributionKey(cc)]
		if !ok {
			continue
		}
		df = df.Select([]string{dataset.ColExecutionDate, dataset.ColCategoryTitle, dataset.ColQuantity})
		codes := make([]string, df.Nrow())
		for i := range codes {
			codes[i] = cc
		}
		df = df.Mutate(series.New(codes, series.String, dataset.ColCountry))
		if loaded == 0 {
			weekly = df
		} else {
			weekly = weekly.RBind(df)
		}
		loaded++
	}
	if loaded == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: no distribution tables in %s", ErrMissingAsset, DistributionDir)
	}
	if weekly.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: weekly table: %v", ErrInvalidAsset, weekly.Err)
	}
	return weekly, nil
}
