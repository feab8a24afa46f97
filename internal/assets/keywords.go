// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
)

// KeywordDir is the root of the keyword cloud assets.
const KeywordDir = "keyWordClouds"

// KeywordKey identifies one keyword selection.
type KeywordKey struct {
	Topic string
	Year  int
}

// KeywordPaths are the data-root-relative files of one keyword selection.
type KeywordPaths struct {
	Image       string
	Frequencies string
}

// KeywordIndex is the enumerated mapping from (topic, year) to asset paths.
// Selections outside the mapping are never turned into file reads.
type KeywordIndex map[KeywordKey]KeywordPaths

// NewKeywordIndex builds the mapping for every topic and year, plus the
// cross-topic yearly assets under dataset.AllCategories.
func NewKeywordIndex() KeywordIndex {
	ix := make(KeywordIndex, (len(dataset.Topics)+1)*len(dataset.Years()))
	for _, year := range dataset.Years() {
		y := strconv.Itoa(year)
		for _, topic := range dataset.Topics {
			ix[KeywordKey{Topic: topic, Year: year}] = KeywordPaths{
				Image:       filepath.Join(KeywordDir, "topicKeyWords", "youtube_keywords_"+topic+"_"+y+".png"),
				Frequencies: filepath.Join(KeywordDir, "topicFrequentWords", "frequent_words_"+topic+"_"+y+".csv"),
			}
		}
		ix[KeywordKey{Topic: dataset.AllCategories, Year: year}] = KeywordPaths{
			Image:       filepath.Join(KeywordDir, "yearlyKeyWords", "youtube_keywords_"+y+".jpg"),
			Frequencies: filepath.Join(KeywordDir, "yearlyFrequentWords", "frequent_words_"+y+".csv"),
		}
	}
	return ix
}

// Resolve returns the paths for a selection, or ErrMissingAsset when the
// selection is not part of the mapping.
func (ix KeywordIndex) Resolve(topic string, year int) (KeywordPaths, error) {
	p, ok := ix[KeywordKey{Topic: topic, Year: year}]
	if !ok {
		return KeywordPaths{}, fmt.Errorf("%w: no keyword assets for topic %q in %d", ErrMissingAsset, topic, year)
	}
	return p, nil
}

// Keys returns every mapped selection ordered by topic, then year.
func (ix KeywordIndex) Keys() []KeywordKey {
	keys := make([]KeywordKey, 0, len(ix))
	for k := range ix {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Topic != keys[j].Topic {
			return keys[i].Topic < keys[j].Topic
		}
		return keys[i].Year < keys[j].Year
	})
	return keys
}

// Image is a keyword cloud file and its media type.
type Image struct {
	MIME string
	Data []byte
}

// KeywordImage reads the cloud image of a selection.
func (s *Store) KeywordImage(topic string, year int) (Image, error) {
	p, err := s.keywords.Resolve(topic, year)
	if err != nil {
		return Image{}, err
	}
	data, err := s.readFile(p.Image)
	if err != nil {
		return Image{}, err
	}
	return Image{MIME: imageMIME(p.Image), Data: data}, nil
}

// KeywordFrequencies reads the word counts of a selection.
func (s *Store) KeywordFrequencies(topic string, year int) (dataframe.DataFrame, error) {
	p, err := s.keywords.Resolve(topic, year)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	data, err := s.readFile(p.Frequencies)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	return parseTable(data, filepath.Join(s.root, p.Frequencies), tableSpec{
		types:       frequencyTypes,
		nonNegative: []string{dataset.ColNumbers},
	})
}

func (s *Store) readFile(rel string) ([]byte, error) {
	path := filepath.Join(s.root, rel)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func imageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
