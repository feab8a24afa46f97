// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets/assetstest"
	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/testable"
)

func TestKeywordIndex_Coverage(t *testing.T) {
	ix := NewKeywordIndex()
	assert.Len(t, ix, (len(dataset.Topics)+1)*len(dataset.Years()))

	p, err := ix.Resolve("gaming", 2013)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("keyWordClouds", "topicKeyWords", "youtube_keywords_gaming_2013.png"), p.Image)
	assert.Equal(t, filepath.Join("keyWordClouds", "topicFrequentWords", "frequent_words_gaming_2013.csv"), p.Frequencies)

	p, err = ix.Resolve(dataset.AllCategories, 2023)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("keyWordClouds", "yearlyKeyWords", "youtube_keywords_2023.jpg"), p.Image)
}

func TestKeywordIndex_OutsideMapping(t *testing.T) {
	ix := NewKeywordIndex()

	tests := []struct {
		topic string
		year  int
	}{
		{"gaming", 2025},
		{"gaming", 2012},
		{"cooking", 2015},
		{"", 2015},
	}
	for _, tt := range tests {
		_, err := ix.Resolve(tt.topic, tt.year)
		assert.ErrorIs(t, err, ErrMissingAsset, "%s/%d", tt.topic, tt.year)
	}
}

func TestKeywordIndex_Keys(t *testing.T) {
	keys := NewKeywordIndex().Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, KeywordKey{Topic: dataset.AllCategories, Year: dataset.MinYear}, keys[0])
	assert.Equal(t, KeywordKey{Topic: "sports", Year: dataset.MaxYear}, keys[len(keys)-1])
}

func TestKeywordImage(t *testing.T) {
	s := loadFixture(t)

	img, err := s.KeywordImage("gaming", 2013)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIME)
	assert.Equal(t, assetstest.PNG, img.Data)

	img, err = s.KeywordImage(dataset.AllCategories, 2013)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MIME)
}

func TestKeywordImage_MappedButAbsent(t *testing.T) {
	s := loadFixture(t)

	_, err := s.KeywordImage("sports", 2019)
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestKeywordImage_RejectedBeforeRead(t *testing.T) {
	reads := 0
	fs := &testable.MockFileSystem{
		ReadFileFn: func(name string) ([]byte, error) {
			if strings.Contains(name, "keyWordClouds") {
				reads++
			}
			return os.ReadFile(name)
		},
	}
	s, err := loadWith(t, fs)
	require.NoError(t, err)

	_, err = s.KeywordImage("gaming", 2025)
	assert.ErrorIs(t, err, ErrMissingAsset)
	_, err = s.KeywordFrequencies("gaming", 2025)
	assert.ErrorIs(t, err, ErrMissingAsset)
	assert.Zero(t, reads)
}

func TestKeywordFrequencies(t *testing.T) {
	s := loadFixture(t)

	df, err := s.KeywordFrequencies("gaming", 2013)
	require.NoError(t, err)
	assert.Equal(t, assetstest.KeywordWords, df.Nrow())

	df, err = s.KeywordFrequencies(dataset.AllCategories, 2013)
	require.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())
}

func TestKeywordFrequencies_ReadError(t *testing.T) {
	boom := errors.New("permission denied")
	fs := &testable.MockFileSystem{
		ReadFileFn: func(name string) ([]byte, error) {
			if strings.HasSuffix(name, "frequent_words_gaming_2013.csv") {
				return nil, boom
			}
			return os.ReadFile(name)
		},
	}
	s, err := loadWith(t, fs)
	require.NoError(t, err)

	_, err = s.KeywordFrequencies("gaming", 2013)
	assert.ErrorIs(t, err, boom)
}

func TestKeywordInventory(t *testing.T) {
	s := loadFixture(t)

	entries := s.KeywordInventory()
	assert.Len(t, entries, 2*len(NewKeywordIndex()))

	ok := 0
	for _, e := range entries {
		if e.Status() == StatusOK {
			ok++
		}
	}
	assert.Equal(t, 4, ok)
}

func loadWith(t *testing.T, fs testable.FileSystem) (*Store, error) {
	t.Helper()
	root := assetstest.Write(t)
	return Load(t.Context(), root, WithFileSystem(fs))
}
