// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package assetstest writes a small but complete data directory for tests.
package assetstest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Facts about the fixture that tests assert against.
const (
	Country      = "DE"
	Date         = "2024-03-15"
	DateTotal    = 100.0
	MusicOnDate  = 30.0
	Channel      = "baldandbankrupt"
	KeywordTopic = "gaming"
	KeywordYear  = 2013
	KeywordWords = 61
)

// PNG and JPEG are the bytes written for the keyword cloud images.
var (
	PNG  = []byte("\x89PNG\r\n\x1a\nfixture")
	JPEG = []byte("\xff\xd8\xff\xe0fixture")
)

// Files returns the fixture tree as data-root-relative path to content.
// Tests may delete or replace entries before passing the map to WriteFiles.
func Files() map[string][]byte {
	files := map[string][]byte{
		"Trends100vRegions/DE_category_distribution.csv": lines(
			"Execution Date,Category Title,Quantity",
			"2024-03-15,Music,18",
			"2024-03-15,Music,12",
			"2024-03-15,Gaming,25",
			"2024-03-15,Entertainment,20",
			"2024-03-15,People & Blogs,15",
			"2024-03-15,Comedy,10",
			"2024-03-16,Music,40",
			"2024-03-16,Gaming,35",
			"2024-03-16,News & Politics,25",
			"2024-03-18T00:00:00,Music,50",
			"2024-03-18,Gaming,50",
		),
		"Trends100vRegions/FR_category_distribution.csv": lines(
			"Execution Date,Category Title,Quantity",
			"2024-03-15,Music,60",
			"2024-03-15,Sports,40",
			"2024-03-16,Vlog Extras,5",
			"2024-03-16,Music,95",
		),
		"Trends100vRegions/README.md": []byte("not a table\n"),
		"Categories.csv": lines(
			"Category Title",
			"Music",
			"Gaming",
			"Entertainment",
			"People & Blogs",
			"Comedy",
			"Sports",
			"News & Politics",
		),
		"videoLength/original_length_by_category.csv": lines(
			"Year,Category Title,Duration",
			"2013,Music,4.0",
			"2013,Gaming,10.0",
			"2013,Pets & Animals,3.0",
			"2014,Music,4.2",
			"2014,Gaming,12.0",
			"2014,Pets & Animals,9.0",
			"2015,Music,4.5",
			"2015,Gaming,14.0",
			"2015,Pets & Animals,2.0",
		),
		"videoLength/filtered_length_by_category.csv": lines(
			"Year,Category Title,Duration",
			"2013,Music,3.5",
			"2013,Gaming,8.0",
			"2013,Pets & Animals,2.5",
			"2014,Music,3.8",
			"2014,Gaming,9.0",
			"2014,Pets & Animals,4.0",
			"2015,Music,4.0",
			"2015,Gaming,11.0",
			"2015,Pets & Animals,2.2",
		),
		"commentDevelopment/baldandbankrupt_comment_development.csv": lines(
			"Day,Relative Probability,Average per Video",
			"0,40.5,120",
			"1,20.25,60",
			"50,1.5,4",
			"100,0.5,1",
			"101,0.25,0.5",
			"150,0.1,0.2",
		),
		"duration/Markiplier_Formatted.csv": lines(
			"Category,Like/View,Comment/View",
			"5-10,30,4",
			"0-5,40,6",
			"0-5,44,8",
			"10-20,28,3",
			"20-30,27,2.5",
			"30-60,25,2",
			"60+,20,1",
			"60+,22,1.4",
		),
		"duration/Boxplot_Data.csv": lines(
			"Length,Like/View,Comment/View",
			"0-5,40,6",
			"0-5,44,8",
			"5-10,30,4",
			"10-20,28,3",
			"20-30,27,2.5",
			"30-60,25,2",
			"60+,20,1",
		),
		"europe.geojson": []byte(`{"type":"FeatureCollection","features":[]}`),

		"keyWordClouds/topicKeyWords/youtube_keywords_gaming_2013.png": PNG,
		"keyWordClouds/yearlyKeyWords/youtube_keywords_2013.jpg":       JPEG,

		"keyWordClouds/yearlyFrequentWords/frequent_words_2013.csv": lines(
			"words,numbers",
			"music,30",
			"official,20",
			"video,25",
		),
	}
	files["keyWordClouds/topicFrequentWords/frequent_words_gaming_2013.csv"] = frequencies()
	return files
}

// frequencies writes 60 words with strictly decreasing counts plus one word
// that ties with w10, in scrambled order.
func frequencies() []byte {
	rows := []string{"words,numbers"}
	for i := 59; i >= 0; i -= 2 {
		rows = append(rows, fmt.Sprintf("w%02d,%d", i, 600-10*i))
	}
	rows = append(rows, "aaa,500")
	for i := 0; i < 60; i += 2 {
		rows = append(rows, fmt.Sprintf("w%02d,%d", i, 600-10*i))
	}
	return lines(rows...)
}

// Write creates the full fixture in a fresh temporary directory and returns
// its path.
func Write(t testing.TB) string {
	t.Helper()
	return WriteFiles(t, Files())
}

// WriteFiles creates files in a fresh temporary directory and returns its
// path.
func WriteFiles(t testing.TB, files map[string][]byte) string {
	t.Helper()
	root := t.TempDir()
	for rel, data := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o600))
	}
	return root
}

func lines(rows ...string) []byte {
	return []byte(strings.Join(rows, "\n") + "\n")
}
