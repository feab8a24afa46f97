// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package dataset

// Topics lists the keyword topics in dropdown order.
var Topics = []string{"sports", "gaming", "lifestyle", "politics", "society", "knowledge"}

// AllCategories is the sentinel topic selecting the yearly, cross-topic
// keyword assets.
const AllCategories = "all categories"

// Year bounds shared by the keyword stepper and the video-length tables.
const (
	MinYear = 2013
	MaxYear = 2023
)

// TopKeywords is how many words the frequency chart shows.
const TopKeywords = 50

// TopicOptions returns every selectable topic including AllCategories.
func TopicOptions() []string {
	out := make([]string, 0, len(Topics)+1)
	out = append(out, Topics...)
	return append(out, AllCategories)
}

// Years returns MinYear..MaxYear in ascending order.
func Years() []int {
	years := make([]int, 0, MaxYear-MinYear+1)
	for y := MinYear; y <= MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

// InYearRange reports whether year is within [MinYear, MaxYear].
func InYearRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}
