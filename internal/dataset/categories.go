// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package dataset

import "sort"

// categoryColors is the fixed colour assignment for the fifteen known
// video categories.
var categoryColors = map[string]string{
	"Film & Animation":      "#1f77b4",
	"Autos & Vehicles":      "#ff7f0e",
	"Music":                 "#2ca02c",
	"Pets & Animals":        "#d62728",
	"Sports":                "#9467bd",
	"Travel & Events":       "#8c564b",
	"Gaming":                "#e377c2",
	"People & Blogs":        "#7f7f7f",
	"Comedy":                "#bcbd22",
	"Entertainment":         "#17becf",
	"News & Politics":       "#aec7e8",
	"Howto & Style":         "#ffbb78",
	"Education":             "#98df8a",
	"Science & Technology":  "#ff9896",
	"Nonprofits & Activism": "#c5b0d5",
}

// fallbackPalette colours categories outside the known fifteen.
var fallbackPalette = []string{
	"#636efa", "#ef553b", "#00cc96", "#ab63fa", "#ffa15a",
	"#19d3f3", "#ff6692", "#b6e880", "#ff97ff", "#fecb52",
}

// DefaultCategory is the category selected when the trends page first loads.
const DefaultCategory = "Music"

// KnownCategoryColor returns the fixed colour for title.
func KnownCategoryColor(title string) (string, bool) {
	c, ok := categoryColors[title]
	return c, ok
}

// CategoryColors returns one colour per title, index-aligned with titles.
// Unknown categories draw from the fallback palette in sorted title order,
// so the same set of categories always gets the same colours.
func CategoryColors(titles []string) []string {
	var unknown []string
	for _, t := range titles {
		if _, ok := categoryColors[t]; !ok {
			unknown = append(unknown, t)
		}
	}
	sort.Strings(unknown)
	assigned := make(map[string]string, len(unknown))
	for i, t := range unknown {
		assigned[t] = fallbackPalette[i%len(fallbackPalette)]
	}

	out := make([]string, len(titles))
	for i, t := range titles {
		if c, ok := categoryColors[t]; ok {
			out[i] = c
			continue
		}
		out[i] = assigned[t]
	}
	return out
}
