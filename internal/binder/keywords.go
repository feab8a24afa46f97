// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package binder

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/DJBartoli/YouTube-Science-Project/internal/chart"
	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// Binder names for the keyword page.
const (
	NameKeywordCloud     = "keyword-cloud"
	NameKeywordFrequency = "keyword-frequency"
)

func init() {
	Register(&funcBinder{
		name:        NameKeywordCloud,
		description: "Word cloud of the most common title keywords for a topic and year.",
		inputs:      []string{filter.ParamTopic, filter.ParamYear},
		bind: func(_ context.Context, env *Env, st filter.State) (Result, error) {
			fig, err := KeywordCloud(env, st.Topic, st.Year)
			return single(NameKeywordCloud, fig), err
		},
	})
	Register(&funcBinder{
		name:        NameKeywordFrequency,
		description: "The 50 most frequent title keywords for a topic and year.",
		inputs:      []string{filter.ParamTopic, filter.ParamYear},
		bind: func(_ context.Context, env *Env, st filter.State) (Result, error) {
			fig, err := KeywordFrequency(env, st.Topic, st.Year)
			return single(NameKeywordFrequency, fig), err
		},
	})
}

// KeywordCloud embeds the pre-rendered cloud image as a data URI.
func KeywordCloud(env *Env, topic string, year int) (*chart.Figure, error) {
	img, err := env.Store.KeywordImage(topic, year)
	if err != nil {
		return nil, err
	}

	fig := chart.Empty()
	fig.Data = append(fig.Data, chart.Trace{
		Type:   "image",
		Source: "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
	})
	fig.Layout.XAxis = &chart.Axis{Visible: chart.Bool(false), ShowTickLabels: chart.Bool(false)}
	fig.Layout.YAxis = &chart.Axis{Visible: chart.Bool(false), ShowTickLabels: chart.Bool(false)}
	fig.Layout.Margin = &chart.Margin{R: 5, T: 5, L: 5, B: 5}
	return fig, nil
}

// KeywordFrequency shows the most frequent words, largest count on top.
// Words with equal counts are ordered alphabetically.
func KeywordFrequency(env *Env, topic string, year int) (*chart.Figure, error) {
	df, err := env.Store.KeywordFrequencies(topic, year)
	if err != nil {
		return nil, err
	}
	df = df.Arrange(dataframe.Sort(dataset.ColWords))
	if df.Err != nil {
		return nil, fmt.Errorf("sort keyword frequencies: %w", df.Err)
	}

	words := df.Col(dataset.ColWords).Records()
	counts := df.Col(dataset.ColNumbers).Float()
	idx := seq(len(words))
	sort.SliceStable(idx, func(i, j int) bool { return counts[idx[i]] > counts[idx[j]] })
	if len(idx) > dataset.TopKeywords {
		idx = idx[:dataset.TopKeywords]
	}

	topWords := make([]string, len(idx))
	topCounts := make([]float64, len(idx))
	for i, k := range idx {
		topWords[i] = words[k]
		topCounts[i] = counts[k]
	}

	fig := chart.Empty()
	fig.Data = append(fig.Data, chart.Trace{
		Type:        "bar",
		X:           topCounts,
		Y:           topWords,
		Orientation: "h",
		Marker:      &chart.Marker{Color: chart.Accent},
	})
	fig.Layout.Title = &chart.Title{Text: "Word Frequency"}
	fig.Layout.XAxis = chart.AxisTitle("Frequency")
	fig.Layout.YAxis = &chart.Axis{Title: &chart.Title{Text: "Word"}, AutoRange: "reversed"}
	fig.Layout.PlotBGColor = "white"
	return fig, nil
}
