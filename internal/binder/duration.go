// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package binder

import (
	"context"
	"log/slog"
	"slices"

	"github.com/DJBartoli/YouTube-Science-Project/internal/chart"
	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// Binder names for the duration page.
const (
	NameDurationInteraction  = "duration-interaction"
	NameDurationDistribution = "duration-distribution"
)

func init() {
	Register(&funcBinder{
		name:        NameDurationInteraction,
		description: "Average likes and comments per 1000 views for each video-length bucket.",
		bind: func(_ context.Context, env *Env, _ filter.State) (Result, error) {
			fig, err := DurationInteraction(env)
			return single(NameDurationInteraction, fig), err
		},
	})
	Register(&funcBinder{
		name:        NameDurationDistribution,
		description: "Box plot of comments or likes per 1000 views for each video-length bucket.",
		inputs:      []string{filter.ParamInteraction},
		bind: func(_ context.Context, env *Env, st filter.State) (Result, error) {
			fig, err := DurationDistribution(env, st.Interaction)
			return single(NameDurationDistribution, fig), err
		},
	})
}

// DurationInteraction averages interactions per bucket. It takes no input,
// so the figure is computed once per Env and reused.
func DurationInteraction(env *Env) (*chart.Figure, error) {
	env.durationOnce.Do(func() {
		env.durationFig, env.durationErr = durationInteraction(env)
	})
	return env.durationFig, env.durationErr
}

func durationInteraction(env *Env) (*chart.Figure, error) {
	df, err := env.Store.DurationSummary()
	if err != nil {
		return nil, err
	}
	groups, err := groupBy(df, dataset.ColBucket)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(groups, func(a, b group) int {
		return bucketRank(a.key) - bucketRank(b.key)
	})

	buckets := make([]string, len(groups))
	likes := make([]float64, len(groups))
	comments := make([]float64, len(groups))
	for i, g := range groups {
		buckets[i] = g.key
		likes[i] = mean(g.rows.Col(dataset.ColLikePerView).Float())
		comments[i] = mean(g.rows.Col(dataset.ColCommentPerView).Float())
	}

	fig := chart.Themed()
	fig.Data = append(fig.Data,
		chart.Trace{Type: "bar", Name: "Average Likes", X: buckets, Y: likes},
		chart.Trace{Type: "bar", Name: "Average Comments", X: buckets, Y: comments, Marker: &chart.Marker{Color: chart.Accent}},
	)
	fig.Layout.Title = &chart.Title{Text: "Average Viewer Interactions measured by Comments and Likes"}
	fig.Layout.BarMode = "stack"
	fig.Layout.XAxis = &chart.Axis{
		Title:         &chart.Title{Text: "Video Length in Minutes"},
		CategoryOrder: "array",
		CategoryArray: buckets,
	}
	fig.Layout.YAxis = chart.AxisTitle("Interactions per 1000 Views")
	return fig, nil
}

// bucketRank orders the known buckets by length and anything else after
// them.
func bucketRank(bucket string) int {
	if i := slices.Index(dataset.DurationBuckets, bucket); i >= 0 {
		return i
	}
	return len(dataset.DurationBuckets)
}

// DurationDistribution draws a box per length bucket for comments or likes.
// Any other selector falls back to comments.
func DurationDistribution(env *Env, interaction string) (*chart.Figure, error) {
	if interaction != dataset.InteractionLikes && interaction != dataset.InteractionComments {
		slog.Debug("unknown interaction, using comments", "interaction", interaction)
		interaction = dataset.InteractionComments
	}

	df, err := env.Store.DurationBoxplot()
	if err != nil {
		return nil, err
	}

	tr := chart.Trace{
		Type:           "box",
		X:              df.Col(dataset.ColLength).Records(),
		QuartileMethod: "linear",
	}
	fig := chart.Themed()
	if interaction == dataset.InteractionLikes {
		tr.Name = "Likes"
		tr.Y = df.Col(dataset.ColLikePerView).Float()
		fig.Layout.YAxis = chart.AxisTitle("Likes per 1000 Views")
	} else {
		tr.Name = "Comments"
		tr.Y = df.Col(dataset.ColCommentPerView).Float()
		tr.Marker = &chart.Marker{Color: chart.Accent}
		fig.Layout.YAxis = chart.AxisTitle("Comments per 1000 Views")
	}
	fig.Data = append(fig.Data, tr)
	fig.Layout.Title = &chart.Title{Text: "Boxplot for " + interaction}
	fig.Layout.XAxis = &chart.Axis{
		Title:         &chart.Title{Text: "Video Duration in Minutes"},
		CategoryOrder: "array",
		CategoryArray: dataset.DurationBuckets,
	}
	return fig, nil
}
