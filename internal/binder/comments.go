// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package binder

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/DJBartoli/YouTube-Science-Project/internal/chart"
	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// NameCommentBehavior is the comment-behaviour page binder.
const NameCommentBehavior = "comment-behavior"

// NoChannelMessage is shown for a channel without comment data.
const NoChannelMessage = "No data available for the selected channel."

func init() {
	Register(&funcBinder{
		name:        NameCommentBehavior,
		description: "Comments per day after upload for one channel, as relative probability or average per video.",
		inputs:      []string{filter.ParamChannel, filter.ParamMetric},
		bind: func(_ context.Context, env *Env, st filter.State) (Result, error) {
			fig, err := CommentBehavior(env, st.Channel, st.Metric)
			return single(NameCommentBehavior, fig), err
		},
	})
}

// metricColumn maps a metric selector to its column and axis label. An
// unknown metric plots relative probability under a neutral label.
func metricColumn(metric string) (col, label string) {
	switch metric {
	case dataset.MetricRelativeProbability:
		return dataset.ColRelativeProbability, "Relative Probability in %"
	case dataset.MetricAveragePerVideo:
		return dataset.ColAveragePerVideo, "Average Comments per Video"
	default:
		return dataset.ColRelativeProbability, "Value"
	}
}

// CommentBehavior charts how comments arrive over the first 100 days after
// upload.
func CommentBehavior(env *Env, channel, metric string) (*chart.Figure, error) {
	if !dataset.IsChannel(channel) {
		return chart.Placeholder(NoChannelMessage), nil
	}
	col, label := metricColumn(metric)

	df, err := env.Store.Comments(channel)
	if err != nil {
		return nil, err
	}
	df = df.Filter(dataframe.F{
		Colname:    dataset.ColDay,
		Comparator: series.LessEq,
		Comparando: dataset.MaxCommentDay,
	}).Arrange(dataframe.Sort(dataset.ColDay))
	if df.Err != nil {
		return nil, fmt.Errorf("filter comment days: %w", df.Err)
	}

	days, err := df.Col(dataset.ColDay).Int()
	if err != nil {
		return nil, fmt.Errorf("comment days: %w", err)
	}

	fig := chart.Themed()
	fig.Data = append(fig.Data, chart.Trace{
		Type:   "bar",
		Name:   channel,
		X:      days,
		Y:      df.Col(col).Float(),
		Marker: &chart.Marker{Color: chart.Accent},
	})
	fig.Layout.Title = &chart.Title{Text: "Comment development for " + channel}
	fig.Layout.XAxis = chart.AxisTitle("Days after Upload")
	fig.Layout.YAxis = chart.AxisTitle(label)
	return fig, nil
}
