// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package binder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/DJBartoli/YouTube-Science-Project/internal/chart"
	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// NameVideoLength is the video-length page binder.
const NameVideoLength = "video-length"

// Chart IDs of the video-length result.
const (
	ChartVideoLengthArea = "video-length-area"
	ChartVideoLengthLine = "video-length-line"
)

var videoLengthBlurbs = map[string]string{
	dataset.DatasetOriginal: "These charts use every video we collected. Very short uploads pull " +
		"the averages down from 2021 onwards, when Shorts became part of the platform.",
	dataset.DatasetFiltered: "These charts leave out videos under one minute, so Shorts no longer " +
		"dominate the averages and the long-term growth of regular uploads becomes visible.",
}

func init() {
	Register(&funcBinder{
		name:        NameVideoLength,
		description: "Average video length per category and year, as a stacked area chart and a line chart.",
		inputs:      []string{filter.ParamDataset},
		bind: func(_ context.Context, env *Env, st filter.State) (Result, error) {
			vl, err := VideoLength(env, st.Dataset)
			if err != nil {
				return Result{}, err
			}
			return Result{
				Charts: []Chart{
					{ID: ChartVideoLengthArea, Figure: vl.Area},
					{ID: ChartVideoLengthLine, Figure: vl.Line},
				},
				Text: vl.Blurb,
			}, nil
		},
	})
}

// VideoLengthCharts are the two coupled video-length figures and the text
// shown beside them.
type VideoLengthCharts struct {
	Area  *chart.Figure
	Line  *chart.Figure
	Blurb string
}

// VideoLength builds both video-length charts for the original or filtered
// dataset. Any other dataset value falls back to the original one. The area
// chart leaves out dataset.HighVarianceCategory, whose early years would
// dwarf the stacked areas; the line chart keeps every category.
func VideoLength(env *Env, ds string) (VideoLengthCharts, error) {
	if !slices.Contains(dataset.Datasets, ds) {
		slog.Debug("unknown video-length dataset, using original", "dataset", ds)
		ds = dataset.DatasetOriginal
	}

	df, err := env.Store.VideoLength(ds)
	if err != nil {
		return VideoLengthCharts{}, err
	}

	stacked := df.Filter(dataframe.F{
		Colname:    dataset.ColCategoryTitle,
		Comparator: series.Neq,
		Comparando: dataset.HighVarianceCategory,
	})
	if stacked.Err != nil {
		return VideoLengthCharts{}, fmt.Errorf("filter video lengths: %w", stacked.Err)
	}

	area, err := lengthFigure(stacked, "Average Video Length per Category (stacked)", true)
	if err != nil {
		return VideoLengthCharts{}, err
	}
	line, err := lengthFigure(df, "Average Video Length per Category", false)
	if err != nil {
		return VideoLengthCharts{}, err
	}
	return VideoLengthCharts{Area: area, Line: line, Blurb: videoLengthBlurbs[ds]}, nil
}

// lengthFigure draws one trace per category over the years.
func lengthFigure(df dataframe.DataFrame, title string, stack bool) (*chart.Figure, error) {
	groups, err := groupBy(df, dataset.ColCategoryTitle)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(groups))
	for i, g := range groups {
		titles[i] = g.key
	}
	colors := dataset.CategoryColors(titles)

	fig := chart.Themed()
	for i, g := range groups {
		rows := g.rows.Arrange(dataframe.Sort(dataset.ColYear))
		if rows.Err != nil {
			return nil, fmt.Errorf("sort %s by year: %w", g.key, rows.Err)
		}
		years, err := rows.Col(dataset.ColYear).Int()
		if err != nil {
			return nil, fmt.Errorf("years of %s: %w", g.key, err)
		}
		tr := chart.Trace{
			Type:   "scatter",
			Name:   g.key,
			X:      years,
			Y:      rows.Col(dataset.ColDuration).Float(),
			Mode:   "lines+markers",
			Marker: &chart.Marker{Color: colors[i]},
		}
		if stack {
			tr.Mode = "lines"
			tr.StackGroup = "one"
		}
		fig.Data = append(fig.Data, tr)
	}

	fig.Layout.Title = &chart.Title{Text: title}
	fig.Layout.XAxis = chart.AxisTitle("Year")
	fig.Layout.YAxis = chart.AxisTitle("Duration in Minutes")
	fig.AddYearMarker(dataset.PandemicYear, "Global pandemic")
	fig.AddYearMarker(dataset.ShortsLaunchYear, "Shorts launch")
	return fig, nil
}
