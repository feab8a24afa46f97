// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package dataset

// DurationBuckets are the video-length ranges, in minutes, in display order.
var DurationBuckets = []string{"0-5", "5-10", "10-20", "20-30", "30-60", "60+"}

// Interaction selector values for the duration box plot.
const (
	InteractionComments = "Comments"
	InteractionLikes    = "Likes"
)

// Video-length dataset selector values.
const (
	DatasetOriginal = "original"
	DatasetFiltered = "filtered"
)

// Datasets lists the video-length dataset selector values.
var Datasets = []string{DatasetOriginal, DatasetFiltered}

// HighVarianceCategory is left out of the video-length area chart: its
// early years swing so widely that it flattens every other series.
const HighVarianceCategory = "Pets & Animals"

// Marker years drawn on both video-length charts.
const (
	PandemicYear     = 2020
	ShortsLaunchYear = 2021
)
