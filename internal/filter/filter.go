// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package filter holds the selector values a visitor has chosen. A State is
// a plain value: binders receive a copy and never observe later changes.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
)

// Query parameter names.
const (
	ParamCountry     = "country"
	ParamDate        = "date"
	ParamCategory    = "category"
	ParamDataset     = "dataset"
	ParamChannel     = "channel"
	ParamMetric      = "metric"
	ParamTopic       = "topic"
	ParamYear        = "year"
	ParamInteraction = "interaction"
)

// State is the full set of selector values.
type State struct {
	Country     string `json:"country"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Dataset     string `json:"dataset"`
	Channel     string `json:"channel"`
	Metric      string `json:"metric"`
	Topic       string `json:"topic"`
	Year        int    `json:"year"`
	Interaction string `json:"interaction"`
}

// Default returns the selection every page starts with.
func Default() State {
	return State{
		Country:     dataset.DefaultCountry,
		Date:        dataset.DefaultDate,
		Category:    dataset.DefaultCategory,
		Dataset:     dataset.DatasetOriginal,
		Channel:     dataset.DefaultChannel,
		Metric:      dataset.MetricRelativeProbability,
		Topic:       dataset.Topics[0],
		Year:        dataset.MinYear,
		Interaction: dataset.InteractionComments,
	}
}

// Apply returns s with every parameter present in q overriding its field.
// Values are taken verbatim; a year that is not an integer is ignored.
func (s State) Apply(q url.Values) State {
	set := func(dst *string, key string) {
		if _, ok := q[key]; ok {
			*dst = strings.TrimSpace(q.Get(key))
		}
	}
	set(&s.Country, ParamCountry)
	set(&s.Date, ParamDate)
	set(&s.Category, ParamCategory)
	set(&s.Dataset, ParamDataset)
	set(&s.Channel, ParamChannel)
	set(&s.Metric, ParamMetric)
	set(&s.Topic, ParamTopic)
	set(&s.Interaction, ParamInteraction)

	if raw := q.Get(ParamYear); raw != "" {
		if y, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			s.Year = y
		}
	}
	return s
}

// Values encodes s as query parameters.
func (s State) Values() url.Values {
	return url.Values{
		ParamCountry:     {s.Country},
		ParamDate:        {s.Date},
		ParamCategory:    {s.Category},
		ParamDataset:     {s.Dataset},
		ParamChannel:     {s.Channel},
		ParamMetric:      {s.Metric},
		ParamTopic:       {s.Topic},
		ParamYear:        {strconv.Itoa(s.Year)},
		ParamInteraction: {s.Interaction},
	}
}
