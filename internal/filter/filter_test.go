// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "DE", s.Country)
	assert.Equal(t, "2024-03-15", s.Date)
	assert.Equal(t, "Music", s.Category)
	assert.Equal(t, dataset.DatasetOriginal, s.Dataset)
	assert.Equal(t, "baldandbankrupt", s.Channel)
	assert.Equal(t, dataset.MetricRelativeProbability, s.Metric)
	assert.Equal(t, "sports", s.Topic)
	assert.Equal(t, 2013, s.Year)
	assert.Equal(t, dataset.InteractionComments, s.Interaction)
}

func TestApply(t *testing.T) {
	q := url.Values{
		"country": {"FR"},
		"date":    {"2024-03-16T10:00:00"},
		"metric":  {"Average per Video"},
		"year":    {"2019"},
	}
	s := Default().Apply(q)

	assert.Equal(t, "FR", s.Country)
	assert.Equal(t, "2024-03-16T10:00:00", s.Date)
	assert.Equal(t, "Average per Video", s.Metric)
	assert.Equal(t, 2019, s.Year)
	assert.Equal(t, "Music", s.Category, "absent params keep their value")
}

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	base := Default()
	_ = base.Apply(url.Values{"country": {"IT"}})
	assert.Equal(t, "DE", base.Country)
}

func TestApply_EmptyValueClears(t *testing.T) {
	s := Default().Apply(url.Values{"category": {""}})
	assert.Equal(t, "", s.Category)
}

func TestApply_InvalidYearIgnored(t *testing.T) {
	s := Default().Apply(url.Values{"year": {"twenty"}})
	assert.Equal(t, 2013, s.Year)

	s = Default().Apply(url.Values{"year": {"2031"}})
	assert.Equal(t, 2031, s.Year, "range is enforced by the stepper and the keyword mapping")
}

func TestValues_RoundTrip(t *testing.T) {
	s := Default()
	s.Topic = "all categories"
	s.Year = 2020
	assert.Equal(t, s, State{}.Apply(s.Values()))
}

func TestStepYear(t *testing.T) {
	tests := []struct {
		name string
		year int
		step Step
		want int
	}{
		{"back", 2015, StepBack, 2014},
		{"back clamps at min", 2013, StepBack, 2013},
		{"forward", 2015, StepForward, 2016},
		{"forward clamps at max", 2023, StepForward, 2023},
		{"back from above range", 2025, StepBack, 2023},
		{"forward from above range", 2030, StepForward, 2023},
		{"forward from below range", 1990, StepForward, 2013},
		{"back from below range", 1990, StepBack, 2013},
		{"unknown step", 2015, Step("sideways"), 2015},
		{"empty step", 2015, Step(""), 2015},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StepYear(tt.year, tt.step))
		})
	}
}

func TestStepYear_StaysInRange(t *testing.T) {
	for y := dataset.MinYear - 5; y <= dataset.MaxYear+5; y++ {
		for _, step := range []Step{StepBack, StepForward} {
			got := StepYear(y, step)
			assert.True(t, dataset.InYearRange(got), "%d %s -> %d", y, step, got)
		}
	}
}
