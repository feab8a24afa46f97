// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package page describes the dashboard pages: their route, their text, the
// selector controls they offer, and which binders draw their charts.
package page

import (
	"strconv"
	"time"

	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// ControlKind selects how a control is drawn.
type ControlKind string

// Control kinds.
const (
	Select ControlKind = "select"
	Date   ControlKind = "date"
	Slider ControlKind = "slider"
)

// Option is one choice of a select control.
type Option struct {
	Label string
	Value string
}

// Control is a selector widget bound to one filter parameter.
type Control struct {
	Kind    ControlKind
	Param   string
	Label   string
	Options []Option
	// Min and Max bound date and slider controls.
	Min string
	Max string
	// Stepper adds back/forward buttons to a slider.
	Stepper bool
}

// Section is one block of a page: text, controls, and the charts of at most
// one binder.
type Section struct {
	Heading  string
	Text     []string
	Controls []Control
	Binder   string
	Charts   []string
	// ShowText renders the binder's result text below the charts.
	ShowText bool
	// Deferred sections are fetched by the browser after load instead of
	// being computed into the page.
	Deferred bool
}

// Page is one route of the dashboard.
type Page struct {
	Slug    string
	Path    string
	Name    string
	Heading string
	Intro   []string
	// InNav is false for pages reached only through the footer.
	InNav    bool
	Sections []Section
}

// Binders returns the binder names the page uses, in section order.
func (p Page) Binders() []string {
	var out []string
	for _, s := range p.Sections {
		if s.Binder != "" {
			out = append(out, s.Binder)
		}
	}
	return out
}

// Options carries the values pages need that are only known at run time.
type Options struct {
	Categories []string
	Now        time.Time
}

// All returns every page in navigation order.
func All(opts Options) []Page {
	return []Page{
		home(),
		trends(opts),
		videoLength(),
		commentBehavior(),
		keywordAnalysis(),
		durationInteractions(),
		imprint(),
	}
}

// FindPath returns the page served at path.
func FindPath(pages []Page, path string) (Page, bool) {
	for _, p := range pages {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}

// FindSlug returns the page with the given slug.
func FindSlug(pages []Page, slug string) (Page, bool) {
	for _, p := range pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Slugs returns the slug of every page.
func Slugs(pages []Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Slug
	}
	return out
}

func home() Page {
	return Page{
		Slug:    "home",
		Path:    "/",
		Name:    "Home",
		Heading: "Visualizing YouTube",
		Intro: []string{
			"This dashboard explores what a decade of YouTube metadata says about the platform: " +
				"which categories trend where, how long videos have become, how quickly comments arrive, " +
				"which keywords defined each year, and how video length relates to viewer interaction.",
			"Pick a page from the navigation bar to start.",
		},
		InNav: true,
	}
}

func trends(opts Options) Page {
	countries := make([]Option, len(dataset.Countries))
	for i, c := range dataset.Countries {
		countries[i] = Option{Label: c.Name, Value: c.Code}
	}
	categories := make([]Option, len(opts.Categories))
	for i, c := range opts.Categories {
		categories[i] = Option{Label: c, Value: c}
	}
	first, last := dataset.DateWindow(opts.Now)

	return Page{
		Slug:    "trends",
		Path:    "/trends",
		Name:    "Trends",
		Heading: "YouTube Trends Analytics",
		Intro: []string{
			"The distribution of categories among the top 100 videos per day and country. " +
				"The selectable countries cover every EU member state and a few countries from each other continent. " +
				"Dates can be chosen within the range where data was collected.",
		},
		InNav: true,
		Sections: []Section{
			{
				Controls: []Control{
					{Kind: Select, Param: filter.ParamCountry, Label: "Country", Options: countries},
					{
						Kind:  Date,
						Param: filter.ParamDate,
						Label: "Date",
						Min:   first.Format(dataset.DateLayout),
						Max:   last.Format(dataset.DateLayout),
					},
				},
				Binder: binder.NameCategoryDistribution,
				Charts: []string{binder.NameCategoryDistribution},
			},
			{
				Binder:   binder.NameCountryMap,
				Charts:   []string{binder.NameCountryMap},
				Deferred: true,
			},
			{
				Text: []string{
					"The daily share of a single category over the collected days, for the country selected above.",
					"Music releases land on Friday nights, so music videos jump at the end of each week and fade again by the next Friday.",
					"Days without values are days where the collection query failed.",
				},
				Controls: []Control{
					{Kind: Select, Param: filter.ParamCategory, Label: "Category", Options: categories},
				},
				Binder: binder.NameWeeklyTrend,
				Charts: []string{binder.NameWeeklyTrend},
			},
		},
	}
}

func videoLength() Page {
	return Page{
		Slug:    "video-length",
		Path:    "/video-length",
		Name:    "Video Length",
		Heading: "Video Length over the Years",
		Intro: []string{
			"Average video length per category from 2013 to 2023. The dashed lines mark the start of " +
				"the global pandemic and the launch of Shorts.",
		},
		InNav: true,
		Sections: []Section{{
			Controls: []Control{{
				Kind:  Select,
				Param: filter.ParamDataset,
				Label: "Dataset",
				Options: []Option{
					{Label: "All videos", Value: dataset.DatasetOriginal},
					{Label: "Without Shorts", Value: dataset.DatasetFiltered},
				},
			}},
			Binder:   binder.NameVideoLength,
			Charts:   []string{binder.ChartVideoLengthArea, binder.ChartVideoLengthLine},
			ShowText: true,
		}},
	}
}

func commentBehavior() Page {
	channels := make([]Option, len(dataset.Channels))
	for i, c := range dataset.Channels {
		channels[i] = Option{Label: c, Value: c}
	}
	return Page{
		Slug:    "comment-behavior",
		Path:    "/comment-behavior",
		Name:    "Comment Behaviour",
		Heading: "When do Viewers Comment?",
		Intro: []string{
			"How comments on a channel's videos are spread over the first 100 days after upload.",
		},
		InNav: true,
		Sections: []Section{{
			Controls: []Control{
				{Kind: Select, Param: filter.ParamChannel, Label: "Channel", Options: channels},
				{
					Kind:  Select,
					Param: filter.ParamMetric,
					Label: "Metric",
					Options: []Option{
						{Label: dataset.MetricRelativeProbability, Value: dataset.MetricRelativeProbability},
						{Label: dataset.MetricAveragePerVideo, Value: dataset.MetricAveragePerVideo},
					},
				},
			},
			Binder: binder.NameCommentBehavior,
			Charts: []string{binder.NameCommentBehavior},
		}},
	}
}

func keywordAnalysis() Page {
	topics := dataset.TopicOptions()
	options := make([]Option, len(topics))
	for i, t := range topics {
		options[i] = Option{Label: t, Value: t}
	}
	slider := Control{
		Kind:    Slider,
		Param:   filter.ParamYear,
		Label:   "Year",
		Min:     strconv.Itoa(dataset.MinYear),
		Max:     strconv.Itoa(dataset.MaxYear),
		Stepper: true,
	}
	for _, y := range dataset.Years() {
		s := strconv.Itoa(y)
		slider.Options = append(slider.Options, Option{Label: s, Value: s})
	}

	return Page{
		Slug:    "keyword-analysis",
		Path:    "/keyword-analysis",
		Name:    "Keyword Analysis",
		Heading: "YouTube through the Years",
		Intro: []string{
			"The most common title keywords of the most watched videos, by topic and year.",
			"A single cloud over the top videos of each year showed few trends, so the keywords are also split by topic. " +
				"Select \"all categories\" to see the yearly clouds.",
		},
		InNav: true,
		Sections: []Section{
			{
				Controls: []Control{
					{Kind: Select, Param: filter.ParamTopic, Label: "Topic", Options: options},
					slider,
				},
				Binder: binder.NameKeywordCloud,
				Charts: []string{binder.NameKeywordCloud},
			},
			{
				Binder: binder.NameKeywordFrequency,
				Charts: []string{binder.NameKeywordFrequency},
			},
		},
	}
}

func durationInteractions() Page {
	return Page{
		Slug:    "duration-interactions",
		Path:    "/duration-interactions",
		Name:    "Duration Interactions",
		Heading: "Viewer Interaction based on Video Length",
		Intro: []string{
			"The charts on this page relate video length to viewer engagement for the channel \"Markiplier\".",
		},
		InNav: true,
		Sections: []Section{
			{
				Text: []string{
					"Engagement varies a lot between channels, so this page focuses on one channel with many videos " +
						"of very different lengths and almost no Shorts. The shortest videos collect the most comments per view, " +
						"and comments drop as videos get longer. Likes are highest for the shortest and lowest for the longest videos.",
				},
				Binder: binder.NameDurationInteraction,
				Charts: []string{binder.NameDurationInteraction},
			},
			{
				Heading: "Data displayed as a Boxplot",
				Text: []string{
					"Entries more than three standard deviations from the mean were removed before plotting, " +
						"so the boxes use the linear quartile method.",
				},
				Controls: []Control{{
					Kind:  Select,
					Param: filter.ParamInteraction,
					Label: "Interaction",
					Options: []Option{
						{Label: dataset.InteractionComments, Value: dataset.InteractionComments},
						{Label: dataset.InteractionLikes, Value: dataset.InteractionLikes},
					},
				}},
				Binder: binder.NameDurationDistribution,
				Charts: []string{binder.NameDurationDistribution},
			},
		},
	}
}

func imprint() Page {
	return Page{
		Slug:    "imprint",
		Path:    "/imprint",
		Name:    "Imprint",
		Heading: "Imprint",
		Intro: []string{
			"Visualizing YouTube is a student data-science project. All statistics were computed from public " +
				"YouTube metadata and are shown for educational purposes only.",
			"YouTube is a trademark of Google LLC. This project is not affiliated with or endorsed by YouTube or Google.",
		},
	}
}
