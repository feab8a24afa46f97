// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package page

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets"
	"github.com/DJBartoli/YouTube-Science-Project/internal/assets/assetstest"
	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
	"github.com/DJBartoli/YouTube-Science-Project/internal/geo"
)

var fixedNow = time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)

func newBuilder(t *testing.T) *Builder {
	t.Helper()
	store, err := assets.Load(context.Background(), assetstest.Write(t))
	require.NoError(t, err)
	categories, err := store.Categories()
	require.NoError(t, err)

	env := binder.NewEnv(store, geo.GeocoderFunc(func(context.Context, string) (geo.Coordinates, error) {
		return geo.Coordinates{Lat: 51, Lon: 10}, nil
	}))
	env.Now = func() time.Time { return fixedNow }

	b := NewBuilder(env, All(Options{Categories: categories, Now: fixedNow}))
	b.nowFunc = func() time.Time { return fixedNow }
	return b
}

func fixtureState() filter.State {
	st := filter.Default()
	st.Topic = assetstest.KeywordTopic
	return st
}

func render(t *testing.T, v View) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func mustPage(t *testing.T, pages []Page, slug string) Page {
	t.Helper()
	p, ok := FindSlug(pages, slug)
	require.True(t, ok, "page %q", slug)
	return p
}

func TestAll_Routes(t *testing.T) {
	pages := All(Options{Now: fixedNow})

	assert.Equal(t, []string{
		"home", "trends", "video-length", "comment-behavior",
		"keyword-analysis", "duration-interactions", "imprint",
	}, Slugs(pages))

	seen := map[string]bool{}
	for _, p := range pages {
		assert.False(t, seen[p.Path], "duplicate path %s", p.Path)
		seen[p.Path] = true
	}

	p, ok := FindPath(pages, "/trends")
	require.True(t, ok)
	assert.Equal(t, "trends", p.Slug)

	_, ok = FindPath(pages, "/nope")
	assert.False(t, ok)

	assert.False(t, mustPage(t, pages, "imprint").InNav)
}

func TestAll_BindersRegistered(t *testing.T) {
	params := filter.Default().Values()
	for _, p := range All(Options{Now: fixedNow}) {
		for _, s := range p.Sections {
			if s.Binder != "" {
				assert.NotNil(t, binder.Get(s.Binder), "page %s binder %s", p.Slug, s.Binder)
				assert.NotEmpty(t, s.Charts)
			}
			for _, c := range s.Controls {
				_, ok := params[c.Param]
				assert.True(t, ok, "page %s control %s", p.Slug, c.Param)
			}
		}
	}
}

func TestTrends_DateBounds(t *testing.T) {
	p := mustPage(t, All(Options{Now: fixedNow}), "trends")
	date := p.Sections[0].Controls[1]
	assert.Equal(t, Date, date.Kind)
	assert.Equal(t, "2024-03-06", date.Min)
	assert.Equal(t, "2024-03-31", date.Max)
}

func TestKeywordAnalysis_SliderMarks(t *testing.T) {
	p := mustPage(t, All(Options{Now: fixedNow}), "keyword-analysis")
	slider := p.Sections[0].Controls[1]
	assert.Equal(t, Slider, slider.Kind)
	assert.True(t, slider.Stepper)
	assert.Equal(t, "2013", slider.Min)
	assert.Equal(t, "2023", slider.Max)
	assert.Len(t, slider.Options, 11)
}

func TestBuild_DeferredMap(t *testing.T) {
	b := newBuilder(t)
	p := mustPage(t, b.Pages, "trends")

	v := b.Build(context.Background(), p, fixtureState(), false)
	require.Len(t, v.Sections, 3)
	assert.NotNil(t, v.Sections[0].Charts[0].Figure)
	assert.Nil(t, v.Sections[1].Charts[0].Figure)
	assert.Empty(t, v.Sections[1].Charts[0].Error)
	assert.Equal(t, []string{filter.ParamCountry}, v.Sections[1].Inputs)

	static := b.Build(context.Background(), p, fixtureState(), true)
	assert.NotNil(t, static.Sections[1].Charts[0].Figure)
}

func TestBuild_FailureScopedToChart(t *testing.T) {
	b := newBuilder(t)
	st := fixtureState()
	st.Country = "AT"

	v := b.Build(context.Background(), mustPage(t, b.Pages, "trends"), st, false)
	assert.Contains(t, v.Sections[0].Charts[0].Error, "missing")
	assert.Nil(t, v.Sections[0].Charts[0].Figure)
	assert.Empty(t, v.Sections[2].Charts[0].Error)
	assert.NotNil(t, v.Sections[2].Charts[0].Figure)

	doc := render(t, v)
	assert.Equal(t, 1, doc.Find("#chart-category-distribution .chart-error").Length())
	assert.Equal(t, 0, doc.Find("#chart-weekly-trend .chart-error").Length())
}

func TestRender_Navigation(t *testing.T) {
	b := newBuilder(t)
	v := b.Build(context.Background(), mustPage(t, b.Pages, "video-length"), fixtureState(), false)
	doc := render(t, v)

	brand := doc.Find("nav a.brand")
	assert.Equal(t, "/", brand.AttrOr("href", ""))
	assert.Equal(t, "Visualizing YouTube", brand.Text())

	links := doc.Find("nav a").Not(".brand")
	assert.Equal(t, 6, links.Length())
	assert.Equal(t, "/video-length", doc.Find("nav a.active").AttrOr("href", ""))
	assert.Equal(t, "/imprint", doc.Find("footer a").AttrOr("href", ""))
	assert.Contains(t, doc.Find("footer").Text(), "2024-04-01 12:00 UTC")
	assert.Equal(t, PlotlyURL, doc.Find("head script").AttrOr("src", ""))
}

func TestRender_Controls(t *testing.T) {
	b := newBuilder(t)
	st := fixtureState()
	st.Country = "FR"
	v := b.Build(context.Background(), mustPage(t, b.Pages, "trends"), st, false)
	doc := render(t, v)

	sel := doc.Find(`select[data-param="country"] option[selected]`)
	assert.Equal(t, "FR", sel.AttrOr("value", ""))
	assert.Equal(t, "France", sel.Text())

	date := doc.Find(`input[data-param="date"]`)
	assert.Equal(t, assetstest.Date, date.AttrOr("value", ""))
	assert.Equal(t, "2024-03-06", date.AttrOr("min", ""))

	section := doc.Find(`section[data-binder="weekly-trend"]`)
	assert.Equal(t, "category,country", section.AttrOr("data-inputs", ""))
	assert.Equal(t, 1, section.Find(`select[data-param="category"]`).Length())
	assert.Equal(t, 0, doc.Find("[disabled]").Length())
}

func TestRender_KeywordStepper(t *testing.T) {
	b := newBuilder(t)
	v := b.Build(context.Background(), mustPage(t, b.Pages, "keyword-analysis"), fixtureState(), false)
	doc := render(t, v)

	assert.Equal(t, "2013", doc.Find(`input[type=range][data-param="year"]`).AttrOr("value", ""))
	assert.Equal(t, 11, doc.Find("datalist#marks-year option").Length())
	assert.Equal(t, 1, doc.Find(`button[data-step="back"]`).Length())
	assert.Equal(t, 1, doc.Find(`button[data-step="forward"]`).Length())
	assert.Contains(t, doc.Find("body script").Text(), "/api/keywords/year?step=")
}

func TestRender_StaticEmbedsFigures(t *testing.T) {
	b := newBuilder(t)
	v := b.Build(context.Background(), mustPage(t, b.Pages, "video-length"), fixtureState(), true)

	initial := v.Initial()
	assert.Contains(t, initial, binder.ChartVideoLengthArea)
	assert.Contains(t, initial, binder.ChartVideoLengthLine)

	doc := render(t, v)
	script := doc.Find("body script").Text()
	assert.Contains(t, script, `"stackgroup":"one"`)
	assert.Regexp(t, `isStatic = +true`, script)
	assert.NotEmpty(t, doc.Find("p.binder-text").Text())
	assert.Equal(t, 1, doc.Find(`select[data-param="dataset"][disabled]`).Length())
}

func TestRender_HomeHasNoCharts(t *testing.T) {
	b := newBuilder(t)
	v := b.Build(context.Background(), mustPage(t, b.Pages, "home"), fixtureState(), false)
	doc := render(t, v)

	assert.Equal(t, 0, doc.Find(".chart").Length())
	assert.Equal(t, "Visualizing YouTube", doc.Find("h1").Text())
	assert.Empty(t, v.Initial())
}

func TestRender_AllPages(t *testing.T) {
	b := newBuilder(t)
	for _, p := range b.Pages {
		t.Run(p.Slug, func(t *testing.T) {
			v := b.Build(context.Background(), p, fixtureState(), false)
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, v))

			doc, err := goquery.NewDocumentFromReader(&buf)
			require.NoError(t, err)
			for i, s := range p.Sections {
				sec := doc.Find("section.section").Eq(i)
				for _, para := range s.Text {
					assert.Contains(t, sec.Text(), para)
				}
			}
		})
	}
}

func TestRender_SectionTextAndResultText(t *testing.T) {
	b := newBuilder(t)
	v := b.Build(context.Background(), mustPage(t, b.Pages, "video-length"), fixtureState(), false)
	require.NotEmpty(t, v.Sections)

	sv := v.Sections[0]
	assert.NotEmpty(t, sv.ResultText)

	doc := render(t, v)
	assert.Equal(t, sv.ResultText, doc.Find("p.binder-text").Text())
}
