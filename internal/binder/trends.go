// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package binder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/DJBartoli/YouTube-Science-Project/internal/chart"
	"github.com/DJBartoli/YouTube-Science-Project/internal/dataset"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
	"github.com/DJBartoli/YouTube-Science-Project/internal/geo"
)

// Binder names for the trends page.
const (
	NameCategoryDistribution = "category-distribution"
	NameWeeklyTrend          = "weekly-trend"
	NameCountryMap           = "country-map"
)

// Map view settings.
const (
	countryZoom  = 3
	fallbackZoom = 1
	mapStyle     = "carto-positron"
)

var fallbackCenter = chart.LatLon{Lat: 50, Lon: 10}

func init() {
	Register(&funcBinder{
		name:        NameCategoryDistribution,
		description: "Pie chart of video categories among one country's top videos on one day.",
		inputs:      []string{filter.ParamCountry, filter.ParamDate},
		bind: func(_ context.Context, env *Env, st filter.State) (Result, error) {
			fig, err := CategoryDistribution(env, st.Country, st.Date)
			return single(NameCategoryDistribution, fig), err
		},
	})
	Register(&funcBinder{
		name:        NameWeeklyTrend,
		description: "Daily quantity of one category in one country's top videos.",
		inputs:      []string{filter.ParamCategory, filter.ParamCountry},
		bind: func(_ context.Context, env *Env, st filter.State) (Result, error) {
			fig, err := WeeklyTrend(env, st.Category, st.Country)
			return single(NameWeeklyTrend, fig), err
		},
	})
	Register(&funcBinder{
		name:        NameCountryMap,
		description: "Map of Europe centred on the selected country.",
		inputs:      []string{filter.ParamCountry},
		bind: func(ctx context.Context, env *Env, st filter.State) (Result, error) {
			fig, err := CountryMap(ctx, env, st.Country)
			return single(NameCountryMap, fig), err
		},
	})
}

// CategoryDistribution sums quantity per category for one country and day.
// Unknown countries, unparsable dates, dates outside the collection window,
// and days without rows all yield the no-data placeholder.
func CategoryDistribution(env *Env, country, date string) (*chart.Figure, error) {
	if !dataset.IsCountry(country) {
		return chart.Placeholder(NoDataMessage), nil
	}
	day, ok := dataset.ParseDate(date)
	if !ok || !dataset.InDateWindow(day, env.now()) {
		return chart.Placeholder(NoDataMessage), nil
	}

	df, err := env.Store.Distribution(country)
	if err != nil {
		return nil, err
	}
	df = df.Filter(dataframe.F{
		Colname:    dataset.ColExecutionDate,
		Comparator: series.Eq,
		Comparando: day.Format(dataset.DateLayout),
	})
	if df.Err != nil {
		return nil, fmt.Errorf("filter distribution: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return chart.Placeholder(NoDataMessage), nil
	}

	titles, sums, err := sumBy(df, dataset.ColCategoryTitle, dataset.ColQuantity)
	if err != nil {
		return nil, err
	}

	fig := chart.Themed()
	fig.Data = append(fig.Data, chart.Trace{
		Type:          "pie",
		Labels:        titles,
		Values:        sums,
		Marker:        &chart.Marker{Colors: dataset.CategoryColors(titles)},
		HoverTemplate: "%{label}<extra></extra>",
	})
	return fig, nil
}

// WeeklyTrend charts one category's daily quantity in one country, oldest
// day first. Days without data are simply absent.
func WeeklyTrend(env *Env, category, country string) (*chart.Figure, error) {
	if category == "" || country == "" {
		return chart.Empty(), nil
	}

	df, err := env.Store.Weekly()
	if err != nil {
		return nil, err
	}
	df = df.
		Filter(dataframe.F{Colname: dataset.ColCategoryTitle, Comparator: series.Eq, Comparando: category}).
		Filter(dataframe.F{Colname: dataset.ColCountry, Comparator: series.Eq, Comparando: country})
	if df.Err != nil {
		return nil, fmt.Errorf("filter weekly table: %w", df.Err)
	}

	dates, quantities, err := sumBy(df, dataset.ColExecutionDate, dataset.ColQuantity)
	if err != nil {
		return nil, err
	}
	if dates == nil {
		dates, quantities = []string{}, []float64{}
	}

	fig := chart.Themed()
	fig.Data = append(fig.Data, chart.Trace{
		Type:          "bar",
		Name:          country,
		X:             dates,
		Y:             quantities,
		Marker:        &chart.Marker{Color: chart.Accent},
		HoverTemplate: "%{y}<extra></extra>",
	})
	fig.Layout.Title = &chart.Title{Text: fmt.Sprintf("Data for %s in %s", category, country)}
	fig.Layout.XAxis = chart.AxisTitle("Date")
	fig.Layout.YAxis = chart.AxisTitle("Quantity")
	fig.Layout.ShowLegend = chart.Bool(false)
	return fig, nil
}

// CountryMap centres the Europe boundaries on a country. When the location
// cannot be resolved the map falls back to a wide default view carrying a
// note, so the page still renders.
func CountryMap(ctx context.Context, env *Env, country string) (*chart.Figure, error) {
	boundaries, err := env.Store.GeoJSON()
	if err != nil {
		return nil, err
	}

	fig := chart.Themed()
	fig.Data = append(fig.Data, chart.Trace{
		Type:      "choroplethmapbox",
		GeoJSON:   boundaries,
		Locations: []string{},
		Z:         []float64{},
		ShowScale: chart.Bool(false),
	})
	fig.Layout.Margin = &chart.Margin{}

	coords, err := locate(ctx, env.Geocoder, country)
	if err != nil {
		slog.Info("country location unavailable", "country", country, "error", err)
		fig.Layout.Mapbox = &chart.Mapbox{Style: mapStyle, Center: fallbackCenter, Zoom: fallbackZoom}
		fig.Layout.Annotations = []chart.Annotation{{
			Text:      "Location unavailable for " + country,
			X:         0.5,
			Y:         0.95,
			XRef:      "paper",
			YRef:      "paper",
			ShowArrow: false,
		}}
		return fig, nil
	}

	fig.Layout.Mapbox = &chart.Mapbox{
		Style:  mapStyle,
		Center: chart.LatLon{Lat: coords.Lat, Lon: coords.Lon},
		Zoom:   countryZoom,
	}
	return fig, nil
}

func locate(ctx context.Context, g geo.Geocoder, country string) (geo.Coordinates, error) {
	if g == nil {
		return geo.Coordinates{}, fmt.Errorf("%w: no geocoder configured", geo.ErrNotFound)
	}
	if country == "" {
		return geo.Coordinates{}, fmt.Errorf("%w: no country selected", geo.ErrNotFound)
	}
	return g.Locate(ctx, dataset.CountryName(country))
}
