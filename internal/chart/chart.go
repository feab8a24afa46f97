// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

// Package chart defines the renderable chart payloads produced by binders.
// A Figure serializes to the {"data": [...], "layout": {...}} shape that
// plotly.js consumes, so the browser can draw it without further mapping.
package chart

import "encoding/json"

// Dashboard colours shared by every figure.
const (
	Accent     = "#dd2b2b"
	PlotBG     = "#e7e7e7"
	PaperBG    = "#d1d1d1"
	MarkerLine = "#606060"
)

// Figure is a complete chart payload.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one data series. Only the fields a binder sets are emitted.
type Trace struct {
	Type           string          `json:"type"`
	Name           string          `json:"name,omitempty"`
	X              any             `json:"x,omitempty"`
	Y              any             `json:"y,omitempty"`
	Labels         []string        `json:"labels,omitempty"`
	Values         []float64       `json:"values,omitempty"`
	Orientation    string          `json:"orientation,omitempty"`
	Mode           string          `json:"mode,omitempty"`
	StackGroup     string          `json:"stackgroup,omitempty"`
	Marker         *Marker         `json:"marker,omitempty"`
	HoverTemplate  string          `json:"hovertemplate,omitempty"`
	Source         string          `json:"source,omitempty"`
	GeoJSON        json.RawMessage `json:"geojson,omitempty"`
	Locations      []string        `json:"locations,omitempty"`
	Z              []float64       `json:"z,omitempty"`
	ShowScale      *bool           `json:"showscale,omitempty"`
	QuartileMethod string          `json:"quartilemethod,omitempty"`
}

// Marker styles a trace. Color applies to the whole trace, Colors per point.
type Marker struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

// Layout holds figure-level settings.
type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	BarMode      string       `json:"barmode,omitempty"`
	ShowLegend   *bool        `json:"showlegend,omitempty"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
	Shapes       []Shape      `json:"shapes,omitempty"`
	Mapbox       *Mapbox      `json:"mapbox,omitempty"`
	Margin       *Margin      `json:"margin,omitempty"`
}

// Title is a figure or axis title.
type Title struct {
	Text string `json:"text"`
}

// Axis configures one axis.
type Axis struct {
	Title          *Title   `json:"title,omitempty"`
	Visible        *bool    `json:"visible,omitempty"`
	ShowTickLabels *bool    `json:"showticklabels,omitempty"`
	AutoRange      string   `json:"autorange,omitempty"`
	CategoryOrder  string   `json:"categoryorder,omitempty"`
	CategoryArray  []string `json:"categoryarray,omitempty"`
	TickVals       []string `json:"tickvals,omitempty"`
	TickText       []string `json:"ticktext,omitempty"`
}

// Annotation is free text placed on the figure.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	ShowArrow bool    `json:"showarrow"`
	Font      *Font   `json:"font,omitempty"`
}

// Font sets annotation text size.
type Font struct {
	Size  int    `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Shape is a line or region drawn over the plot.
type Shape struct {
	Type string  `json:"type"`
	XRef string  `json:"xref"`
	YRef string  `json:"yref"`
	X0   float64 `json:"x0"`
	X1   float64 `json:"x1"`
	Y0   float64 `json:"y0"`
	Y1   float64 `json:"y1"`
	Line *Line   `json:"line,omitempty"`
}

// Line styles a shape outline.
type Line struct {
	Color string `json:"color,omitempty"`
	Dash  string `json:"dash,omitempty"`
	Width int    `json:"width,omitempty"`
}

// Mapbox positions a map figure.
type Mapbox struct {
	Style  string  `json:"style"`
	Center LatLon  `json:"center"`
	Zoom   float64 `json:"zoom"`
}

// LatLon is a map centre.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Margin sets the plot margins in pixels.
type Margin struct {
	R int `json:"r"`
	T int `json:"t"`
	L int `json:"l"`
	B int `json:"b"`
}

// Bool returns a pointer to b, for the optional flags above.
func Bool(b bool) *bool { return &b }

// Empty returns a figure with no traces and default layout, the payload for
// selections that are not yet complete.
func Empty() *Figure {
	return &Figure{Data: []Trace{}}
}

// Themed returns an empty figure with the dashboard background colours.
func Themed() *Figure {
	return &Figure{
		Data: []Trace{},
		Layout: Layout{
			PlotBGColor:  PlotBG,
			PaperBGColor: PaperBG,
		},
	}
}

// Placeholder returns a figure with no data series and a centred message.
func Placeholder(message string) *Figure {
	return &Figure{
		Data: []Trace{},
		Layout: Layout{
			Annotations: []Annotation{{
				Text:      message,
				X:         0.5,
				Y:         0.5,
				XRef:      "paper",
				YRef:      "paper",
				ShowArrow: false,
				Font:      &Font{Size: 25},
			}},
			ShowLegend:   Bool(false),
			PlotBGColor:  PaperBG,
			PaperBGColor: PaperBG,
			XAxis:        &Axis{Visible: Bool(false)},
			YAxis:        &Axis{Visible: Bool(false)},
		},
	}
}

// IsPlaceholder reports whether f carries no data series and exactly one
// annotation, i.e. was produced by Placeholder.
func (f *Figure) IsPlaceholder() bool {
	return f != nil && len(f.Data) == 0 && len(f.Layout.Annotations) == 1
}

// Message returns the placeholder text, or "" when f is not a placeholder.
func (f *Figure) Message() string {
	if !f.IsPlaceholder() {
		return ""
	}
	return f.Layout.Annotations[0].Text
}

// AxisTitle builds an axis with only a title set.
func AxisTitle(text string) *Axis {
	return &Axis{Title: &Title{Text: text}}
}

// AddYearMarker draws a dashed vertical line at year with a label at the top
// of the plot area.
func (f *Figure) AddYearMarker(year int, label string) {
	x := float64(year)
	f.Layout.Shapes = append(f.Layout.Shapes, Shape{
		Type: "line",
		XRef: "x",
		YRef: "paper",
		X0:   x,
		X1:   x,
		Y0:   0,
		Y1:   1,
		Line: &Line{Color: MarkerLine, Dash: "dash", Width: 2},
	})
	f.Layout.Annotations = append(f.Layout.Annotations, Annotation{
		Text:      label,
		X:         x,
		Y:         1.05,
		XRef:      "x",
		YRef:      "paper",
		ShowArrow: false,
	})
}
