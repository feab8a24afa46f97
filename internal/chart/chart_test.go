// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	fig := Placeholder("nothing here")

	assert.True(t, fig.IsPlaceholder())
	assert.Equal(t, "nothing here", fig.Message())
	assert.Empty(t, fig.Data)
	require.NotNil(t, fig.Layout.XAxis)
	assert.False(t, *fig.Layout.XAxis.Visible)
	assert.False(t, *fig.Layout.ShowLegend)
}

func TestPlaceholder_JSONShape(t *testing.T) {
	raw, err := json.Marshal(Placeholder("No data"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	data, ok := decoded["data"].([]any)
	require.True(t, ok, "data must serialize as an array, not null")
	assert.Empty(t, data)

	layout := decoded["layout"].(map[string]any)
	anns := layout["annotations"].([]any)
	require.Len(t, anns, 1)
	ann := anns[0].(map[string]any)
	assert.Equal(t, "No data", ann["text"])
	assert.Equal(t, false, ann["showarrow"])
	assert.Equal(t, "paper", ann["xref"])
}

func TestIsPlaceholder_RegularFigure(t *testing.T) {
	fig := Themed()
	fig.Data = append(fig.Data, Trace{Type: "bar"})
	assert.False(t, fig.IsPlaceholder())
	assert.Equal(t, "", fig.Message())

	var nilFig *Figure
	assert.False(t, nilFig.IsPlaceholder())
}

func TestEmpty(t *testing.T) {
	raw, err := json.Marshal(Empty())
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"layout":{}}`, string(raw))
}

func TestAddYearMarker(t *testing.T) {
	fig := Themed()
	fig.AddYearMarker(2020, "Pandemic")
	fig.AddYearMarker(2021, "Shorts")

	require.Len(t, fig.Layout.Shapes, 2)
	require.Len(t, fig.Layout.Annotations, 2)
	assert.Equal(t, 2020.0, fig.Layout.Shapes[0].X0)
	assert.Equal(t, 2020.0, fig.Layout.Shapes[0].X1)
	assert.Equal(t, "paper", fig.Layout.Shapes[0].YRef)
	assert.Equal(t, "Shorts", fig.Layout.Annotations[1].Text)
	assert.False(t, fig.IsPlaceholder())
}

func TestTrace_OmitsUnsetFields(t *testing.T) {
	raw, err := json.Marshal(Trace{Type: "pie", Labels: []string{"a"}, Values: []float64{1}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pie","labels":["a"],"values":[1]}`, string(raw))
}
