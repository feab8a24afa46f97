// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DJBartoli/YouTube-Science-Project/internal/assets"
)

func sampleEntries() []assets.InventoryEntry {
	return []assets.InventoryEntry{
		{Key: "distribution/DE", Path: "Trends100vRegions/DE_category_distribution.csv", Rows: 11},
		{Key: "geojson", Path: "europe.geojson", Rows: -1},
		{Key: "comments/mkbhd", Path: "commentDevelopment/mkbhd_comment_development.csv", Rows: -1,
			Err: fmt.Errorf("%w: no such file", assets.ErrMissingAsset)},
		{Key: "duration/summary", Path: "duration/Markiplier_Formatted.csv", Rows: -1,
			Err: fmt.Errorf("%w: negative Length in row 3", assets.ErrInvalidAsset)},
		{Key: "videoLength/original", Path: "videoLength/original_length_by_category.csv", Rows: -1,
			Err: errors.New("read failed")},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleEntries())
	assert.Equal(t, Summary{OK: 2, Missing: 1, Invalid: 2}, s)
	assert.Equal(t, 3, s.Problems())
	assert.Zero(t, Summarize(nil).Problems())
}

func TestRenderInventory(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	require.NoError(t, RenderInventory(&buf, "Tables", sampleEntries(), InventoryOptions{}))

	lines := splitLines(buf.String())
	assert.Equal(t, "Tables", lines[0])
	assert.Contains(t, lines[1], "Status")
	assert.Contains(t, buf.String(), "ok       distribution/DE")
	assert.Contains(t, buf.String(), "MISSING  comments/mkbhd")
	assert.Contains(t, buf.String(), "negative Length in row 3")
	assert.Contains(t, buf.String(), "   11  ")
	assert.Equal(t, "  2 ok, 1 missing, 2 invalid", lines[len(lines)-1])
}

func TestRenderInventory_ProblemsOnly(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	require.NoError(t, RenderInventory(&buf, "Tables", sampleEntries(), InventoryOptions{ProblemsOnly: true}))

	assert.NotContains(t, buf.String(), "distribution/DE")
	assert.Contains(t, buf.String(), "INVALID  duration/summary")
}

func TestRenderInventory_AllHealthy(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	entries := sampleEntries()[:2]
	require.NoError(t, RenderInventory(&buf, "Tables", entries, InventoryOptions{ProblemsOnly: true}))

	assert.Equal(t, []string{"Tables", "  2 ok, 0 missing, 0 invalid"}, splitLines(buf.String()))
}
