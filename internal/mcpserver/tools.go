// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
	"github.com/DJBartoli/YouTube-Science-Project/internal/filter"
)

// ListChartsInput is the input schema for the list_charts tool.
type ListChartsInput struct{}

// BindChartInput is the input schema for the bind_chart tool. Empty fields
// keep their dashboard defaults.
type BindChartInput struct {
	Binder      string `json:"binder" jsonschema:"Binder name as returned by list_charts"`
	Country     string `json:"country,omitempty" jsonschema:"ISO2 country code (e.g. DE)"`
	Date        string `json:"date,omitempty" jsonschema:"Day in YYYY-MM-DD form"`
	Category    string `json:"category,omitempty" jsonschema:"Video category title (e.g. Music)"`
	Dataset     string `json:"dataset,omitempty" jsonschema:"Video length dataset: original or filtered"`
	Channel     string `json:"channel,omitempty" jsonschema:"Channel for comment behaviour"`
	Metric      string `json:"metric,omitempty" jsonschema:"Relative Probability or Average per Video"`
	Topic       string `json:"topic,omitempty" jsonschema:"Keyword topic or 'all categories'"`
	Year        int    `json:"year,omitempty" jsonschema:"Keyword year between 2013 and 2023"`
	Interaction string `json:"interaction,omitempty" jsonschema:"Comments or Likes"`
}

// AssetsInput is the input schema for the asset_inventory tool.
type AssetsInput struct {
	Keywords bool `json:"keywords,omitempty" jsonschema:"Also list the keyword cloud files"`
}

type chartInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Inputs      []string `json:"inputs"`
}

type assetInfo struct {
	Key    string `json:"key"`
	Path   string `json:"path"`
	Status string `json:"status"`
	Rows   int    `json:"rows,omitempty"`
	Error  string `json:"error,omitempty"`
}

type tools struct {
	env *binder.Env
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all dashboard tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_charts",
		Description: "List the dashboard chart binders with the selector parameters each one reads.",
		Annotations: readOnly(),
	}, t.handleListCharts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bind_chart",
		Description: "Compute the Plotly figures of one chart binder for a selection. Returns the figures as JSON.",
		Annotations: readOnly(),
	}, t.handleBindChart)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "asset_inventory",
		Description: "Report which data files were loaded, which are missing, and which failed to parse.",
		Annotations: readOnly(),
	}, t.handleAssets)
}

func textResult(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding failed: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func (t *tools) handleListCharts(_ context.Context, _ *mcp.CallToolRequest, _ ListChartsInput) (*mcp.CallToolResult, any, error) {
	names := binder.List()
	out := make([]chartInfo, 0, len(names))
	for _, name := range names {
		b := binder.Get(name)
		out = append(out, chartInfo{Name: name, Description: b.Description(), Inputs: b.Inputs()})
	}
	return textResult(out)
}

func (t *tools) handleBindChart(ctx context.Context, _ *mcp.CallToolRequest, input BindChartInput) (*mcp.CallToolResult, any, error) {
	name := strings.TrimSpace(input.Binder)
	if name == "" {
		return nil, nil, fmt.Errorf("binder is required (available: %s)", strings.Join(binder.List(), ", "))
	}

	res, err := binder.Run(ctx, t.env, name, input.state())
	if err != nil {
		return nil, nil, err
	}
	return textResult(res)
}

// state overlays the non-empty input fields on the default selection.
func (in BindChartInput) state() filter.State {
	q := url.Values{}
	set := func(key, value string) {
		if value != "" {
			q.Set(key, value)
		}
	}
	set(filter.ParamCountry, in.Country)
	set(filter.ParamDate, in.Date)
	set(filter.ParamCategory, in.Category)
	set(filter.ParamDataset, in.Dataset)
	set(filter.ParamChannel, in.Channel)
	set(filter.ParamMetric, in.Metric)
	set(filter.ParamTopic, in.Topic)
	set(filter.ParamInteraction, in.Interaction)
	if in.Year != 0 {
		q.Set(filter.ParamYear, strconv.Itoa(in.Year))
	}
	return filter.Default().Apply(q)
}

func (t *tools) handleAssets(_ context.Context, _ *mcp.CallToolRequest, input AssetsInput) (*mcp.CallToolResult, any, error) {
	entries := t.env.Store.Inventory()
	if input.Keywords {
		entries = append(entries, t.env.Store.KeywordInventory()...)
	}

	out := make([]assetInfo, 0, len(entries))
	for _, e := range entries {
		info := assetInfo{Key: e.Key, Path: e.Path, Status: string(e.Status())}
		if e.Rows > 0 {
			info.Rows = e.Rows
		}
		if e.Err != nil {
			info.Error = e.Err.Error()
		}
		out = append(out, info)
	}
	return textResult(out)
}
