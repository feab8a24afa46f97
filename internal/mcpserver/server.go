// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DJBartoli/YouTube-Science-Project/internal/binder"
)

// New creates a new MCP server exposing the chart binders over env.
func New(version string, env *binder.Env) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ytdash",
		Title:   "Visualizing YouTube",
		Version: version,
	}, nil)

	registerTools(server, &tools{env: env})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, env *binder.Env, transport mcp.Transport) error {
	server := New(version, env)
	return server.Run(ctx, transport)
}
