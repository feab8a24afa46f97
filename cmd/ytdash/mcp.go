// Copyright 2026 The ytdash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/DJBartoli/YouTube-Science-Project/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running ytdash as an MCP server, exposing the dashboard charts to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing the dashboard's tools:
  - list_charts:     List the chart binders and their inputs
  - bind_chart:      Compute the Plotly figures of a binder for a selection
  - asset_inventory: Report missing or malformed data files

The server communicates using the Model Context Protocol (MCP) over stdio
transport. Logs go to stderr so they never mix with the protocol stream.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(app)
		if err != nil {
			return err
		}
		env, cleanup, err := buildEnv(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := mcpserver.Run(cmd.Context(), Version, env, &mcp.StdioTransport{}); err != nil {
			return exitError(ExitServerFailure, "ytdash: mcp: %v", err)
		}
		return nil
	},
}

func init() {
	mcpServeCmd.Flags().AddFlagSet(appFlagSet(&app))
	mcpCmd.AddCommand(mcpServeCmd)
}
