// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/riskpulse/internal/config"
	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running riskpulse as an MCP server, exposing query, report and events tools to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout, exposing riskpulse's tools:
  - query:  Filter the event table and return dashboard aggregates as JSON
  - report: Render the dashboard report as text, markdown, json or html
  - events: Page through filtered events as JSON Lines

Flags and config files set the defaults for tool inputs that are omitted.
Tables are cached per seed, day count and end date for the life of the
server.`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	dsFlags.register(mcpServeCmd.Flags())
	mcpCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd.Flags(), &config.Config{})
	if err != nil {
		return err
	}
	defaults := mcpserver.Defaults{
		Params:    settings.Params,
		Selection: settings.Selection,
		Sections:  settings.Sections,
	}
	return mcpserver.Run(contextOrBackground(cmd), Version, dataset.NewMemo(), defaults, &mcp.StdioTransport{})
}
