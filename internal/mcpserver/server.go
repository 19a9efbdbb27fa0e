// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes riskpulse dashboards and events as tools over stdio transport.
package mcpserver

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

// Defaults fill in tool inputs that leave a field unset.
type Defaults struct {
	Params    dataset.Params
	Selection query.Selection
	Sections  []string
}

// New creates a new MCP server with riskpulse's tools registered. Tables are
// generated through memo, so repeated calls with the same parameters share
// one generation run.
func New(version string, memo *dataset.Memo, defaults Defaults) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "riskpulse",
		Title:   "Riskpulse - Risk Event Dashboards",
		Version: version,
	}, nil)

	h := &handlers{memo: memo, defaults: defaults, now: time.Now}
	h.register(server)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, memo *dataset.Memo, defaults Defaults, transport mcp.Transport) error {
	return New(version, memo, defaults).Run(ctx, transport)
}
