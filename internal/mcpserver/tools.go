// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/output"
	"github.com/davetashner/riskpulse/internal/query"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// QueryInput is the input schema for the riskpulse query MCP tool.
type QueryInput struct {
	Seed       *int64 `json:"seed,omitempty" jsonschema:"Generation seed (default: server seed)"`
	Days       int    `json:"days,omitempty" jsonschema:"Number of days to generate (default: server days)"`
	EndDate    string `json:"end_date,omitempty" jsonschema:"Last generated day, YYYY-MM-DD (default: server end date)"`
	Platforms  string `json:"platforms,omitempty" jsonschema:"Comma-separated platforms, or none (default: all)"`
	RiskLevels string `json:"risk_levels,omitempty" jsonschema:"Comma-separated risk levels, or none (default: all)"`
	From       string `json:"from,omitempty" jsonschema:"First included day, YYYY-MM-DD"`
	To         string `json:"to,omitempty" jsonschema:"Last included day, YYYY-MM-DD"`
}

// ReportInput is the input schema for the riskpulse report MCP tool.
type ReportInput struct {
	Seed       *int64 `json:"seed,omitempty" jsonschema:"Generation seed (default: server seed)"`
	Days       int    `json:"days,omitempty" jsonschema:"Number of days to generate (default: server days)"`
	EndDate    string `json:"end_date,omitempty" jsonschema:"Last generated day, YYYY-MM-DD (default: server end date)"`
	Platforms  string `json:"platforms,omitempty" jsonschema:"Comma-separated platforms, or none (default: all)"`
	RiskLevels string `json:"risk_levels,omitempty" jsonschema:"Comma-separated risk levels, or none (default: all)"`
	From       string `json:"from,omitempty" jsonschema:"First included day, YYYY-MM-DD"`
	To         string `json:"to,omitempty" jsonschema:"Last included day, YYYY-MM-DD"`
	Sections   string `json:"sections,omitempty" jsonschema:"Comma-separated list of report sections to include (default: all)"`
	Format     string `json:"format,omitempty" jsonschema:"Output format: text, markdown, json or html (default: text)"`
}

// EventsInput is the input schema for the riskpulse events MCP tool.
type EventsInput struct {
	Seed       *int64 `json:"seed,omitempty" jsonschema:"Generation seed (default: server seed)"`
	Days       int    `json:"days,omitempty" jsonschema:"Number of days to generate (default: server days)"`
	EndDate    string `json:"end_date,omitempty" jsonschema:"Last generated day, YYYY-MM-DD (default: server end date)"`
	Platforms  string `json:"platforms,omitempty" jsonschema:"Comma-separated platforms, or none (default: all)"`
	RiskLevels string `json:"risk_levels,omitempty" jsonschema:"Comma-separated risk levels, or none (default: all)"`
	From       string `json:"from,omitempty" jsonschema:"First included day, YYYY-MM-DD"`
	To         string `json:"to,omitempty" jsonschema:"Last included day, YYYY-MM-DD"`
	Offset     int    `json:"offset,omitempty" jsonschema:"Index of the first filtered row to return"`
	Limit      int    `json:"limit,omitempty" jsonschema:"Maximum rows to return (default 100, max 1000)"`
	Annotate   bool   `json:"annotate,omitempty" jsonschema:"Add stable ids and pseudonymous author handles"`
}

// datasetArgs are the generation and filter fields shared by every tool.
type datasetArgs struct {
	seed       *int64
	days       int
	endDate    string
	platforms  string
	riskLevels string
	from, to   string
}

func (in QueryInput) args() datasetArgs {
	return datasetArgs{in.Seed, in.Days, in.EndDate, in.Platforms, in.RiskLevels, in.From, in.To}
}

func (in ReportInput) args() datasetArgs {
	return datasetArgs{in.Seed, in.Days, in.EndDate, in.Platforms, in.RiskLevels, in.From, in.To}
}

func (in EventsInput) args() datasetArgs {
	return datasetArgs{in.Seed, in.Days, in.EndDate, in.Platforms, in.RiskLevels, in.From, in.To}
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

type handlers struct {
	memo     *dataset.Memo
	defaults Defaults
	now      func() time.Time
}

// register adds all riskpulse tools to the MCP server.
func (h *handlers) register(server *mcp.Server) {
	readOnly := &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "Filter the synthetic risk-event table and return the dashboard aggregates (summary, risk levels, platforms, hourly sentiment, keywords, monthly and daily trends) as JSON.",
		Annotations: readOnly,
	}, h.handleQuery)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Render the risk dashboard report for a filter as text, markdown, json or html.",
		Annotations: readOnly,
	}, h.handleReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "events",
		Description: "Return a page of filtered risk events as JSON Lines.",
		Annotations: readOnly,
	}, h.handleEvents)
}

func (h *handlers) handleQuery(_ context.Context, _ *mcp.CallToolRequest, input QueryInput) (*mcp.CallToolResult, any, error) {
	p, d, err := h.dashboard(input.args())
	if err != nil {
		return nil, nil, err
	}

	data, err := json.MarshalIndent(output.JSONEnvelope{
		Metadata:  output.NewJSONMetadata(p, h.now()),
		Dashboard: d,
	}, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal dashboard: %w", err)
	}
	return textResult(string(data)), nil, nil
}

func (h *handlers) handleReport(_ context.Context, _ *mcp.CallToolRequest, input ReportInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = "text"
	}
	if !slices.Contains(output.ReportFormats, format) {
		return nil, nil, fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(output.ReportFormats, ", "))
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return nil, nil, err
	}

	sections := h.defaults.Sections
	if input.Sections != "" {
		sections = query.SplitList(input.Sections)
	}

	p, d, err := h.dashboard(input.args())
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	if err := formatter.Format(output.Document{Params: p, Dashboard: d, Sections: sections}, &buf); err != nil {
		return nil, nil, fmt.Errorf("rendering failed: %w", err)
	}
	return textResult(buf.String()), nil, nil
}

func (h *handlers) handleEvents(_ context.Context, _ *mcp.CallToolRequest, input EventsInput) (*mcp.CallToolResult, any, error) {
	if input.Offset < 0 {
		return nil, nil, fmt.Errorf("%w: offset must be non-negative, got %d", dataset.ErrInvalidArgument, input.Offset)
	}
	limit := input.Limit
	switch {
	case limit < 0:
		return nil, nil, fmt.Errorf("%w: limit must be non-negative, got %d", dataset.ErrInvalidArgument, limit)
	case limit == 0:
		limit = defaultEventLimit
	case limit > maxEventLimit:
		limit = maxEventLimit
	}

	p, full, f, err := h.resolve(input.args())
	if err != nil {
		return nil, nil, err
	}
	// Annotate before filtering so ids depend only on the row's position in
	// the full table.
	if input.Annotate {
		full = dataset.Annotate(full, p.Seed)
	}
	rows := query.Apply(full, f).Events()

	start := min(input.Offset, len(rows))
	end := min(start+limit, len(rows))
	page := dataset.NewTable(rows[start:end])

	var buf bytes.Buffer
	if err := dataset.WriteJSONLines(&buf, page); err != nil {
		return nil, nil, fmt.Errorf("encoding events: %w", err)
	}

	summary := fmt.Sprintf("rows %d-%d of %d", start, end, len(rows))
	if end < len(rows) {
		summary += fmt.Sprintf("; next_offset=%d", end)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: buf.String()},
			&mcp.TextContent{Text: summary},
		},
	}, nil, nil
}

// resolve layers args over the server defaults and returns the generated
// table and the filter to apply to it.
func (h *handlers) resolve(in datasetArgs) (dataset.Params, *dataset.Table, query.Filter, error) {
	p := h.defaults.Params
	if in.seed != nil {
		p.Seed = *in.seed
	}
	if in.days != 0 {
		p.Days = in.days
	}
	if in.endDate != "" {
		end, err := dataset.ParseDate(in.endDate)
		if err != nil {
			return p, nil, query.Filter{}, err
		}
		p.EndDate = end
	}

	sel := h.defaults.Selection
	if in.platforms != "" {
		sel.Platforms = query.SplitList(in.platforms)
	}
	if in.riskLevels != "" {
		sel.RiskLevels = query.SplitList(in.riskLevels)
	}
	if in.from != "" {
		sel.From = in.from
	}
	if in.to != "" {
		sel.To = in.to
	}

	full, err := h.memo.Get(p)
	if err != nil {
		return p, nil, query.Filter{}, err
	}
	f, err := sel.Resolve(full)
	if err != nil {
		return p, nil, query.Filter{}, err
	}
	slog.Debug("mcp dataset resolved", "params", p.Key(), "filter", f.String())
	return p, full, f, nil
}

func (h *handlers) dashboard(in datasetArgs) (dataset.Params, *query.Dashboard, error) {
	p, full, f, err := h.resolve(in)
	if err != nil {
		return p, nil, err
	}
	return p, query.Build(full, f), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
