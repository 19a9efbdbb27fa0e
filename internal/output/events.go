// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package output

import (
	"io"

	"github.com/davetashner/riskpulse/internal/dataset"
)

func init() {
	RegisterFormatter(NewCSVFormatter())
	RegisterFormatter(NewJSONLFormatter())
}

// EventFormats are the formats that export rows rather than aggregates.
var EventFormats = []string{"csv", "jsonl"}

// CSVFormatter writes the filtered events as CSV with a header row.
type CSVFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*CSVFormatter)(nil)

// NewCSVFormatter returns a new CSVFormatter.
func NewCSVFormatter() *CSVFormatter { return &CSVFormatter{} }

// Name returns the format name.
func (c *CSVFormatter) Name() string { return "csv" }

// Format writes every filtered event.
func (c *CSVFormatter) Format(doc Document, w io.Writer) error {
	return dataset.WriteCSV(w, doc.Dashboard.Events)
}

// JSONLFormatter writes the filtered events as JSON Lines, one object per
// line with no enclosing array.
type JSONLFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*JSONLFormatter)(nil)

// NewJSONLFormatter returns a new JSONLFormatter.
func NewJSONLFormatter() *JSONLFormatter { return &JSONLFormatter{} }

// Name returns the format name.
func (j *JSONLFormatter) Name() string { return "jsonl" }

// Format writes every filtered event.
func (j *JSONLFormatter) Format(doc Document, w io.Writer) error {
	return dataset.WriteJSONLines(w, doc.Dashboard.Events)
}
