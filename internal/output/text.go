// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package output

import (
	"io"

	"github.com/davetashner/riskpulse/internal/report"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes the terminal report with the document's sections.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (t *TextFormatter) Name() string {
	return "text"
}

// Format renders the report sections as aligned terminal text.
func (t *TextFormatter) Format(doc Document, w io.Writer) error {
	return report.RenderText(w, doc.Params, doc.Dashboard, doc.Sections)
}

// ReportFormats are the formats that render aggregates.
var ReportFormats = []string{"text", "json", "markdown", "html"}
