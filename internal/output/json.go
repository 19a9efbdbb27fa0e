// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
	"github.com/davetashner/riskpulse/internal/report"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the dashboard with metadata for the JSON output format.
type JSONEnvelope struct {
	Metadata  JSONMetadata           `json:"metadata"`
	Dashboard *query.Dashboard       `json:"dashboard"`
	Sections  []report.SectionResult `json:"sections,omitempty"`
}

// JSONMetadata identifies the generated table the dashboard was built from.
type JSONMetadata struct {
	Seed        int64  `json:"seed"`
	Days        int    `json:"days"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`
}

// NewJSONMetadata describes p.
func NewJSONMetadata(p dataset.Params, now time.Time) JSONMetadata {
	return JSONMetadata{
		Seed:        p.Seed,
		Days:        p.Days,
		StartDate:   p.StartDate().Format(dataset.DateLayout),
		EndDate:     dataset.Day(p.EndDate).Format(dataset.DateLayout),
		GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// JSONFormatter writes the dashboard as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the dashboard and rendered sections as a JSON document.
// Undefined metrics encode as null. Output is pretty-printed for terminals
// and buffers, compact for pipes and files, unless Compact is set.
func (f *JSONFormatter) Format(doc Document, w io.Writer) error {
	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	sections, err := report.RunSections(doc.Dashboard, doc.Sections)
	if err != nil {
		return err
	}

	envelope := JSONEnvelope{
		Metadata:  NewJSONMetadata(doc.Params, now),
		Dashboard: doc.Dashboard,
		Sections:  sections,
	}

	var data []byte
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false // default to pretty on error
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// For non-file writers (e.g., bytes.Buffer in tests), default to pretty.
	return false
}
