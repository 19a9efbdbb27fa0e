// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

// Section statuses.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
)

// SectionResult is the outcome of analyzing and rendering one section.
type SectionResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`            // "ok", "skipped"
	Reason      string `json:"reason,omitempty"`  // why a section was skipped
	Content     string `json:"content,omitempty"` // rendered text
}

// runMu serializes section runs; registered sections keep per-run state
// between Analyze and Render.
var runMu sync.Mutex

// RunSections analyzes and renders the named sections against d. Unknown
// names are ignored. Sections without data are reported as skipped. It is
// safe for concurrent use.
func RunSections(d *query.Dashboard, names []string) ([]SectionResult, error) {
	runMu.Lock()
	defer runMu.Unlock()

	var out []SectionResult
	for _, name := range ResolveSections(names) {
		sec := Get(name)
		if sec == nil {
			continue
		}

		sr := SectionResult{
			Name:        sec.Name(),
			Description: sec.Description(),
		}

		if err := sec.Analyze(d); err != nil {
			if errors.Is(err, ErrNoData) {
				sr.Status = StatusSkipped
				sr.Reason = err.Error()
				out = append(out, sr)
				continue
			}
			return nil, fmt.Errorf("section %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			return nil, fmt.Errorf("section %s render: %w", name, err)
		}
		sr.Status = StatusOK
		sr.Content = buf.String()
		out = append(out, sr)
	}
	return out, nil
}

// RenderText writes the terminal report: a header describing the dataset
// and filter, then each section in order.
func RenderText(w io.Writer, p dataset.Params, d *query.Dashboard, sections []string) error {
	results, err := RunSections(d, sections)
	if err != nil {
		return err
	}

	writeHeader(w, p, d)

	for _, sr := range results {
		if sr.Status == StatusSkipped {
			writeHeading(w, sr.Description)
			_, _ = fmt.Fprintf(w, "  Skipped: no posts match the current filter.\n\n")
			continue
		}
		if _, err := io.WriteString(w, sr.Content); err != nil {
			return fmt.Errorf("write section %s: %w", sr.Name, err)
		}
	}
	return nil
}

func writeHeader(w io.Writer, p dataset.Params, d *query.Dashboard) {
	title := "Riskpulse Report"
	_, _ = fmt.Fprintf(w, "%s\n%s\n\n", SectionTitle(title), strings.Repeat("=", len(title)))
	_, _ = fmt.Fprintf(w, "Seed:    %d\n", p.Seed)
	_, _ = fmt.Fprintf(w, "Range:   %s to %s (%d days)\n",
		p.StartDate().Format(dataset.DateLayout), dataset.Day(p.EndDate).Format(dataset.DateLayout), p.Days)
	_, _ = fmt.Fprintf(w, "Filter:  %s\n", d.Filter)
	_, _ = fmt.Fprintf(w, "Rows:    %d of %d\n\n", d.Summary.Analyzed, d.Summary.Total)
}

// ResolveSections determines which sections to run without printing warnings.
// If filter is empty, all registered sections are used.
func ResolveSections(filter []string) []string {
	if len(filter) == 0 {
		return List()
	}

	available := make(map[string]bool)
	for _, name := range List() {
		available[name] = true
	}

	var names []string
	for _, name := range filter {
		if available[name] {
			names = append(names, name)
		}
	}
	return names
}

// UnknownSections returns the names in filter that are not registered.
func UnknownSections(filter []string) []string {
	var unknown []string
	for _, name := range filter {
		if Get(name) == nil {
			unknown = append(unknown, name)
		}
	}
	return unknown
}
