// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/riskpulse/internal/query"
)

// overviewSection renders the headline metric cards. It renders even for
// an empty selection, where rates and means read N/A.
type overviewSection struct {
	s query.Summary
}

func (s *overviewSection) Name() string        { return "overview" }
func (s *overviewSection) Description() string { return "Headline metrics for the current selection" }

func (s *overviewSection) Analyze(d *query.Dashboard) error {
	if d == nil {
		return fmt.Errorf("overview: %w", ErrNoData)
	}
	s.s = d.Summary
	return nil
}

func (s *overviewSection) Render(w io.Writer) error {
	writeHeading(w, "Overview")

	tbl := NewTable(
		Column{Header: "Metric"},
		Column{Header: "Value", Align: AlignRight},
		Column{Header: "Context"},
	)
	tbl.AddRow("Messages analyzed", itoa(s.s.Analyzed),
		fmt.Sprintf("%s of %d total", s.s.ShareOfTotal.Percent(), s.s.Total))
	tbl.AddRow("High-risk detected", itoa(s.s.HighRisk),
		fmt.Sprintf("%s of analyzed", s.s.HighRiskRate.Percent()))
	tbl.AddRow("Interventions made", itoa(s.s.Interventions),
		fmt.Sprintf("%s of high-risk", s.s.InterventionRate.Percent()))
	tbl.AddRow("Avg severity score", s.s.MeanSeverity.Format(2)+"/10",
		fmt.Sprintf("%s vs overall %s", formatDelta(s.s.SeverityDelta), s.s.OverallMeanSeverity.Format(2)))

	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
