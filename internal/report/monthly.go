// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/riskpulse/internal/query"
)

// monthlySection reports incidents and interventions per calendar month.
type monthlySection struct {
	months []query.MonthStats
}

func (s *monthlySection) Name() string        { return "monthly" }
func (s *monthlySection) Description() string { return "Incident and intervention timeline by month" }

func (s *monthlySection) Analyze(d *query.Dashboard) error {
	if err := requireData("monthly", d); err != nil {
		return err
	}
	s.months = d.Monthly
	return nil
}

func (s *monthlySection) Render(w io.Writer) error {
	writeHeading(w, "Incident & Intervention Timeline")

	tbl := NewTable(
		Column{Header: "Month"},
		Column{Header: "Incidents", Align: AlignRight},
		Column{Header: "Interventions", Align: AlignRight},
		Column{Header: "Rate", Align: AlignRight},
	)
	for _, m := range s.months {
		rate := query.Undefined()
		if m.Incidents > 0 {
			rate = query.Metric(float64(m.Interventions) / float64(m.Incidents))
		}
		tbl.AddRow(m.Month, itoa(m.Incidents), itoa(m.Interventions), rate.Percent())
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
