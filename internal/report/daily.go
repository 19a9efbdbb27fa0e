// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/davetashner/riskpulse/internal/query"
)

// dailySeveritySection draws average daily severity as one sparkline per
// month, scaled to the selection's overall min and max.
type dailySeveritySection struct {
	months []dailyMonth
	lo, hi float64
}

type dailyMonth struct {
	month  string
	values []float64
	lo, hi float64
}

func (s *dailySeveritySection) Name() string        { return "daily-severity" }
func (s *dailySeveritySection) Description() string { return "Average daily severity score" }

func (s *dailySeveritySection) Analyze(d *query.Dashboard) error {
	if err := requireData("daily-severity", d); err != nil {
		return err
	}

	s.months = nil
	s.lo, s.hi = math.Inf(1), math.Inf(-1)
	for _, ds := range d.Daily {
		key := ds.Date.Format(query.MonthLayout)
		if n := len(s.months); n == 0 || s.months[n-1].month != key {
			s.months = append(s.months, dailyMonth{month: key, lo: math.Inf(1), hi: math.Inf(-1)})
		}
		m := &s.months[len(s.months)-1]
		m.values = append(m.values, ds.MeanSeverity)
		m.lo = math.Min(m.lo, ds.MeanSeverity)
		m.hi = math.Max(m.hi, ds.MeanSeverity)
		s.lo = math.Min(s.lo, ds.MeanSeverity)
		s.hi = math.Max(s.hi, ds.MeanSeverity)
	}
	return nil
}

func (s *dailySeveritySection) Render(w io.Writer) error {
	writeHeading(w, "Average Daily Severity")
	_, _ = fmt.Fprintf(w, "  Scale: %s to %s\n\n", formatScore(s.lo), formatScore(s.hi))

	tbl := NewTable(
		Column{Header: "Month"},
		Column{Header: "Days", Align: AlignRight},
		Column{Header: "Min", Align: AlignRight},
		Column{Header: "Max", Align: AlignRight},
		Column{Header: "Trend"},
	)
	for _, m := range s.months {
		tbl.AddRow(m.month, itoa(len(m.values)), formatScore(m.lo), formatScore(m.hi), sparkline(m.values, s.lo, s.hi))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
