// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

// hourlySentimentSection reports sentiment counts for each hour of the day.
type hourlySentimentSection struct {
	pivot query.HourSentimentPivot
}

func (s *hourlySentimentSection) Name() string { return "hourly-sentiment" }
func (s *hourlySentimentSection) Description() string {
	return "Sentiment patterns by time of day"
}

func (s *hourlySentimentSection) Analyze(d *query.Dashboard) error {
	if err := requireData("hourly-sentiment", d); err != nil {
		return err
	}
	s.pivot = d.HourlySentiment
	return nil
}

func (s *hourlySentimentSection) Render(w io.Writer) error {
	writeHeading(w, "Sentiment by Hour")

	most := 0
	for h := range s.pivot {
		most = max(most, s.pivot.Count(h, dataset.Negative))
	}

	tbl := NewTable(
		Column{Header: "Hour"},
		Column{Header: "Positive", Align: AlignRight},
		Column{Header: "Neutral", Align: AlignRight},
		Column{Header: "Negative", Align: AlignRight},
		Column{Header: ""},
	)
	for h := range s.pivot {
		neg := s.pivot.Count(h, dataset.Negative)
		tbl.AddRow(
			fmt.Sprintf("%02d:00", h),
			itoa(s.pivot.Count(h, dataset.Positive)),
			itoa(s.pivot.Count(h, dataset.Neutral)),
			itoa(neg),
			bar(float64(neg), float64(most), 20),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	if h, ok := s.pivot.PeakHour(dataset.Negative); ok {
		_, _ = fmt.Fprintf(w, "\n  Peak negative hour: %02d:00\n", h)
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
