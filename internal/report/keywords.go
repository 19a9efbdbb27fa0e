// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/riskpulse/internal/query"
)

// keywordsSection ranks risk keywords by average severity.
type keywordsSection struct {
	stats []query.KeywordStats
}

func (s *keywordsSection) Name() string        { return "keywords" }
func (s *keywordsSection) Description() string { return "Risk keywords ranked by average severity" }

func (s *keywordsSection) Analyze(d *query.Dashboard) error {
	if err := requireData("keywords", d); err != nil {
		return err
	}
	s.stats = d.Keywords
	return nil
}

func (s *keywordsSection) Render(w io.Writer) error {
	writeHeading(w, "Risk Keyword Analysis")

	tbl := NewTable(
		Column{Header: "Keyword"},
		Column{Header: "Avg Severity", Align: AlignRight, Color: ColorSeverity},
		Column{Header: "Frequency", Align: AlignRight},
		Column{Header: ""},
	)
	for _, ks := range s.stats {
		tbl.AddRow(
			ks.Keyword.String(),
			formatScore(ks.MeanSeverity),
			itoa(ks.Frequency),
			bar(ks.MeanSeverity, severityScale, 20),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
