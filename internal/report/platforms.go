// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/riskpulse/internal/query"
)

// platformsSection reports per-platform severity and intervention activity.
type platformsSection struct {
	stats []query.PlatformStats
}

func (s *platformsSection) Name() string { return "platforms" }
func (s *platformsSection) Description() string {
	return "Average severity and interventions per platform"
}

func (s *platformsSection) Analyze(d *query.Dashboard) error {
	if err := requireData("platforms", d); err != nil {
		return err
	}
	s.stats = d.Platforms
	return nil
}

func (s *platformsSection) Render(w io.Writer) error {
	writeHeading(w, "Platform Analysis")

	tbl := NewTable(
		Column{Header: "Platform"},
		Column{Header: "Posts", Align: AlignRight},
		Column{Header: "Avg Severity", Align: AlignRight, Color: ColorSeverity},
		Column{Header: "Interventions", Align: AlignRight},
		Column{Header: "Rate", Align: AlignRight},
	)
	for _, ps := range s.stats {
		tbl.AddRow(
			ps.Platform.String(),
			itoa(ps.Count),
			formatScore(ps.MeanSeverity),
			itoa(ps.Interventions),
			ps.InterventionRate().Percent(),
		)
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
