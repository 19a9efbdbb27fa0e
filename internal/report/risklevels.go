// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/davetashner/riskpulse/internal/query"
)

// riskLevelsSection reports the risk level mix and where high-risk posts
// come from.
type riskLevelsSection struct {
	levels     []query.RiskLevelCount
	byPlatform []query.PlatformCount
}

func (s *riskLevelsSection) Name() string { return "risk-levels" }
func (s *riskLevelsSection) Description() string {
	return "Risk level distribution and high-risk posts by platform"
}

func (s *riskLevelsSection) Analyze(d *query.Dashboard) error {
	if err := requireData("risk-levels", d); err != nil {
		return err
	}
	s.levels = d.RiskLevels
	s.byPlatform = d.HighRiskByPlatform
	return nil
}

func (s *riskLevelsSection) Render(w io.Writer) error {
	writeHeading(w, "Risk Level Distribution")

	tbl := NewTable(
		Column{Header: "Level", Color: ColorRiskLevel},
		Column{Header: "Posts", Align: AlignRight},
		Column{Header: "Share", Align: AlignRight},
		Column{Header: ""},
	)
	for _, rc := range s.levels {
		tbl.AddRow(rc.RiskLevel.String(), itoa(rc.Count), rc.Share.Percent(), bar(float64(rc.Share), 1, 30))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\n  High-risk posts by platform:\n")
	if len(s.byPlatform) == 0 {
		_, _ = fmt.Fprintf(w, "  No High or Critical posts in the current selection.\n\n")
		return nil
	}

	most := 0
	for _, pc := range s.byPlatform {
		most = max(most, pc.Count)
	}
	ptbl := NewTable(
		Column{Header: "Platform"},
		Column{Header: "Posts", Align: AlignRight},
		Column{Header: ""},
	)
	for _, pc := range s.byPlatform {
		ptbl.AddRow(pc.Platform.String(), itoa(pc.Count), bar(float64(pc.Count), float64(most), 30))
	}
	if err := ptbl.Render(w); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n")
	return nil
}
