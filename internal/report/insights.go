// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/davetashner/riskpulse/internal/query"
)

// Late-night hours, inclusive. Matches the generator's boosted window.
const (
	nightFrom = 0
	nightTo   = 4
)

// insightsSection derives three short findings from the current selection.
type insightsSection struct {
	nightLift        query.Metric
	topPlatform      string
	interventionRate query.Metric
}

func (s *insightsSection) Name() string        { return "insights" }
func (s *insightsSection) Description() string { return "Key insights for the current selection" }

func (s *insightsSection) Analyze(d *query.Dashboard) error {
	if err := requireData("insights", d); err != nil {
		return err
	}

	night := query.MeanSeverityInHours(d.Events, nightFrom, nightTo)
	day := query.MeanSeverityInHours(d.Events, nightTo+1, 23)
	s.nightLift = query.Undefined()
	if day > 0 {
		// NaN on either side stays NaN.
		s.nightLift = query.Metric(night/day - 1)
	}

	s.topPlatform = d.Summary.TopHighRiskPlatform
	s.interventionRate = d.Summary.InterventionRate
	return nil
}

func (s *insightsSection) Render(w io.Writer) error {
	writeHeading(w, "Key Insights")

	if s.nightLift.Valid() {
		_, _ = fmt.Fprintf(w, "  Peak risk hours:     late night (%02d:00-%02d:59) severity is %s %s than daytime\n",
			nightFrom, nightTo, query.Metric(math.Abs(float64(s.nightLift))).Percent(), higherLower(s.nightLift))
	} else {
		_, _ = fmt.Fprintf(w, "  Peak risk hours:     %s (no posts on one side of the day)\n", query.NotApplicable)
	}

	if s.topPlatform != "" {
		_, _ = fmt.Fprintf(w, "  Platform trends:     %s has the highest concentration of high-risk posts\n", s.topPlatform)
	} else {
		_, _ = fmt.Fprintf(w, "  Platform trends:     no high-risk posts in the current selection\n")
	}

	_, _ = fmt.Fprintf(w, "  Intervention impact: %s of high-risk cases received intervention\n\n",
		s.interventionRate.Percent())
	return nil
}

func higherLower(m query.Metric) string {
	if m < 0 {
		return "lower"
	}
	return "higher"
}

