// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/davetashner/riskpulse/internal/query"
)

// severityScale is the nominal top of the severity range used for bars.
// Night-boosted scores can exceed it; bars are capped at full width.
const severityScale = 10.0

// itoa formats an int as a string.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// formatScore formats a severity value with two decimals, or N/A.
func formatScore(f float64) string {
	return query.Metric(f).Format(2)
}

// formatDelta formats a delta with a +/- prefix, or N/A.
func formatDelta(m query.Metric) string {
	if !m.Valid() {
		return query.NotApplicable
	}
	if m > 0 {
		return fmt.Sprintf("+%.2f", float64(m))
	}
	return fmt.Sprintf("%.2f", float64(m))
}

// bar draws a horizontal bar of at most width cells for value/scale.
func bar(value, scale float64, width int) string {
	if scale <= 0 || math.IsNaN(value) || value <= 0 {
		return ""
	}
	n := int(math.Round(value / scale * float64(width)))
	n = min(max(n, 0), width)
	return strings.Repeat("█", n)
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline maps each value into one of eight block heights between lo and
// hi. A flat series renders at the lowest level.
func sparkline(values []float64, lo, hi float64) string {
	var sb strings.Builder
	span := hi - lo
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkLevels)-1))
			idx = min(max(idx, 0), len(sparkLevels)-1)
		}
		sb.WriteRune(sparkLevels[idx])
	}
	return sb.String()
}

func writeHeading(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s\n", SectionTitle(title))
	_, _ = fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(title)))
}
