// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the dashboard as a human-readable Markdown summary.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes the dashboard as a Markdown document to w.
//
// The output includes:
//   - A title heading and a line describing the dataset and filter
//   - A summary table of the headline metrics
//   - Risk level, platform, keyword, hourly and monthly tables
//
// An empty selection writes only the header and summary.
func (m *MarkdownFormatter) Format(doc Document, w io.Writer) error {
	d := doc.Dashboard

	if err := writeMarkdownHeader(w, doc.Params, d); err != nil {
		return err
	}
	if err := writeSummaryTable(w, d.Summary); err != nil {
		return err
	}
	if d.Empty() {
		if _, err := fmt.Fprintf(w, "_No posts match the current filter._\n"); err != nil {
			return fmt.Errorf("write empty note: %w", err)
		}
		return nil
	}

	tables := []struct {
		title  string
		header []string
		rows   [][]string
	}{
		{"Risk Level Distribution", []string{"Risk Level", "Posts", "Share"}, riskLevelRows(d)},
		{"High-Risk Posts by Platform", []string{"Platform", "Posts"}, highRiskRows(d)},
		{"Platform Analysis", []string{"Platform", "Posts", "Avg Severity", "Interventions", "Rate"}, platformRows(d)},
		{"Risk Keyword Analysis", []string{"Keyword", "Avg Severity", "Frequency"}, keywordRows(d)},
		{"Sentiment by Hour", []string{"Hour", "Positive", "Neutral", "Negative"}, hourlyRows(d)},
		{"Incident & Intervention Timeline", []string{"Month", "Incidents", "Interventions"}, monthlyRows(d)},
	}
	for _, t := range tables {
		if err := writeMarkdownTable(w, t.title, t.header, t.rows); err != nil {
			return err
		}
	}
	return nil
}

// writeMarkdownHeader writes the Markdown title and dataset line.
func writeMarkdownHeader(w io.Writer, p dataset.Params, d *query.Dashboard) error {
	if _, err := fmt.Fprintf(w, "# Riskpulse Report\n\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "**Seed:** %d | **Range:** %s to %s | **Filter:** `%s`\n\n",
		p.Seed, p.StartDate().Format(dataset.DateLayout), dataset.Day(p.EndDate).Format(dataset.DateLayout), d.Filter); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func writeSummaryTable(w io.Writer, s query.Summary) error {
	rows := [][]string{
		{"Messages analyzed", itoa(s.Analyzed), s.ShareOfTotal.Percent() + " of total"},
		{"High-risk detected", itoa(s.HighRisk), s.HighRiskRate.Percent()},
		{"Interventions made", itoa(s.Interventions), s.InterventionRate.Percent() + " of high-risk"},
		{"Avg severity score", s.MeanSeverity.Format(2), signed(s.SeverityDelta) + " vs overall"},
	}
	return writeMarkdownTable(w, "Summary", []string{"Metric", "Value", "Context"}, rows)
}

// writeMarkdownTable writes a level-two heading followed by a pipe table.
func writeMarkdownTable(w io.Writer, title string, header []string, rows [][]string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", title)
	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	seps := make([]string, len(header))
	for i := range seps {
		seps[i] = "---"
	}
	sb.WriteString("|" + strings.Join(seps, "|") + "|\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escapeMarkdownCell(c)
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write table %s: %w", title, err)
	}
	return nil
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func riskLevelRows(d *query.Dashboard) [][]string {
	rows := make([][]string, 0, len(d.RiskLevels))
	for _, rc := range d.RiskLevels {
		rows = append(rows, []string{rc.RiskLevel.String(), itoa(rc.Count), rc.Share.Percent()})
	}
	return rows
}

func highRiskRows(d *query.Dashboard) [][]string {
	rows := make([][]string, 0, len(d.HighRiskByPlatform))
	for _, pc := range d.HighRiskByPlatform {
		rows = append(rows, []string{pc.Platform.String(), itoa(pc.Count)})
	}
	return rows
}

func platformRows(d *query.Dashboard) [][]string {
	rows := make([][]string, 0, len(d.Platforms))
	for _, ps := range d.Platforms {
		rows = append(rows, []string{
			ps.Platform.String(), itoa(ps.Count), query.Metric(ps.MeanSeverity).Format(2),
			itoa(ps.Interventions), ps.InterventionRate().Percent(),
		})
	}
	return rows
}

func keywordRows(d *query.Dashboard) [][]string {
	rows := make([][]string, 0, len(d.Keywords))
	for _, ks := range d.Keywords {
		rows = append(rows, []string{ks.Keyword.String(), query.Metric(ks.MeanSeverity).Format(2), itoa(ks.Frequency)})
	}
	return rows
}

func hourlyRows(d *query.Dashboard) [][]string {
	pv := d.HourlySentiment
	rows := make([][]string, 0, len(pv))
	for h := range pv {
		rows = append(rows, []string{
			fmt.Sprintf("%02d:00", h),
			itoa(pv.Count(h, dataset.Positive)),
			itoa(pv.Count(h, dataset.Neutral)),
			itoa(pv.Count(h, dataset.Negative)),
		})
	}
	return rows
}

func monthlyRows(d *query.Dashboard) [][]string {
	rows := make([][]string, 0, len(d.Monthly))
	for _, ms := range d.Monthly {
		rows = append(rows, []string{ms.Month, itoa(ms.Incidents), itoa(ms.Interventions)})
	}
	return rows
}

func itoa(n int) string { return fmt.Sprintf("%d", n) }

func signed(m query.Metric) string {
	if m.Valid() && m > 0 {
		return "+" + m.Format(2)
	}
	return m.Format(2)
}
