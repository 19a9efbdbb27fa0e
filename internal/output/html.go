// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"sync"
	"time"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

func init() {
	RegisterFormatter(NewHTMLFormatter())
}

// maxHTMLEvents caps the event table so dashboards stay small.
const maxHTMLEvents = 500

// HTMLFormatter writes the dashboard as a self-contained HTML page.
type HTMLFormatter struct {
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

// NewHTMLFormatter returns a new HTMLFormatter.
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{}
}

// Name returns the format name.
func (h *HTMLFormatter) Name() string {
	return "html"
}

var (
	htmlTmplOnce sync.Once
	htmlTmpl     *template.Template
)

// Format writes the dashboard as a self-contained HTML page to w.
func (h *HTMLFormatter) Format(doc Document, w io.Writer) error {
	if doc.Dashboard.Empty() {
		return h.writeEmpty(w)
	}

	htmlTmplOnce.Do(func() {
		htmlTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
			"json": func(v any) template.JS {
				b, _ := json.Marshal(v)
				return template.JS(b) //nolint:gosec // json.Marshal escapes <, > and &
			},
		}).Parse(htmlTemplate))
	})

	now := time.Now()
	if h.nowFunc != nil {
		now = h.nowFunc()
	}

	data := buildHTMLData(doc, now)

	if err := htmlTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute html template: %w", err)
	}
	return nil
}

// htmlData holds all template data for the HTML dashboard.
type htmlData struct {
	GeneratedAt string
	Seed        int64
	StartDate   string
	EndDate     string
	Filter      string
	Cards       []metricCard
	Platforms   []string
	RiskLevels  []string
	EventRows   []eventRow
	TotalEvents int
	Truncated   bool
	ChartData   map[string]any
}

type metricCard struct {
	Label string
	Value string
	Delta string
	Class string
}

type eventRow struct {
	Date         string
	Hour         int
	Platform     string
	RiskLevel    string
	Severity     float64
	Sentiment    string
	Intervention bool
	Keyword      string
}

func buildHTMLData(doc Document, now time.Time) htmlData {
	d := doc.Dashboard
	p := doc.Params

	data := htmlData{
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
		Seed:        p.Seed,
		StartDate:   p.StartDate().Format(dataset.DateLayout),
		EndDate:     dataset.Day(p.EndDate).Format(dataset.DateLayout),
		Filter:      d.Filter.String(),
		Cards:       buildCards(d.Summary),
		EventRows:   buildEventRows(d.Events, maxHTMLEvents),
		TotalEvents: d.Events.Len(),
		ChartData:   buildHTMLChartData(d),
	}
	data.Truncated = data.TotalEvents > len(data.EventRows)
	for _, pl := range dataset.Platforms() {
		data.Platforms = append(data.Platforms, pl.String())
	}
	for _, r := range dataset.RiskLevels() {
		data.RiskLevels = append(data.RiskLevels, r.String())
	}
	return data
}

func buildCards(s query.Summary) []metricCard {
	return []metricCard{
		{Label: "Messages Analyzed", Value: itoa(s.Analyzed), Delta: s.ShareOfTotal.Percent() + " of total"},
		{Label: "High-Risk Detected", Value: itoa(s.HighRisk), Delta: s.HighRiskRate.Percent(), Class: "card-high"},
		{Label: "Interventions Made", Value: itoa(s.Interventions), Delta: s.InterventionRate.Percent() + " of high-risk", Class: "card-ok"},
		{Label: "Avg Severity Score", Value: s.MeanSeverity.Format(2) + "/10", Delta: signed(s.SeverityDelta) + " vs overall"},
	}
}

func buildEventRows(t *dataset.Table, limit int) []eventRow {
	n := min(t.Len(), limit)
	rows := make([]eventRow, n)
	for i := range n {
		e := t.At(i)
		rows[i] = eventRow{
			Date:         e.Timestamp.Format(dataset.DateLayout),
			Hour:         e.Hour,
			Platform:     e.Platform.String(),
			RiskLevel:    e.RiskLevel.String(),
			Severity:     e.Severity,
			Sentiment:    e.Sentiment.String(),
			Intervention: e.Intervention,
			Keyword:      e.Keyword.String(),
		}
	}
	return rows
}

func buildHTMLChartData(d *query.Dashboard) map[string]any {
	cd := make(map[string]any)

	rl := make([]string, len(d.RiskLevels))
	rv := make([]int, len(d.RiskLevels))
	for i, rc := range d.RiskLevels {
		rl[i] = rc.RiskLevel.String()
		rv[i] = rc.Count
	}
	cd["riskLabels"] = rl
	cd["riskValues"] = rv

	hl := make([]string, len(d.HighRiskByPlatform))
	hv := make([]int, len(d.HighRiskByPlatform))
	for i, pc := range d.HighRiskByPlatform {
		hl[i] = pc.Platform.String()
		hv[i] = pc.Count
	}
	cd["highRiskLabels"] = hl
	cd["highRiskValues"] = hv

	pl := make([]string, len(d.Platforms))
	pv := make([]float64, len(d.Platforms))
	for i, ps := range d.Platforms {
		pl[i] = ps.Platform.String()
		pv[i] = round2(ps.MeanSeverity)
	}
	cd["platformLabels"] = pl
	cd["platformValues"] = pv

	kl := make([]string, len(d.Keywords))
	kv := make([]float64, len(d.Keywords))
	for i, ks := range d.Keywords {
		kl[i] = ks.Keyword.String()
		kv[i] = round2(ks.MeanSeverity)
	}
	cd["keywordLabels"] = kl
	cd["keywordValues"] = kv

	ml := make([]string, len(d.Monthly))
	mi := make([]int, len(d.Monthly))
	mv := make([]int, len(d.Monthly))
	for i, ms := range d.Monthly {
		ml[i] = ms.Month
		mi[i] = ms.Incidents
		mv[i] = ms.Interventions
	}
	cd["monthLabels"] = ml
	cd["monthIncidents"] = mi
	cd["monthInterventions"] = mv

	dv := make([]float64, len(d.Daily))
	for i, ds := range d.Daily {
		dv[i] = round2(ds.MeanSeverity)
	}
	cd["dailyValues"] = dv

	var hourly [3][24]int
	for h := range d.HourlySentiment {
		for _, s := range dataset.Sentiments() {
			hourly[s][h] = d.HourlySentiment.Count(h, s)
		}
	}
	cd["hourlyPositive"] = hourly[dataset.Positive]
	cd["hourlyNeutral"] = hourly[dataset.Neutral]
	cd["hourlyNegative"] = hourly[dataset.Negative]

	return cd
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func (h *HTMLFormatter) writeEmpty(w io.Writer) error {
	const emptyHTML = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Riskpulse Dashboard</title>
<style>body{font-family:sans-serif;display:flex;justify-content:center;align-items:center;height:100vh;color:#6c757d;}</style>
</head><body><p>No posts match the current filter.</p></body></html>`
	if _, err := io.WriteString(w, emptyHTML); err != nil {
		return fmt.Errorf("write empty html: %w", err)
	}
	return nil
}
