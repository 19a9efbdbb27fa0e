// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

// Compile-time interface check.
var _ Formatter = (*HTMLFormatter)(nil)

func newTestHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{nowFunc: fixedNow}
}

func TestHTMLFormatter_Name(t *testing.T) {
	assert.Equal(t, "html", NewHTMLFormatter().Name())
}

func TestHTMLFormatter_EmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestHTMLFormatter().Format(emptyDoc(t), &buf))
	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "No posts match the current filter.")
}

func TestHTMLFormatter_BasicOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestHTMLFormatter().Format(smallDoc(), &buf))
	out := buf.String()

	assert.Contains(t, out, "<title>Riskpulse Dashboard</title>")
	assert.Contains(t, out, "Generated 2026-02-07 12:00 UTC")
	assert.Contains(t, out, "seed 7")
	assert.Contains(t, out, "Messages Analyzed")
	assert.Contains(t, out, `id="chart-risk"`)
	assert.Contains(t, out, `id="chart-daily"`)
	assert.Contains(t, out, `data-platform="Reddit" data-risk="Critical"`)
	assert.Contains(t, out, "<td>9.50</td>")
	assert.NotContains(t, out, "Showing the first")
}

func TestHTMLFormatter_SelfContained(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestHTMLFormatter().Format(smallDoc(), &buf))
	out := buf.String()
	assert.NotContains(t, out, "<link ")
	assert.NotContains(t, out, "src=\"http")
}

func TestHTMLFormatter_Truncates(t *testing.T) {
	p := dataset.Params{Seed: 42, Days: 60, EndDate: testEnd}
	tbl, err := dataset.Generate(p)
	require.NoError(t, err)
	// At least 15 posts per day.
	require.Greater(t, tbl.Len(), maxHTMLEvents)

	var buf bytes.Buffer
	doc := Document{Params: p, Dashboard: query.Build(tbl, query.AllFilter(tbl))}
	require.NoError(t, newTestHTMLFormatter().Format(doc, &buf))

	out := buf.String()
	assert.Contains(t, out, "Showing the first 500 of")
	assert.Equal(t, maxHTMLEvents, strings.Count(out, `<tr class="event-row"`))
}

func TestHTMLFormatter_EscapesCells(t *testing.T) {
	tbl := dataset.NewTable([]dataset.Event{
		{Timestamp: testEnd, Platform: dataset.Facebook, RiskLevel: dataset.High, Severity: 7, Keyword: 8},
	})
	doc := Document{Params: smallDoc().Params, Dashboard: query.Build(tbl, query.AllFilter(tbl))}

	var buf bytes.Buffer
	require.NoError(t, newTestHTMLFormatter().Format(doc, &buf))
	assert.Contains(t, buf.String(), "<td>can&#39;t go on</td>")
}

func TestHTMLFormatter_WriteError(t *testing.T) {
	t.Run("empty_write_error", func(t *testing.T) {
		err := newTestHTMLFormatter().Format(emptyDoc(t), &failWriter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write empty html")
	})

	t.Run("template_write_error", func(t *testing.T) {
		err := newTestHTMLFormatter().Format(smallDoc(), &failWriter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "execute html template")
	})
}

func TestBuildHTMLChartData(t *testing.T) {
	cd := buildHTMLChartData(smallDoc().Dashboard)

	assert.Equal(t, []string{"Low", "High", "Critical"}, cd["riskLabels"])
	assert.Equal(t, []int{1, 1, 1}, cd["riskValues"])
	assert.Equal(t, []string{"Reddit"}, cd["highRiskLabels"])
	assert.Equal(t, []float64{1.5, 8.25}, cd["platformValues"])
	assert.Equal(t, []string{"2025-06"}, cd["monthLabels"])

	neg := cd["hourlyNegative"].([24]int)
	assert.Equal(t, 1, neg[2])
}

func TestBuildEventRows_Limit(t *testing.T) {
	tbl := dataset.NewTable(make([]dataset.Event, 5))
	assert.Len(t, buildEventRows(tbl, 3), 3)
	assert.Len(t, buildEventRows(tbl, 10), 5)
	assert.Empty(t, buildEventRows(dataset.NewTable(nil), 10))
}

func TestBuildCards(t *testing.T) {
	cards := buildCards(query.Summarize(dataset.NewTable(nil), dataset.NewTable(nil)))
	require.Len(t, cards, 4)
	assert.Equal(t, "N/A/10", cards[3].Value)
}
