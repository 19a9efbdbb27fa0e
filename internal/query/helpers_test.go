// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/dataset"
)

var testEnd = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func generated(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Generate(dataset.DefaultParams(testEnd))
	require.NoError(t, err)
	return tbl
}

// handTable is a small table with known aggregates.
func handTable() *dataset.Table {
	return dataset.NewTable([]dataset.Event{
		{Timestamp: day(5, 30), Hour: 1, Platform: dataset.Reddit, RiskLevel: dataset.Critical, Severity: 9, Sentiment: dataset.Negative, Intervention: true, Keyword: 0},
		{Timestamp: day(5, 30), Hour: 10, Platform: dataset.Twitter, RiskLevel: dataset.Low, Severity: 2, Sentiment: dataset.Positive, Keyword: 1},
		{Timestamp: day(5, 31), Hour: 23, Platform: dataset.Reddit, RiskLevel: dataset.High, Severity: 7, Sentiment: dataset.Negative, Intervention: true, Keyword: 0},
		{Timestamp: day(6, 1), Hour: 10, Platform: dataset.Facebook, RiskLevel: dataset.Medium, Severity: 4, Sentiment: dataset.Neutral, Keyword: 2},
		{Timestamp: day(6, 2), Hour: 3, Platform: dataset.Twitter, RiskLevel: dataset.High, Severity: 8, Sentiment: dataset.Negative, Keyword: 1},
	})
}
