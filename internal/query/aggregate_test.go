// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package query

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/dataset"
)

func TestCountByRiskLevel_SumsToLen(t *testing.T) {
	full := generated(t)
	counts := CountByRiskLevel(full)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, full.Len(), total)
	assert.Equal(t, counts[dataset.High]+counts[dataset.Critical], HighRiskCount(full))
}

func TestAggregates_SingleCriticalRow(t *testing.T) {
	tbl := dataset.NewTable([]dataset.Event{{
		Timestamp: day(6, 1), Hour: 2, Platform: dataset.Instagram,
		RiskLevel: dataset.Critical, Severity: 11.1, Sentiment: dataset.Negative,
		Intervention: true, Keyword: 4,
	}})

	assert.Equal(t, map[dataset.RiskLevel]int{dataset.Critical: 1}, CountByRiskLevel(tbl))
	assert.Equal(t, 1, InterventionCount(tbl))
	assert.Equal(t, 1, HighRiskCount(tbl))
	assert.Equal(t, 11.1, MeanSeverity(tbl))

	p, ok := ArgmaxPlatformByHighRisk(tbl)
	require.True(t, ok)
	assert.Equal(t, dataset.Instagram, p)
}

func TestAggregates_EmptyTable(t *testing.T) {
	empty := dataset.NewTable(nil)

	assert.Empty(t, CountByRiskLevel(empty))
	assert.Zero(t, HighRiskCount(empty))
	assert.Zero(t, InterventionCount(empty))
	assert.True(t, math.IsNaN(MeanSeverity(empty)))
	assert.Empty(t, GroupByPlatform(empty))
	assert.Empty(t, GroupByKeyword(empty))
	assert.Empty(t, GroupByMonth(empty))
	assert.Empty(t, DailyMeanSeverity(empty))
	assert.Empty(t, RiskLevelDistribution(empty))

	_, ok := ArgmaxPlatformByHighRisk(empty)
	assert.False(t, ok)
}

func TestGroupByPlatform(t *testing.T) {
	stats := GroupByPlatform(handTable())
	require.Len(t, stats, 3)

	assert.Equal(t, dataset.Twitter, stats[0].Platform)
	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 5.0, stats[0].MeanSeverity, 1e-9)
	assert.Equal(t, 0, stats[0].Interventions)

	assert.Equal(t, dataset.Reddit, stats[1].Platform)
	assert.Equal(t, 2, stats[1].Interventions)
	assert.InDelta(t, 8.0, stats[1].MeanSeverity, 1e-9)
	assert.Equal(t, "100.0%", stats[1].InterventionRate().Percent())

	assert.Equal(t, dataset.Facebook, stats[2].Platform)
}

func TestGroupByPlatform_CountsMatchTable(t *testing.T) {
	full := generated(t)
	total := 0
	for _, s := range GroupByPlatform(full) {
		total += s.Count
	}
	assert.Equal(t, full.Len(), total)
}

func TestHighRiskByPlatform(t *testing.T) {
	got := HighRiskByPlatform(handTable())
	assert.Equal(t, []PlatformCount{
		{Platform: dataset.Twitter, Count: 1},
		{Platform: dataset.Reddit, Count: 2},
	}, got)
}

func TestArgmaxPlatformByHighRisk_TieBreaksByEnumOrder(t *testing.T) {
	tbl := dataset.NewTable([]dataset.Event{
		{Platform: dataset.Facebook, RiskLevel: dataset.High},
		{Platform: dataset.Reddit, RiskLevel: dataset.Critical},
		{Platform: dataset.Facebook, RiskLevel: dataset.Low},
	})
	p, ok := ArgmaxPlatformByHighRisk(tbl)
	require.True(t, ok)
	assert.Equal(t, dataset.Reddit, p)
}

func TestArgmaxPlatformByHighRisk_NoHighRisk(t *testing.T) {
	tbl := dataset.NewTable([]dataset.Event{{Platform: dataset.Twitter, RiskLevel: dataset.Low}})
	_, ok := ArgmaxPlatformByHighRisk(tbl)
	assert.False(t, ok)
}

func TestGroupByHourAndSentiment_Complete(t *testing.T) {
	pv := GroupByHourAndSentiment(handTable())

	cells, total := 0, 0
	for h := range 24 {
		for _, s := range dataset.Sentiments() {
			cells++
			total += pv.Count(h, s)
		}
	}
	assert.Equal(t, 72, cells)
	assert.Equal(t, 5, total)
	assert.Equal(t, 1, pv.Count(10, dataset.Positive))
	assert.Equal(t, 1, pv.Count(10, dataset.Neutral))
	assert.Zero(t, pv.Count(10, dataset.Negative))
	assert.Zero(t, pv.Count(12, dataset.Negative))
}

func TestHourSentimentPivot_JSONHasAllHours(t *testing.T) {
	pv := GroupByHourAndSentiment(dataset.NewTable(nil))
	data, err := json.Marshal(pv)
	require.NoError(t, err)

	var rows []map[string]int
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 24)
	assert.Equal(t, map[string]int{"hour": 23, "positive": 0, "neutral": 0, "negative": 0}, rows[23])
}

func TestHourSentimentPivot_JSONRoundTrip(t *testing.T) {
	pv := GroupByHourAndSentiment(handTable())
	data, err := json.Marshal(pv)
	require.NoError(t, err)

	var got HourSentimentPivot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, pv, got)
}

func TestHourSentimentPivot_UnmarshalJSON(t *testing.T) {
	t.Run("missing hours stay zero", func(t *testing.T) {
		var pv HourSentimentPivot
		pv[5][dataset.Neutral] = 9
		require.NoError(t, json.Unmarshal([]byte(`[{"hour":3,"negative":4}]`), &pv))
		assert.Equal(t, 4, pv.Count(3, dataset.Negative))
		assert.Zero(t, pv.Count(3, dataset.Positive))
		assert.Zero(t, pv.Count(5, dataset.Neutral), "decoding replaces the whole pivot")
	})

	for _, in := range []string{`[{"hour":24}]`, `[{"hour":-1}]`} {
		t.Run(in, func(t *testing.T) {
			var pv HourSentimentPivot
			err := json.Unmarshal([]byte(in), &pv)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "out of range")
		})
	}

	t.Run("not an array", func(t *testing.T) {
		var pv HourSentimentPivot
		assert.Error(t, json.Unmarshal([]byte(`{"hour":1}`), &pv))
	})
}

func TestAggregates_SkipOutOfRangeEnums(t *testing.T) {
	tbl := dataset.NewTable([]dataset.Event{
		{Timestamp: day(6, 1), Hour: 2, Platform: dataset.Reddit, RiskLevel: dataset.High, Severity: 7, Sentiment: dataset.Negative, Keyword: 1},
		{Timestamp: day(6, 1), Hour: 2, Platform: dataset.Platform(9), RiskLevel: dataset.High, Severity: 8, Sentiment: dataset.Sentiment(-1), Keyword: dataset.Keyword(42)},
	})

	require.NotPanics(t, func() {
		platforms := GroupByPlatform(tbl)
		require.Len(t, platforms, 1)
		assert.Equal(t, dataset.Reddit, platforms[0].Platform)

		keywords := GroupByKeyword(tbl)
		require.Len(t, keywords, 1)
		assert.Equal(t, dataset.Keyword(1), keywords[0].Keyword)

		assert.Equal(t, []PlatformCount{{Platform: dataset.Reddit, Count: 1}}, HighRiskByPlatform(tbl))

		pv := GroupByHourAndSentiment(tbl)
		assert.Equal(t, 1, pv.Count(2, dataset.Negative))
		assert.Zero(t, pv.Count(2, dataset.Sentiment(-1)))
		assert.Zero(t, pv.Count(99, dataset.Negative))
		_, ok := pv.PeakHour(dataset.Sentiment(7))
		assert.False(t, ok)
	})
}

func TestHourSentimentPivot_PeakHour(t *testing.T) {
	pv := GroupByHourAndSentiment(handTable())
	h, ok := pv.PeakHour(dataset.Negative)
	require.True(t, ok)
	assert.Equal(t, 1, h)

	_, ok = HourSentimentPivot{}.PeakHour(dataset.Negative)
	assert.False(t, ok)
}

func TestGroupByKeyword_SortedBySeverity(t *testing.T) {
	stats := GroupByKeyword(handTable())
	require.Len(t, stats, 3)

	assert.Equal(t, dataset.Keyword(0), stats[0].Keyword)
	assert.InDelta(t, 8.0, stats[0].MeanSeverity, 1e-9)
	assert.Equal(t, 2, stats[0].Frequency)

	assert.Equal(t, dataset.Keyword(1), stats[1].Keyword)
	assert.InDelta(t, 5.0, stats[1].MeanSeverity, 1e-9)

	assert.Equal(t, dataset.Keyword(2), stats[2].Keyword)
}

func TestGroupByKeyword_TiesKeepEnumOrder(t *testing.T) {
	tbl := dataset.NewTable([]dataset.Event{
		{Keyword: 7, Severity: 5},
		{Keyword: 3, Severity: 5},
	})
	stats := GroupByKeyword(tbl)
	require.Len(t, stats, 2)
	assert.Equal(t, dataset.Keyword(3), stats[0].Keyword)
	assert.Equal(t, dataset.Keyword(7), stats[1].Keyword)
}

func TestGroupByMonth_Chronological(t *testing.T) {
	got := GroupByMonth(handTable())
	assert.Equal(t, []MonthStats{
		{Month: "2025-05", Incidents: 3, Interventions: 2},
		{Month: "2025-06", Incidents: 2, Interventions: 0},
	}, got)
}

func TestGroupByMonth_SpansFullRange(t *testing.T) {
	full := generated(t)
	months := GroupByMonth(full)
	// 180 days ending 2025-06-30 start on 2025-01-02.
	require.Len(t, months, 6)
	assert.Equal(t, "2025-01", months[0].Month)
	assert.Equal(t, "2025-06", months[5].Month)

	total := 0
	for _, m := range months {
		total += m.Incidents
	}
	assert.Equal(t, full.Len(), total)
}

func TestDailyMeanSeverity(t *testing.T) {
	got := DailyMeanSeverity(handTable())
	require.Len(t, got, 4)
	assert.Equal(t, day(5, 30), got[0].Date)
	assert.InDelta(t, 5.5, got[0].MeanSeverity, 1e-9)
	assert.Equal(t, day(6, 2), got[3].Date)
	assert.InDelta(t, 8.0, got[3].MeanSeverity, 1e-9)
}

func TestDailyMeanSeverity_OnePerGeneratedDay(t *testing.T) {
	daily := DailyMeanSeverity(generated(t))
	require.Len(t, daily, 180)
	for i := 1; i < len(daily); i++ {
		assert.True(t, daily[i-1].Date.Before(daily[i].Date))
	}
}

func TestRiskLevelDistribution(t *testing.T) {
	got := RiskLevelDistribution(handTable())
	require.Len(t, got, 4)
	assert.Equal(t, dataset.Low, got[0].RiskLevel)
	assert.Equal(t, dataset.High, got[2].RiskLevel)
	assert.Equal(t, 2, got[2].Count)
	assert.InDelta(t, 0.4, float64(got[2].Share), 1e-9)
}

func TestMeanSeverityInHours(t *testing.T) {
	tbl := handTable()
	assert.InDelta(t, 8.5, MeanSeverityInHours(tbl, 0, 4), 1e-9)
	assert.InDelta(t, 13.0/3, MeanSeverityInHours(tbl, 5, 23), 1e-9)
	assert.True(t, math.IsNaN(MeanSeverityInHours(tbl, 11, 22)))
}
