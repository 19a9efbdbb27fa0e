// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package query

import (
	"github.com/davetashner/riskpulse/internal/dataset"
)

// Summary holds the headline metrics for a filtered table, measured against
// the full table it was filtered from.
type Summary struct {
	Analyzed     int    `json:"analyzed"`
	Total        int    `json:"total"`
	ShareOfTotal Metric `json:"share_of_total"`

	HighRisk     int    `json:"high_risk"`
	HighRiskRate Metric `json:"high_risk_rate"`

	Interventions int `json:"interventions"`
	// InterventionRate divides all interventions by high-risk rows. It can
	// exceed 1 because low-risk rows also receive interventions.
	InterventionRate Metric `json:"intervention_rate"`

	MeanSeverity        Metric `json:"mean_severity"`
	OverallMeanSeverity Metric `json:"overall_mean_severity"`
	SeverityDelta       Metric `json:"severity_delta"`

	TopHighRiskPlatform string `json:"top_high_risk_platform,omitempty"`
}

// Summarize computes the headline metrics of filtered relative to full.
func Summarize(full, filtered *dataset.Table) Summary {
	s := Summary{
		Analyzed:      filtered.Len(),
		Total:         full.Len(),
		HighRisk:      HighRiskCount(filtered),
		Interventions: InterventionCount(filtered),
	}
	s.ShareOfTotal = ratio(float64(s.Analyzed), float64(s.Total))
	s.HighRiskRate = ratio(float64(s.HighRisk), float64(s.Analyzed))
	s.InterventionRate = ratio(float64(s.Interventions), float64(s.HighRisk))

	s.MeanSeverity = Metric(MeanSeverity(filtered))
	s.OverallMeanSeverity = Metric(MeanSeverity(full))
	s.SeverityDelta = s.MeanSeverity - s.OverallMeanSeverity

	if p, ok := ArgmaxPlatformByHighRisk(filtered); ok {
		s.TopHighRiskPlatform = p.String()
	}
	return s
}

// Dashboard bundles a filter, its result and every aggregate derived from it.
// Renderers index these tables by category and order without re-deriving them.
type Dashboard struct {
	Filter  Filter  `json:"filter"`
	Summary Summary `json:"summary"`

	RiskLevels         []RiskLevelCount   `json:"risk_levels"`
	HighRiskByPlatform []PlatformCount    `json:"high_risk_by_platform"`
	Platforms          []PlatformStats    `json:"platforms"`
	HourlySentiment    HourSentimentPivot `json:"hourly_sentiment"`
	Keywords           []KeywordStats     `json:"keywords"`
	Monthly            []MonthStats       `json:"monthly"`
	Daily              []DailySeverity    `json:"daily"`

	// Events is the filtered table.
	Events *dataset.Table `json:"-"`
}

// Build filters full with f and computes every aggregate.
func Build(full *dataset.Table, f Filter) *Dashboard {
	filtered := Apply(full, f)
	return &Dashboard{
		Filter:             f,
		Summary:            Summarize(full, filtered),
		RiskLevels:         RiskLevelDistribution(filtered),
		HighRiskByPlatform: HighRiskByPlatform(filtered),
		Platforms:          GroupByPlatform(filtered),
		HourlySentiment:    GroupByHourAndSentiment(filtered),
		Keywords:           GroupByKeyword(filtered),
		Monthly:            GroupByMonth(filtered),
		Daily:              DailyMeanSeverity(filtered),
		Events:             filtered,
	}
}

// Empty reports whether the filter matched no rows.
func (d *Dashboard) Empty() bool {
	return d.Events.Len() == 0
}
