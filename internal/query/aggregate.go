// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package query

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/davetashner/riskpulse/internal/dataset"
)

// MonthLayout formats the month keys produced by GroupByMonth.
const MonthLayout = "2006-01"

// CountByRiskLevel counts rows per risk level. Only observed levels appear.
func CountByRiskLevel(t *dataset.Table) map[dataset.RiskLevel]int {
	counts := make(map[dataset.RiskLevel]int)
	t.Each(func(_ int, e dataset.Event) {
		counts[e.RiskLevel]++
	})
	return counts
}

// HighRiskCount counts High and Critical rows.
func HighRiskCount(t *dataset.Table) int {
	n := 0
	t.Each(func(_ int, e dataset.Event) {
		if e.HighRisk() {
			n++
		}
	})
	return n
}

// InterventionCount counts rows with an intervention.
func InterventionCount(t *dataset.Table) int {
	n := 0
	t.Each(func(_ int, e dataset.Event) {
		if e.Intervention {
			n++
		}
	})
	return n
}

// MeanSeverity returns the mean severity score, or NaN for an empty table.
func MeanSeverity(t *dataset.Table) float64 {
	if t.Len() == 0 {
		return math.NaN()
	}
	var sum float64
	t.Each(func(_ int, e dataset.Event) {
		sum += e.Severity
	})
	return sum / float64(t.Len())
}

// RiskLevelCount is one row of the risk-level distribution.
type RiskLevelCount struct {
	RiskLevel dataset.RiskLevel `json:"risk_level"`
	Count     int               `json:"count"`
	Share     Metric            `json:"share"`
}

// RiskLevelDistribution lists observed risk levels in ascending order with
// their share of the table.
func RiskLevelDistribution(t *dataset.Table) []RiskLevelCount {
	counts := CountByRiskLevel(t)
	out := make([]RiskLevelCount, 0, len(counts))
	for _, r := range dataset.RiskLevels() {
		n, ok := counts[r]
		if !ok {
			continue
		}
		out = append(out, RiskLevelCount{RiskLevel: r, Count: n, Share: ratio(float64(n), float64(t.Len()))})
	}
	return out
}

// PlatformStats summarizes the rows of one platform.
type PlatformStats struct {
	Platform      dataset.Platform `json:"platform"`
	MeanSeverity  float64          `json:"mean_severity"`
	Interventions int              `json:"interventions"`
	Count         int              `json:"count"`
}

// InterventionRate is the share of the platform's rows with an intervention.
func (s PlatformStats) InterventionRate() Metric {
	return ratio(float64(s.Interventions), float64(s.Count))
}

// GroupByPlatform summarizes each observed platform, in enumeration order.
func GroupByPlatform(t *dataset.Table) []PlatformStats {
	var sums [4]float64
	var interventions, counts [4]int
	t.Each(func(_ int, e dataset.Event) {
		if !e.Platform.Valid() {
			return
		}
		sums[e.Platform] += e.Severity
		counts[e.Platform]++
		if e.Intervention {
			interventions[e.Platform]++
		}
	})

	var out []PlatformStats
	for _, p := range dataset.Platforms() {
		if counts[p] == 0 {
			continue
		}
		out = append(out, PlatformStats{
			Platform:      p,
			MeanSeverity:  sums[p] / float64(counts[p]),
			Interventions: interventions[p],
			Count:         counts[p],
		})
	}
	return out
}

// PlatformCount pairs a platform with a row count.
type PlatformCount struct {
	Platform dataset.Platform `json:"platform"`
	Count    int              `json:"count"`
}

// HighRiskByPlatform counts High and Critical rows per observed platform, in
// enumeration order.
func HighRiskByPlatform(t *dataset.Table) []PlatformCount {
	counts := highRiskPlatformCounts(t)
	var out []PlatformCount
	for _, p := range dataset.Platforms() {
		if counts[p] > 0 {
			out = append(out, PlatformCount{Platform: p, Count: counts[p]})
		}
	}
	return out
}

func highRiskPlatformCounts(t *dataset.Table) [4]int {
	var counts [4]int
	t.Each(func(_ int, e dataset.Event) {
		if e.HighRisk() && e.Platform.Valid() {
			counts[e.Platform]++
		}
	})
	return counts
}

// ArgmaxPlatformByHighRisk returns the platform with the most High and
// Critical rows. Ties go to the platform earliest in enumeration order.
// ok is false when the table has no high-risk rows.
func ArgmaxPlatformByHighRisk(t *dataset.Table) (p dataset.Platform, ok bool) {
	counts := highRiskPlatformCounts(t)
	best := 0
	for _, candidate := range dataset.Platforms() {
		if counts[candidate] > best {
			best = counts[candidate]
			p = candidate
			ok = true
		}
	}
	return p, ok
}

// HourSentimentPivot counts rows per hour of day and sentiment. Every one of
// the 24×3 cells is present; unobserved combinations are zero.
type HourSentimentPivot [24][3]int

// GroupByHourAndSentiment builds the hour × sentiment pivot.
func GroupByHourAndSentiment(t *dataset.Table) HourSentimentPivot {
	var pv HourSentimentPivot
	t.Each(func(_ int, e dataset.Event) {
		if e.Hour < 0 || e.Hour >= len(pv) || !e.Sentiment.Valid() {
			return
		}
		pv[e.Hour][e.Sentiment]++
	})
	return pv
}

// Count returns the cell for hour and s, or 0 when either is out of range.
func (pv HourSentimentPivot) Count(hour int, s dataset.Sentiment) int {
	if hour < 0 || hour >= len(pv) || !s.Valid() {
		return 0
	}
	return pv[hour][s]
}

// PeakHour returns the hour with the most rows of sentiment s, earliest hour
// on ties. ok is false when no row has that sentiment.
func (pv HourSentimentPivot) PeakHour(s dataset.Sentiment) (hour int, ok bool) {
	if !s.Valid() {
		return 0, false
	}
	best := 0
	for h := range pv {
		if pv[h][s] > best {
			best = pv[h][s]
			hour = h
			ok = true
		}
	}
	return hour, ok
}

type pivotRowJSON struct {
	Hour     int `json:"hour"`
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// MarshalJSON encodes the pivot as 24 rows keyed by hour.
func (pv HourSentimentPivot) MarshalJSON() ([]byte, error) {
	rows := make([]pivotRowJSON, len(pv))
	for h, cells := range pv {
		rows[h] = pivotRowJSON{
			Hour:     h,
			Positive: cells[dataset.Positive],
			Neutral:  cells[dataset.Neutral],
			Negative: cells[dataset.Negative],
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes the row form written by MarshalJSON. Hours missing
// from the input stay zero; hours outside 0..23 are rejected.
func (pv *HourSentimentPivot) UnmarshalJSON(b []byte) error {
	var rows []pivotRowJSON
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	var out HourSentimentPivot
	for _, r := range rows {
		if r.Hour < 0 || r.Hour >= len(out) {
			return fmt.Errorf("hourly sentiment: hour %d out of range 0..%d", r.Hour, len(out)-1)
		}
		out[r.Hour][dataset.Positive] = r.Positive
		out[r.Hour][dataset.Neutral] = r.Neutral
		out[r.Hour][dataset.Negative] = r.Negative
	}
	*pv = out
	return nil
}

// KeywordStats summarizes the rows carrying one keyword.
type KeywordStats struct {
	Keyword      dataset.Keyword `json:"keyword"`
	MeanSeverity float64         `json:"mean_severity"`
	Frequency    int             `json:"frequency"`
}

// GroupByKeyword summarizes each observed keyword, sorted by mean severity
// descending. Equal means keep keyword enumeration order.
func GroupByKeyword(t *dataset.Table) []KeywordStats {
	n := len(dataset.Keywords())
	sums := make([]float64, n)
	counts := make([]int, n)
	t.Each(func(_ int, e dataset.Event) {
		if !e.Keyword.Valid() {
			return
		}
		sums[e.Keyword] += e.Severity
		counts[e.Keyword]++
	})

	var out []KeywordStats
	for _, k := range dataset.Keywords() {
		if counts[k] == 0 {
			continue
		}
		out = append(out, KeywordStats{
			Keyword:      k,
			MeanSeverity: sums[k] / float64(counts[k]),
			Frequency:    counts[k],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MeanSeverity > out[j].MeanSeverity
	})
	return out
}

// MonthStats summarizes one calendar month.
type MonthStats struct {
	Month         string `json:"month"`
	Incidents     int    `json:"incidents"`
	Interventions int    `json:"interventions"`
}

// GroupByMonth summarizes each observed calendar month in chronological order.
func GroupByMonth(t *dataset.Table) []MonthStats {
	byMonth := make(map[string]*MonthStats)
	t.Each(func(_ int, e dataset.Event) {
		key := e.Timestamp.Format(MonthLayout)
		ms, ok := byMonth[key]
		if !ok {
			ms = &MonthStats{Month: key}
			byMonth[key] = ms
		}
		ms.Incidents++
		if e.Intervention {
			ms.Interventions++
		}
	})

	out := make([]MonthStats, 0, len(byMonth))
	for _, ms := range byMonth {
		out = append(out, *ms)
	}
	// YYYY-MM keys sort chronologically as strings.
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// DailySeverity is the mean severity of one calendar date.
type DailySeverity struct {
	Date         time.Time `json:"date"`
	MeanSeverity float64   `json:"mean_severity"`
}

// DailyMeanSeverity returns one entry per distinct date, chronologically.
func DailyMeanSeverity(t *dataset.Table) []DailySeverity {
	type acc struct {
		sum float64
		n   int
	}
	byDay := make(map[time.Time]*acc)
	t.Each(func(_ int, e dataset.Event) {
		day := dataset.Day(e.Timestamp)
		a, ok := byDay[day]
		if !ok {
			a = &acc{}
			byDay[day] = a
		}
		a.sum += e.Severity
		a.n++
	})

	out := make([]DailySeverity, 0, len(byDay))
	for day, a := range byDay {
		out = append(out, DailySeverity{Date: day, MeanSeverity: a.sum / float64(a.n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// MeanSeverityInHours returns the mean severity of rows whose hour lies in
// [from, to], or NaN if there are none.
func MeanSeverityInHours(t *dataset.Table, from, to int) float64 {
	var sum float64
	n := 0
	t.Each(func(_ int, e dataset.Event) {
		if e.Hour >= from && e.Hour <= to {
			sum += e.Severity
			n++
		}
	})
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
