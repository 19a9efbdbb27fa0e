// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

// Package query filters generated event tables and derives the aggregate
// tables consumed by renderers.
package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/davetashner/riskpulse/internal/dataset"
)

// Filter is an immutable selection of platforms, risk levels and an
// inclusive date interval. An empty Platforms or RiskLevels set matches
// nothing. A zero From or To leaves that end of the interval open.
type Filter struct {
	Platforms  []dataset.Platform  `json:"platforms"`
	RiskLevels []dataset.RiskLevel `json:"risk_levels"`
	From       time.Time           `json:"from"`
	To         time.Time           `json:"to"`
}

// AllFilter returns the filter that selects every row of t: all platforms,
// all risk levels and t's full date range.
func AllFilter(t *dataset.Table) Filter {
	from, to, _ := t.DateRange()
	return Filter{
		Platforms:  dataset.Platforms(),
		RiskLevels: dataset.RiskLevels(),
		From:       from,
		To:         to,
	}
}

// matcher is a Filter compiled for fast per-row checks.
type matcher struct {
	platforms  [4]bool
	riskLevels [4]bool
	from, to   time.Time
}

func (f Filter) compile() matcher {
	var m matcher
	for _, p := range f.Platforms {
		if p >= 0 && int(p) < len(m.platforms) {
			m.platforms[p] = true
		}
	}
	for _, r := range f.RiskLevels {
		if r >= 0 && int(r) < len(m.riskLevels) {
			m.riskLevels[r] = true
		}
	}
	if !f.From.IsZero() {
		m.from = dataset.Day(f.From)
	}
	if !f.To.IsZero() {
		m.to = dataset.Day(f.To)
	}
	return m
}

func (m *matcher) match(e dataset.Event) bool {
	if !e.Platform.Valid() || !e.RiskLevel.Valid() {
		return false
	}
	if !m.platforms[e.Platform] || !m.riskLevels[e.RiskLevel] {
		return false
	}
	day := dataset.Day(e.Timestamp)
	if !m.from.IsZero() && day.Before(m.from) {
		return false
	}
	if !m.to.IsZero() && day.After(m.to) {
		return false
	}
	return true
}

// Match reports whether e passes the filter.
func (f Filter) Match(e dataset.Event) bool {
	m := f.compile()
	return m.match(e)
}

// Apply returns the rows of t that pass f, in their original order. The
// input table is never modified; an empty result is a valid empty table.
func Apply(t *dataset.Table, f Filter) *dataset.Table {
	m := f.compile()
	out := make([]dataset.Event, 0, t.Len())
	t.Each(func(_ int, e dataset.Event) {
		if m.match(e) {
			out = append(out, e)
		}
	})
	return dataset.NewTable(out)
}

// String describes the filter for headers and logs.
func (f Filter) String() string {
	return fmt.Sprintf("platforms=%s risk_levels=%s dates=%s..%s",
		joinNames(f.Platforms), joinNames(f.RiskLevels), formatBound(f.From), formatBound(f.To))
}

func joinNames[T fmt.Stringer](values []T) string {
	if len(values) == 0 {
		return NoneValue
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.String()
	}
	return strings.Join(names, ",")
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "*"
	}
	return t.Format(dataset.DateLayout)
}
