// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/davetashner/riskpulse/internal/dataset"
)

// NoneValue selects the empty set in a Selection list.
const NoneValue = "none"

// Selection is a textual filter choice as supplied by flags, config files or
// tool inputs. Unlike Filter, an omitted list means "everything", matching a
// multiselect widget whose default is all options; use NoneValue to select
// nothing. Omitted dates default to the table's date range.
type Selection struct {
	Platforms  []string `json:"platforms,omitempty" yaml:"platforms,omitempty" toml:"platforms,omitempty"`
	RiskLevels []string `json:"risk_levels,omitempty" yaml:"risk_levels,omitempty" toml:"risk_levels,omitempty"`
	From       string   `json:"from,omitempty" yaml:"from,omitempty" toml:"from,omitempty"`
	To         string   `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
}

// Validate parses every field without needing a table.
func (s Selection) Validate() error {
	if _, err := parsePlatforms(s.Platforms); err != nil {
		return err
	}
	if _, err := parseRiskLevels(s.RiskLevels); err != nil {
		return err
	}
	from, err := parseOptionalDate(s.From)
	if err != nil {
		return err
	}
	to, err := parseOptionalDate(s.To)
	if err != nil {
		return err
	}
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: from %s is after to %s", dataset.ErrInvalidArgument, s.From, s.To)
	}
	return nil
}

// Resolve turns the selection into a Filter for t.
func (s Selection) Resolve(t *dataset.Table) (Filter, error) {
	if err := s.Validate(); err != nil {
		return Filter{}, err
	}
	f := AllFilter(t)

	if s.Platforms != nil {
		f.Platforms, _ = parsePlatforms(s.Platforms)
	}
	if s.RiskLevels != nil {
		f.RiskLevels, _ = parseRiskLevels(s.RiskLevels)
	}
	if d, _ := parseOptionalDate(s.From); d != nil {
		f.From = *d
	}
	if d, _ := parseOptionalDate(s.To); d != nil {
		f.To = *d
	}
	return f, nil
}

// SplitList splits a comma-separated flag value, trimming blanks.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isNone(values []string) bool {
	return len(values) == 1 && strings.EqualFold(strings.TrimSpace(values[0]), NoneValue)
}

func parsePlatforms(values []string) ([]dataset.Platform, error) {
	if isNone(values) {
		return []dataset.Platform{}, nil
	}
	out := make([]dataset.Platform, 0, len(values))
	for _, v := range values {
		p, err := dataset.ParsePlatform(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parseRiskLevels(values []string) ([]dataset.RiskLevel, error) {
	if isNone(values) {
		return []dataset.RiskLevel{}, nil
	}
	out := make([]dataset.RiskLevel, 0, len(values))
	for _, v := range values {
		r, err := dataset.ParseRiskLevel(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := dataset.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
