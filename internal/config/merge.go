// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"time"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

// Merge layers override on top of base and returns a new Config. Set fields
// in override win; zero-value fields fall through to base. Neither input is
// modified. Layer order is global, then repo file, then CLI flags.
func Merge(base, override *Config) *Config {
	merged := Config{}
	if base != nil {
		merged = *base
	}
	if override == nil {
		return &merged
	}

	if override.Seed != nil {
		seed := *override.Seed
		merged.Seed = &seed
	}
	if override.Days != 0 {
		merged.Days = override.Days
	}
	if override.EndDate != "" {
		merged.EndDate = override.EndDate
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.Sections != nil {
		merged.Sections = override.Sections
	}
	merged.Filter = mergeSelection(merged.Filter, override.Filter)
	if override.Serve.Addr != "" {
		merged.Serve.Addr = override.Serve.Addr
	}
	return &merged
}

// mergeSelection merges per field. A nil list is unset; an explicit "none"
// list is a setting and overrides.
func mergeSelection(base, override query.Selection) query.Selection {
	if override.Platforms != nil {
		base.Platforms = override.Platforms
	}
	if override.RiskLevels != nil {
		base.RiskLevels = override.RiskLevels
	}
	if override.From != "" {
		base.From = override.From
	}
	if override.To != "" {
		base.To = override.To
	}
	return base
}

// Settings is a fully resolved run configuration with defaults applied.
type Settings struct {
	Params       dataset.Params
	Selection    query.Selection
	OutputFormat string
	Sections     []string
	ServeAddr    string

	// EndDateDefaulted is true when no layer set end_date and today was used.
	EndDateDefaulted bool
}

// Resolve applies defaults to cfg. now supplies the default end date, taken
// as its UTC calendar date. Only end_date can fail to resolve; run Validate
// for the full set of checks.
func Resolve(cfg *Config, now time.Time) (Settings, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	s := Settings{
		Params:       dataset.DefaultParams(dataset.Day(now.UTC())),
		Selection:    cfg.Filter,
		OutputFormat: cfg.OutputFormat,
		Sections:     cfg.Sections,
		ServeAddr:    cfg.Serve.Addr,
	}
	if cfg.Seed != nil {
		s.Params.Seed = *cfg.Seed
	}
	if cfg.Days != 0 {
		s.Params.Days = cfg.Days
	}
	if cfg.EndDate != "" {
		end, err := dataset.ParseDate(cfg.EndDate)
		if err != nil {
			return Settings{}, fmt.Errorf("end_date: %w", err)
		}
		s.Params.EndDate = end
	} else {
		s.EndDateDefaulted = true
	}
	if s.OutputFormat == "" {
		s.OutputFormat = DefaultOutputFormat
	}
	if s.ServeAddr == "" {
		s.ServeAddr = DefaultServeAddr
	}
	return s, nil
}
