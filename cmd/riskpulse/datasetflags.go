// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/davetashner/riskpulse/internal/config"
	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

// nowFunc supplies the default end date. Tests pin it.
var nowFunc = time.Now

// datasetFlags holds the generation and filter flags shared by every command
// that builds a table.
type datasetFlags struct {
	seed       int64
	days       int
	endDate    string
	platforms  string
	riskLevels string
	from       string
	to         string
}

// dsFlags is bound to each command's flag set; only one command runs per
// process.
var dsFlags datasetFlags

func (f *datasetFlags) register(fs *pflag.FlagSet) {
	fs.Int64Var(&f.seed, "seed", dataset.DefaultSeed, "generation seed")
	fs.IntVar(&f.days, "days", dataset.DefaultDays, "number of days to generate")
	fs.StringVar(&f.endDate, "end-date", "", "last generated day, YYYY-MM-DD (default: today in UTC)")
	fs.StringVar(&f.platforms, "platforms", "", "comma-separated platforms to include, or none (default: all)")
	fs.StringVar(&f.riskLevels, "risk-levels", "", "comma-separated risk levels to include, or none (default: all)")
	fs.StringVar(&f.from, "from", "", "first included day, YYYY-MM-DD (default: start of range)")
	fs.StringVar(&f.to, "to", "", "last included day, YYYY-MM-DD (default: end of range)")
}

// overrides returns a config layer holding only the flags set on the command
// line, so unset flags fall through to config files.
func (f *datasetFlags) overrides(fs *pflag.FlagSet) *config.Config {
	cfg := &config.Config{}
	if fs.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fs.Changed("days") {
		cfg.Days = f.days
	}
	if fs.Changed("end-date") {
		cfg.EndDate = f.endDate
	}
	if fs.Changed("platforms") {
		cfg.Filter.Platforms = query.SplitList(f.platforms)
	}
	if fs.Changed("risk-levels") {
		cfg.Filter.RiskLevels = query.SplitList(f.riskLevels)
	}
	if fs.Changed("from") {
		cfg.Filter.From = f.from
	}
	if fs.Changed("to") {
		cfg.Filter.To = f.to
	}
	return cfg
}

// loadSettings layers global config, the working directory's config file,
// the shared dataset flags and cmdLayer, then validates and resolves the
// result. Precedence runs in that order, last wins.
func loadSettings(fs *pflag.FlagSet, cmdLayer *config.Config) (config.Settings, error) {
	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "riskpulse: failed to load %s (%v)", config.GlobalConfigPath(), err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "riskpulse: failed to load config (%v)", err)
	}

	flagLayer := dsFlags.overrides(fs)
	if fs.Changed("days") && dsFlags.days < 1 {
		return config.Settings{}, exitError(ExitInvalidArgs, "riskpulse: --days must be positive, got %d", dsFlags.days)
	}

	merged := config.Merge(config.Merge(config.Merge(globalCfg, repoCfg), flagLayer), cmdLayer)
	if err := config.Validate(merged); err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "riskpulse: %v", err)
	}

	settings, err := config.Resolve(merged, nowFunc())
	if err != nil {
		return config.Settings{}, exitError(ExitInvalidArgs, "riskpulse: %v", err)
	}

	end := settings.Params.EndDate.Format(dataset.DateLayout)
	if settings.EndDateDefaulted {
		slog.Info("no end date configured, using today (UTC); pass --end-date to reproduce this run", "end_date", end)
	}
	slog.Info("dataset parameters",
		"seed", settings.Params.Seed,
		"days", settings.Params.Days,
		"end_date", end,
	)
	return settings, nil
}

// buildDashboard generates the table for s and applies its filter.
func buildDashboard(s config.Settings) (*dataset.Table, *query.Dashboard, error) {
	full, err := dataset.Generate(s.Params)
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "riskpulse: %v", err)
	}
	f, err := s.Selection.Resolve(full)
	if err != nil {
		return nil, nil, exitError(ExitInvalidArgs, "riskpulse: %v", err)
	}
	d := query.Build(full, f)
	slog.Info("dashboard built", "rows", full.Len(), "matched", d.Summary.Analyzed, "filter", f.String())
	return full, d, nil
}
