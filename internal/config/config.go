// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

// Package config handles .riskpulse.yaml and .riskpulse.toml configuration files.
package config

import "github.com/davetashner/riskpulse/internal/query"

// Config represents the contents of a riskpulse config file. Zero values mean
// "not set" so that layers can be merged; Seed is a pointer because zero is a
// valid seed.
type Config struct {
	Seed         *int64          `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Days         int             `yaml:"days,omitempty" toml:"days,omitempty"`
	EndDate      string          `yaml:"end_date,omitempty" toml:"end_date,omitempty"`
	OutputFormat string          `yaml:"output_format,omitempty" toml:"output_format,omitempty"`
	Sections     []string        `yaml:"sections,omitempty" toml:"sections,omitempty"`
	Filter       query.Selection `yaml:"filter,omitempty" toml:"filter,omitempty"`
	Serve        ServeConfig     `yaml:"serve,omitempty" toml:"serve,omitempty"`
}

// ServeConfig holds settings for the metrics server.
type ServeConfig struct {
	Addr string `yaml:"addr,omitempty" toml:"addr,omitempty"`
}

const (
	// FileName is the config file name looked up in the working directory.
	FileName = ".riskpulse.yaml"

	// TOMLFileName is the TOML variant, read when FileName is absent.
	TOMLFileName = ".riskpulse.toml"

	// DefaultOutputFormat is used when no layer sets output_format.
	DefaultOutputFormat = "text"

	// DefaultServeAddr is used when no layer sets serve.addr.
	DefaultServeAddr = ":9310"
)
