// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/output"
	"github.com/davetashner/riskpulse/internal/report"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Days != 0 && (cfg.Days < 1 || cfg.Days > dataset.MaxDays) {
		errs = append(errs, fmt.Sprintf("days: must be between 1 and %d, got %d", dataset.MaxDays, cfg.Days))
	}

	if cfg.EndDate != "" {
		if _, err := dataset.ParseDate(cfg.EndDate); err != nil {
			errs = append(errs, fmt.Sprintf("end_date: %v", err))
		}
	}

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	for _, name := range cfg.Sections {
		if report.Get(name) == nil {
			errs = append(errs, fmt.Sprintf("sections: unknown section %q (available: %s)", name, strings.Join(report.List(), ", ")))
		}
	}

	if err := cfg.Filter.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("filter: %v", err))
	}

	if cfg.Serve.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Serve.Addr); err != nil {
			errs = append(errs, fmt.Sprintf("serve.addr: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
