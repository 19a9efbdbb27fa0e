// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/riskpulse/internal/config"
	"github.com/davetashner/riskpulse/internal/output"
	"github.com/davetashner/riskpulse/internal/query"
	"github.com/davetashner/riskpulse/internal/report"
)

// Report-specific flag values.
var (
	reportSections string
	reportFormat   string
	reportOutput   string
)

// reportCmd renders the dashboard for a filter.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the risk dashboard report",
	Long: `Generate the event table, apply the filter and render the dashboard:
overview metrics, risk-level distribution, platform analysis, hourly
sentiment, keyword severity, monthly trends, daily severity and insights.

Sections with no matching posts are reported as skipped.`,
	Example: `  riskpulse report --end-date 2025-06-30
  riskpulse report --platforms Twitter,Reddit --risk-levels High,Critical
  riskpulse report --sections overview,insights --format markdown -o report.md`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	dsFlags.register(reportCmd.Flags())
	reportCmd.Flags().StringVar(&reportSections, "sections", "", "comma-separated list of report sections to include (default: all)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format: "+strings.Join(output.ReportFormats, ", ")+" (default: text)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file path (default: stdout)")
}

func runReport(cmd *cobra.Command, _ []string) error {
	layer := &config.Config{OutputFormat: reportFormat}
	if cmd.Flags().Changed("sections") {
		layer.Sections = query.SplitList(reportSections)
	}
	if unknown := report.UnknownSections(layer.Sections); len(unknown) > 0 {
		return exitError(ExitInvalidArgs, "riskpulse: unknown sections: %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(report.List(), ", "))
	}

	settings, err := loadSettings(cmd.Flags(), layer)
	if err != nil {
		return err
	}
	if !slices.Contains(output.ReportFormats, settings.OutputFormat) {
		return exitError(ExitInvalidArgs, "riskpulse: format %q does not render reports (use one of: %s)",
			settings.OutputFormat, strings.Join(output.ReportFormats, ", "))
	}
	formatter, err := output.GetFormatter(settings.OutputFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "riskpulse: %v", err)
	}

	_, d, err := buildDashboard(settings)
	if err != nil {
		return err
	}
	if d.Empty() {
		slog.Warn("no posts match the current filter")
	}

	w, closeOut, err := openOutput(cmd, reportOutput)
	if err != nil {
		return err
	}
	doc := output.Document{Params: settings.Params, Dashboard: d, Sections: settings.Sections}
	if err := formatter.Format(doc, w); err != nil {
		_ = closeOut()
		return exitError(ExitRenderFailure, "riskpulse: rendering failed (%v)", err)
	}
	if err := closeOut(); err != nil {
		return exitError(ExitRenderFailure, "riskpulse: closing output (%v)", err)
	}
	if reportOutput != "" {
		slog.Info("report written", "path", reportOutput, "format", settings.OutputFormat)
	}
	return nil
}
