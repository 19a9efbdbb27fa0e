// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	riskpulselog "github.com/davetashner/riskpulse/internal/log"
)

// Global flag values.
var (
	verbose   bool
	quiet     bool
	noColor   bool
	logFormat string
)

// rootCmd is the base command for riskpulse.
var rootCmd = &cobra.Command{
	Use:   "riskpulse",
	Short: "Generate and explore synthetic mental-health risk event dashboards",
	Long: `Riskpulse generates a reproducible table of synthetic social-media risk
events from a seed and a date range, then filters and aggregates it into
dashboard views: risk-level distribution, platform activity, hourly sentiment,
keyword severity and monthly and daily trends.

The same seed, day count and end date always produce the same table.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := riskpulselog.Setup(verbose, quiet, logFormat); err != nil {
			return exitError(ExitInvalidArgs, "riskpulse: %v", err)
		}
		if noColor {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", riskpulselog.FormatText, "log format: text or json")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
