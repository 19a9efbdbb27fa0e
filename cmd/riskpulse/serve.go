// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davetashner/riskpulse/internal/config"
	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/exporter"
)

var serveAddr string

// serveCmd exposes the dashboard as Prometheus metrics.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve dashboard metrics for Prometheus",
	Long: `Serve the filtered dashboard's headline numbers as Prometheus gauges on
/metrics, with a liveness probe on /healthz. The table is generated on the
first scrape and reused afterwards.`,
	Example: `  riskpulse serve --addr :9310 --end-date 2025-06-30
  riskpulse serve --risk-levels High,Critical`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	dsFlags.register(serveCmd.Flags())
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+config.DefaultServeAddr+")")
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd.Flags(), &config.Config{Serve: config.ServeConfig{Addr: serveAddr}})
	if err != nil {
		return err
	}
	// Resolve the filter once up front so bad values fail fast instead of on
	// every scrape.
	memo := dataset.NewMemo()
	full, err := memo.Get(settings.Params)
	if err != nil {
		return exitError(ExitInvalidArgs, "riskpulse: %v", err)
	}
	if _, err := settings.Selection.Resolve(full); err != nil {
		return exitError(ExitInvalidArgs, "riskpulse: %v", err)
	}

	collector := exporter.NewCollector(exporter.MemoLoader(memo, settings.Params, settings.Selection))
	srv := exporter.NewServer(settings.ServeAddr, exporter.NewRegistry(collector))

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
