// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

// Package exporter publishes dashboard aggregates as Prometheus metrics.
package exporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

const namespace = "riskpulse"

// loadTimeout bounds a single scrape's call to the loader.
const loadTimeout = 10 * time.Second

// Loader returns the dashboard to publish. It is called on every scrape.
type Loader func(ctx context.Context) (*query.Dashboard, error)

// MemoLoader builds dashboards from a memoized table, so only the first
// scrape pays for generation.
func MemoLoader(memo *dataset.Memo, p dataset.Params, sel query.Selection) Loader {
	return func(_ context.Context) (*query.Dashboard, error) {
		full, err := memo.Get(p)
		if err != nil {
			return nil, err
		}
		f, err := sel.Resolve(full)
		if err != nil {
			return nil, err
		}
		return query.Build(full, f), nil
	}
}

// Collector is a prometheus.Collector that recomputes the dashboard gauges
// at scrape time.
type Collector struct {
	load Loader

	up               *prometheus.Desc
	events           *prometheus.Desc
	highRisk         *prometheus.Desc
	interventions    *prometheus.Desc
	meanSeverity     *prometheus.Desc
	byRiskLevel      *prometheus.Desc
	platformEvents   *prometheus.Desc
	platformSeverity *prometheus.Desc
	keywordSeverity  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector backed by load.
func NewCollector(load Loader) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, labels, nil)
	}
	return &Collector{
		load:             load,
		up:               desc("up", "Whether the last dashboard load succeeded."),
		events:           desc("events", "Events matching the current filter."),
		highRisk:         desc("high_risk_events", "High and Critical events matching the current filter."),
		interventions:    desc("interventions", "Events with an intervention."),
		meanSeverity:     desc("mean_severity", "Mean severity score; NaN when no events match."),
		byRiskLevel:      desc("events_by_risk_level", "Events per risk level.", "risk_level"),
		platformEvents:   desc("platform_events", "Events per platform.", "platform"),
		platformSeverity: desc("platform_mean_severity", "Mean severity score per platform.", "platform"),
		keywordSeverity:  desc("keyword_mean_severity", "Mean severity score per keyword.", "keyword"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.up, c.events, c.highRisk, c.interventions, c.meanSeverity,
		c.byRiskLevel, c.platformEvents, c.platformSeverity, c.keywordSeverity,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	d, err := c.load(ctx)
	if err != nil {
		slog.Warn("dashboard load failed", "error", err)
		ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 0)
		return
	}
	ch <- prometheus.MustNewConstMetric(c.up, prometheus.GaugeValue, 1)

	s := d.Summary
	ch <- prometheus.MustNewConstMetric(c.events, prometheus.GaugeValue, float64(s.Analyzed))
	ch <- prometheus.MustNewConstMetric(c.highRisk, prometheus.GaugeValue, float64(s.HighRisk))
	ch <- prometheus.MustNewConstMetric(c.interventions, prometheus.GaugeValue, float64(s.Interventions))
	ch <- prometheus.MustNewConstMetric(c.meanSeverity, prometheus.GaugeValue, float64(s.MeanSeverity))

	// Every level is published so absent levels read as zero, not stale.
	counts := query.CountByRiskLevel(d.Events)
	for _, r := range dataset.RiskLevels() {
		ch <- prometheus.MustNewConstMetric(c.byRiskLevel, prometheus.GaugeValue, float64(counts[r]), r.String())
	}
	for _, p := range d.Platforms {
		ch <- prometheus.MustNewConstMetric(c.platformEvents, prometheus.GaugeValue, float64(p.Count), p.Platform.String())
		ch <- prometheus.MustNewConstMetric(c.platformSeverity, prometheus.GaugeValue, p.MeanSeverity, p.Platform.String())
	}
	for _, k := range d.Keywords {
		ch <- prometheus.MustNewConstMetric(c.keywordSeverity, prometheus.GaugeValue, k.MeanSeverity, k.Keyword.String())
	}
}
