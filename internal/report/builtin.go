// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

// Built-in sections register in dashboard order, which is the default
// report order. Per-file init functions would run in file-name order.
func init() {
	registerBuiltins()
}

func registerBuiltins() {
	Register(&overviewSection{})
	Register(&riskLevelsSection{})
	Register(&platformsSection{})
	Register(&hourlySentimentSection{})
	Register(&keywordsSection{})
	Register(&monthlySection{})
	Register(&dailySeveritySection{})
	Register(&insightsSection{})
}
