// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

func TestSweep_JSONMatchesSingleSeedRuns(t *testing.T) {
	setupCmdTest(t)
	out, err := runCmd(t, "sweep", "--seeds", "5,9", "--days", "15", "--end-date", "2025-03-15",
		"--risk-levels", "High,Critical", "--json")
	require.NoError(t, err)

	var results []sweepResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, int64(5), results[0].Seed)
	assert.Equal(t, int64(9), results[1].Seed)

	end, err := dataset.ParseDate("2025-03-15")
	require.NoError(t, err)
	for _, r := range results {
		full, err := dataset.Generate(dataset.Params{Seed: r.Seed, Days: 15, EndDate: end})
		require.NoError(t, err)
		f, err := query.Selection{RiskLevels: []string{"High", "Critical"}}.Resolve(full)
		require.NoError(t, err)
		want := query.Summarize(full, query.Apply(full, f))

		assert.Equal(t, full.Len(), r.Rows)
		assert.Equal(t, want.Analyzed, r.Summary.Analyzed)
		assert.Equal(t, want.HighRisk, r.Summary.HighRisk)
		assert.Equal(t, want.Interventions, r.Summary.Interventions)
		assert.Equal(t, want.Analyzed, r.Summary.HighRisk, "every selected row is high risk")
	}
}

func TestSweep_Table(t *testing.T) {
	setupCmdTest(t)
	out, err := runCmd(t, "sweep", "--seeds", "1,2", "--days", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed sweep: 5 days ending 2025-06-30")
	assert.Contains(t, out, "Avg Severity")
	assert.Contains(t, out, "Top Platform")
}

func TestSweep_EmptySelectionShowsNA(t *testing.T) {
	setupCmdTest(t)
	out, err := runCmd(t, "sweep", "--seeds", "1", "--days", "5", "--platforms", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "N/A")
}

func TestSweep_InvalidSeeds(t *testing.T) {
	tests := []struct {
		name  string
		seeds string
		want  string
	}{
		{"empty", "", "at least one seed"},
		{"separators only", " , ", "at least one seed"},
		{"not a number", "1,two", `"two"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCmdTest(t)
			_, err := runCmd(t, "sweep", "--seeds", tt.seeds)
			ece := requireExitCode(t, err, ExitInvalidArgs)
			assert.Contains(t, ece.Error(), tt.want)
		})
	}
}

func TestParseSeeds_DropsDuplicates(t *testing.T) {
	seeds, err := parseSeeds("3, 1,3,-2")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, -2}, seeds)
}
