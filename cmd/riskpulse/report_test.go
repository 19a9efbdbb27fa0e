// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/config"
	"github.com/davetashner/riskpulse/internal/output"
)

func TestReport_TextDefaults(t *testing.T) {
	setupCmdTest(t)
	out, err := runCmd(t, "report", "--days", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "Riskpulse Report")
	assert.Contains(t, out, "Seed:    42")
	// End date defaults to the pinned clock's calendar day.
	assert.Contains(t, out, "2025-06-01 to 2025-06-30 (30 days)")
}

func TestReport_Deterministic(t *testing.T) {
	setupCmdTest(t)
	args := []string{"report", "--seed", "7", "--days", "20", "--end-date", "2024-02-10"}
	first, err := runCmd(t, args...)
	require.NoError(t, err)

	resetFlags()
	second, err := runCmd(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReport_JSON(t *testing.T) {
	setupCmdTest(t)
	out, err := runCmd(t, "report", "--seed", "3", "--days", "10", "--end-date", "2025-01-10",
		"--format", "json", "--sections", "overview")
	require.NoError(t, err)

	var env output.JSONEnvelope
	require.NoError(t, json.Unmarshal([]byte(out), &env))
	assert.Equal(t, int64(3), env.Metadata.Seed)
	assert.Equal(t, "2025-01-01", env.Metadata.StartDate)
	assert.Equal(t, "2025-01-10", env.Metadata.EndDate)
	require.NotNil(t, env.Dashboard)
	assert.Positive(t, env.Dashboard.Summary.Total)
	require.Len(t, env.Sections, 1)
	assert.Equal(t, "overview", env.Sections[0].Name)
}

func TestReport_SectionsFilter(t *testing.T) {
	setupCmdTest(t)
	out, err := runCmd(t, "report", "--days", "10", "--sections", "platforms")
	require.NoError(t, err)
	assert.Contains(t, out, "Platform Analysis")
	assert.NotContains(t, out, "Key Insights")
}

func TestReport_UnknownSection(t *testing.T) {
	setupCmdTest(t)
	_, err := runCmd(t, "report", "--sections", "overview,bogus")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "bogus")
	assert.Contains(t, ece.Error(), "available")
}

func TestReport_EventFormatRejected(t *testing.T) {
	setupCmdTest(t)
	_, err := runCmd(t, "report", "--format", "csv")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "does not render reports")
}

func TestReport_UnknownFormat(t *testing.T) {
	setupCmdTest(t)
	_, err := runCmd(t, "report", "--format", "pdf")
	requireExitCode(t, err, ExitInvalidArgs)
}

func TestReport_InvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero days", []string{"--days", "0"}, "--days must be positive"},
		{"negative days", []string{"--days", "-5"}, "--days must be positive"},
		{"too many days", []string{"--days", "99999"}, "days"},
		{"bad end date", []string{"--end-date", "30/06/2025"}, "end_date"},
		{"bad platform", []string{"--platforms", "MySpace"}, "MySpace"},
		{"bad risk level", []string{"--risk-levels", "Extreme"}, "Extreme"},
		{"bad from", []string{"--from", "yesterday"}, "yesterday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCmdTest(t)
			_, err := runCmd(t, append([]string{"report"}, tt.args...)...)
			ece := requireExitCode(t, err, ExitInvalidArgs)
			assert.Contains(t, ece.Error(), tt.want)
		})
	}
}

func TestReport_EmptySelectionSkipsSections(t *testing.T) {
	setupCmdTest(t)
	out, err := runCmd(t, "report", "--days", "10", "--risk-levels", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "Rows:    0 of")
	assert.Contains(t, out, "Skipped: no posts match the current filter.")
}

func TestReport_OutputFile(t *testing.T) {
	dir := setupCmdTest(t)
	path := filepath.Join(dir, "out", "report.md")

	out, err := runCmd(t, "report", "--days", "10", "--format", "markdown", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#"), "markdown should start with a heading")
}

func TestReport_OutputCreateFailure(t *testing.T) {
	setupCmdTest(t)
	cmdFS = failingCreateFS()

	_, err := runCmd(t, "report", "--days", "10", "-o", "report.txt")
	ece := requireExitCode(t, err, ExitRenderFailure)
	assert.Contains(t, ece.Error(), "disk full")
}

func TestReport_ConfigPrecedence(t *testing.T) {
	dir := setupCmdTest(t)
	writeTestFile(t, filepath.Join(dir, "xdg", "riskpulse"), "config.yaml", "seed: 11\ndays: 12\n")
	writeTestFile(t, dir, config.FileName, "seed: 22\nend_date: 2024-03-31\n")

	// Directory config overrides global; unset keys fall through.
	out, err := runCmd(t, "report", "--sections", "overview")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed:    22")
	assert.Contains(t, out, "2024-03-20 to 2024-03-31 (12 days)")

	// Flags override both.
	resetFlags()
	out, err = runCmd(t, "report", "--sections", "overview", "--seed", "33")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed:    33")
}

func TestReport_ConfigOutputFormat(t *testing.T) {
	dir := setupCmdTest(t)
	writeTestFile(t, dir, config.TOMLFileName, "output_format = \"json\"\ndays = 5\n")

	out, err := runCmd(t, "report", "--sections", "overview")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "expected JSON output, got:\n%s", out)
}

func TestReport_InvalidConfigFile(t *testing.T) {
	dir := setupCmdTest(t)
	writeTestFile(t, dir, config.FileName, "days: [oops\n")

	_, err := runCmd(t, "report")
	requireExitCode(t, err, ExitInvalidArgs)
}
