// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/dataset"
	"github.com/davetashner/riskpulse/internal/query"
)

var testEnd = time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

func testParams() dataset.Params {
	return dataset.Params{Seed: 42, Days: 60, EndDate: testEnd}
}

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl, err := dataset.Generate(testParams())
	require.NoError(t, err)
	return tbl
}

func fullDashboard(t *testing.T) *query.Dashboard {
	t.Helper()
	tbl := testTable(t)
	return query.Build(tbl, query.AllFilter(tbl))
}

func emptyDashboard(t *testing.T) *query.Dashboard {
	t.Helper()
	tbl := testTable(t)
	f := query.AllFilter(tbl)
	f.RiskLevels = nil
	return query.Build(tbl, f)
}
