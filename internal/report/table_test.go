// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTable(t *testing.T, tbl *Table) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	return splitLines(buf.String())
}

func TestTable_PlatformRows(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Platform"},
		Column{Header: "Posts", Align: AlignRight},
	)
	tbl.AddRow("Twitter", "812")
	tbl.AddRow("Instagram", "64")

	lines := renderTable(t, tbl)
	require.Len(t, lines, 4)
	assert.Equal(t, "  Platform   Posts", lines[0])
	assert.Equal(t, "  ---------  -----", lines[1])
	assert.Equal(t, "  Twitter      812", lines[2])
	assert.Equal(t, "  Instagram     64", lines[3])
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_BarCellsMeasuredInRunes(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Level"},
		Column{Header: "Share"},
	)
	tbl.AddRow("Low", "████")
	tbl.AddRow("Critical", "█")

	lines := renderTable(t, tbl)
	require.Len(t, lines, 4)
	assert.Equal(t, "  --------  -----", lines[1])
	assert.Equal(t, "  Low       ████", lines[2])
	assert.Equal(t, "  Critical  █", lines[3], "trailing padding is trimmed")
}

func TestTable_ColorDoesNotAffectPadding(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Severity", Align: AlignRight, Color: func(v string) string { return "<" + v + ">" }},
		Column{Header: "Keyword"},
	)
	tbl.AddRow("9.10", "hopeless")
	tbl.AddRow("10.42", "alone")

	lines := renderTable(t, tbl)
	require.Len(t, lines, 4)
	assert.Equal(t, "      <9.10>  hopeless", lines[2])
	assert.Equal(t, "     <10.42>  alone", lines[3])
}

func TestTable_RowShapeNormalized(t *testing.T) {
	tbl := NewTable(
		Column{Header: "Month"},
		Column{Header: "Incidents"},
		Column{Header: "Interventions"},
	)
	tbl.AddRow("2025-01")
	tbl.AddRow("2025-02", "700", "180", "ignored")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "2025-01")
	assert.Contains(t, out, "180")
	assert.NotContains(t, out, "ignored")
}

func TestTable_HeaderOnly(t *testing.T) {
	lines := renderTable(t, NewTable(Column{Header: "Hour"}))
	assert.Equal(t, []string{"  Hour", "  ----"}, lines)
}

func TestTable_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTable().Render(&buf))
	assert.Empty(t, buf.String())
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
