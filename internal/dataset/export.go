// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// csvHeader lists the exported columns in order.
var csvHeader = []string{
	"id", "handle", "date", "hour", "platform", "risk_level",
	"severity_score", "sentiment", "intervention", "keyword",
}

// WriteCSV writes t as CSV with a header row.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	var writeErr error
	t.Each(func(_ int, e Event) {
		if writeErr != nil {
			return
		}
		writeErr = cw.Write([]string{
			e.ID,
			e.Handle,
			e.Timestamp.Format(DateLayout),
			strconv.Itoa(e.Hour),
			e.Platform.String(),
			e.RiskLevel.String(),
			strconv.FormatFloat(e.Severity, 'f', -1, 64),
			e.Sentiment.String(),
			strconv.FormatBool(e.Intervention),
			e.Keyword.String(),
		})
	})
	if writeErr != nil {
		return fmt.Errorf("write csv row: %w", writeErr)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteJSONLines writes one JSON object per row.
func WriteJSONLines(w io.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	var writeErr error
	t.Each(func(_ int, e Event) {
		if writeErr != nil {
			return
		}
		writeErr = enc.Encode(e)
	})
	if writeErr != nil {
		return fmt.Errorf("write json lines: %w", writeErr)
	}
	return nil
}
