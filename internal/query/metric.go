// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package query

import (
	"fmt"
	"math"
	"strconv"
)

// NotApplicable is the display form of an undefined metric.
const NotApplicable = "N/A"

// Metric is a ratio or mean that is undefined (NaN) when its denominator is
// zero. It encodes to JSON null in that case.
type Metric float64

// Undefined returns a Metric with no value.
func Undefined() Metric { return Metric(math.NaN()) }

// Valid reports whether the metric has a value.
func (m Metric) Valid() bool {
	f := float64(m)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Format renders the metric with the given number of decimals, or "N/A".
func (m Metric) Format(decimals int) string {
	if !m.Valid() {
		return NotApplicable
	}
	return strconv.FormatFloat(float64(m), 'f', decimals, 64)
}

// Percent renders a ratio metric as a percentage with one decimal, or "N/A".
func (m Metric) Percent() string {
	if !m.Valid() {
		return NotApplicable
	}
	return fmt.Sprintf("%.1f%%", float64(m)*100)
}

func (m Metric) String() string { return m.Format(2) }

// MarshalJSON encodes undefined metrics as null.
func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(m), 'g', -1, 64)), nil
}

// UnmarshalJSON decodes null as an undefined metric.
func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Undefined()
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("decode metric: %w", err)
	}
	*m = Metric(f)
	return nil
}

func ratio(num, den float64) Metric {
	if den == 0 {
		return Undefined()
	}
	return Metric(num / den)
}
