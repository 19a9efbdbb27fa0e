// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Shared color printers for report sections.
var (
	colorRed     = color.New(color.FgRed)
	colorDarkRed = color.New(color.FgRed, color.Bold)
	colorYellow  = color.New(color.FgYellow)
	colorGreen   = color.New(color.FgGreen)
	colorBold    = color.New(color.Bold)
)

// ColorRiskLevel colors risk level labels from green (Low) to bold red
// (Critical).
func ColorRiskLevel(val string) string {
	switch val {
	case "Critical":
		return colorDarkRed.Sprint(val)
	case "High":
		return colorRed.Sprint(val)
	case "Medium":
		return colorYellow.Sprint(val)
	case "Low":
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// ColorSeverity colors a formatted severity score using the keyword matrix
// thresholds: above 9 bold red, above 7 red, otherwise yellow.
func ColorSeverity(val string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return val
	}
	switch {
	case f > 9:
		return colorDarkRed.Sprint(val)
	case f > 7:
		return colorRed.Sprint(val)
	default:
		return colorYellow.Sprint(val)
	}
}

// ColorDelta colors a signed delta: worse (positive) is red, better is green.
func ColorDelta(val string) string {
	switch {
	case strings.HasPrefix(val, "+"):
		return colorRed.Sprint(val)
	case strings.HasPrefix(val, "-"):
		return colorGreen.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
