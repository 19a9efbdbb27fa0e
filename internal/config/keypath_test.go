// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/query"
)

func TestGetValue_TopLevel(t *testing.T) {
	cfg := &Config{Seed: int64Ptr(7), Days: 30, OutputFormat: "json"}

	val, err := GetValue(cfg, "output_format")
	require.NoError(t, err)
	assert.Equal(t, "json", val)

	val, err = GetValue(cfg, "days")
	require.NoError(t, err)
	assert.Equal(t, 30, val)

	val, err = GetValue(cfg, "seed")
	require.NoError(t, err)
	assert.Equal(t, 7, val)
}

func TestGetValue_Nested(t *testing.T) {
	cfg := &Config{Filter: query.Selection{Platforms: []string{"Reddit"}, From: "2025-01-01"}}

	val, err := GetValue(cfg, "filter.from")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", val)

	val, err = GetValue(cfg, "filter")
	require.NoError(t, err)
	m, ok := val.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Reddit"}, m["platforms"])
}

func TestGetValue_NotFound(t *testing.T) {
	_, err := GetValue(&Config{}, "output_format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSetValue(t *testing.T) {
	data := map[string]any{}
	require.NoError(t, SetValue(data, "days", "90"))
	require.NoError(t, SetValue(data, "serve.addr", ":9400"))
	require.NoError(t, SetValue(data, "filter.platforms", "Twitter, Reddit"))
	require.NoError(t, SetValue(data, "sections", "overview"))

	assert.Equal(t, 90, data["days"])
	serve := data["serve"].(map[string]any)
	assert.Equal(t, ":9400", serve["addr"])
	filter := data["filter"].(map[string]any)
	assert.Equal(t, []any{"Twitter", "Reddit"}, filter["platforms"])
	assert.Equal(t, []any{"overview"}, data["sections"])
}

func TestSetValue_ParentNotMap(t *testing.T) {
	data := map[string]any{"filter": "oops"}
	err := SetValue(data, "filter.from", "2025-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a map")
}

func TestSetValue_EmptyPath(t *testing.T) {
	assert.Error(t, SetValue(map[string]any{}, "", "x"))
}

func TestValidateKeyPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr string
	}{
		{"seed", ""},
		{"end_date", ""},
		{"sections", ""},
		{"filter.risk_levels", ""},
		{"serve.addr", ""},
		{"", "empty"},
		{"max_issues", "unknown key"},
		{"days.value", "scalar"},
		{"filter", "requires a field name"},
		{"filter.keywords", "unknown filter field"},
		{"serve.addr.port", "too deep"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ValidateKeyPath(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFlattenMap(t *testing.T) {
	m := map[string]any{
		"days":   30,
		"filter": map[string]any{"from": "2025-01-01", "to": "2025-02-01"},
	}
	flat := FlattenMap(m, "")
	assert.Equal(t, map[string]any{
		"days":        30,
		"filter.from": "2025-01-01",
		"filter.to":   "2025-02-01",
	}, flat)
}

func TestToFlatMap_OmitsUnset(t *testing.T) {
	flat, err := ToFlatMap(&Config{Days: 10, Serve: ServeConfig{Addr: ":1"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"days": 10, "serve.addr": ":1"}, flat)
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Equal(t, 42, coerceValue("42"))
	assert.Equal(t, 0.5, coerceValue("0.5"))
	assert.Equal(t, "2025-06-30", coerceValue("2025-06-30"))
	assert.Equal(t, "1e3", coerceValue("1e3"))
}
