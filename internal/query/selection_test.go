// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/riskpulse/internal/dataset"
)

func TestSelection_ResolveDefaultsToAll(t *testing.T) {
	tbl := handTable()
	f, err := Selection{}.Resolve(tbl)
	require.NoError(t, err)
	assert.Equal(t, AllFilter(tbl), f)
}

func TestSelection_Resolve(t *testing.T) {
	tbl := handTable()
	f, err := Selection{
		Platforms:  []string{"reddit", " Twitter "},
		RiskLevels: []string{"HIGH"},
		From:       "2025-05-31",
	}.Resolve(tbl)
	require.NoError(t, err)

	assert.Equal(t, []dataset.Platform{dataset.Reddit, dataset.Twitter}, f.Platforms)
	assert.Equal(t, []dataset.RiskLevel{dataset.High}, f.RiskLevels)
	assert.Equal(t, day(5, 31), f.From)
	assert.Equal(t, day(6, 2), f.To)

	assert.Equal(t, 2, Apply(tbl, f).Len())
}

func TestSelection_NoneSelectsNothing(t *testing.T) {
	tbl := handTable()
	f, err := Selection{RiskLevels: []string{"none"}}.Resolve(tbl)
	require.NoError(t, err)

	assert.Empty(t, f.RiskLevels)
	assert.NotNil(t, f.RiskLevels)
	assert.Zero(t, Apply(tbl, f).Len())
}

func TestSelection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selection
		wantErr string
	}{
		{name: "empty", sel: Selection{}},
		{name: "valid", sel: Selection{Platforms: []string{"Instagram"}, From: "2025-01-01", To: "2025-02-01"}},
		{name: "unknown platform", sel: Selection{Platforms: []string{"MySpace"}}, wantErr: "unknown platform"},
		{name: "unknown risk level", sel: Selection{RiskLevels: []string{"Severe"}}, wantErr: "unknown risk level"},
		{name: "bad from", sel: Selection{From: "01/02/2025"}, wantErr: "malformed date"},
		{name: "bad to", sel: Selection{To: "yesterday"}, wantErr: "malformed date"},
		{name: "inverted range", sel: Selection{From: "2025-03-01", To: "2025-02-01"}, wantErr: "is after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, dataset.ErrInvalidArgument))
		})
	}
}

func TestSelection_ResolveRejectsInvalid(t *testing.T) {
	_, err := Selection{Platforms: []string{"nope"}}.Resolve(handTable())
	assert.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b ,"))
	assert.Equal(t, []string{"none"}, SplitList("none"))
}
