// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

// Package report provides a pluggable section registry for riskpulse report.
// Each section reads the aggregates of one dashboard and renders a focused
// analysis as terminal text.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/davetashner/riskpulse/internal/query"
)

// ErrNoData indicates the filter matched no rows, so the section has
// nothing to show.
var ErrNoData = errors.New("no data for current filter")

// Section is a pluggable report section that analyzes a dashboard and
// renders a focused report segment.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "keywords").
	Name() string

	// Description returns a human-readable description of what this section reports.
	Description() string

	// Analyze reads the dashboard and prepares internal state for rendering.
	// Returns ErrNoData (wrapped) if the filtered table is empty.
	Analyze(d *query.Dashboard) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}

// requireData returns a wrapped ErrNoData when d has no rows.
func requireData(name string, d *query.Dashboard) error {
	if d == nil || d.Empty() {
		return fmt.Errorf("%s: %w", name, ErrNoData)
	}
	return nil
}
