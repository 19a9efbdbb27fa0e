// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"
)

// DefaultMemoEntries bounds how many tables NewMemo keeps. A ten-year table
// is roughly 90k rows, so long-lived servers must not cache without limit.
const DefaultMemoEntries = 8

// Memo caches generated tables by Params, evicting the least recently used
// table once full. Callers own the Memo and decide its lifetime; nothing in
// this package caches implicitly. Concurrent Get calls for the same Params
// share a single generation run.
type Memo struct {
	mu     sync.Mutex
	tables *lru.Cache
	group  singleflight.Group

	// generate is swapped in tests to count generation runs.
	generate func(Params) (*Table, error)
}

// NewMemo returns an empty Memo holding up to DefaultMemoEntries tables.
func NewMemo() *Memo {
	return NewMemoSize(DefaultMemoEntries)
}

// NewMemoSize returns an empty Memo holding up to maxEntries tables. Values
// below 1 are treated as 1.
func NewMemoSize(maxEntries int) *Memo {
	return &Memo{
		tables:   lru.New(max(maxEntries, 1)),
		generate: Generate,
	}
}

// Get returns the table for p, generating it on first use.
func (m *Memo) Get(p Params) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	key := p.Key()

	if t, ok := m.lookup(key); ok {
		return t, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		if t, ok := m.lookup(key); ok {
			return t, nil
		}
		t, err := m.generate(p)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.tables.Add(key, t)
		m.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

func (m *Memo) lookup(key string) (*Table, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.tables.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Table), true
}

// Len returns the number of cached tables.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tables.Len()
}

// Reset drops every cached table.
func (m *Memo) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables.Clear()
}
