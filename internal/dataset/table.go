// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package dataset

import "time"

// Table is an immutable, ordered sequence of events. The zero value and a
// nil *Table are both valid empty tables.
type Table struct {
	events []Event
}

// NewTable builds a table from a copy of events.
func NewTable(events []Event) *Table {
	cp := make([]Event, len(events))
	copy(cp, events)
	return &Table{events: cp}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.events)
}

// At returns row i. It panics if i is out of range.
func (t *Table) At(i int) Event {
	return t.events[i]
}

// Events returns a copy of all rows.
func (t *Table) Events() []Event {
	if t == nil {
		return nil
	}
	cp := make([]Event, len(t.events))
	copy(cp, t.events)
	return cp
}

// Each calls fn for every row in order.
func (t *Table) Each(fn func(i int, e Event)) {
	if t == nil {
		return
	}
	for i, e := range t.events {
		fn(i, e)
	}
}

// DateRange returns the earliest and latest event dates. ok is false for an
// empty table.
func (t *Table) DateRange() (from, to time.Time, ok bool) {
	if t.Len() == 0 {
		return time.Time{}, time.Time{}, false
	}
	from = Day(t.events[0].Timestamp)
	to = from
	for _, e := range t.events[1:] {
		d := Day(e.Timestamp)
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}
	return from, to, true
}
