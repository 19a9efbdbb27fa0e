// Copyright 2026 The Riskpulse Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"math/rand"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// eventNamespace scopes the name-based UUIDs assigned by Annotate.
var eventNamespace = uuid.MustParse("5b1f0c8e-3a57-4d6b-9a53-2f0e8c4b7d21")

// Annotate returns a copy of t with ID and Handle populated on every row.
//
// IDs are UUIDv5 values derived from the seed and row index, so they are
// stable across runs. Handles come from a faker seeded with the same seed;
// it owns its own stream and never touches the generation stream, so
// annotating does not change any generated field.
func Annotate(t *Table, seed int64) *Table {
	// gofakeit.New reseeds from crypto/rand when given 0, so the source is
	// built here to keep seed 0 reproducible.
	faker := gofakeit.NewCustom(rand.NewSource(seed).(rand.Source64))
	prefix := strconv.FormatInt(seed, 10) + "/"

	out := make([]Event, 0, t.Len())
	t.Each(func(i int, e Event) {
		e.ID = uuid.NewSHA1(eventNamespace, []byte(prefix+strconv.Itoa(i))).String()
		e.Handle = "@" + faker.Username()
		out = append(out, e)
	})
	return &Table{events: out}
}
