// SPDX-License-Identifier: MIT

// Package roster holds the team registry: a fixed arena of team slots and the
// parallel arena of individual assignments, kept mutually consistent.
//
// Every team slot seats exactly three individuals. A slot is either empty
// (all seats None) or full; no partially seated team is ever observable.
// Individuals and slots reference each other by index only:
//
//	assignment[id] == slot  ⇔  id ∈ teams[slot]
//
// Form and Dissolve are the only mutators and each is one indivisible
// transition over both arenas. Form refuses individuals that are already
// seated (ErrBadState); that condition is a sequencing defect in the caller,
// never a recoverable outcome.
//
// Slot selection (OpenSlot) scans slots in ascending index order and returns
// the first with room, so placement is stable across runs.
//
// A Registry is not safe for concurrent use.
package roster
