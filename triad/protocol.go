// SPDX-License-Identifier: MIT
// Package: triad
//
// protocol.go - one proposal attempt and the individual acceptance test.
//
// Contract:
//   • Exactly one pair is popped per attempt, whatever the outcome.
//   • Acceptance needs both candidates; a rejection changes nothing but the
//     proposer's queue and the attempt counter.
//   • A commit dissolves both candidates' teams, then seats (p,a,b) in the
//     first open slot, as one step from the caller's point of view.

package triad

import (
	"fmt"

	"github.com/katalvlaran/triad/preference"
	"github.com/katalvlaran/triad/roster"
)

const (
	methodPropose     = "Propose"
	methodAcceptsPair = "AcceptsPair"
)

// Attempt is the outcome of one proposal.
type Attempt struct {
	Proposer      int
	Pair          preference.Pair
	FirstAccepts  bool
	SecondAccepts bool
	Slot          int // slot seated on acceptance, roster.None otherwise
}

// Accepted reports whether both candidates accepted.
func (a Attempt) Accepted() bool { return a.FirstAccepts && a.SecondAccepts }

// Propose lets p try its next candidate pair. p must be unassigned with at
// least one untried pair (ErrNotEligible otherwise).
func (m *Matcher) Propose(p int) (Attempt, error) {
	if m.aborted != nil {
		return Attempt{}, fmt.Errorf("%w: %w", ErrAborted, m.aborted)
	}
	if p < 0 || p >= len(m.models) {
		return Attempt{}, fmt.Errorf("%s: id=%d: %w", methodPropose, p, ErrUnknownIndividual)
	}
	if m.reg.Assigned(p) || m.models[p].Exhausted() {
		return Attempt{}, fmt.Errorf("%s: id=%d assigned=%t pending=%d: %w",
			methodPropose, p, m.reg.Assigned(p), m.models[p].Len(), ErrNotEligible)
	}

	// 1) Pop the best untried pair; it is never offered again.
	pair, _ := m.models[p].Pop()
	m.proposals++
	a, b := pair.First, pair.Second

	// 2) a weighs (b,p); b weighs (a,p). Independent decisions.
	aAccepts, err := m.AcceptsPair(a, preference.Pair{First: b, Second: p})
	if err != nil {
		return Attempt{}, m.abort(fmt.Errorf("%s: proposer=%d: %w", methodPropose, p, err))
	}
	bAccepts, err := m.AcceptsPair(b, preference.Pair{First: a, Second: p})
	if err != nil {
		return Attempt{}, m.abort(fmt.Errorf("%s: proposer=%d: %w", methodPropose, p, err))
	}

	att := Attempt{Proposer: p, Pair: pair, FirstAccepts: aAccepts, SecondAccepts: bAccepts, Slot: roster.None}
	m.emit(Event{
		Kind:          ProposalAttempted,
		Proposer:      p,
		Pair:          pair,
		FirstAccepts:  aAccepts,
		SecondAccepts: bAccepts,
		Slot:          roster.None,
	})
	if !att.Accepted() {
		return att, nil
	}

	// 3) Commit: free both candidates (their teams may coincide), then seat.
	if err = m.reg.DissolveTeamOf(a); err != nil {
		return att, m.abort(fmt.Errorf("%s: %w", methodPropose, err))
	}
	if err = m.reg.DissolveTeamOf(b); err != nil {
		return att, m.abort(fmt.Errorf("%s: %w", methodPropose, err))
	}
	if att.Slot, err = m.reg.FormInOpenSlot(p, a, b); err != nil {
		return att, m.abort(fmt.Errorf("%s: %w", methodPropose, err))
	}
	if m.options.Verify {
		if err = m.reg.Check(); err != nil {
			return att, m.abort(fmt.Errorf("%s: %w", methodPropose, err))
		}
	}

	return att, nil
}

// AcceptsPair reports whether id would leave its current arrangement to team
// up with pair. Free individuals and members of incomplete teams always
// accept; otherwise pair must rank strictly above id's current teammates in
// id's own pair order.
func (m *Matcher) AcceptsPair(id int, pair preference.Pair) (bool, error) {
	if id < 0 || id >= len(m.models) {
		return false, fmt.Errorf("%s: id=%d: %w", methodAcceptsPair, id, ErrUnknownIndividual)
	}

	// 1) Nothing to protect.
	if !m.reg.Assigned(id) {
		return true, nil
	}
	model := m.models[id]

	// 2) Put the proposal in id's own arrangement, more-preferred first.
	proposed, err := model.Canonical(pair)
	if err != nil {
		return false, fmt.Errorf("%s: id=%d: %w", methodAcceptsPair, id, err)
	}

	// 3) Current teammates, ranked; an incomplete team never beats a full proposal.
	x, y := m.reg.Teammates(id)
	if x == roster.None || y == roster.None {
		return true, nil
	}
	ranked, err := model.Order3(x, y, preference.None)
	if err != nil {
		return false, fmt.Errorf("%s: id=%d: %w", methodAcceptsPair, id, err)
	}
	current := preference.Pair{First: ranked[0], Second: ranked[1]}

	// 4) Whichever comes first in id's ranked pair order wins.
	better, err := model.Outranks(proposed, current)
	if err != nil {
		return false, fmt.Errorf("%s: id=%d: %w", methodAcceptsPair, id, err)
	}

	return better, nil
}
