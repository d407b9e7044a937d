// SPDX-License-Identifier: MIT
// Package: triad
//
// driver.go - scheduling: who proposes next, and the run loop.
//
// Scheduling:
//   • Scan ids ascending; the first free individual with untried pairs proposes.
//   • One attempt per step; the counter grows by one per attempt.
//   • No eligible individual left is the fixed point.

package triad

import "fmt"

const methodRun = "Run"

// Next returns the lowest id that is free and still has untried pairs.
// ok is false at the fixed point.
func (m *Matcher) Next() (int, bool) {
	for id, model := range m.models {
		if !m.reg.Assigned(id) && !model.Exhausted() {
			return id, true
		}
	}

	return 0, false
}

// Done reports whether the run reached its fixed point.
func (m *Matcher) Done() bool {
	_, ok := m.Next()

	return !ok
}

// Step performs one attempt for the next eligible individual.
// ok is false, with a zero Attempt, when the fixed point was already reached.
func (m *Matcher) Step() (att Attempt, ok bool, err error) {
	if m.aborted != nil {
		return Attempt{}, false, fmt.Errorf("%w: %w", ErrAborted, m.aborted)
	}
	p, ok := m.Next()
	if !ok {
		return Attempt{}, false, nil
	}
	att, err = m.Propose(p)

	return att, true, err
}

// Run steps until the fixed point and returns the final state.
//
// With WithMaxProposals the loop also stops once the cap is reached and
// returns the partial Result together with ErrProposalLimit. Any fatal
// error is returned with the Result as it stood when the error surfaced.
//
// Complexity: at most Bound() attempts; each attempt costs O(N) for the
// scheduling scan plus O(1) for the acceptance tests.
func (m *Matcher) Run() (Result, error) {
	for {
		// 1) Respect the optional cap before popping anything else.
		if m.options.MaxProposals > 0 && m.proposals >= m.options.MaxProposals && !m.Done() {
			m.emit(Event{Kind: RunFinished})
			return m.Result(), fmt.Errorf("%s: after %d proposals: %w", methodRun, m.proposals, ErrProposalLimit)
		}

		// 2) One attempt.
		_, ok, err := m.Step()
		if err != nil {
			return m.Result(), err
		}
		if !ok {
			break
		}

		// 3) Each attempt consumes a pair, so this cannot trip unless a queue grew.
		if m.proposals > m.bound {
			return m.Result(), m.abort(fmt.Errorf("%s: %d > %d: %w", methodRun, m.proposals, m.bound, ErrNoProgress))
		}
	}

	m.emit(Event{Kind: RunFinished})

	return m.Result(), nil
}
