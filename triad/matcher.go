// SPDX-License-Identifier: MIT
// Package: triad
//
// matcher.go - construction and read-only views of the matching state.

package triad

import (
	"fmt"

	"github.com/katalvlaran/triad/preference"
	"github.com/katalvlaran/triad/roster"
)

const methodNew = "New"

// Matcher holds the mutable state of one run: every individual's preference
// model (indexed by id), the team registry, and the attempt counter.
type Matcher struct {
	models    []*preference.Model // models[id]; arena parallel to the registry
	reg       *roster.Registry    // team slots + assignments
	observer  Observer            // never nil
	options   Options             // resolved configuration
	proposals int                 // attempts executed so far
	bound     int                 // Σ initial queue lengths
	aborted   error               // first fatal error, if any
}

// New builds a Matcher from options.
//
// Preconditions (in order):
//  1. With WithPreferences, every order must be a valid permutation and, if
//     WithPopulation was given too, len(orders) must equal it
//     (ErrPopulationMismatch).
//  2. Without WithPreferences a Source is required (preference.ErrNilSource);
//     use WithSeed or WithSource.
//
// Complexity: O(N³) time and space for the N candidate queues.
func New(opts ...Option) (*Matcher, error) {
	// 1) Resolve options over defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Build the preference arena.
	var (
		models []*preference.Model
		err    error
	)
	if cfg.Orders != nil {
		if cfg.populationSet && cfg.Population != len(cfg.Orders) {
			return nil, fmt.Errorf("%s: population=%d orders=%d: %w",
				methodNew, cfg.Population, len(cfg.Orders), ErrPopulationMismatch)
		}
		cfg.Population = len(cfg.Orders)
		models, err = preference.FromOrders(cfg.Orders)
	} else {
		models, err = preference.Generate(cfg.Population, cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	// 3) Wire the observer and the registry hooks that feed it.
	m := &Matcher{
		models:   models,
		observer: cfg.Observer,
		options:  cfg,
	}
	if m.observer == nil {
		m.observer = nopObserver{}
	}
	m.reg, err = roster.New(cfg.Population,
		roster.WithOnForm(func(slot int, members roster.Team) {
			m.emit(Event{Kind: TeamFormed, Slot: slot, Members: members})
		}),
		roster.WithOnDissolve(func(slot int, members roster.Team) {
			m.emit(Event{Kind: TeamDissolved, Slot: slot, Members: members})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	// 4) The attempt bound is the total number of candidate pairs.
	for _, model := range models {
		m.bound += model.Len()
	}

	return m, nil
}

// Population returns N.
func (m *Matcher) Population() int { return len(m.models) }

// Proposals returns the number of attempts executed so far.
func (m *Matcher) Proposals() int { return m.proposals }

// Bound returns the maximum number of attempts a run can make.
func (m *Matcher) Bound() int { return m.bound }

// Model returns id's preference model. The model is live; callers must not Pop.
func (m *Matcher) Model(id int) (*preference.Model, error) {
	if id < 0 || id >= len(m.models) {
		return nil, fmt.Errorf("Model: id=%d: %w", id, ErrUnknownIndividual)
	}

	return m.models[id], nil
}

// Pending returns the number of untried pairs left for id (0 for unknown ids).
func (m *Matcher) Pending(id int) int {
	if id < 0 || id >= len(m.models) {
		return 0
	}

	return m.models[id].Len()
}

// TeamOf returns id's slot or roster.None.
func (m *Matcher) TeamOf(id int) int { return m.reg.TeamOf(id) }

// Teams returns a copy of every slot.
func (m *Matcher) Teams() []roster.Team { return m.reg.Teams() }

// Check verifies the registry invariants.
func (m *Matcher) Check() error { return m.reg.Check() }

// Result snapshots the current state.
func (m *Matcher) Result() Result {
	prefs := make([][]int, len(m.models))
	for id, model := range m.models {
		prefs[id] = model.Order()
	}

	return Result{
		Proposals:   m.proposals,
		Teams:       m.reg.Teams(),
		Assignments: m.reg.Assignments(),
		Preferences: prefs,
	}
}

func (m *Matcher) emit(e Event) {
	e.Proposals = m.proposals
	m.observer.Observe(e)
}

// abort records the first fatal error; later calls report ErrAborted.
func (m *Matcher) abort(err error) error {
	if m.aborted == nil {
		m.aborted = err
	}

	return err
}
