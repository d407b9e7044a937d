// SPDX-License-Identifier: MIT

package triad

import (
	"errors"

	"github.com/katalvlaran/triad/preference"
)

// DefaultPopulation is the population used when none is configured
// (ten teams of three).
const DefaultPopulation = 30

// Sentinel errors returned by the triad package.
var (
	// ErrPopulationMismatch indicates that WithPopulation and WithPreferences disagree.
	ErrPopulationMismatch = errors.New("triad: population does not match preference orders")

	// ErrNotEligible indicates a proposal by an individual that is seated or has no pairs left.
	ErrNotEligible = errors.New("triad: individual cannot propose")

	// ErrProposalLimit indicates that the configured proposal cap was reached.
	ErrProposalLimit = errors.New("triad: proposal limit reached")

	// ErrNoProgress indicates that the run exceeded its attempt bound.
	ErrNoProgress = errors.New("triad: attempt bound exceeded")

	// ErrAborted indicates that the matcher already failed fatally.
	ErrAborted = errors.New("triad: matcher aborted")

	// ErrUnknownIndividual indicates an id outside the population.
	ErrUnknownIndividual = errors.New("triad: unknown individual")
)

// Options configures a Matcher.
//
// Population   - number of individuals; a positive multiple of 3.
// Source       - randomness for the preference shuffle (ignored with Orders).
// Orders       - explicit preference orders; Orders[i] ranks everybody but i.
// Observer     - receives structured events; nil means no events.
// MaxProposals - stop after this many attempts; 0 means run to the fixed point.
// Verify       - re-check registry invariants after every committed formation.
type Options struct {
	Population   int
	Source       preference.Source
	Orders       [][]int
	Observer     Observer
	MaxProposals int
	Verify       bool

	populationSet bool
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the defaults: DefaultPopulation, no source, no
// observer, no proposal cap, no verification.
func DefaultOptions() Options {
	return Options{Population: DefaultPopulation}
}

// WithPopulation sets the population size.
// Panics unless n is a positive multiple of 3.
func WithPopulation(n int) Option {
	if err := preference.ValidatePopulation(n); err != nil {
		panic("triad: WithPopulation: " + err.Error())
	}
	return func(o *Options) {
		o.Population = n
		o.populationSet = true
	}
}

// WithSeed draws preference orders from a source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = preference.NewSource(seed)
	}
}

// WithSource draws preference orders from src. Panics on nil.
func WithSource(src preference.Source) Option {
	if src == nil {
		panic("triad: WithSource(nil)")
	}
	return func(o *Options) {
		o.Source = src
	}
}

// WithPreferences supplies every individual's order verbatim; the population
// is len(orders). Panics on an empty slice.
func WithPreferences(orders [][]int) Option {
	if len(orders) == 0 {
		panic("triad: WithPreferences(empty)")
	}
	return func(o *Options) {
		o.Orders = orders
	}
}

// WithObserver registers the event observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("triad: WithObserver(nil)")
	}
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithMaxProposals caps the number of attempts Run performs. Panics unless k > 0.
func WithMaxProposals(k int) Option {
	if k <= 0 {
		panic("triad: WithMaxProposals must be positive")
	}
	return func(o *Options) {
		o.MaxProposals = k
	}
}

// WithVerify re-checks the registry invariants after every formation.
func WithVerify() Option {
	return func(o *Options) {
		o.Verify = true
	}
}
