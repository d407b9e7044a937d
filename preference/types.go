// SPDX-License-Identifier: MIT
// Package: triad/preference
//
// types.go - identifiers, pairs, comparison results and sentinel errors.

package preference

import (
	"errors"
	"fmt"
)

// None marks an absent individual (an empty team seat).
const None = -1

// Sentinel errors returned by the preference package.
// Callers MUST branch with errors.Is; messages are stable.
var (
	// ErrBadPopulation indicates a population that is not a positive multiple of three.
	ErrBadPopulation = errors.New("preference: population must be a positive multiple of 3")

	// ErrEmptyOrder indicates an order too short to produce a single pair.
	ErrEmptyOrder = errors.New("preference: order must rank at least two individuals")

	// ErrSelfReference indicates that an order ranks its own owner.
	ErrSelfReference = errors.New("preference: order references its owner")

	// ErrOutOfRange indicates an id outside [0, N).
	ErrOutOfRange = errors.New("preference: id out of range")

	// ErrDuplicate indicates that an order ranks the same id twice.
	ErrDuplicate = errors.New("preference: duplicate id in order")

	// ErrNilSource indicates that a shuffle was requested without a random source.
	ErrNilSource = errors.New("preference: random source is nil")

	// ErrUnknownPreference indicates a comparison whose ids are not ranked.
	// Unreachable for well-formed models; treat as fatal.
	ErrUnknownPreference = errors.New("preference: ranking cannot be resolved")
)

// Comparison is the outcome of Model.Prefers.
type Comparison int

const (
	// NoPreference is returned when both sides are absent.
	NoPreference Comparison = iota
	// PreferFirst means the first argument is strictly preferred.
	PreferFirst
	// PreferSecond means the second argument is strictly preferred.
	PreferSecond
	// Unknown means a present id is not ranked by this model.
	Unknown
)

// String implements fmt.Stringer.
func (c Comparison) String() string {
	switch c {
	case NoPreference:
		return "no-preference"
	case PreferFirst:
		return "prefer-first"
	case PreferSecond:
		return "prefer-second"
	default:
		return "unknown"
	}
}

// Pair is an unordered pair of candidate partners.
// Pairs produced by a Model are always stored more-preferred-first
// from that model's point of view.
type Pair struct {
	First  int
	Second int
}

// Reversed returns the pair with its members swapped.
func (p Pair) Reversed() Pair { return Pair{First: p.Second, Second: p.First} }

// Same reports whether p and q contain the same two ids in any order.
func (p Pair) Same(q Pair) bool {
	return p == q || p == q.Reversed()
}

// Contains reports whether id is one of the pair's members.
func (p Pair) Contains(id int) bool { return p.First == id || p.Second == id }

// String implements fmt.Stringer.
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.First, p.Second) }

// PairCount returns C(k,2), the number of unordered pairs over k individuals.
func PairCount(k int) int {
	if k < 2 {
		return 0
	}
	return k * (k - 1) / 2
}
