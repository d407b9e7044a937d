// SPDX-License-Identifier: MIT
// Package: triad/preference
//
// model.go - per-individual ranking, pairwise comparison and pair ordering.
//
// Contract:
//   • order is a permutation of {0..N-1} \ {owner}, N = len(order)+1.
//   • rank[id] is the position of id in order; rank[owner] = unranked.
//   • queue holds Pairs(order); head advances on Pop and never moves back.

package preference

import "fmt"

const (
	methodNewModel  = "NewModel"
	methodCanonical = "Canonical"
	methodOrder3    = "Order3"
	methodOutranks  = "Outranks"

	unranked = -1
)

// Model is one individual's preference state: its ranking of everybody else
// and its consumable queue of candidate pairs.
type Model struct {
	owner int
	order []int  // most-preferred first
	rank  []int  // rank[id] = index in order, or unranked
	queue []Pair // Pairs(order), fixed for the model's lifetime
	head  int    // index of the next untried pair
}

// NewModel validates order against owner and builds the rank index and the
// candidate queue. The order slice is copied; the caller keeps ownership.
//
// Errors: ErrEmptyOrder, ErrOutOfRange, ErrSelfReference, ErrDuplicate.
//
// Complexity: O(N²) time and space.
func NewModel(owner int, order []int) (*Model, error) {
	// 1) At least two ranked individuals are needed for one pair.
	if len(order) < 2 {
		return nil, fmt.Errorf("%s: owner=%d len=%d: %w", methodNewModel, owner, len(order), ErrEmptyOrder)
	}
	n := len(order) + 1
	if owner < 0 || owner >= n {
		return nil, fmt.Errorf("%s: owner=%d not in [0,%d): %w", methodNewModel, owner, n, ErrOutOfRange)
	}

	// 2) Build the dense rank index while validating the permutation.
	rank := make([]int, n)
	for i := range rank {
		rank[i] = unranked
	}
	for pos, id := range order {
		switch {
		case id == owner:
			return nil, fmt.Errorf("%s: owner=%d at position %d: %w", methodNewModel, owner, pos, ErrSelfReference)
		case id < 0 || id >= n:
			return nil, fmt.Errorf("%s: id=%d not in [0,%d): %w", methodNewModel, id, n, ErrOutOfRange)
		case rank[id] != unranked:
			return nil, fmt.Errorf("%s: id=%d at positions %d and %d: %w", methodNewModel, id, rank[id], pos, ErrDuplicate)
		}
		rank[id] = pos
	}

	// 3) Copy the order and derive the ranked pair queue.
	own := make([]int, len(order))
	copy(own, order)

	return &Model{
		owner: owner,
		order: own,
		rank:  rank,
		queue: Pairs(own),
	}, nil
}

// Pairs returns every unordered pair drawn from order, ranked
// (order[0],order[1]) > (order[0],order[2]) > ... > (order[1],order[2]) > ...
// Each pair is stored more-preferred-first. Deterministic.
//
// Complexity: O(k²) for k = len(order).
func Pairs(order []int) []Pair {
	pairs := make([]Pair, 0, PairCount(len(order)))
	for i := 0; i < len(order)-1; i++ {
		for j := i + 1; j < len(order); j++ {
			pairs = append(pairs, Pair{First: order[i], Second: order[j]})
		}
	}

	return pairs
}

// Owner returns the id of the individual this model belongs to.
func (m *Model) Owner() int { return m.owner }

// Population returns N, the size of the population the model ranks into.
func (m *Model) Population() int { return len(m.rank) }

// Order returns a copy of the ranking, most-preferred first.
func (m *Model) Order() []int {
	out := make([]int, len(m.order))
	copy(out, m.order)

	return out
}

// Rank returns the position of id in the ranking (0 = most preferred).
// ok is false for the owner and for ids outside the population.
func (m *Model) Rank(id int) (int, bool) {
	if id < 0 || id >= len(m.rank) || m.rank[id] == unranked {
		return 0, false
	}

	return m.rank[id], true
}

// Prefers compares two optional individuals (None for an empty seat).
//
//   - both None:            NoPreference
//   - exactly one None:     the present one wins
//   - both present:         the lower rank wins
//   - a present id unknown: Unknown
//
// Prefers(x, x) for a ranked x reports PreferFirst; callers compare distinct ids.
func (m *Model) Prefers(x, y int) Comparison {
	switch {
	case x == None && y == None:
		return NoPreference
	case x == None:
		return PreferSecond
	case y == None:
		return PreferFirst
	}

	rx, okx := m.Rank(x)
	ry, oky := m.Rank(y)
	if !okx || !oky {
		return Unknown
	}
	if rx <= ry {
		return PreferFirst
	}

	return PreferSecond
}

// Canonical returns p ordered more-preferred-first by this model.
func (m *Model) Canonical(p Pair) (Pair, error) {
	switch m.Prefers(p.First, p.Second) {
	case PreferFirst:
		return p, nil
	case PreferSecond:
		return p.Reversed(), nil
	default:
		return Pair{}, fmt.Errorf("%s: owner=%d pair=%s: %w", methodCanonical, m.owner, p, ErrUnknownPreference)
	}
}

// Order3 sorts three optional members most-to-least preferred with three
// pairwise comparisons (a selection sort over three seats). Absent members
// (None) sink to the end.
func (m *Model) Order3(a, b, c int) ([3]int, error) {
	most, mid, least := a, b, c

	// swapIfPreferred swaps *lo and *hi when *lo is strictly preferred.
	swapIfPreferred := func(lo, hi *int) error {
		switch m.Prefers(*lo, *hi) {
		case PreferFirst:
			*lo, *hi = *hi, *lo
		case Unknown:
			return fmt.Errorf("%s: owner=%d members=(%d,%d,%d): %w", methodOrder3, m.owner, a, b, c, ErrUnknownPreference)
		}
		return nil
	}

	// The duplicate-free comparisons never tie, so NoPreference only
	// arises for two empty seats, which need no swap.
	if err := swapIfPreferred(&least, &mid); err != nil {
		return [3]int{}, err
	}
	if err := swapIfPreferred(&mid, &most); err != nil {
		return [3]int{}, err
	}
	if err := swapIfPreferred(&least, &mid); err != nil {
		return [3]int{}, err
	}

	return [3]int{most, mid, least}, nil
}

// Index returns the position of the pair {p.First, p.Second} in the full
// ranked pair order (0 = best), regardless of how many pairs were consumed.
func (m *Model) Index(p Pair) (int, error) {
	c, err := m.Canonical(p)
	if err != nil {
		return 0, err
	}
	i, okI := m.Rank(c.First)
	j, okJ := m.Rank(c.Second)
	if !okI || !okJ || i == j {
		return 0, fmt.Errorf("%s: owner=%d pair=%s is degenerate: %w", methodOutranks, m.owner, p, ErrUnknownPreference)
	}
	k := len(m.order)

	// Pairs before row i: (k-1) + (k-2) + ... + (k-i) = i*k - i*(i+1)/2.
	return i*k - i*(i+1)/2 + (j - i - 1), nil
}

// Outranks reports whether proposed comes strictly before current in this
// model's ranked pair order. Both pairs may arrive in either member order.
//
// Complexity: O(1).
func (m *Model) Outranks(proposed, current Pair) (bool, error) {
	pi, err := m.Index(proposed)
	if err != nil {
		return false, err
	}
	ci, err := m.Index(current)
	if err != nil {
		return false, err
	}

	return pi < ci, nil
}
