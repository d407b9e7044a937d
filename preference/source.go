// SPDX-License-Identifier: MIT
// Package: triad/preference
//
// source.go - pluggable randomness for preference generation.
//
// Determinism:
//   • Orders are drawn in ascending owner order from one Source, so a seeded
//     Source reproduces the whole population.
//   • *rand.Rand satisfies Source; tests may plug any deterministic shuffler.

package preference

import (
	"fmt"
	"math/rand"
)

const (
	methodShuffled = "Shuffled"
	methodGenerate = "Generate"
)

// Source produces a uniform permutation through swap callbacks.
// It has the shape of (*rand.Rand).Shuffle.
type Source interface {
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a seeded Source. Equal seeds yield equal populations.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ValidatePopulation checks that n is a positive multiple of three.
func ValidatePopulation(n int) error {
	if n <= 0 || n%3 != 0 {
		return fmt.Errorf("population=%d: %w", n, ErrBadPopulation)
	}

	return nil
}

// Shuffled returns a uniformly shuffled permutation of {0..n-1} \ {owner}.
func Shuffled(owner, n int, src Source) ([]int, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodShuffled, ErrNilSource)
	}
	if owner < 0 || owner >= n {
		return nil, fmt.Errorf("%s: owner=%d not in [0,%d): %w", methodShuffled, owner, n, ErrOutOfRange)
	}

	// Everybody except the owner, ascending, then shuffled in place.
	order := make([]int, 0, n-1)
	for id := 0; id < n; id++ {
		if id != owner {
			order = append(order, id)
		}
	}
	src.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return order, nil
}

// Generate builds a Model for every individual 0..n-1, drawing each order
// from src in ascending owner order.
//
// Errors: ErrBadPopulation, ErrNilSource.
//
// Complexity: O(N³) time and space overall (N queues of C(N-1,2) pairs).
func Generate(n int, src Source) ([]*Model, error) {
	if err := ValidatePopulation(n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNilSource)
	}

	models := make([]*Model, n)
	for owner := 0; owner < n; owner++ {
		order, err := Shuffled(owner, n, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
		if models[owner], err = NewModel(owner, order); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}

	return models, nil
}

// FromOrders builds one Model per explicit order; orders[i] belongs to owner i.
// Intended for deterministic fixtures and replaying a recorded population.
func FromOrders(orders [][]int) ([]*Model, error) {
	if err := ValidatePopulation(len(orders)); err != nil {
		return nil, fmt.Errorf("FromOrders: %w", err)
	}

	models := make([]*Model, len(orders))
	for owner, order := range orders {
		if len(order) != len(orders)-1 {
			return nil, fmt.Errorf("FromOrders: owner=%d ranks %d of %d others: %w",
				owner, len(order), len(orders)-1, ErrOutOfRange)
		}
		m, err := NewModel(owner, order)
		if err != nil {
			return nil, fmt.Errorf("FromOrders: %w", err)
		}
		models[owner] = m
	}

	return models, nil
}
