// SPDX-License-Identifier: MIT

package roster

import (
	"errors"
	"fmt"
)

// None marks an empty seat or an unassigned individual.
const None = -1

// Seats is the fixed team size.
const Seats = 3

// Sentinel errors returned by the roster package.
var (
	// ErrBadPopulation indicates a population that is not a positive multiple of three.
	ErrBadPopulation = errors.New("roster: population must be a positive multiple of 3")

	// ErrBadState indicates an attempt to seat an individual that is already
	// on a team, or to seat the same individual twice. Fatal.
	ErrBadState = errors.New("roster: bad state")

	// ErrNoOpenSlot indicates that every slot is full when a team must be formed.
	ErrNoOpenSlot = errors.New("roster: no open team slot")

	// ErrUnknownSlot indicates a slot index outside the registry.
	ErrUnknownSlot = errors.New("roster: unknown team slot")

	// ErrUnknownIndividual indicates an individual id outside the population.
	ErrUnknownIndividual = errors.New("roster: unknown individual")

	// ErrInconsistent indicates a broken full/empty or bidirectional invariant.
	ErrInconsistent = errors.New("roster: inconsistent registry")
)

// Team is one slot's three seats. An empty team has every seat set to None.
type Team [Seats]int

// EmptyTeam returns a team with all seats None.
func EmptyTeam() Team { return Team{None, None, None} }

// HasOpenSeat reports whether any seat is empty.
func (t Team) HasOpenSeat() bool {
	for _, id := range t {
		if id == None {
			return true
		}
	}

	return false
}

// Empty reports whether every seat is empty.
func (t Team) Empty() bool {
	return t[0] == None && t[1] == None && t[2] == None
}

// Has reports whether id occupies a seat.
func (t Team) Has(id int) bool {
	if id == None {
		return false
	}
	for _, m := range t {
		if m == id {
			return true
		}
	}

	return false
}

// Others returns the two seats not occupied by id, in seat order.
// For a non-member it returns the first two seats.
func (t Team) Others(id int) (int, int) {
	out := [2]int{None, None}
	n := 0
	for _, m := range t {
		if m == id && id != None {
			continue
		}
		if n < len(out) {
			out[n] = m
			n++
		}
	}

	return out[0], out[1]
}

// String implements fmt.Stringer.
func (t Team) String() string {
	return fmt.Sprintf("[%s %s %s]", seat(t[0]), seat(t[1]), seat(t[2]))
}

func seat(id int) string {
	if id == None {
		return "-"
	}

	return fmt.Sprintf("%d", id)
}

// Hook observes a committed transition on a slot.
type Hook func(slot int, members Team)

// Option configures a Registry.
type Option func(*Registry)

// WithOnForm registers a hook invoked after a team has been seated.
func WithOnForm(h Hook) Option {
	if h == nil {
		panic("roster: WithOnForm(nil)")
	}
	return func(r *Registry) { r.onForm = h }
}

// WithOnDissolve registers a hook invoked after an occupied slot was cleared,
// with the members it held.
func WithOnDissolve(h Hook) Option {
	if h == nil {
		panic("roster: WithOnDissolve(nil)")
	}
	return func(r *Registry) { r.onDissolve = h }
}
