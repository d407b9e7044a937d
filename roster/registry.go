// SPDX-License-Identifier: MIT
// Package: triad/roster
//
// registry.go - team formation, dissolution and slot selection.
//
// Contract:
//   • len(teams) == population/3; len(assignment) == population.
//   • Form/Dissolve keep assignment and teams bidirectionally consistent.
//   • Validation happens before any write: a failed Form leaves no trace.

package roster

import "fmt"

const (
	methodNew      = "New"
	methodForm     = "Form"
	methodDissolve = "Dissolve"
	methodCheck    = "Check"
)

// Registry owns the team slots and every individual's assignment.
type Registry struct {
	teams      []Team
	assignment []int // assignment[id] = slot index or None

	onForm     Hook
	onDissolve Hook
}

// New returns a registry for population individuals, all unassigned, with
// population/3 empty slots.
func New(population int, opts ...Option) (*Registry, error) {
	if population <= 0 || population%Seats != 0 {
		return nil, fmt.Errorf("%s: population=%d: %w", methodNew, population, ErrBadPopulation)
	}

	r := &Registry{
		teams:      make([]Team, population/Seats),
		assignment: make([]int, population),
	}
	for i := range r.teams {
		r.teams[i] = EmptyTeam()
	}
	for i := range r.assignment {
		r.assignment[i] = None
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Population returns the number of individuals tracked.
func (r *Registry) Population() int { return len(r.assignment) }

// Slots returns the number of team slots.
func (r *Registry) Slots() int { return len(r.teams) }

// HasOpenSlot reports whether slot has at least one empty seat.
// Unknown slots report false.
func (r *Registry) HasOpenSlot(slot int) bool {
	if !r.validSlot(slot) {
		return false
	}

	return r.teams[slot].HasOpenSeat()
}

// Members returns the seats of slot (None for empty seats).
func (r *Registry) Members(slot int) Team {
	if !r.validSlot(slot) {
		return EmptyTeam()
	}

	return r.teams[slot]
}

// Teams returns a copy of every slot.
func (r *Registry) Teams() []Team {
	out := make([]Team, len(r.teams))
	copy(out, r.teams)

	return out
}

// TeamOf returns id's slot, or None when unassigned or unknown.
func (r *Registry) TeamOf(id int) int {
	if !r.validID(id) {
		return None
	}

	return r.assignment[id]
}

// Assigned reports whether id currently sits on a team.
func (r *Registry) Assigned(id int) bool { return r.TeamOf(id) != None }

// Assignments returns a copy of every individual's slot (None when free).
func (r *Registry) Assignments() []int {
	out := make([]int, len(r.assignment))
	copy(out, r.assignment)

	return out
}

// Teammates returns the two other occupants of id's team in seat order,
// or (None, None) when id is unassigned.
func (r *Registry) Teammates(id int) (int, int) {
	slot := r.TeamOf(id)
	if slot == None {
		return None, None
	}

	return r.teams[slot].Others(id)
}

// IsMember reports whether id occupies a seat of slot.
func (r *Registry) IsMember(slot, id int) bool {
	return r.validSlot(slot) && r.teams[slot].Has(id)
}

// Dissolve clears every occupied seat of slot together with the members'
// assignments. Dissolving an empty slot is a no-op.
func (r *Registry) Dissolve(slot int) error {
	if !r.validSlot(slot) {
		return fmt.Errorf("%s: slot=%d: %w", methodDissolve, slot, ErrUnknownSlot)
	}

	former := r.teams[slot]
	if former.Empty() {
		return nil
	}
	for _, id := range former {
		if id != None {
			r.assignment[id] = None
		}
	}
	r.teams[slot] = EmptyTeam()

	if r.onDissolve != nil {
		r.onDissolve(slot, former)
	}

	return nil
}

// DissolveTeamOf dissolves id's team; a no-op when id is unassigned.
func (r *Registry) DissolveTeamOf(id int) error {
	if !r.validID(id) {
		return fmt.Errorf("%s: id=%d: %w", methodDissolve, id, ErrUnknownIndividual)
	}
	if slot := r.assignment[id]; slot != None {
		return r.Dissolve(slot)
	}

	return nil
}

// Form seats p0, p1, p2 on slot as one step. All three must be distinct and
// unassigned (ErrBadState otherwise). Whatever occupied slot is dissolved first.
func (r *Registry) Form(slot, p0, p1, p2 int) error {
	// 1) Validate everything before touching state.
	if !r.validSlot(slot) {
		return fmt.Errorf("%s: slot=%d: %w", methodForm, slot, ErrUnknownSlot)
	}
	members := Team{p0, p1, p2}
	for i, id := range members {
		if !r.validID(id) {
			return fmt.Errorf("%s: id=%d: %w", methodForm, id, ErrUnknownIndividual)
		}
		if r.assignment[id] != None {
			return fmt.Errorf("%s: id=%d already on slot %d: %w", methodForm, id, r.assignment[id], ErrBadState)
		}
		for _, other := range members[:i] {
			if other == id {
				return fmt.Errorf("%s: id=%d seated twice: %w", methodForm, id, ErrBadState)
			}
		}
	}

	// 2) Clear the slot; a no-op under correct slot selection.
	if err := r.Dissolve(slot); err != nil {
		return err
	}

	// 3) Seat all three and point them back at the slot.
	r.teams[slot] = members
	for _, id := range members {
		r.assignment[id] = slot
	}

	if r.onForm != nil {
		r.onForm(slot, members)
	}

	return nil
}

// OpenSlot returns the lowest-index slot with room.
func (r *Registry) OpenSlot() (int, bool) {
	for slot := range r.teams {
		if r.teams[slot].HasOpenSeat() {
			return slot, true
		}
	}

	return None, false
}

// FormInOpenSlot seats p0, p1, p2 in the first slot with room and returns it.
func (r *Registry) FormInOpenSlot(p0, p1, p2 int) (int, error) {
	slot, ok := r.OpenSlot()
	if !ok {
		return None, fmt.Errorf("%s: members=(%d,%d,%d): %w", methodForm, p0, p1, p2, ErrNoOpenSlot)
	}
	if err := r.Form(slot, p0, p1, p2); err != nil {
		return None, err
	}

	return slot, nil
}

// Check verifies that every slot is full or empty and that slots and
// assignments point at each other.
//
// Complexity: O(N).
func (r *Registry) Check() error {
	for slot, t := range r.teams {
		if !t.Empty() && t.HasOpenSeat() {
			return fmt.Errorf("%s: slot=%d %s is partially seated: %w", methodCheck, slot, t, ErrInconsistent)
		}
		for _, id := range t {
			if id == None {
				continue
			}
			if !r.validID(id) || r.assignment[id] != slot {
				return fmt.Errorf("%s: slot=%d seats %d which points elsewhere: %w", methodCheck, slot, id, ErrInconsistent)
			}
		}
	}
	for id, slot := range r.assignment {
		if slot == None {
			continue
		}
		if !r.validSlot(slot) || !r.teams[slot].Has(id) {
			return fmt.Errorf("%s: id=%d points at slot %d which does not seat it: %w", methodCheck, id, slot, ErrInconsistent)
		}
	}

	return nil
}

func (r *Registry) validSlot(slot int) bool { return slot >= 0 && slot < len(r.teams) }

func (r *Registry) validID(id int) bool { return id >= 0 && id < len(r.assignment) }
