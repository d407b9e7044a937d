// SPDX-License-Identifier: MIT

package triad

import "github.com/katalvlaran/triad/roster"

// Result is a snapshot of a run.
//
// Teams[slot] holds the three seats of each slot; Assignments[id] is id's
// slot (roster.None when free); Preferences[id] is id's order, most
// preferred first; Proposals is the total number of attempts.
type Result struct {
	Proposals   int
	Teams       []roster.Team
	Assignments []int
	Preferences [][]int
}

// Teammates returns the ids that share id's team, in seat order.
func (r Result) Teammates(id int) []int {
	if id < 0 || id >= len(r.Assignments) || r.Assignments[id] == roster.None {
		return nil
	}
	x, y := r.Teams[r.Assignments[id]].Others(id)

	return []int{x, y}
}

// IsTeammate reports whether other sits on id's team.
func (r Result) IsTeammate(id, other int) bool {
	if id == other {
		return false
	}
	for _, t := range r.Teammates(id) {
		if t == other {
			return true
		}
	}

	return false
}

// Complete reports whether every individual is seated.
func (r Result) Complete() bool {
	for _, slot := range r.Assignments {
		if slot == roster.None {
			return false
		}
	}

	return true
}

// Formed returns the number of occupied slots.
func (r Result) Formed() int {
	n := 0
	for _, t := range r.Teams {
		if !t.Empty() {
			n++
		}
	}

	return n
}
