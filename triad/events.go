// SPDX-License-Identifier: MIT

package triad

import (
	"github.com/katalvlaran/triad/preference"
	"github.com/katalvlaran/triad/roster"
)

// EventKind identifies what an Event reports.
type EventKind int

const (
	// ProposalAttempted reports one popped pair and both acceptance decisions.
	ProposalAttempted EventKind = iota
	// TeamDissolved reports a slot that was cleared, with its former members.
	TeamDissolved
	// TeamFormed reports a slot that was seated.
	TeamFormed
	// RunFinished reports the fixed point (or the proposal cap) with the total count.
	RunFinished
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case ProposalAttempted:
		return "proposal_attempted"
	case TeamDissolved:
		return "team_dissolved"
	case TeamFormed:
		return "team_formed"
	case RunFinished:
		return "run_finished"
	default:
		return "unknown"
	}
}

// Event is one structured observation of the run.
//
// Proposer, Pair, FirstAccepts and SecondAccepts are set for ProposalAttempted;
// Pair.First is the candidate that evaluated (Pair.Second, Proposer).
// Slot and Members are set for TeamFormed and TeamDissolved.
// Proposals is the running attempt count at the time of the event.
type Event struct {
	Kind          EventKind
	Proposer      int
	Pair          preference.Pair
	FirstAccepts  bool
	SecondAccepts bool
	Slot          int
	Members       roster.Team
	Proposals     int
}

// Accepted reports whether both candidates accepted the proposal.
func (e Event) Accepted() bool { return e.FirstAccepts && e.SecondAccepts }

// Rejecters returns the candidates that turned the proposal down, in pair order.
func (e Event) Rejecters() []int {
	var out []int
	if !e.FirstAccepts {
		out = append(out, e.Pair.First)
	}
	if !e.SecondAccepts {
		out = append(out, e.Pair.Second)
	}

	return out
}

// Observer receives events synchronously, in the order they happen.
// Implementations must not call back into the Matcher.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) { f(e) }

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
