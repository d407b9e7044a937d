// SPDX-License-Identifier: MIT

package observe

import (
	"github.com/katalvlaran/triad/triad"
)

// Multi returns an observer that forwards every event to each observer in
// order. Nil observers are skipped.
func Multi(observers ...triad.Observer) triad.Observer {
	out := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}

	return out
}

type multi []triad.Observer

func (m multi) Observe(e triad.Event) {
	for _, o := range m {
		o.Observe(e)
	}
}

// Recorder keeps every observed event in arrival order.
type Recorder struct {
	events []triad.Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Observe implements triad.Observer.
func (r *Recorder) Observe(e triad.Event) { r.events = append(r.events, e) }

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []triad.Event {
	out := make([]triad.Event, len(r.events))
	copy(out, r.events)

	return out
}

// Attempts returns the ProposalAttempted events.
func (r *Recorder) Attempts() []triad.Event { return r.filter(triad.ProposalAttempted) }

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k triad.EventKind) int { return len(r.filter(k)) }

// Reset drops every recorded event.
func (r *Recorder) Reset() { r.events = r.events[:0] }

func (r *Recorder) filter(k triad.EventKind) []triad.Event {
	var out []triad.Event
	for _, e := range r.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}

	return out
}

// Logger is the subset of a structured logger LogObserver needs.
// *logging.Logger and *slog.Logger both satisfy it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// LogObserver logs attempts at DEBUG and team transitions and the run's end at INFO.
type LogObserver struct {
	log Logger
}

// NewLogObserver wraps l. Panics on nil.
func NewLogObserver(l Logger) *LogObserver {
	if l == nil {
		panic("observe: NewLogObserver(nil)")
	}

	return &LogObserver{log: l}
}

// Observe implements triad.Observer.
func (o *LogObserver) Observe(e triad.Event) {
	switch e.Kind {
	case triad.ProposalAttempted:
		o.log.Debug("proposal attempted",
			"proposer", e.Proposer,
			"first", e.Pair.First,
			"second", e.Pair.Second,
			"accepted", e.Accepted(),
			"rejected_by", e.Rejecters(),
			"proposals", e.Proposals,
		)
	case triad.TeamFormed:
		o.log.Info("team formed", "slot", e.Slot, "members", e.Members[:], "proposals", e.Proposals)
	case triad.TeamDissolved:
		o.log.Info("team dissolved", "slot", e.Slot, "members", e.Members[:], "proposals", e.Proposals)
	case triad.RunFinished:
		o.log.Info("run finished", "proposals", e.Proposals)
	}
}
