package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/triad/roster"
	"github.com/katalvlaran/triad/triad"
)

// Printer writes the trace and the report to w.
// It implements triad.Observer so it can be attached to a Matcher directly.
// Styled fragments never contain tabs; lipgloss would expand them.
type Printer struct {
	w     io.Writer
	st    styles
	trace bool

	proposer int  // proposer of the open turn
	open     bool // a turn header has been written and not yet closed
	turns    int
}

// NewPrinter returns a Printer writing to w. When trace is false Observe
// writes nothing and only Report produces output.
func NewPrinter(w io.Writer, color, trace bool) *Printer {
	return &Printer{w: w, st: newStyles(w, color), trace: trace, proposer: roster.None}
}

// Observe implements triad.Observer. Each turn opens with a
// "Player p is sending proposals to:" header followed by one line per
// attempt. A turn closes on acceptance.
func (p *Printer) Observe(e triad.Event) {
	if !p.trace {
		return
	}

	switch e.Kind {
	case triad.ProposalAttempted:
		if !p.open || p.proposer != e.Proposer {
			p.openTurn(e.Proposer)
		}
		fmt.Fprintf(p.w, "\t Players %d and %d\t|%s\n", e.Pair.First, e.Pair.Second, p.outcome(e))
		if e.Accepted() {
			p.open = false
		}
	case triad.RunFinished:
		if p.turns > 0 {
			fmt.Fprintln(p.w)
		}
		p.open = false
	}
}

func (p *Printer) openTurn(proposer int) {
	if p.turns > 0 {
		fmt.Fprintln(p.w)
	}
	fmt.Fprintf(p.w, "Player %d is sending proposals to:\n", proposer)
	p.proposer = proposer
	p.open = true
	p.turns++
}

// outcome names only the side(s) that declined.
func (p *Printer) outcome(e triad.Event) string {
	if e.Accepted() {
		return p.st.accept.Render(" Accepted.")
	}

	rejecters := e.Rejecters()
	names := make([]string, len(rejecters))
	for i, id := range rejecters {
		names[i] = strconv.Itoa(id)
	}

	return p.st.reject.Render(" Rejected by " + strings.Join(names, " and "))
}

// Report writes each individual's preference order with teammates
// highlighted, each slot's members and the total attempt count.
func (p *Printer) Report(res triad.Result) error {
	var b strings.Builder

	b.WriteString(p.st.heading.Render("Players:"))
	b.WriteString("\n")
	for id, order := range res.Preferences {
		items := make([]string, len(order))
		for i, other := range order {
			item := strconv.Itoa(other)
			if res.IsTeammate(id, other) {
				item = p.st.mate.Render(item)
			}
			items[i] = item
		}
		fmt.Fprintf(&b, "  %s\t%s %s\n",
			p.st.player.Render(fmt.Sprintf("Player %d", id)),
			p.st.muted.Render("|"),
			strings.Join(items, ", "))
	}

	b.WriteString(p.st.heading.Render("Matched Teams:"))
	b.WriteString("\n")
	for slot, team := range res.Teams {
		fmt.Fprintf(&b, "\tTeam %d: %s\n", slot, members(team))
	}

	b.WriteString(p.st.summary.Render(fmt.Sprintf("Total Iterations: %d", res.Proposals)))
	b.WriteString("\n")

	_, err := io.WriteString(p.w, b.String())
	if err != nil {
		return fmt.Errorf("render: write report: %w", err)
	}

	return nil
}

func members(t roster.Team) string {
	seats := make([]string, len(t))
	for i, id := range t {
		if id == roster.None {
			seats[i] = "-"
			continue
		}
		seats[i] = strconv.Itoa(id)
	}

	return strings.Join(seats, ", ")
}
