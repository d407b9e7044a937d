// Package render formats a triad run for the terminal: a per-attempt trace
// and a final report of preferences, teams and the attempt count.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	AcceptColor  = lipgloss.Color("#10B981") // Green
	RejectColor  = lipgloss.Color("#F87171") // Red
	PlayerColor  = lipgloss.Color("#22D3EE") // Cyan
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray
	SummaryColor = lipgloss.Color("#C084FC") // Purple
)

// styles is the set of styles used by a Printer. The zero-attribute variant
// is used when color is disabled.
type styles struct {
	accept  lipgloss.Style
	reject  lipgloss.Style
	player  lipgloss.Style
	muted   lipgloss.Style
	heading lipgloss.Style
	summary lipgloss.Style
	mate    lipgloss.Style
}

// newStyles binds the styles to a renderer for w, so color is only emitted
// when w is a terminal that supports it.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return styles{
			accept:  plain,
			reject:  plain,
			player:  plain,
			muted:   plain,
			heading: plain,
			summary: plain,
			mate:    plain,
		}
	}

	return styles{
		accept:  r.NewStyle().Foreground(AcceptColor),
		reject:  r.NewStyle().Foreground(RejectColor),
		player:  r.NewStyle().Foreground(PlayerColor),
		muted:   r.NewStyle().Foreground(MutedColor).Faint(true),
		heading: r.NewStyle().Bold(true),
		summary: r.NewStyle().Foreground(SummaryColor),
		mate:    r.NewStyle().Foreground(AcceptColor).Bold(true),
	}
}
