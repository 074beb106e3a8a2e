package card_review

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles for the review dialogue. Only labels and
// status lines are styled; card text is written verbatim.
type styles struct {
	label   lipgloss.Style
	status  lipgloss.Style
	detail  lipgloss.Style
	warning lipgloss.Style
}

// newStyles builds styles bound to out, so colors are dropped automatically
// when out is not a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		label:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		status:  r.NewStyle().Bold(true),
		detail:  r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFC107")),
	}
}
