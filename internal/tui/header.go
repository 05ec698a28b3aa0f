package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/leadfinder/internal/ui"
)

func RenderHeader(actorID string, tokenSet bool, width int) string {
	actor := actorID
	if actor == "" {
		actor = "no actor configured"
	}
	left := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorText).
		Render(fmt.Sprintf(" leadfinder | %s", actor))

	token := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render("token set ")
	if !tokenSet {
		token = lipgloss.NewStyle().Foreground(ui.ColorFailure).Render("no token ")
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(token), 0)
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(ui.ColorHighlight).
		Width(width).
		Render(left + padding + token)
}
