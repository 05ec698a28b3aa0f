package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/leadfinder/internal/ui"
)

// RenderStatusBar shows toast in place of status while one is visible.
func RenderStatusBar(status, hints, toast string, width int) string {
	left := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render("  " + status)
	if toast != "" {
		left = "  " + toast
	}

	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(hints + " ")

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(help), 0)
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + help)
}
