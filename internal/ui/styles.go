package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#0EA5E9")
	ColorSuccess   = lipgloss.Color("#22C55E")
	ColorFailure   = lipgloss.Color("#F43F5E")
	ColorWarning   = lipgloss.Color("#EAB308")
	ColorInfo      = lipgloss.Color("#38BDF8")
	ColorMuted     = lipgloss.Color("#64748B")
	ColorHighlight = lipgloss.Color("#1E293B")
	ColorText      = lipgloss.Color("#F8FAFC")

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)

	// Focused input box in the forms.
	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleChip         = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	StyleChipSelected = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Background(ColorPrimary).Padding(0, 1)

	StyleToastSuccess = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Background(ColorSuccess).Padding(0, 1)
	StyleToastError   = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Background(ColorFailure).Padding(0, 1)
)

// RunStatusStyle colours a remote run status.
func RunStatusStyle(status string) lipgloss.Style {
	switch status {
	case "SUCCEEDED":
		return StyleSuccess
	case "FAILED", "TIMED-OUT":
		return StyleFailure
	case "ABORTED", "ABORTING", "TIMING-OUT":
		return StyleWarning
	case "READY":
		return StyleMuted
	default:
		return StyleInfo
	}
}

// EmailIcon marks whether a lead or run has email addresses.
func EmailIcon(has bool) string {
	if has {
		return StyleSuccess.Render("@")
	}
	return StyleMuted.Render("-")
}

// Dash renders empty values as "-".
func Dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
