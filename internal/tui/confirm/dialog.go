package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/leadfinder/internal/ui"
)

// ResultMsg is sent once the dialog closes.
type ResultMsg struct {
	Confirmed bool
	Action    string
	Data      any
}

type Model struct {
	Title   string
	Message string
	Action  string
	Data    any
	active  bool
	yes     bool
}

func New(title, message, action string, data any) Model {
	return Model{
		Title:   title,
		Message: message,
		Action:  action,
		Data:    data,
		active:  true,
	}
}

func (m Model) IsActive() bool { return m.active }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return m.close(true)
	case "n", "N", "esc":
		return m.close(false)
	case "enter":
		return m.close(m.yes)
	case "tab", "left", "right", "h", "l":
		m.yes = !m.yes
	}
	return m, nil
}

func (m Model) close(confirmed bool) (Model, tea.Cmd) {
	m.active = false
	result := ResultMsg{Confirmed: confirmed, Action: m.Action, Data: m.Data}
	return m, func() tea.Msg { return result }
}

func (m Model) View() string {
	if !m.active {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorWarning).
		Padding(1, 2).
		Width(50)

	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorWarning).Render(m.Title)

	yesStyle := lipgloss.NewStyle().Padding(0, 1).Foreground(ui.ColorMuted)
	noStyle := lipgloss.NewStyle().Padding(0, 1).Foreground(ui.ColorMuted)
	if m.yes {
		yesStyle = yesStyle.Bold(true).Background(ui.ColorSuccess).Foreground(ui.ColorText)
	} else {
		noStyle = noStyle.Bold(true).Background(ui.ColorFailure).Foreground(ui.ColorText)
	}

	content := fmt.Sprintf("%s\n\n%s\n\n%s  %s\n\ny/n to confirm, esc to cancel",
		title, m.Message, yesStyle.Render("Yes"), noStyle.Render("No"))
	return style.Render(content)
}
