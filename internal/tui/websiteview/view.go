package websiteview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/leadfinder/internal/ops"
	"github.com/altinukshini/leadfinder/internal/ui"
)

// SubmitMsg carries the raw textarea contents.
type SubmitMsg struct {
	Input string
}

// Model collects company websites, one per line or comma separated.
type Model struct {
	area   textarea.Model
	width  int
	height int
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "google.com\nhttps://www.stripe.com/about\nnotion.so, linear.app"
	ta.ShowLineNumbers = false
	ta.CharLimit = 8000
	ta.SetWidth(60)
	ta.SetHeight(8)
	return Model{area: ta}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.area.SetWidth(max(min(w-6, 100), 20))
	m.area.SetHeight(max(min(h-10, 16), 3))
}

func (m Model) IsEditing() bool { return m.area.Focused() }

func (m *Model) Focus() tea.Cmd { return m.area.Focus() }

func (m *Model) Blur() { m.area.Blur() }

func (m Model) Value() string { return m.area.Value() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+s":
			input := m.area.Value()
			m.area.Blur()
			return m, func() tea.Msg { return SubmitMsg{Input: input} }
		case "esc":
			if m.area.Focused() {
				m.area.Blur()
				return m, nil
			}
		case "enter", "i":
			if !m.area.Focused() {
				return m, m.area.Focus()
			}
		case "c":
			if !m.area.Focused() {
				m.area.Reset()
				return m, nil
			}
		}
		if !m.area.Focused() {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		MarginBottom(1).
		Render("Find leads by company website")

	domains := ops.ParseWebsites(m.area.Value())
	preview := ui.StyleMuted.Render("No domains yet")
	if len(domains) > 0 {
		shown := domains
		if len(shown) > 8 {
			shown = shown[:8]
		}
		preview = fmt.Sprintf("%s %s", ui.StyleInfo.Render(fmt.Sprintf("%d domains:", len(domains))), strings.Join(shown, ", "))
		if len(domains) > len(shown) {
			preview += ui.StyleMuted.Render(fmt.Sprintf(" +%d more", len(domains)-len(shown)))
		}
	}

	hint := "Email status, function and seniority from the Filters tab are applied too."
	help := "enter/i: edit  esc: stop editing  c: clear  ctrl+s: run"

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.area.View(),
		"",
		preview,
		"",
		ui.StyleMuted.Render(hint),
		ui.StyleMuted.Render(help),
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
