package settingsview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/leadfinder/internal/config"
	"github.com/altinukshini/leadfinder/internal/ui"
)

// SaveMsg is emitted with the edited settings.
type SaveMsg struct {
	Config config.Config
}

const (
	fieldToken = iota
	fieldActor
	fieldMaxItems
	fieldCount
)

var labels = [fieldCount]string{"API token:", "Actor ID:", "Max results:"}

type Model struct {
	base    config.Config
	inputs  [fieldCount]textinput.Model
	focused int
	err     string
}

func New(cfg config.Config) Model {
	m := Model{}
	m.Reset(cfg)
	return m
}

// Reset loads cfg into the form, dropping unsaved edits.
func (m *Model) Reset(cfg config.Config) {
	m.base = cfg
	m.err = ""

	token := textinput.New()
	token.Placeholder = "apify_api_..."
	token.EchoMode = textinput.EchoPassword
	token.EchoCharacter = '•'
	token.CharLimit = 256
	token.Width = 48
	token.SetValue(cfg.APIToken)

	actor := textinput.New()
	actor.Placeholder = "username/actor-name or actor id"
	actor.CharLimit = 128
	actor.Width = 48
	actor.SetValue(cfg.ActorID)

	maxItems := textinput.New()
	maxItems.Placeholder = "100"
	maxItems.CharLimit = 6
	maxItems.Width = 8
	if cfg.MaxItems > 0 {
		maxItems.SetValue(strconv.Itoa(cfg.MaxItems))
	}

	m.inputs = [fieldCount]textinput.Model{token, actor, maxItems}
	m.focused = fieldToken
}

func (m Model) IsEditing() bool {
	for _, in := range m.inputs {
		if in.Focused() {
			return true
		}
	}
	return false
}

func (m *Model) Focus() tea.Cmd {
	return m.inputs[m.focused].Focus()
}

func (m *Model) Blur() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+s":
		return m.save()
	case "enter":
		if !m.IsEditing() {
			return m, m.Focus()
		}
		if m.focused == fieldCount-1 {
			return m.save()
		}
		return m, m.move(1)
	case "tab", "down":
		return m, m.move(1)
	case "shift+tab", "up":
		return m, m.move(-1)
	case "esc":
		m.Blur()
		return m, nil
	}

	if !m.IsEditing() {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) tea.Cmd {
	m.Blur()
	m.focused = (m.focused + delta + fieldCount) % fieldCount
	return m.Focus()
}

func (m Model) save() (Model, tea.Cmd) {
	cfg := m.base
	cfg.APIToken = strings.TrimSpace(m.inputs[fieldToken].Value())
	cfg.ActorID = strings.TrimSpace(m.inputs[fieldActor].Value())

	raw := strings.TrimSpace(m.inputs[fieldMaxItems].Value())
	cfg.MaxItems = 0
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			m.err = "Max results must be a positive number"
			return m, nil
		}
		cfg.MaxItems = n
	}
	m.err = ""
	m.Blur()
	return m, func() tea.Msg { return SaveMsg{Config: cfg} }
}

func (m Model) View() string {
	labelStyle := lipgloss.NewStyle().Width(14).Foreground(ui.ColorMuted)
	focusedLabelStyle := lipgloss.NewStyle().Width(14).Bold(true).Foreground(ui.ColorPrimary)

	var rows []string
	for i := 0; i < fieldCount; i++ {
		ls := labelStyle
		cursor := "  "
		if i == m.focused {
			ls = focusedLabelStyle
			cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, ls.Render(labels[i]), m.inputs[i].View()))
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).MarginBottom(1).Render("Settings")
	note := ui.StyleMuted.Render("The token is kept in the system keychain. " + config.EnvToken + " overrides it.")
	help := ui.StyleMuted.Render("enter: edit/next  tab: next field  ctrl+s: save  esc: stop editing")

	parts := []string{title, strings.Join(rows, "\n\n"), "", note}
	if m.err != "" {
		parts = append(parts, "", ui.StyleFailure.Render(m.err))
	}
	parts = append(parts, "", help)
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
