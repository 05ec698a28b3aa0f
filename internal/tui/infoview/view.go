package infoview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/go-gh/v2/pkg/jsonpretty"

	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/ui"
)

// Model shows one lead: the canonical fields and the record it came from.
type Model struct {
	lead     *model.Lead
	pos      int
	colorize bool
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func New(colorize bool) Model {
	return Model{colorize: colorize}
}

// SetLead shows lead, which sits at position pos in the result set.
func (m *Model) SetLead(lead model.Lead, pos int) {
	m.lead = &lead
	m.pos = pos
	if m.ready {
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()
	}
}

func (m Model) Lead() *model.Lead {
	return m.lead
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		headerH := 1
		if !m.ready {
			m.viewport = viewport.New(wsm.Width, wsm.Height-headerH)
			m.ready = true
			if m.lead != nil {
				m.viewport.SetContent(m.render())
			}
		} else {
			m.viewport.Width = wsm.Width
			m.viewport.Height = wsm.Height - headerH
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.lead == nil {
		return "\n  Select a lead and press enter to view details"
	}

	pct := m.viewport.ScrollPercent() * 100
	header := fmt.Sprintf(" Lead #%d  %3.0f%%", m.pos+1, pct)
	hints := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(
		"  j/k:scroll  y:copy email  o:open linkedin  esc:back")
	headerLine := lipgloss.NewStyle().Bold(true).
		Foreground(ui.ColorText).
		Render(header) + hints

	return headerLine + "\n" + m.viewport.View()
}

func (m Model) render() string {
	l := m.lead
	bold := lipgloss.NewStyle().Bold(true)
	label := lipgloss.NewStyle().Foreground(ui.ColorMuted).Width(12)
	value := lipgloss.NewStyle().Foreground(ui.ColorText)

	row := func(k, v string) string {
		return "  " + label.Render(k) + value.Render(ui.Dash(v)) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + bold.Render(ui.Dash(l.Name)) + "\n\n")
	b.WriteString(row("Email", l.Email))
	b.WriteString(row("Title", l.Title))
	b.WriteString(row("Company", l.Company))
	b.WriteString(row("Location", l.Location))
	b.WriteString(row("LinkedIn", l.LinkedIn))
	b.WriteString(row("Phone", l.Phone))
	b.WriteString("\n")

	b.WriteString("  " + bold.Render("Source record") + "\n\n")
	if len(l.Raw) == 0 {
		b.WriteString("  " + ui.StyleMuted.Render("not available") + "\n")
		return b.String()
	}
	raw, err := prettyRecord(l.Raw, m.colorize)
	if err != nil {
		b.WriteString("  " + ui.StyleFailure.Render(err.Error()) + "\n")
		return b.String()
	}
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func prettyRecord(rec model.ExternalRecord, colorize bool) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	var out bytes.Buffer
	if err := jsonpretty.Format(&out, bytes.NewReader(data), "  ", colorize); err != nil {
		return "", fmt.Errorf("format record: %w", err)
	}
	return out.String(), nil
}
