package filterform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/leadfinder/internal/ops"
	"github.com/altinukshini/leadfinder/internal/ui"
)

// ---------------------------------------------------------------------------
// Result message
// ---------------------------------------------------------------------------

// SubmitMsg is emitted when the user runs a search from the form.
type SubmitMsg struct {
	Filters ops.Filters
}

// ---------------------------------------------------------------------------
// Field enum
// ---------------------------------------------------------------------------

type field int

const (
	fieldLocation field = iota
	fieldEmailStatus
	fieldFunctional
	fieldSeniority
	fieldFunding
	fieldSize
	fieldFetchCount
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldLocation:    "Location:",
	fieldEmailStatus: "Email:",
	fieldFunctional:  "Function:",
	fieldSeniority:   "Seniority:",
	fieldFunding:     "Funding:",
	fieldSize:        "Employees:",
	fieldFetchCount:  "Max results:",
}

// chipGroup is one multi-select row.
type chipGroup struct {
	options  []string
	selected map[string]bool
	cursor   int
}

func newChipGroup(options []string) *chipGroup {
	return &chipGroup{options: options, selected: make(map[string]bool)}
}

func (g *chipGroup) toggle() {
	if len(g.options) == 0 {
		return
	}
	opt := g.options[g.cursor]
	if g.selected[opt] {
		delete(g.selected, opt)
	} else {
		g.selected[opt] = true
	}
}

func (g *chipGroup) move(delta int) {
	n := len(g.options)
	if n == 0 {
		return
	}
	g.cursor = (g.cursor + delta + n) % n
}

// values returns the selection in option order.
func (g *chipGroup) values() []string {
	var out []string
	for _, o := range g.options {
		if g.selected[o] {
			out = append(out, o)
		}
	}
	return out
}

func (g *chipGroup) clear() {
	g.selected = make(map[string]bool)
	g.cursor = 0
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// Model is the Bubble Tea model for the search filters form.
type Model struct {
	focused    field
	location   textinput.Model
	fetchCount textinput.Model
	chips      map[field]*chipGroup
	err        string
	width      int
	height     int
}

// New creates the form. defaultCount pre-fills the result cap.
func New(defaultCount int) Model {
	location := textinput.New()
	location.Placeholder = "e.g. united states, berlin"
	location.CharLimit = 256
	location.Width = 40

	count := textinput.New()
	count.Placeholder = "100"
	count.CharLimit = 6
	count.Width = 8
	if defaultCount > 0 {
		count.SetValue(strconv.Itoa(defaultCount))
	}

	return Model{
		location:   location,
		fetchCount: count,
		chips: map[field]*chipGroup{
			fieldEmailStatus: newChipGroup(ops.EmailStatusOptions),
			fieldFunctional:  newChipGroup(ops.FunctionalLevelOptions),
			fieldSeniority:   newChipGroup(ops.SeniorityOptions),
			fieldFunding:     newChipGroup(ops.FundingOptions),
			fieldSize:        newChipGroup(ops.SizeOptions),
		},
	}
}

// SetSize stores the pane dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// IsEditing reports whether a text input has the keyboard.
func (m Model) IsEditing() bool {
	return m.location.Focused() || m.fetchCount.Focused()
}

// Filters returns the current form values.
func (m Model) Filters() ops.Filters {
	n, _ := strconv.Atoi(strings.TrimSpace(m.fetchCount.Value()))
	return ops.Filters{
		Location:        m.location.Value(),
		EmailStatus:     m.chips[fieldEmailStatus].values(),
		FunctionalLevel: m.chips[fieldFunctional].values(),
		SeniorityLevel:  m.chips[fieldSeniority].values(),
		Funding:         m.chips[fieldFunding].values(),
		Size:            m.chips[fieldSize].values(),
		FetchCount:      n,
	}
}

// Init satisfies the tea.Model interface.
func (m Model) Init() tea.Cmd { return nil }

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

// Update handles key events.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "ctrl+s":
		return m.submit()
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	}

	// Text inputs take every other key.
	if m.IsEditing() {
		if keyMsg.String() == "esc" {
			m.blurTextInputs()
			return m, nil
		}
		var cmd tea.Cmd
		if m.focused == fieldLocation {
			m.location, cmd = m.location.Update(msg)
		} else {
			m.fetchCount, cmd = m.fetchCount.Update(msg)
		}
		return m, cmd
	}

	switch keyMsg.String() {
	case "j":
		return m, m.moveFocus(1)
	case "k":
		return m, m.moveFocus(-1)
	case "right", "l":
		if g := m.chips[m.focused]; g != nil {
			g.move(1)
		}
	case "left", "h":
		if g := m.chips[m.focused]; g != nil {
			g.move(-1)
		}
	case " ", "x":
		if g := m.chips[m.focused]; g != nil {
			g.toggle()
		}
	case "i", "a":
		return m, m.focusCurrentTextInput()
	case "c":
		m.location.SetValue("")
		for _, g := range m.chips {
			g.clear()
		}
		m.err = ""
	}
	return m, nil
}

func (m Model) submit() (Model, tea.Cmd) {
	raw := strings.TrimSpace(m.fetchCount.Value())
	if raw != "" {
		if n, err := strconv.Atoi(raw); err != nil || n <= 0 {
			m.err = "Max results must be a positive number"
			return m, nil
		}
	}
	m.err = ""
	m.blurTextInputs()
	f := m.Filters()
	return m, func() tea.Msg { return SubmitMsg{Filters: f} }
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the form.
func (m Model) View() string {
	labelStyle := lipgloss.NewStyle().Width(13).Foreground(ui.ColorMuted)
	focusedLabelStyle := lipgloss.NewStyle().Width(13).Bold(true).Foreground(ui.ColorPrimary)

	chipWidth := m.width - 18
	if chipWidth < 20 {
		chipWidth = 60
	}

	rows := make([]string, 0, int(fieldCount))
	for f := field(0); f < fieldCount; f++ {
		ls := labelStyle
		if f == m.focused {
			ls = focusedLabelStyle
		}

		var value string
		switch f {
		case fieldLocation:
			value = m.location.View()
		case fieldFetchCount:
			value = m.fetchCount.View()
		default:
			value = renderChips(m.chips[f], f == m.focused, chipWidth)
		}

		cursor := "  "
		if f == m.focused {
			cursor = lipgloss.NewStyle().Foreground(ui.ColorPrimary).Render("> ")
		}

		label := ls.Render(fieldLabels[f])
		indent := strings.Repeat(" ", lipgloss.Width(cursor)+lipgloss.Width(label)+1)
		value = strings.ReplaceAll(value, "\n", "\n"+indent)
		rows = append(rows, fmt.Sprintf("%s%s %s", cursor, label, value))
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.ColorPrimary).
		MarginBottom(1).
		Render("Find leads by filters")

	help := lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		MarginTop(1).
		Render("tab/j/k: field  h/l: move  space: toggle  i: edit text  c: clear  enter: run")

	parts := []string{title, strings.Join(rows, "\n\n")}
	if m.err != "" {
		parts = append(parts, "\n"+ui.StyleFailure.Render(m.err))
	}
	parts = append(parts, help)

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderChips(g *chipGroup, focused bool, width int) string {
	var lines []string
	var line string
	for i, opt := range g.options {
		style := ui.StyleChip
		if g.selected[opt] {
			style = ui.StyleChipSelected
		}
		label := opt
		if focused && i == g.cursor {
			label = "[" + opt + "]"
		}
		chip := style.Render(label)
		if line != "" && lipgloss.Width(line)+lipgloss.Width(chip) > width {
			lines = append(lines, line)
			line = ""
		}
		line += chip
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.blurTextInputs()
	next := int(m.focused) + delta
	if next < 0 {
		next = int(fieldCount) - 1
	}
	if next >= int(fieldCount) {
		next = 0
	}
	m.focused = field(next)
	return m.focusCurrentTextInput()
}

func (m *Model) blurTextInputs() {
	m.location.Blur()
	m.fetchCount.Blur()
}

func (m *Model) focusCurrentTextInput() tea.Cmd {
	switch m.focused {
	case fieldLocation:
		return m.location.Focus()
	case fieldFetchCount:
		return m.fetchCount.Focus()
	}
	return nil
}

// Blur releases the keyboard.
func (m *Model) Blur() {
	m.blurTextInputs()
}
