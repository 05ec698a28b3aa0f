package results

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/microcosm-cc/bluemonday"

	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/session"
	"github.com/altinukshini/leadfinder/internal/ui"
)

// Cell text comes from third-party datasets and may carry markup.
var policy = bluemonday.StrictPolicy()

// Clean strips markup and collapses whitespace for display.
func Clean(s string) string {
	s = html.UnescapeString(policy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}

// --- Custom delegate (one table row per lead) ---

type leadDelegate struct{}

func (d leadDelegate) Height() int                              { return 1 }
func (d leadDelegate) Spacing() int                             { return 0 }
func (d leadDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d leadDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(leadItem)
	if !ok {
		return
	}

	widths := columnWidths(m.Width())
	cells := []string{
		li.lead.Name,
		li.lead.Email,
		li.lead.Title,
		li.lead.Company,
		li.lead.Location,
	}
	var b strings.Builder
	b.WriteString(ui.StyleMuted.Render(fmt.Sprintf("%4d ", li.pos+1)))
	for i, c := range cells {
		text := fit(ui.Dash(Clean(c)), widths[i])
		switch {
		case i == 1 && li.lead.Email != "":
			text = ui.StyleSuccess.Render(text)
		case i == 4:
			text = ui.StyleMuted.Render(text)
		}
		b.WriteString(text)
		b.WriteString(" ")
	}
	line := b.String()

	if index == m.Index() {
		line = lipgloss.NewStyle().Background(ui.ColorHighlight).Width(m.Width()).Render(line)
	}
	fmt.Fprint(w, line)
}

var columnTitles = []string{"Name", "Email", "Title", "Company", "Location"}

// columnWidths splits the row across name, email, title, company, location.
func columnWidths(total int) []int {
	avail := total - 5 - len(columnTitles)
	if avail < 25 {
		avail = 25
	}
	w := []int{avail * 20 / 100, avail * 26 / 100, avail * 20 / 100, avail * 18 / 100, 0}
	w[4] = avail - w[0] - w[1] - w[2] - w[3]
	return w
}

func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// --- Item ---

type leadItem struct {
	lead model.Lead
	pos  int // index within the visible result set
}

func (l leadItem) FilterValue() string {
	return l.lead.Name + " " + l.lead.Email + " " + l.lead.Company
}

// --- Model ---

type Model struct {
	list      list.Model
	sess      *session.Session
	input     textinput.Model
	searching bool
	fuzzy     bool
	width     int
	height    int
}

func New(sess *session.Session) Model {
	l := list.New(nil, leadDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// n/p and h/l move between result pages; the list only scrolls
	// within a page on pgup/pgdown.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev page"))
	l.DisableQuitKeybindings()

	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "search name, email, company..."
	in.CharLimit = 128

	return Model{
		list:  l,
		sess:  sess,
		input: in,
		fuzzy: true,
	}
}

// Refresh reloads the rows of the current page and puts the cursor on the
// first one.
func (m *Model) Refresh() tea.Cmd {
	page, start := m.sess.PageSlice()
	items := make([]list.Item, len(page))
	for i, l := range page {
		items[i] = leadItem{lead: l, pos: start + i}
	}
	cmd := m.list.SetItems(items)
	m.list.Select(0)
	return cmd
}

// Reset drops any search state, for when a new result set is loaded.
func (m *Model) Reset() tea.Cmd {
	m.searching = false
	m.input.Blur()
	m.input.SetValue("")
	return m.Refresh()
}

func (m Model) SelectedLead() *model.Lead {
	if item, ok := m.list.SelectedItem().(leadItem); ok {
		return &item.lead
	}
	return nil
}

// SelectedPos is the position of the selected lead in the filtered set,
// or -1.
func (m Model) SelectedPos() int {
	if item, ok := m.list.SelectedItem().(leadItem); ok {
		return item.pos
	}
	return -1
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch msg.String() {
		case "/":
			m.searching = true
			m.input.Focus()
			return m, textinput.Blink
		case "F":
			m.fuzzy = !m.fuzzy
			if m.sess.Query().Pattern != "" {
				return m, m.applySearch()
			}
			return m, nil
		case "n", "right", "l":
			if m.sess.NextPage() {
				return m, m.Refresh()
			}
			return m, nil
		case "p", "left", "h":
			if m.sess.PrevPage() {
				return m, m.Refresh()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Stats line, column header and pager take three lines.
		m.list.SetSize(msg.Width, max(msg.Height-3, 1))
		m.input.Width = max(msg.Width-4, 10)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.input.Blur()
		m.input.SetValue("")
		return m, m.applySearch()
	case "enter":
		m.searching = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.applySearch())
}

func (m *Model) applySearch() tea.Cmd {
	m.sess.Filter(model.SearchQuery{
		Pattern: strings.TrimSpace(m.input.Value()),
		Fuzzy:   m.fuzzy,
	})
	return m.Refresh()
}

func (m Model) View() string {
	if m.sess.Empty() && m.sess.Source() != "" {
		return "\n  No results found. Try adjusting your filters."
	}
	if m.sess.Empty() {
		return "\n  No results yet.\n\n  Run a search from the Filters or Website tab, or load a saved run."
	}

	stats := m.sess.Stats()
	mode := "text"
	if m.fuzzy {
		mode = "fuzzy"
	}
	statsLine := fmt.Sprintf("  %s leads  %s with email",
		ui.StyleInfo.Render(fmt.Sprint(stats.Total)),
		ui.StyleSuccess.Render(fmt.Sprint(stats.WithEmail)))
	if src := m.sess.Source(); src != "" {
		statsLine += ui.StyleMuted.Render("  |  " + src)
	}

	var top string
	if m.searching || m.sess.Query().Pattern != "" {
		top = fmt.Sprintf("  %s  %s", m.input.View(), ui.StyleMuted.Render(fmt.Sprintf("[%s] %d match", mode, len(m.sess.Visible()))))
	} else {
		top = statsLine
	}

	widths := columnWidths(m.list.Width())
	var hdr strings.Builder
	hdr.WriteString("   # ")
	for i, t := range columnTitles {
		hdr.WriteString(fit(t, widths[i]) + " ")
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary).Render(hdr.String())

	if len(m.sess.Visible()) == 0 {
		return top + "\n" + header + "\n\n  No leads match."
	}

	pager := ui.StyleMuted.Render(fmt.Sprintf("  page %d / %d  (n/p)", m.sess.Page()+1, m.sess.PageCount()))
	return top + "\n" + header + "\n" + m.list.View() + "\n" + pager
}

func (m Model) IsSearching() bool {
	return m.searching
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		ui.Keys.Search,
		ui.Keys.NextPage,
		ui.Keys.PrevPage,
		ui.Keys.CopyAll,
		ui.Keys.CopyOne,
		ui.Keys.Export,
	}
}
