package cacheview

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/ui"
)

type runItem struct {
	rec      model.RunRecord
	selected bool
}

func (r runItem) Title() string {
	mark := " "
	if r.selected {
		mark = ui.StyleWarning.Render("● ")
	}
	summary := r.rec.FilterSummary
	if summary == "" {
		summary = "search"
	}
	return fmt.Sprintf("%s%s %s  %s", mark, ui.EmailIcon(r.rec.WithEmail() > 0), summary, ui.StyleInfo.Render(fmt.Sprintf("%d leads", r.rec.Count)))
}

func (r runItem) Description() string {
	parts := []string{
		ui.StyleSuccess.Render(fmt.Sprintf("%d with email", r.rec.WithEmail())),
	}
	if !r.rec.Timestamp.IsZero() {
		parts = append(parts, ui.StyleMuted.Render(r.rec.Timestamp.Local().Format("2006-01-02 15:04")))
		parts = append(parts, ui.StyleMuted.Render(relativeTime(r.rec.Timestamp)))
	}
	return strings.Join(parts, "  ")
}

func (r runItem) FilterValue() string {
	return r.rec.FilterSummary + " " + r.rec.ID
}

// SortMode determines how saved runs are ordered.
type SortMode int

const (
	SortByDate SortMode = iota
	SortByCount
	SortByEmails
)

func (s SortMode) String() string {
	switch s {
	case SortByCount:
		return "leads"
	case SortByEmails:
		return "emails"
	default:
		return "newest"
	}
}

// Model lists saved runs.
type Model struct {
	list     list.Model
	records  []model.RunRecord
	selected map[string]bool
	sortMode SortMode
	width    int
	height   int
	loading  bool
	err      error
}

func New() Model {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("run", "runs")
	l.SetFilteringEnabled(true)
	l.KeyMap.Filter = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter"))
	l.DisableQuitKeybindings()

	return Model{list: l, selected: make(map[string]bool), loading: true}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.RecordsLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.records = msg.Records
		m.pruneSelection()
		m.sortRecords()
		return m, m.list.SetItems(m.buildItems())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)

	case tea.KeyMsg:
		if m.IsFiltering() {
			break
		}
		switch msg.String() {
		case " ":
			if item, ok := m.list.SelectedItem().(runItem); ok {
				id := item.rec.ID
				if m.selected[id] {
					delete(m.selected, id)
				} else {
					m.selected[id] = true
				}
				return m, m.list.SetItems(m.buildItems())
			}
			return m, nil
		case "s":
			m.sortMode = (m.sortMode + 1) % 3
			m.sortRecords()
			return m, m.list.SetItems(m.buildItems())
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return "\n  Loading saved runs..."
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Error: %v\n\n  Press r to retry.", m.err)
	}
	if len(m.records) == 0 {
		return "\n  No saved runs yet.\n\n  Finished searches are kept here (newest 20).\n  Press r to refresh."
	}

	total := 0
	for _, r := range m.records {
		total += r.Count
	}
	header := fmt.Sprintf("  %d runs | %d leads | Sort: %s | enter: load  space: select  d: delete  x: clear all",
		len(m.records), total, m.sortMode)
	if n := len(m.selected); n > 0 {
		header += fmt.Sprintf(" | %d selected", n)
	}
	return ui.StyleMuted.Render(header) + "\n" + m.list.View()
}

// SelectedRecord returns the record under the cursor, or nil.
func (m Model) SelectedRecord() *model.RunRecord {
	if item, ok := m.list.SelectedItem().(runItem); ok {
		rec := item.rec
		return &rec
	}
	return nil
}

// SelectedIDs returns the multi-selected run ids in list order.
func (m Model) SelectedIDs() []string {
	var ids []string
	for _, r := range m.records {
		if m.selected[r.ID] {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

func (m *Model) ClearSelection() {
	clear(m.selected)
}

func (m Model) Records() []model.RunRecord { return m.records }

func (m Model) IsFiltering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),
	}
}

func (m *Model) pruneSelection() {
	present := make(map[string]bool, len(m.records))
	for _, r := range m.records {
		present[r.ID] = true
	}
	for id := range m.selected {
		if !present[id] {
			delete(m.selected, id)
		}
	}
}

func (m *Model) sortRecords() {
	switch m.sortMode {
	case SortByDate:
		sort.SliceStable(m.records, func(i, j int) bool {
			return m.records[i].Timestamp.After(m.records[j].Timestamp)
		})
	case SortByCount:
		sort.SliceStable(m.records, func(i, j int) bool {
			return m.records[i].Count > m.records[j].Count
		})
	case SortByEmails:
		sort.SliceStable(m.records, func(i, j int) bool {
			return m.records[i].WithEmail() > m.records[j].WithEmail()
		})
	}
}

func (m Model) buildItems() []list.Item {
	items := make([]list.Item, len(m.records))
	for i, r := range m.records {
		items[i] = runItem{rec: r, selected: m.selected[r.ID]}
	}
	return items
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		if m := int(d.Minutes()); m != 1 {
			return fmt.Sprintf("%d minutes ago", m)
		}
		return "1 minute ago"
	case d < 24*time.Hour:
		if h := int(d.Hours()); h != 1 {
			return fmt.Sprintf("%d hours ago", h)
		}
		return "1 hour ago"
	default:
		if days := int(d.Hours() / 24); days != 1 {
			return fmt.Sprintf("%d days ago", days)
		}
		return "1 day ago"
	}
}
