package results

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/session"
)

func loaded(t *testing.T, n int) (Model, *session.Session) {
	t.Helper()
	sess := session.New()
	leads := make([]model.Lead, n)
	for i := range leads {
		leads[i] = model.Lead{Name: fmt.Sprintf("Person %02d", i), Company: "Acme"}
	}
	leads[0].Email = "first@acme.io"
	sess.SetResults(leads, "location: berlin", "")

	m := New(sess)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m.Refresh()
	return m, sess
}

func TestViewShowsStatsAndDashes(t *testing.T) {
	m, _ := loaded(t, 3)
	view := m.View()

	if !strings.Contains(view, "3") || !strings.Contains(view, "with email") {
		t.Errorf("stats line missing:\n%s", view)
	}
	if !strings.Contains(view, "Person 00") || !strings.Contains(view, "first@acme.io") {
		t.Errorf("rows missing:\n%s", view)
	}
	if !strings.Contains(view, " - ") {
		t.Errorf("empty cells should render as '-':\n%s", view)
	}
}

func TestPageChangeResetsCursor(t *testing.T) {
	m, sess := loaded(t, 45)

	if len(m.list.Items()) != session.PageSize {
		t.Fatalf("expected %d items on first page, got %d", session.PageSize, len(m.list.Items()))
	}

	downKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(downKey)
	}
	if m.list.Index() != 5 {
		t.Fatalf("expected index 5 after moving down, got %d", m.list.Index())
	}

	nKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	m, _ = m.Update(nKey)

	if sess.Page() != 1 {
		t.Fatalf("expected page 1, got %d", sess.Page())
	}
	if m.list.Index() != 0 {
		t.Fatalf("expected index 0 after page change, got %d", m.list.Index())
	}
	if lead := m.SelectedLead(); lead == nil || lead.Name != "Person 20" {
		t.Errorf("selected = %+v, want Person 20", lead)
	}
	if !strings.Contains(m.View(), "page 2 / 3") {
		t.Errorf("pager missing:\n%s", m.View())
	}

	pKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	m, _ = m.Update(pKey)
	m, _ = m.Update(pKey)
	if sess.Page() != 0 {
		t.Errorf("expected page 0, got %d", sess.Page())
	}
}

func TestSearchFiltersRows(t *testing.T) {
	m, sess := loaded(t, 12)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if cmd == nil {
		t.Error("expected non-nil cmd after pressing / (textinput.Blink)")
	}
	if !m.IsSearching() {
		t.Fatal("IsSearching() should return true")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("11")})
	if got := len(sess.Visible()); got != 1 {
		t.Fatalf("visible = %d, want 1", got)
	}
	if lead := m.SelectedLead(); lead == nil || lead.Name != "Person 11" {
		t.Errorf("selected = %+v", lead)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.IsSearching() {
		t.Error("should NOT be searching after pressing esc")
	}
	if got := len(sess.Visible()); got != 12 {
		t.Errorf("esc should clear the search, visible = %d", got)
	}
}

func TestLKeyDoesNotTriggerInternalPageNav(t *testing.T) {
	m, sess := loaded(t, 12)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 8})

	initialPage := m.list.Paginator.Page

	lKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}
	m, _ = m.Update(lKey)

	if m.list.Paginator.Page != initialPage {
		t.Errorf("pressing 'l' should not change internal page: was %d, now %d",
			initialPage, m.list.Paginator.Page)
	}
	if sess.Page() != 0 {
		t.Errorf("a single page of results has nowhere to go, page = %d", sess.Page())
	}
}

func TestCleanStripsMarkup(t *testing.T) {
	got := Clean("<b>AT&amp;T</b>\n  <script>x</script>Labs")
	if got != "AT&T Labs" {
		t.Errorf("Clean = %q", got)
	}
}

func TestEmptyView(t *testing.T) {
	m := New(session.New())
	if !strings.Contains(m.View(), "No results yet") {
		t.Errorf("view = %q", m.View())
	}
}
