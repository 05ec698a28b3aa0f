package cacheview

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/leadfinder/internal/model"
	"github.com/altinukshini/leadfinder/internal/ui"
)

func loaded(t *testing.T) Model {
	t.Helper()
	now := time.Now()
	recs := []model.RunRecord{
		{ID: "b", Timestamp: now, Count: 1, FilterSummary: "location: berlin (max 100)",
			Leads: []model.Lead{{Email: "a@b.c"}}},
		{ID: "a", Timestamp: now.Add(-2 * time.Hour), Count: 3, FilterSummary: "websites: acme.com (max 100)",
			Leads: []model.Lead{{}, {}, {}}},
	}
	m := New()
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	m, _ = m.Update(ui.RecordsLoadedMsg{Records: recs})
	return m
}

func TestListsSavedRuns(t *testing.T) {
	m := loaded(t)
	view := m.View()
	for _, want := range []string{"2 runs", "4 leads", "location: berlin", "1 with email", "2 hours ago"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if rec := m.SelectedRecord(); rec == nil || rec.ID != "b" {
		t.Errorf("cursor should start on the newest run, got %+v", rec)
	}
}

func TestSortByCount(t *testing.T) {
	m := loaded(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.sortMode != SortByCount {
		t.Fatalf("sort = %v", m.sortMode)
	}
	if m.Records()[0].ID != "a" {
		t.Errorf("largest run should be first, got %s", m.Records()[0].ID)
	}
}

func TestSelection(t *testing.T) {
	m := loaded(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	ids := m.SelectedIDs()
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "a" {
		t.Errorf("ids = %v", ids)
	}

	m, _ = m.Update(ui.RecordsLoadedMsg{Records: m.Records()[1:]})
	if ids := m.SelectedIDs(); len(ids) != 1 || ids[0] != "a" {
		t.Errorf("selection should drop removed runs, got %v", ids)
	}
}

func TestEmptyAndError(t *testing.T) {
	m := New()
	m, _ = m.Update(ui.RecordsLoadedMsg{})
	if !strings.Contains(m.View(), "No saved runs yet") {
		t.Errorf("view = %q", m.View())
	}
	m, _ = m.Update(ui.RecordsLoadedMsg{Err: errors.New("boom")})
	if !strings.Contains(m.View(), "boom") {
		t.Errorf("view = %q", m.View())
	}
}
