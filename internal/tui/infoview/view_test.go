package infoview

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/leadfinder/internal/model"
)

func TestViewShowsLeadAndRecord(t *testing.T) {
	m := New(false)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m.SetLead(model.Lead{
		Name:  "Ada Lovelace",
		Email: "ada@x.io",
		Raw:   model.ExternalRecord{"first_name": "Ada", "followers": json.Number("12")},
	}, 4)

	view := m.View()
	for _, want := range []string{"Lead #5", "Ada Lovelace", "ada@x.io", `"first_name": "Ada"`, `"followers": 12`} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewWithoutLead(t *testing.T) {
	m := New(false)
	if !strings.Contains(m.View(), "press enter") {
		t.Errorf("view = %q", m.View())
	}
}
