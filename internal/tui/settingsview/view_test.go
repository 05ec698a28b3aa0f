package settingsview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/leadfinder/internal/config"
)

func TestTokenIsMasked(t *testing.T) {
	m := New(config.Config{APIToken: "apify_api_secret", ActorID: "me/leads"})
	view := m.View()
	if strings.Contains(view, "apify_api_secret") {
		t.Errorf("token shown in clear:\n%s", view)
	}
	if !strings.Contains(view, "me/leads") {
		t.Errorf("actor id missing:\n%s", view)
	}
}

func TestEditAndSave(t *testing.T) {
	base := config.Default()
	m := New(base)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // start editing the token
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" tok ")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("me/leads")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("50")})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on the last field should save")
	}
	msg, ok := cmd().(SaveMsg)
	if !ok {
		t.Fatalf("got %T", cmd())
	}
	if msg.Config.APIToken != "tok" || msg.Config.ActorID != "me/leads" || msg.Config.MaxItems != 50 {
		t.Errorf("saved %+v", msg.Config)
	}
	if msg.Config.Store != base.Store || msg.Config.PollInterval != base.PollInterval {
		t.Error("fields outside the form should be kept")
	}
}

func TestInvalidMaxItems(t *testing.T) {
	m := New(config.Config{MaxItems: 10})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("invalid value should not save")
	}
	if !strings.Contains(m.View(), "positive number") {
		t.Errorf("error not shown:\n%s", m.View())
	}
}
