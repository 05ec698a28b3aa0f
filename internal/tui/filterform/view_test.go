package filterform

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altinukshini/leadfinder/internal/ops"
)

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestSubmitCollectsFilters(t *testing.T) {
	m := New(100)

	// Type a location.
	m, _ = press(m, "i", "Berlin, Paris", "esc")
	if m.IsEditing() {
		t.Fatal("esc should leave the text input")
	}

	// Email status: select the second chip.
	m, _ = press(m, "j", "l", "space")
	// Seniority: select the first chip.
	m, _ = press(m, "j", "j", "space")

	m, cmd := press(m, "enter")
	if cmd == nil {
		t.Fatal("enter should submit")
	}
	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("got %T, want SubmitMsg", cmd())
	}

	want := ops.Filters{
		Location:       "Berlin, Paris",
		EmailStatus:    []string{ops.EmailStatusOptions[1]},
		SeniorityLevel: []string{ops.SeniorityOptions[0]},
		FetchCount:     100,
	}
	if !reflect.DeepEqual(msg.Filters, want) {
		t.Errorf("filters = %+v\nwant %+v", msg.Filters, want)
	}
}

func TestTabFocusesTextInputs(t *testing.T) {
	m := New(0)
	// Location -> ... -> max results is six tabs away.
	for i := 0; i < 6; i++ {
		m, _ = press(m, "tab")
	}
	if !m.IsEditing() {
		t.Fatal("max results field should take the keyboard")
	}
	m, _ = press(m, "x")
	m, cmd := press(m, "enter")
	if cmd != nil {
		t.Error("invalid count should not submit")
	}
	if !strings.Contains(m.View(), "positive number") {
		t.Errorf("error not shown:\n%s", m.View())
	}
}

func TestClear(t *testing.T) {
	m := New(0)
	m, _ = press(m, "j", "space", "c")
	if got := m.Filters().EmailStatus; len(got) != 0 {
		t.Errorf("clear left %v", got)
	}
}

func TestToggleTwiceDeselects(t *testing.T) {
	m := New(0)
	m, _ = press(m, "j", "j", "j", "j", "j", "space", "l", "space", "h", "space")
	want := []string{ops.SizeOptions[1]}
	if got := m.Filters().Size; !reflect.DeepEqual(got, want) {
		t.Errorf("size = %v, want %v", got, want)
	}
}
