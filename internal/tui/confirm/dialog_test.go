package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDialogResults(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want bool
	}{
		{"y confirms", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("y")}}, true},
		{"esc cancels", []tea.KeyMsg{{Type: tea.KeyEsc}}, false},
		{"enter defaults to no", []tea.KeyMsg{{Type: tea.KeyEnter}}, false},
		{"tab then enter confirms", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyEnter}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("Clear", "Remove everything?", "clear", 7)
			var cmd tea.Cmd
			for _, k := range tt.keys {
				m, cmd = m.Update(k)
			}
			if m.IsActive() {
				t.Fatal("dialog should close")
			}
			res, ok := cmd().(ResultMsg)
			if !ok {
				t.Fatalf("got %T", cmd())
			}
			if res.Confirmed != tt.want || res.Action != "clear" || res.Data != 7 {
				t.Errorf("result = %+v", res)
			}
		})
	}
}
