package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelView(t *testing.T) {
	m := New(testTrace(), []string{"rise      01:23:45 UTC"})

	// Before the first WindowSizeMsg there is nothing to lay out.
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before sizing = %q", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	out := m.View()
	if !strings.Contains(out, "Cyg A") {
		t.Error("View() missing the source name")
	}
	if !strings.Contains(out, "rise") {
		t.Error("View() missing the summary line")
	}
	if !strings.Contains(out, "q: quit") {
		t.Error("View() missing the help line")
	}
}

func TestModelQuitKeys(t *testing.T) {
	m := New(testTrace(), nil)

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			var msg tea.Msg
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			_, cmd := m.Update(msg)
			if cmd == nil {
				t.Fatalf("key %q did not quit", key)
			}
		})
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	m := New(testTrace(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Errorf("unexpected command for an unbound key")
	}
}
