package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func menuKey(t *testing.T, m PresetModel, msg tea.KeyMsg) PresetModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PresetModel)
	if !ok {
		t.Fatalf("Update returned %T, expected PresetModel", next)
	}
	return pm
}

func TestPresetModelDefaultsToNormal(t *testing.T) {
	m := NewPresetModel(config.Source{Base: config.DefaultGameConfig()}, 80, 24)
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || *m.Selected() != config.PresetNormal {
		t.Errorf("Selected() = %v, expected normal", m.Selected())
	}
}

func TestPresetModelNavigation(t *testing.T) {
	m := NewPresetModel(config.Source{Base: config.DefaultGameConfig()}, 80, 24)

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown}) // clamps at the end
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Selected(); got == nil || *got != config.PresetHard {
		t.Errorf("Selected() = %v, expected hard", got)
	}

	m = NewPresetModel(config.Source{Base: config.DefaultGameConfig()}, 80, 24)
	m = menuKey(t, m, runeKey('w'))
	m = menuKey(t, m, runeKey('w'))
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Selected(); got == nil || *got != config.PresetEasy {
		t.Errorf("Selected() = %v, expected easy", got)
	}
}

func TestPresetModelQuit(t *testing.T) {
	m := NewPresetModel(config.Source{Base: config.DefaultGameConfig()}, 80, 24)
	m = menuKey(t, m, runeKey('q'))

	if !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
	if m.Selected() != nil {
		t.Error("quitting should not select a preset")
	}
}

func TestPresetModelView(t *testing.T) {
	m := NewPresetModel(config.Source{Base: config.DefaultGameConfig()}, 80, 24)
	view := m.View()

	for _, want := range []string{"easy", "24x24", "300ms", "normal", "hard", "16x16", "120ms"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
