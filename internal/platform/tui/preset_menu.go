package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// PresetModel lets the player choose a preset before a game starts.
type PresetModel struct {
	src      config.Source
	cursor   int
	width    int
	height   int
	keys     KeyMap
	selected *config.Preset
	quitting bool
}

// NewPresetModel creates a preset selector. src is only used to preview the
// config each preset would produce.
func NewPresetModel(src config.Source, width, height int) PresetModel {
	m := PresetModel{
		src:    src,
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
	}
	// Start on normal.
	for i, p := range config.Presets {
		if p == config.PresetNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m PresetModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m PresetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown, core.ActionRight:
		if m.cursor < len(config.Presets)-1 {
			m.cursor++
		}
	case core.ActionStart, core.ActionPause:
		p := config.Presets[m.cursor]
		m.selected = &p
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m PresetModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		line := fmt.Sprintf("%-7s invalid", p)
		if cfg, err := m.src.Resolve(p); err == nil {
			line = fmt.Sprintf("%-7s %2dx%-2d  %4dms", p, cfg.BoardSize, cfg.BoardSize, cfg.TickInterval.Milliseconds())
		}
		if i == m.cursor {
			b.WriteString(centerText(menuCursorStyle.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil if still choosing.
func (m PresetModel) Selected() *config.Preset {
	return m.selected
}

// IsQuitting returns true if the player left the menu without choosing.
func (m PresetModel) IsQuitting() bool {
	return m.quitting
}

// RunPresetSelector shows the preset menu and returns the choice.
// A nil preset means the player quit.
func RunPresetSelector(src config.Source, rt core.RuntimeConfig) (*config.Preset, error) {
	p := tea.NewProgram(
		NewPresetModel(src, rt.ScreenW, rt.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(PresetModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}
	return m.Selected(), nil
}

// centerText centers text that may contain escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
