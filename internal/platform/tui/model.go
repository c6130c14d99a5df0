package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model for one snake game. It forwards keys to a
// snake.Controller and redraws whenever the controller publishes a state.
type Model struct {
	ctrl     *snake.Controller
	feed     *stateFeed
	state    snake.State
	maxScore int
	screen   *core.Screen
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	allowBack  bool // Esc/B leaves to the menu (SSH sessions)
	quitting   bool
	backToMenu bool
}

// NewModel creates a game model with its own controller.
func NewModel(cfg config.GameConfig, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	ctrl, err := snake.NewController(cfg, snake.Options{
		Rand:   rand.New(rand.NewSource(rt.Seed)),
		Logger: logger,
	})
	if err != nil {
		return Model{}, err
	}
	return newModel(ctrl, rt, logger), nil
}

func newModel(ctrl *snake.Controller, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		ctrl:     ctrl,
		feed:     newStateFeed(ctrl),
		state:    ctrl.State(),
		maxScore: ctrl.Config().MaxScore,
		screen:   core.NewScreen(0, 0),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m
}

// Init starts the game and subscribes to state updates.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start()
	return m.feed.wait()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case StateMsg:
		m.state = snake.State(msg)
		return m, m.feed.wait()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if d, ok := action.Direction(); ok {
		// Steering only applies to a running game.
		if m.ctrl.Running() {
			m.ctrl.ChangeDirection(d)
		}
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.ctrl.TogglePause()
	case core.ActionReset:
		m.ctrl.Reset()
	case core.ActionStart:
		m.ctrl.Start()
	case core.ActionBack:
		if m.allowBack && !m.ctrl.Running() {
			m.Close()
			m.backToMenu = true
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
	}

	return m, nil
}

// resize fits the board screen above the help view.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(width, max(height-helpHeight, 0))
}

// saveScreenshot saves the current board as plain text.
func (m *Model) saveScreenshot() {
	render.Draw(m.screen, m.state, m.maxScore)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	render.Draw(m.screen, m.state, m.maxScore)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Close stops the controller and detaches the model from it.
// It is safe to call more than once.
func (m Model) Close() {
	m.ctrl.Stop()
	m.feed.close()
}

// State returns the last state the model received.
func (m Model) State() snake.State {
	return m.state
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local game and blocks until the player quits.
func Run(cfg config.GameConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, logger)
	if err != nil {
		return err
	}
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
