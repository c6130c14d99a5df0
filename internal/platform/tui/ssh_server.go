package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the loaded configuration and overrides every session starts
	// from. Each session applies its preset before the overrides.
	Game config.Source

	// Preset, when set, skips the preset menu.
	Preset config.Preset
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Source{Base: config.DefaultGameConfig()},
	}
}

// SSHServer serves one independent snake game per SSH session.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	sessions *sessionRegistry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if _, err := cfg.Game.Resolve(cfg.Preset); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
		})
	}
	logger = logger.WithPrefix("snake-ssh")

	srv := &SSHServer{
		config:   cfg,
		sessions: newSessionRegistry(),
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}

	id := sessionID(fmt.Sprintf("%s-%d", sshSession.User(), rt.Seed))
	logger := s.logger.With("user", sshSession.User(), "session", id)
	model := NewSessionModel(s.config.Game, s.config.Preset, rt, logger)
	s.sessions.register(id, model.active)

	// The program may end without a quit key when the connection drops.
	go func() {
		<-sshSession.Context().Done()
		s.sessions.unregister(id)
		model.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops every running game and then the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if n := s.sessions.closeAll(); n > 0 {
		s.logger.Info("stopped active games", "count", n)
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: preset menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	src       config.Source
	preset    config.Preset
	rt        core.RuntimeConfig
	logger    *log.Logger
	menu      PresetModel
	gameModel *Model
	active    *gameSlot
	quitting  bool
}

// NewSessionModel creates a new session model. A non-empty preset skips the menu.
func NewSessionModel(src config.Source, preset config.Preset, rt core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		src:    src,
		preset: preset,
		rt:     rt,
		logger: logger,
		menu:   NewPresetModel(src, rt.ScreenW, rt.ScreenH),
		active: &gameSlot{},
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.preset != "" {
		return func() tea.Msg { return presetChosenMsg(m.preset) }
	}
	return m.menu.Init()
}

// presetChosenMsg starts a game without going through the menu.
type presetChosenMsg config.Preset

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
	case presetChosenMsg:
		return m.startGame(config.Preset(msg))
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, _ := m.menu.Update(msg)
	if menuModel, ok := newMenu.(PresetModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(*selected)
	}

	// The menu's own tea.Quit ends standalone runs only.
	return m, nil
}

func (m SessionModel) startGame(preset config.Preset) (tea.Model, tea.Cmd) {
	cfg, err := m.src.Resolve(preset)
	if err != nil {
		m.logger.Error("invalid config", "preset", preset, "error", err)
		m.quitting = true
		return m, tea.Quit
	}

	m.rt.Seed = time.Now().UnixNano()
	gameModel, err := NewModel(cfg, m.rt, m.logger)
	if err != nil {
		m.logger.Error("cannot start game", "preset", preset, "error", err)
		m.quitting = true
		return m, tea.Quit
	}
	gameModel.allowBack = true

	if !m.active.set(&gameModel) {
		gameModel.Close()
		m.quitting = true
		return m, tea.Quit
	}
	m.gameModel = &gameModel
	m.logger.Info("game started", "preset", preset, "board_size", cfg.BoardSize, "tick", cfg.TickInterval)

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.active.set(nil)
		m.gameModel = nil
		m.menu = NewPresetModel(m.src, m.rt.ScreenW, m.rt.ScreenH)
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// Close stops any game still running in the session.
func (m SessionModel) Close() {
	m.active.close()
}
